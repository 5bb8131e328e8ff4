package account

import "github.com/example/storefront-state/internal/domain"

// State хранит срез аккаунта. Каждый подсрез заменяется целиком при изменении,
// неизменённые подсрезы сохраняют указатель.
type State struct {
	User            *UserState            `json:"user"`
	Authorization   *AuthorizationState   `json:"authorization"`
	Orders          *OrdersState          `json:"orders"`
	Addresses       *AddressesState       `json:"addresses"`
	DataRequests    *DataRequestsState    `json:"dataRequests"`
	SsoRegistration *SsoRegistrationState `json:"ssoRegistration"`
}

type UserState struct {
	Customer                *domain.Customer       `json:"customer,omitempty"`
	User                    *domain.User           `json:"user,omitempty"`
	Authorized              bool                   `json:"authorized"`
	Loading                 bool                   `json:"loading"`
	Error                   *domain.HttpError      `json:"error,omitempty"`
	PaymentMethods          []domain.PaymentMethod `json:"paymentMethods,omitempty"`
	CustomerApprovalEmail   string                 `json:"customerApprovalEmail,omitempty"`
	PasswordReminderSuccess *bool                  `json:"passwordReminderSuccess,omitempty"`
	PasswordReminderError   *domain.HttpError      `json:"passwordReminderError,omitempty"`
}

type AuthorizationState struct {
	Roles []domain.Role `json:"roles"`
}

type OrdersState struct {
	Orders   []domain.Order    `json:"orders"`
	Selected string            `json:"selected,omitempty"`
	Loading  bool              `json:"loading"`
	Error    *domain.HttpError `json:"error,omitempty"`
}

type AddressesState struct {
	Addresses []domain.Address  `json:"addresses"`
	Loading   bool              `json:"loading"`
	Error     *domain.HttpError `json:"error,omitempty"`
}

type DataRequestsState struct {
	Loading          bool              `json:"loading"`
	Error            *domain.HttpError `json:"error,omitempty"`
	FirstTimeRequest bool              `json:"firstTimeRequest"`
}

type SsoRegistrationState struct {
	Registered bool              `json:"registered"`
	Cancelled  bool              `json:"cancelled"`
	Error      *domain.HttpError `json:"error,omitempty"`
}

// Initial возвращает пустой срез аккаунта.
func Initial() *State {
	return &State{
		User:            &UserState{},
		Authorization:   &AuthorizationState{},
		Orders:          &OrdersState{},
		Addresses:       &AddressesState{},
		DataRequests:    &DataRequestsState{},
		SsoRegistration: &SsoRegistrationState{},
	}
}

// Normalize заполняет отсутствующие подсрезы, например после восстановления из снимка.
func (s *State) Normalize() *State {
	init := Initial()
	n := *s
	if n.User == nil {
		n.User = init.User
	}
	if n.Authorization == nil {
		n.Authorization = init.Authorization
	}
	if n.Orders == nil {
		n.Orders = init.Orders
	}
	if n.Addresses == nil {
		n.Addresses = init.Addresses
	}
	if n.DataRequests == nil {
		n.DataRequests = init.DataRequests
	}
	if n.SsoRegistration == nil {
		n.SsoRegistration = init.SsoRegistration
	}
	return &n
}
