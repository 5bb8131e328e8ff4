package account

import (
	"github.com/example/storefront-state/internal/domain"
	"github.com/example/storefront-state/internal/store"
)

// Reduce применяет действие к срезу аккаунта. Если ни один подсрез не изменился,
// возвращается исходный указатель.
func Reduce(s *State, a store.Action) *State {
	if _, ok := a.(LogoutUserSuccess); ok {
		return Initial()
	}
	n := State{
		User:            reduceUser(s.User, a),
		Authorization:   reduceAuthorization(s.Authorization, a),
		Orders:          reduceOrders(s.Orders, a),
		Addresses:       reduceAddresses(s.Addresses, a),
		DataRequests:    reduceDataRequests(s.DataRequests, a),
		SsoRegistration: reduceSsoRegistration(s.SsoRegistration, a),
	}
	if n == *s {
		return s
	}
	return &n
}

func reduceUser(s *UserState, a store.Action) *UserState {
	n := *s
	switch a := a.(type) {
	case LoginUser, LoginUserWithToken, CreateUser, UpdateUser, UpdateUserPassword, UpdateCustomer,
		UpdateUserPreferredPayment, LoadUserPaymentMethods, DeleteUserPaymentInstrument:
		n.Loading = true
	case LoginUserSuccess:
		customer := a.Customer
		n.Customer, n.User = &customer, a.User
		n.Authorized, n.Loading, n.Error = true, false, nil
	case LoginUserFail:
		n.Customer, n.User = nil, nil
		n.Authorized, n.Loading, n.Error = false, false, a.Error
	case CreateUserApprovalRequired:
		n.CustomerApprovalEmail, n.Loading = a.Email, false
	case CreateUserFail:
		n.Loading, n.Error = false, a.Error
	case UpdateUserSuccess:
		user := a.User
		n.User, n.Loading, n.Error = &user, false, nil
	case UpdateUserFail:
		n.Loading, n.Error = false, a.Error
	case UpdateUserPasswordSuccess:
		n.Loading, n.Error = false, nil
	case UpdateUserPasswordFail:
		n.Loading, n.Error = false, a.Error
	case UpdateCustomerSuccess:
		customer := a.Customer
		n.Customer, n.Loading, n.Error = &customer, false, nil
	case UpdateCustomerFail:
		n.Loading, n.Error = false, a.Error
	case UserErrorReset:
		if s.Error == nil {
			return s
		}
		n.Error = nil
	case LoadUserPaymentMethodsSuccess:
		n.PaymentMethods, n.Loading, n.Error = a.PaymentMethods, false, nil
	case LoadUserPaymentMethodsFail:
		n.Loading, n.Error = false, a.Error
	case DeleteUserPaymentInstrumentSuccess:
		n.PaymentMethods = withoutInstrument(s.PaymentMethods, a.ID)
		n.Loading, n.Error = false, nil
	case DeleteUserPaymentInstrumentFail:
		n.Loading, n.Error = false, a.Error
	case ResetPasswordReminder:
		n.PasswordReminderSuccess, n.PasswordReminderError = nil, nil
	case RequestPasswordReminder, UpdateUserPasswordByPasswordReminder:
		n.Loading = true
		n.PasswordReminderSuccess, n.PasswordReminderError = nil, nil
	case RequestPasswordReminderSuccess, UpdateUserPasswordByPasswordReminderSuccess:
		ok := true
		n.Loading, n.PasswordReminderSuccess = false, &ok
	case RequestPasswordReminderFail:
		failed := false
		n.Loading, n.PasswordReminderSuccess, n.PasswordReminderError = false, &failed, a.Error
	case UpdateUserPasswordByPasswordReminderFail:
		failed := false
		n.Loading, n.PasswordReminderSuccess, n.PasswordReminderError = false, &failed, a.Error
	default:
		return s
	}
	return &n
}

func withoutInstrument(methods []domain.PaymentMethod, id string) []domain.PaymentMethod {
	out := make([]domain.PaymentMethod, 0, len(methods))
	for _, m := range methods {
		instruments := make([]domain.PaymentInstrument, 0, len(m.PaymentInstruments))
		for _, pi := range m.PaymentInstruments {
			if pi.ID != id {
				instruments = append(instruments, pi)
			}
		}
		m.PaymentInstruments = instruments
		out = append(out, m)
	}
	return out
}

func reduceAuthorization(s *AuthorizationState, a store.Action) *AuthorizationState {
	if a, ok := a.(LoadRolesAndPermissionsSuccess); ok {
		return &AuthorizationState{Roles: a.Roles}
	}
	return s
}

func reduceOrders(s *OrdersState, a store.Action) *OrdersState {
	n := *s
	switch a := a.(type) {
	case LoadOrders:
		n.Loading = true
	case LoadOrdersSuccess:
		n.Orders, n.Loading, n.Error = a.Orders, false, nil
	case LoadOrdersFail:
		n.Loading, n.Error = false, a.Error
	case SelectOrder:
		if s.Selected == a.OrderID {
			return s
		}
		n.Selected = a.OrderID
	default:
		return s
	}
	return &n
}

func reduceAddresses(s *AddressesState, a store.Action) *AddressesState {
	n := *s
	switch a := a.(type) {
	case LoadAddresses, CreateCustomerAddress, UpdateCustomerAddress, DeleteCustomerAddress:
		n.Loading = true
	case LoadAddressesSuccess:
		n.Addresses, n.Loading, n.Error = a.Addresses, false, nil
	case CreateCustomerAddressSuccess:
		n.Addresses = append(append([]domain.Address(nil), s.Addresses...), a.Address)
		n.Loading, n.Error = false, nil
	case UpdateCustomerAddressSuccess:
		n.Addresses = make([]domain.Address, 0, len(s.Addresses))
		for _, addr := range s.Addresses {
			if addr.ID == a.Address.ID {
				addr = a.Address
			}
			n.Addresses = append(n.Addresses, addr)
		}
		n.Loading, n.Error = false, nil
	case DeleteCustomerAddressSuccess:
		n.Addresses = make([]domain.Address, 0, len(s.Addresses))
		for _, addr := range s.Addresses {
			if addr.ID != a.AddressID {
				n.Addresses = append(n.Addresses, addr)
			}
		}
		n.Loading, n.Error = false, nil
	case LoadAddressesFail:
		n.Loading, n.Error = false, a.Error
	case CreateCustomerAddressFail:
		n.Loading, n.Error = false, a.Error
	case UpdateCustomerAddressFail:
		n.Loading, n.Error = false, a.Error
	case DeleteCustomerAddressFail:
		n.Loading, n.Error = false, a.Error
	default:
		return s
	}
	return &n
}

func reduceDataRequests(s *DataRequestsState, a store.Action) *DataRequestsState {
	n := *s
	switch a := a.(type) {
	case ConfirmGDPRDataRequest:
		n.Loading, n.Error = true, nil
	case ConfirmGDPRDataRequestSuccess:
		n.Loading, n.FirstTimeRequest = false, a.FirstTime
	case ConfirmGDPRDataRequestFail:
		n.Loading, n.Error = false, a.Error
	default:
		return s
	}
	return &n
}

func reduceSsoRegistration(s *SsoRegistrationState, a store.Action) *SsoRegistrationState {
	n := *s
	switch a := a.(type) {
	case SetRegistrationInfo:
		n.Error = nil
	case RegistrationSuccess:
		n.Registered, n.Error = true, nil
	case CancelRegistration:
		n.Cancelled = true
	case RegistrationFail:
		n.Error = a.Error
	default:
		return s
	}
	return &n
}
