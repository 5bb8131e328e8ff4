package account

import (
	"github.com/example/storefront-state/internal/domain"
	"github.com/example/storefront-state/internal/store"
)

func getUserState(s *State) *UserState                   { return s.User }
func getAuthorizationState(s *State) *AuthorizationState { return s.Authorization }
func getOrdersState(s *State) *OrdersState               { return s.Orders }
func getAddressesState(s *State) *AddressesState         { return s.Addresses }
func getDataRequestsState(s *State) *DataRequestsState   { return s.DataRequests }
func getSsoState(s *State) *SsoRegistrationState         { return s.SsoRegistration }

// USER

var (
	GetLoggedInUser       = store.CreateSelector(getUserState, func(u *UserState) *domain.User { return u.User })
	GetLoggedInCustomer   = store.CreateSelector(getUserState, func(u *UserState) *domain.Customer { return u.Customer })
	GetUserAuthorized     = store.CreateSelector(getUserState, func(u *UserState) bool { return u.Authorized })
	GetUserLoading        = store.CreateSelector(getUserState, func(u *UserState) bool { return u.Loading })
	GetUserError          = store.CreateSelector(getUserState, func(u *UserState) *domain.HttpError { return u.Error })
	GetUserPaymentMethods = store.CreateSelector(getUserState, func(u *UserState) []domain.PaymentMethod {
		return u.PaymentMethods
	})
	GetCustomerApprovalEmail = store.CreateSelector(getUserState, func(u *UserState) string {
		return u.CustomerApprovalEmail
	})
	GetPasswordReminderSuccess = store.CreateSelector(getUserState, func(u *UserState) *bool {
		return u.PasswordReminderSuccess
	})
	GetPasswordReminderError = store.CreateSelector(getUserState, func(u *UserState) *domain.HttpError {
		return u.PasswordReminderError
	})
	IsBusinessCustomer = store.CreateSelector(GetLoggedInCustomer, func(c *domain.Customer) bool {
		return c != nil && c.IsBusiness()
	})
	// GetPriceDisplayType: бизнес-клиенты видят цены нетто, остальные брутто.
	GetPriceDisplayType = store.CreateSelector(IsBusinessCustomer, func(business bool) string {
		if business {
			return "net"
		}
		return "gross"
	})
	GetUserRoles = store.CreateSelector(getAuthorizationState, func(a *AuthorizationState) []domain.Role {
		return a.Roles
	})
)

// ORDERS

var (
	GetOrders        = store.CreateSelector(getOrdersState, func(o *OrdersState) []domain.Order { return o.Orders })
	GetOrdersLoading = store.CreateSelector(getOrdersState, func(o *OrdersState) bool { return o.Loading })
	GetOrdersError   = store.CreateSelector(getOrdersState, func(o *OrdersState) *domain.HttpError { return o.Error })
	GetSelectedOrder = store.CreateSelector(getOrdersState, func(o *OrdersState) *domain.Order {
		for i := range o.Orders {
			if o.Orders[i].ID == o.Selected {
				return &o.Orders[i]
			}
		}
		return nil
	})
)

// ADDRESSES

var (
	GetAllAddresses = store.CreateSelector(getAddressesState, func(a *AddressesState) []domain.Address {
		return a.Addresses
	})
	GetAddressesLoading = store.CreateSelector(getAddressesState, func(a *AddressesState) bool { return a.Loading })
	GetAddressesError   = store.CreateSelector(getAddressesState, func(a *AddressesState) *domain.HttpError {
		return a.Error
	})
)

// DATA REQUESTS

var (
	GetDataRequestLoading = store.CreateSelector(getDataRequestsState, func(d *DataRequestsState) bool {
		return d.Loading
	})
	GetDataRequestError = store.CreateSelector(getDataRequestsState, func(d *DataRequestsState) *domain.HttpError {
		return d.Error
	})
	FirstGDPRDataRequest = store.CreateSelector(getDataRequestsState, func(d *DataRequestsState) bool {
		return d.FirstTimeRequest
	})
)

// SSO

var (
	GetSsoRegistrationError = store.CreateSelector(getSsoState, func(s *SsoRegistrationState) *domain.HttpError {
		return s.Error
	})
	GetSsoRegistrationCancelled = store.CreateSelector(getSsoState, func(s *SsoRegistrationState) bool {
		return s.Cancelled
	})
	GetSsoRegistrationRegistered = store.CreateSelector(getSsoState, func(s *SsoRegistrationState) bool {
		return s.Registered
	})
)
