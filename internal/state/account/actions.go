package account

import (
	"github.com/example/storefront-state/internal/domain"
	"github.com/example/storefront-state/internal/store"
)

// USER

type LoginUser struct {
	Credentials domain.Credentials `json:"credentials"`
}

type LoginUserWithToken struct {
	Token string `json:"token"`
}

type LoginUserSuccess struct {
	Customer domain.Customer `json:"customer"`
	User     *domain.User    `json:"user,omitempty"`
}

type LoginUserFail struct {
	Error *domain.HttpError `json:"error"`
}

type LogoutUser struct{}

type LogoutUserSuccess struct{}

type CreateUser struct {
	domain.CustomerRegistration
}

type CreateUserApprovalRequired struct {
	Email string `json:"email"`
}

type CreateUserFail struct {
	Error *domain.HttpError `json:"error"`
}

type UpdateUser struct {
	User           domain.User             `json:"user"`
	Credentials    *domain.Credentials     `json:"credentials,omitempty"`
	SuccessMessage *domain.MessagesPayload `json:"successMessage,omitempty"`
}

type UpdateUserSuccess struct {
	User           domain.User             `json:"user"`
	SuccessMessage *domain.MessagesPayload `json:"successMessage,omitempty"`
}

type UpdateUserFail struct {
	Error *domain.HttpError `json:"error"`
}

type UpdateUserPassword struct {
	domain.PasswordChange
}

type UpdateUserPasswordSuccess struct{}

type UpdateUserPasswordFail struct {
	Error *domain.HttpError `json:"error"`
}

type UpdateCustomer struct {
	Customer       domain.Customer         `json:"customer"`
	SuccessMessage *domain.MessagesPayload `json:"successMessage,omitempty"`
}

type UpdateCustomerSuccess struct {
	Customer domain.Customer `json:"customer"`
}

type UpdateCustomerFail struct {
	Error *domain.HttpError `json:"error"`
}

type UserErrorReset struct{}

// PASSWORD

type ResetPasswordReminder struct{}

type RequestPasswordReminder struct {
	Data domain.PasswordReminder `json:"data"`
}

type RequestPasswordReminderSuccess struct{}

type RequestPasswordReminderFail struct {
	Error *domain.HttpError `json:"error"`
}

type UpdateUserPasswordByPasswordReminder struct {
	domain.PasswordReminderUpdate
}

type UpdateUserPasswordByPasswordReminderSuccess struct{}

type UpdateUserPasswordByPasswordReminderFail struct {
	Error *domain.HttpError `json:"error"`
}

// PAYMENT

type LoadUserPaymentMethods struct{}

type LoadUserPaymentMethodsSuccess struct {
	PaymentMethods []domain.PaymentMethod `json:"paymentMethods"`
}

type LoadUserPaymentMethodsFail struct {
	Error *domain.HttpError `json:"error"`
}

type DeleteUserPaymentInstrument struct {
	ID             string                  `json:"id"`
	SuccessMessage *domain.MessagesPayload `json:"successMessage,omitempty"`
}

type DeleteUserPaymentInstrumentSuccess struct {
	ID string `json:"id"`
}

type DeleteUserPaymentInstrumentFail struct {
	Error *domain.HttpError `json:"error"`
}

type UpdateUserPreferredPayment struct {
	User            domain.User             `json:"user"`
	PaymentMethodID string                  `json:"paymentMethodId"`
	SuccessMessage  *domain.MessagesPayload `json:"successMessage,omitempty"`
}

// AUTHORIZATION

type LoadRolesAndPermissionsSuccess struct {
	Roles []domain.Role `json:"roles"`
}

// ORDERS

type LoadOrders struct {
	Query domain.OrderListQuery `json:"query"`
}

type LoadOrdersSuccess struct {
	Orders []domain.Order `json:"orders"`
}

type LoadOrdersFail struct {
	Error *domain.HttpError `json:"error"`
}

type SelectOrder struct {
	OrderID string `json:"orderId"`
}

// ADDRESSES

type LoadAddresses struct{}

type LoadAddressesSuccess struct {
	Addresses []domain.Address `json:"addresses"`
}

type LoadAddressesFail struct {
	Error *domain.HttpError `json:"error"`
}

type CreateCustomerAddress struct {
	Address domain.Address `json:"address"`
}

type CreateCustomerAddressSuccess struct {
	Address domain.Address `json:"address"`
}

type CreateCustomerAddressFail struct {
	Error *domain.HttpError `json:"error"`
}

type UpdateCustomerAddress struct {
	Address domain.Address `json:"address"`
}

type UpdateCustomerAddressSuccess struct {
	Address domain.Address `json:"address"`
}

type UpdateCustomerAddressFail struct {
	Error *domain.HttpError `json:"error"`
}

type DeleteCustomerAddress struct {
	AddressID string `json:"addressId"`
}

type DeleteCustomerAddressSuccess struct {
	AddressID string `json:"addressId"`
}

type DeleteCustomerAddressFail struct {
	Error *domain.HttpError `json:"error"`
}

// DATA REQUESTS

type ConfirmGDPRDataRequest struct {
	RequestID string `json:"requestID"`
	Hash      string `json:"hash"`
}

type ConfirmGDPRDataRequestSuccess struct {
	FirstTime bool `json:"firstTime"`
}

type ConfirmGDPRDataRequestFail struct {
	Error *domain.HttpError `json:"error"`
}

// SSO

type SetRegistrationInfo struct {
	domain.SsoRegistration
}

type CancelRegistration struct{}

type RegistrationSuccess struct{}

type RegistrationFail struct {
	Error *domain.HttpError `json:"error"`
}

func (LoginUser) Kind() store.Kind                  { return "[User] Login User" }
func (LoginUserWithToken) Kind() store.Kind         { return "[User] Login User With Token" }
func (LoginUserSuccess) Kind() store.Kind           { return "[User API] Login User Success" }
func (LoginUserFail) Kind() store.Kind              { return "[User API] Login User Failed" }
func (LogoutUser) Kind() store.Kind                 { return "[User] Logout User" }
func (LogoutUserSuccess) Kind() store.Kind          { return "[User API] Logout User Success" }
func (CreateUser) Kind() store.Kind                 { return "[User] Create User" }
func (CreateUserApprovalRequired) Kind() store.Kind { return "[User API] Create User Approval Required" }
func (CreateUserFail) Kind() store.Kind             { return "[User API] Create User Failed" }
func (UpdateUser) Kind() store.Kind                 { return "[User] Update User" }
func (UpdateUserSuccess) Kind() store.Kind          { return "[User API] Update User Succeeded" }
func (UpdateUserFail) Kind() store.Kind             { return "[User API] Update User Failed" }
func (UpdateUserPassword) Kind() store.Kind         { return "[User] Update User Password" }
func (UpdateUserPasswordSuccess) Kind() store.Kind  { return "[User API] Update User Password Succeeded" }
func (UpdateUserPasswordFail) Kind() store.Kind     { return "[User API] Update User Password Failed" }
func (UpdateCustomer) Kind() store.Kind             { return "[User] Update Customer" }
func (UpdateCustomerSuccess) Kind() store.Kind      { return "[User API] Update Customer Succeeded" }
func (UpdateCustomerFail) Kind() store.Kind         { return "[User API] Update Customer Failed" }
func (UserErrorReset) Kind() store.Kind             { return "[User] Reset User Error" }

func (ResetPasswordReminder) Kind() store.Kind   { return "[Password Reminder] Reset Password Reminder Data" }
func (RequestPasswordReminder) Kind() store.Kind { return "[Password Reminder] Request Password Reminder" }
func (RequestPasswordReminderSuccess) Kind() store.Kind {
	return "[Password Reminder API] Request Password Reminder Success"
}
func (RequestPasswordReminderFail) Kind() store.Kind {
	return "[Password Reminder API] Request Password Reminder Fail"
}
func (UpdateUserPasswordByPasswordReminder) Kind() store.Kind {
	return "[Password Reminder] Update User Password"
}
func (UpdateUserPasswordByPasswordReminderSuccess) Kind() store.Kind {
	return "[Password Reminder API] Update User Password Succeeded"
}
func (UpdateUserPasswordByPasswordReminderFail) Kind() store.Kind {
	return "[Password Reminder API] Update User Password Failed"
}

func (LoadUserPaymentMethods) Kind() store.Kind             { return "[User] Load User Payment Methods" }
func (LoadUserPaymentMethodsSuccess) Kind() store.Kind      { return "[User API] Load User Payment Methods Success" }
func (LoadUserPaymentMethodsFail) Kind() store.Kind         { return "[User API] Load User Payment Methods Fail" }
func (DeleteUserPaymentInstrument) Kind() store.Kind        { return "[User] Delete User Instrument Payment" }
func (DeleteUserPaymentInstrumentSuccess) Kind() store.Kind { return "[User API] Delete User Payment Instrument Success" }
func (DeleteUserPaymentInstrumentFail) Kind() store.Kind    { return "[User API] Delete User Payment Instrument Fail" }
func (UpdateUserPreferredPayment) Kind() store.Kind         { return "[User] Update User Preferred Payment" }

func (LoadRolesAndPermissionsSuccess) Kind() store.Kind {
	return "[Authorization API] Load Roles and Permissions Success"
}

func (LoadOrders) Kind() store.Kind        { return "[Order] Load Orders" }
func (LoadOrdersSuccess) Kind() store.Kind { return "[Order API] Load Orders Success" }
func (LoadOrdersFail) Kind() store.Kind    { return "[Order API] Load Orders Fail" }
func (SelectOrder) Kind() store.Kind       { return "[Order] Select Order" }

func (LoadAddresses) Kind() store.Kind                { return "[Address] Load Addresses" }
func (LoadAddressesSuccess) Kind() store.Kind         { return "[Address API] Load Addresses Success" }
func (LoadAddressesFail) Kind() store.Kind            { return "[Address API] Load Addresses Fail" }
func (CreateCustomerAddress) Kind() store.Kind        { return "[Address] Create Customer Address" }
func (CreateCustomerAddressSuccess) Kind() store.Kind { return "[Address API] Create Customer Address Success" }
func (CreateCustomerAddressFail) Kind() store.Kind    { return "[Address API] Create Customer Address Fail" }
func (UpdateCustomerAddress) Kind() store.Kind        { return "[Address] Update Customer Address" }
func (UpdateCustomerAddressSuccess) Kind() store.Kind { return "[Address API] Update Customer Address Success" }
func (UpdateCustomerAddressFail) Kind() store.Kind    { return "[Address API] Update Customer Address Fail" }
func (DeleteCustomerAddress) Kind() store.Kind        { return "[Address] Delete Customer Address" }
func (DeleteCustomerAddressSuccess) Kind() store.Kind { return "[Address API] Delete Customer Address Success" }
func (DeleteCustomerAddressFail) Kind() store.Kind    { return "[Address API] Delete Customer Address Fail" }

func (ConfirmGDPRDataRequest) Kind() store.Kind        { return "[Data Request] Confirm Data Request" }
func (ConfirmGDPRDataRequestSuccess) Kind() store.Kind { return "[Data Request API] Confirm Data Request Success" }
func (ConfirmGDPRDataRequestFail) Kind() store.Kind    { return "[Data Request API] Confirm Data Request Fail" }

func (SetRegistrationInfo) Kind() store.Kind { return "[SSO Registration] Set Registration Info" }
func (CancelRegistration) Kind() store.Kind  { return "[SSO Registration] Cancel Registration" }
func (RegistrationSuccess) Kind() store.Kind { return "[SSO Registration API] Registration Success" }
func (RegistrationFail) Kind() store.Kind    { return "[SSO Registration API] Registration Fail" }

// Действия, уходящие в бэкенд.
func (LoginUser) RemoteRequest()                            {}
func (LoginUserWithToken) RemoteRequest()                   {}
func (LogoutUser) RemoteRequest()                           {}
func (CreateUser) RemoteRequest()                           {}
func (UpdateUser) RemoteRequest()                           {}
func (UpdateUserPassword) RemoteRequest()                   {}
func (UpdateCustomer) RemoteRequest()                       {}
func (RequestPasswordReminder) RemoteRequest()              {}
func (UpdateUserPasswordByPasswordReminder) RemoteRequest() {}
func (LoadUserPaymentMethods) RemoteRequest()               {}
func (DeleteUserPaymentInstrument) RemoteRequest()          {}
func (UpdateUserPreferredPayment) RemoteRequest()           {}
func (LoadOrders) RemoteRequest()                           {}
func (LoadAddresses) RemoteRequest()                        {}
func (CreateCustomerAddress) RemoteRequest()                {}
func (UpdateCustomerAddress) RemoteRequest()                {}
func (DeleteCustomerAddress) RemoteRequest()                {}
func (ConfirmGDPRDataRequest) RemoteRequest()               {}
func (SetRegistrationInfo) RemoteRequest()                  {}

// Register добавляет все действия аккаунта в реестр декодирования.
func Register(r *store.Registry) {
	store.Register[LoginUser](r)
	store.Register[LoginUserWithToken](r)
	store.Register[LoginUserSuccess](r)
	store.Register[LoginUserFail](r)
	store.Register[LogoutUser](r)
	store.Register[LogoutUserSuccess](r)
	store.Register[CreateUser](r)
	store.Register[CreateUserApprovalRequired](r)
	store.Register[CreateUserFail](r)
	store.Register[UpdateUser](r)
	store.Register[UpdateUserSuccess](r)
	store.Register[UpdateUserFail](r)
	store.Register[UpdateUserPassword](r)
	store.Register[UpdateUserPasswordSuccess](r)
	store.Register[UpdateUserPasswordFail](r)
	store.Register[UpdateCustomer](r)
	store.Register[UpdateCustomerSuccess](r)
	store.Register[UpdateCustomerFail](r)
	store.Register[UserErrorReset](r)
	store.Register[ResetPasswordReminder](r)
	store.Register[RequestPasswordReminder](r)
	store.Register[RequestPasswordReminderSuccess](r)
	store.Register[RequestPasswordReminderFail](r)
	store.Register[UpdateUserPasswordByPasswordReminder](r)
	store.Register[UpdateUserPasswordByPasswordReminderSuccess](r)
	store.Register[UpdateUserPasswordByPasswordReminderFail](r)
	store.Register[LoadUserPaymentMethods](r)
	store.Register[LoadUserPaymentMethodsSuccess](r)
	store.Register[LoadUserPaymentMethodsFail](r)
	store.Register[DeleteUserPaymentInstrument](r)
	store.Register[DeleteUserPaymentInstrumentSuccess](r)
	store.Register[DeleteUserPaymentInstrumentFail](r)
	store.Register[UpdateUserPreferredPayment](r)
	store.Register[LoadRolesAndPermissionsSuccess](r)
	store.Register[LoadOrders](r)
	store.Register[LoadOrdersSuccess](r)
	store.Register[LoadOrdersFail](r)
	store.Register[SelectOrder](r)
	store.Register[LoadAddresses](r)
	store.Register[LoadAddressesSuccess](r)
	store.Register[LoadAddressesFail](r)
	store.Register[CreateCustomerAddress](r)
	store.Register[CreateCustomerAddressSuccess](r)
	store.Register[CreateCustomerAddressFail](r)
	store.Register[UpdateCustomerAddress](r)
	store.Register[UpdateCustomerAddressSuccess](r)
	store.Register[UpdateCustomerAddressFail](r)
	store.Register[DeleteCustomerAddress](r)
	store.Register[DeleteCustomerAddressSuccess](r)
	store.Register[DeleteCustomerAddressFail](r)
	store.Register[ConfirmGDPRDataRequest](r)
	store.Register[ConfirmGDPRDataRequestSuccess](r)
	store.Register[ConfirmGDPRDataRequestFail](r)
	store.Register[SetRegistrationInfo](r)
	store.Register[CancelRegistration](r)
	store.Register[RegistrationSuccess](r)
	store.Register[RegistrationFail](r)
}
