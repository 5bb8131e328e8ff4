package facade

import (
	"context"
	"time"

	"github.com/example/storefront-state/internal/broadcast"
	"github.com/example/storefront-state/internal/domain"
	"github.com/example/storefront-state/internal/state/account"
	"github.com/example/storefront-state/internal/store"
)

// PaymentDebounce задаёт паузу между удалением старого платёжного инструмента и
// назначением нового; без неё бэкенд отвечает конфликтом.
const PaymentDebounce = 600 * time.Millisecond

const (
	msgUpdateEmail    = "account.profile.update_email.message"
	msgUpdateProfile  = "account.profile.update_profile.message"
	msgPaymentCreated = "account.payment.payment_created.message"
	msgNoPreferred    = "account.payment.no_preferred.message"
)

// LogoutOptions управляет выходом пользователя.
type LogoutOptions struct {
	// RevokeAPIToken отзывает токен на сервере перед завершением сессии.
	RevokeAPIToken bool
}

// AccountFacade объединяет операции аккаунта: пользователь, клиент, пароль,
// заказы, оплата, адреса, запросы данных и SSO-регистрация.
type AccountFacade struct {
	store     *Store
	userError *broadcast.Relay[*domain.HttpError]

	user        store.Stream[*domain.User]
	userEmail   store.Stream[string]
	userLoading store.Stream[bool]
	isLoggedIn  store.Stream[bool]
	roles       store.Stream[[]domain.Role]

	customer           store.Stream[*domain.Customer]
	isBusinessCustomer store.Stream[bool]
	approvalEmail      store.Stream[string]
	priceDisplayType   store.Stream[string]

	passwordReminderSuccess store.Stream[*bool]
	passwordReminderError   store.Stream[*domain.HttpError]

	orders        store.Stream[[]domain.Order]
	selectedOrder store.Stream[*domain.Order]
	ordersLoading store.Stream[bool]
	ordersError   store.Stream[*domain.HttpError]

	paymentMethods store.Stream[[]domain.PaymentMethod]

	addresses        store.Stream[[]domain.Address]
	addressesLoading store.Stream[bool]
	addressesError   store.Stream[*domain.HttpError]

	dataRequestLoading store.Stream[bool]
	dataRequestError   store.Stream[*domain.HttpError]
	firstDataRequest   store.Stream[bool]

	ssoError      store.Stream[*domain.HttpError]
	ssoCancelled  store.Stream[bool]
	ssoRegistered store.Stream[bool]
}

func NewAccountFacade(st *Store) *AccountFacade {
	f := &AccountFacade{
		store:     st,
		userError: broadcast.NewRelay[*domain.HttpError](),

		user:        selectAccount(st, account.GetLoggedInUser),
		userLoading: selectAccount(st, account.GetUserLoading),
		isLoggedIn:  selectAccount(st, account.GetUserAuthorized),
		roles:       selectAccount(st, account.GetUserRoles),

		customer:           selectAccount(st, account.GetLoggedInCustomer),
		isBusinessCustomer: selectAccount(st, account.IsBusinessCustomer),
		approvalEmail:      selectAccount(st, account.GetCustomerApprovalEmail),
		priceDisplayType:   selectAccount(st, account.GetPriceDisplayType),

		passwordReminderSuccess: selectAccount(st, account.GetPasswordReminderSuccess),
		passwordReminderError:   selectAccount(st, account.GetPasswordReminderError),

		orders:        selectAccount(st, account.GetOrders),
		selectedOrder: selectAccount(st, account.GetSelectedOrder),
		ordersLoading: selectAccount(st, account.GetOrdersLoading),
		ordersError:   selectAccount(st, account.GetOrdersError),

		paymentMethods: selectAccount(st, account.GetUserPaymentMethods),

		addresses:        selectAccount(st, account.GetAllAddresses),
		addressesLoading: selectAccount(st, account.GetAddressesLoading),
		addressesError:   selectAccount(st, account.GetAddressesError),

		dataRequestLoading: selectAccount(st, account.GetDataRequestLoading),
		dataRequestError:   selectAccount(st, account.GetDataRequestError),
		firstDataRequest:   selectAccount(st, account.FirstGDPRDataRequest),

		ssoError:      selectAccount(st, account.GetSsoRegistrationError),
		ssoCancelled:  selectAccount(st, account.GetSsoRegistrationCancelled),
		ssoRegistered: selectAccount(st, account.GetSsoRegistrationRegistered),
	}
	f.userEmail = store.Map(f.user, func(u *domain.User) string {
		if u == nil {
			return ""
		}
		return u.Email
	})

	// Подписка оформляется до возврата из конструктора, чтобы не пропустить
	// ошибки действий, отправленных сразу после создания фасада. SelectEach
	// не сливает состояния, поэтому каждая ошибка доходит до relay.
	errs := eachAccount(st, account.GetUserError).Subscribe(context.Background())
	go func() {
		defer f.userError.Close()
		for err := range errs {
			if err != nil {
				f.userError.Publish(err)
			}
		}
	}()
	return f
}

// USER

func (f *AccountFacade) User() store.Stream[*domain.User] { return f.user }
func (f *AccountFacade) UserEmail() store.Stream[string]  { return f.userEmail }
func (f *AccountFacade) UserLoading() store.Stream[bool]  { return f.userLoading }
func (f *AccountFacade) IsLoggedIn() store.Stream[bool]   { return f.isLoggedIn }
func (f *AccountFacade) Roles() store.Stream[[]domain.Role] {
	return f.roles
}

// UserError отдаёт ошибки пользовательских операций. Каждый подписчик получает
// только ошибки, возникшие после подписки, и каждую ровно один раз.
func (f *AccountFacade) UserError() store.Stream[*domain.HttpError] {
	return store.NewStream(f.userError.Subscribe)
}

func (f *AccountFacade) LoginUser(credentials domain.Credentials) {
	f.store.Dispatch(account.LoginUser{Credentials: credentials})
}

func (f *AccountFacade) LoginUserWithToken(token string) {
	f.store.Dispatch(account.LoginUserWithToken{Token: token})
}

// LogoutUser завершает сессию. Без опций токен отзывается на сервере.
func (f *AccountFacade) LogoutUser(opts ...LogoutOptions) {
	o := LogoutOptions{RevokeAPIToken: true}
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.RevokeAPIToken {
		f.store.Dispatch(account.LogoutUser{})
		return
	}
	f.store.Dispatch(account.LogoutUserSuccess{})
}

func (f *AccountFacade) CreateUser(body domain.CustomerRegistration) {
	f.store.Dispatch(account.CreateUser{CustomerRegistration: body})
}

func (f *AccountFacade) UpdateUser(user domain.User, successMessage *domain.MessagesPayload) {
	f.store.Dispatch(account.UpdateUser{User: user, SuccessMessage: successMessage})
}

func (f *AccountFacade) UpdateUserEmail(user domain.User, credentials domain.Credentials) {
	f.store.Dispatch(account.UpdateUser{
		User:        user,
		Credentials: &credentials,
		SuccessMessage: &domain.MessagesPayload{
			Message:       msgUpdateEmail,
			MessageParams: map[string]string{"0": user.Email},
		},
	})
}

func (f *AccountFacade) UpdateUserPassword(data domain.PasswordChange) {
	f.store.Dispatch(account.UpdateUserPassword{PasswordChange: data})
}

func (f *AccountFacade) UpdateUserProfile(user domain.User) {
	f.store.Dispatch(account.UpdateUser{User: user, SuccessMessage: &domain.MessagesPayload{Message: msgUpdateProfile}})
}

// CUSTOMER

func (f *AccountFacade) Customer() store.Stream[*domain.Customer] { return f.customer }
func (f *AccountFacade) IsBusinessCustomer() store.Stream[bool]   { return f.isBusinessCustomer }
func (f *AccountFacade) CustomerApprovalEmail() store.Stream[string] {
	return f.approvalEmail
}

// UserPriceDisplayType отдаёт "net" для бизнес-клиентов и "gross" для остальных.
func (f *AccountFacade) UserPriceDisplayType() store.Stream[string] { return f.priceDisplayType }

// UpdateCustomerProfile обновляет данные клиента; без message используется стандартное сообщение профиля.
func (f *AccountFacade) UpdateCustomerProfile(customer domain.Customer, message *domain.MessagesPayload) {
	if message == nil {
		message = &domain.MessagesPayload{Message: msgUpdateProfile}
	}
	f.store.Dispatch(account.UpdateCustomer{Customer: customer, SuccessMessage: message})
}

// PASSWORD

func (f *AccountFacade) PasswordReminderSuccess() store.Stream[*bool] {
	return f.passwordReminderSuccess
}

func (f *AccountFacade) PasswordReminderError() store.Stream[*domain.HttpError] {
	return f.passwordReminderError
}

func (f *AccountFacade) ResetPasswordReminder() {
	f.store.Dispatch(account.ResetPasswordReminder{})
}

func (f *AccountFacade) RequestPasswordReminder(data domain.PasswordReminder) {
	f.store.Dispatch(account.RequestPasswordReminder{Data: data})
}

func (f *AccountFacade) RequestPasswordReminderUpdate(data domain.PasswordReminderUpdate) {
	f.store.Dispatch(account.UpdateUserPasswordByPasswordReminder{PasswordReminderUpdate: data})
}

// ORDERS

// Orders запускает загрузку истории заказов и возвращает поток заказов.
// При query == nil загружаются последние DefaultOrderListLimit заказов.
func (f *AccountFacade) Orders(query *domain.OrderListQuery) store.Stream[[]domain.Order] {
	q := domain.OrderListQuery{Limit: domain.DefaultOrderListLimit}
	if query != nil {
		q = *query
	}
	f.store.Dispatch(account.LoadOrders{Query: q})
	return f.orders
}

func (f *AccountFacade) SelectedOrder() store.Stream[*domain.Order]   { return f.selectedOrder }
func (f *AccountFacade) OrdersLoading() store.Stream[bool]            { return f.ordersLoading }
func (f *AccountFacade) OrdersError() store.Stream[*domain.HttpError] { return f.ordersError }

// PAYMENT

// PaymentMethods запускает загрузку способов оплаты пользователя.
func (f *AccountFacade) PaymentMethods() store.Stream[[]domain.PaymentMethod] {
	f.store.Dispatch(account.LoadUserPaymentMethods{})
	return f.paymentMethods
}

func (f *AccountFacade) DeletePaymentInstrument(id string, successMessage *domain.MessagesPayload) {
	f.store.Dispatch(account.DeleteUserPaymentInstrument{ID: id, SuccessMessage: successMessage})
}

// UpdateUserPreferredPaymentMethod назначает предпочтительный способ оплаты.
// Инструмент без параметров сначала удаляется, а обновление отправляется
// через PaymentDebounce. Метод не ждёт завершения последовательности.
func (f *AccountFacade) UpdateUserPreferredPaymentMethod(user domain.User, paymentMethodID string, current *domain.PaymentInstrument) {
	f.afterStaleInstrumentRemoved(current, account.UpdateUserPreferredPayment{
		User:            user,
		PaymentMethodID: paymentMethodID,
		SuccessMessage:  &domain.MessagesPayload{Message: msgPaymentCreated},
	})
}

// UpdateUserPreferredPaymentInstrument назначает предпочтительный платёжный инструмент;
// пустой instrumentID снимает предпочтение.
func (f *AccountFacade) UpdateUserPreferredPaymentInstrument(user domain.User, instrumentID string, current *domain.PaymentInstrument) {
	msg := msgPaymentCreated
	if instrumentID == "" {
		msg = msgNoPreferred
	}
	user.PreferredPaymentInstrumentID = instrumentID
	f.afterStaleInstrumentRemoved(current, account.UpdateUser{
		User:           user,
		SuccessMessage: &domain.MessagesPayload{Message: msg},
	})
}

func (f *AccountFacade) afterStaleInstrumentRemoved(current *domain.PaymentInstrument, update store.Action) {
	if current == nil || len(current.Parameters) > 0 {
		f.store.Dispatch(update)
		return
	}
	f.DeletePaymentInstrument(current.ID, nil)
	time.AfterFunc(PaymentDebounce, func() { f.store.Dispatch(update) })
}

// ADDRESSES

// Addresses ждёт первого вошедшего пользователя, один раз запускает загрузку
// адресов и затем отдаёт их поток. Загрузка происходит при подписке.
func (f *AccountFacade) Addresses() store.Stream[[]domain.Address] {
	return store.NewStream(func(ctx context.Context) <-chan []domain.Address {
		out := make(chan []domain.Address)
		go func() {
			defer close(out)
			if !f.waitForUser(ctx) {
				return
			}
			f.store.Dispatch(account.LoadAddresses{})
			for list := range f.addresses.Subscribe(ctx) {
				select {
				case out <- list:
				case <-ctx.Done():
					return
				}
			}
		}()
		return out
	})
}

func (f *AccountFacade) waitForUser(ctx context.Context) bool {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	for u := range f.user.Subscribe(ctx) {
		if u != nil {
			return true
		}
	}
	return false
}

func (f *AccountFacade) AddressesLoading() store.Stream[bool] { return f.addressesLoading }
func (f *AccountFacade) AddressesError() store.Stream[*domain.HttpError] {
	return f.addressesError
}

func (f *AccountFacade) CreateCustomerAddress(address domain.Address) {
	f.store.Dispatch(account.CreateCustomerAddress{Address: address})
}

func (f *AccountFacade) DeleteCustomerAddress(addressID string) {
	f.store.Dispatch(account.DeleteCustomerAddress{AddressID: addressID})
}

func (f *AccountFacade) UpdateCustomerAddress(address domain.Address) {
	f.store.Dispatch(account.UpdateCustomerAddress{Address: address})
}

// DATA REQUESTS

func (f *AccountFacade) DataRequestLoading() store.Stream[bool] { return f.dataRequestLoading }
func (f *AccountFacade) DataRequestError() store.Stream[*domain.HttpError] {
	return f.dataRequestError
}

// IsFirstGDPRDataRequest сообщает, подтверждён ли запрос данных впервые.
func (f *AccountFacade) IsFirstGDPRDataRequest() store.Stream[bool] { return f.firstDataRequest }

func (f *AccountFacade) ConfirmGDPRDataRequest(requestID, hash string) {
	f.store.Dispatch(account.ConfirmGDPRDataRequest{RequestID: requestID, Hash: hash})
}

// SSO

func (f *AccountFacade) SsoRegistrationError() store.Stream[*domain.HttpError] { return f.ssoError }
func (f *AccountFacade) SsoRegistrationCancelled() store.Stream[bool]          { return f.ssoCancelled }
func (f *AccountFacade) SsoRegistrationRegistered() store.Stream[bool]         { return f.ssoRegistered }

func (f *AccountFacade) CancelRegistration() {
	f.store.Dispatch(account.CancelRegistration{})
}

func (f *AccountFacade) SetRegistrationInfo(info domain.SsoRegistration) {
	f.store.Dispatch(account.SetRegistrationInfo{SsoRegistration: info})
}
