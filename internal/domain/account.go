package domain

type Address struct {
	ID           string `json:"id,omitempty"`
	Title        string `json:"title,omitempty"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	CompanyName1 string `json:"companyName1,omitempty"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	AddressLine3 string `json:"addressLine3,omitempty"`
	PostalCode   string `json:"postalCode"`
	City         string `json:"city"`
	PhoneHome    string `json:"phoneHome,omitempty"`
	CountryCode  string `json:"countryCode"`
	Email        string `json:"email,omitempty"`
}

type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password,omitempty"`
}

type Customer struct {
	CustomerNo   string `json:"customerNo"`
	CustomerType string `json:"customerType"`
	CompanyName  string `json:"companyName,omitempty"`
	Description  string `json:"description,omitempty"`
	TaxationID   string `json:"taxationID,omitempty"`
	Budget       *Price `json:"budget,omitempty"`
}

// IsBusiness сообщает, является ли клиент юрлицом.
func (c Customer) IsBusiness() bool { return c.CustomerType == "SMBCustomer" }

type User struct {
	Title                        string `json:"title,omitempty"`
	FirstName                    string `json:"firstName"`
	LastName                     string `json:"lastName"`
	Email                        string `json:"email"`
	Login                        string `json:"login,omitempty"`
	PhoneHome                    string `json:"phoneHome,omitempty"`
	Birthday                     string `json:"birthday,omitempty"`
	BusinessPartnerNo            string `json:"businessPartnerNo,omitempty"`
	PreferredLanguage            string `json:"preferredLanguage,omitempty"`
	PreferredInvoiceToAddressURN string `json:"preferredInvoiceToAddressUrn,omitempty"`
	PreferredShipToAddressURN    string `json:"preferredShipToAddressUrn,omitempty"`
	PreferredPaymentInstrumentID string `json:"preferredPaymentInstrumentId,omitempty"`
}

// CustomerRegistration задаёт тело запроса на регистрацию клиента.
type CustomerRegistration struct {
	Customer     Customer    `json:"customer"`
	User         User        `json:"user"`
	Credentials  Credentials `json:"credentials"`
	Address      Address     `json:"address"`
	CaptchaToken string      `json:"captcha,omitempty"`
}

type SsoRegistration struct {
	CompanyInfo struct {
		CompanyName1 string `json:"companyName1"`
		TaxationID   string `json:"taxationID,omitempty"`
	} `json:"companyInfo"`
	Address Address `json:"address"`
	UserID  string  `json:"userId"`
}

type PaymentParameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type PaymentInstrument struct {
	ID                string             `json:"id"`
	PaymentMethod     string             `json:"paymentMethod"`
	URN               string             `json:"urn,omitempty"`
	AccountIdentifier string             `json:"accountIdentifier,omitempty"`
	Parameters        []PaymentParameter `json:"parameters,omitempty"`
}

type PaymentMethod struct {
	ID                 string              `json:"id"`
	ServiceID          string              `json:"serviceId"`
	DisplayName        string              `json:"displayName"`
	IsRestricted       bool                `json:"isRestricted,omitempty"`
	PaymentInstruments []PaymentInstrument `json:"paymentInstruments,omitempty"`
}

type Role struct {
	RoleID      string   `json:"roleId"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissionIDs,omitempty"`
}

type PasswordReminder struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Answer    string `json:"answer,omitempty"`
}

type PasswordReminderUpdate struct {
	Password string `json:"password"`
	UserID   string `json:"userID"`
	Secure   string `json:"secureCode"`
}

// PasswordChange описывает смену пароля текущего пользователя.
type PasswordChange struct {
	Password        string `json:"password"`
	CurrentPassword string `json:"currentPassword"`
}

// MessagesPayload несёт ключ сообщения для UI и его параметры.
type MessagesPayload struct {
	Message       string            `json:"message"`
	MessageParams map[string]string `json:"messageParams,omitempty"`
}
