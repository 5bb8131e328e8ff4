// Package fixtures заводит тестовые данные во внешнем бэкенде магазина.
package fixtures

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/stretchr/testify/require"
)

// CustomersPath указывает на REST-ресурс клиентов бизнес-сайта.
const CustomersPath = "/INTERSHOP/rest/WFS/inSPIRED-inTRONICS_Business-Site/-/customers"

const (
	securityQuestion       = "what was the name of your first pet?"
	securityQuestionAnswer = "Snoopy"
)

// Registration хранит данные формы регистрации, из которых строится клиент.
type Registration struct {
	Title             string `json:"title" yaml:"title"`
	FirstName         string `json:"firstName" yaml:"firstName"`
	LastName          string `json:"lastName" yaml:"lastName"`
	Login             string `json:"login" yaml:"login"`
	Password          string `json:"password" yaml:"password"`
	AddressLine1      string `json:"addressLine1" yaml:"addressLine1"`
	AddressLine2      string `json:"addressLine2" yaml:"addressLine2"`
	AddressLine3      string `json:"addressLine3" yaml:"addressLine3"`
	PostalCode        string `json:"postalCode" yaml:"postalCode"`
	City              string `json:"city" yaml:"city"`
	PhoneHome         string `json:"phoneHome" yaml:"phoneHome"`
	CountryCodeSwitch string `json:"countryCodeSwitch" yaml:"countryCodeSwitch"`
}

type B2BCustomer struct {
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	CustomerNo  string         `json:"customerNo"`
	CompanyName string         `json:"companyName"`
	Description string         `json:"description"`
	Credentials B2BCredentials `json:"credentials"`
	Address     B2BAddress     `json:"address"`
	User        B2BUser        `json:"user"`
}

type B2BCredentials struct {
	Name                   string `json:"name"`
	Login                  string `json:"login"`
	Password               string `json:"password"`
	SecurityQuestion       string `json:"securityQuestion"`
	SecurityQuestionAnswer string `json:"securityQuestionAnswer"`
}

type B2BAddress struct {
	Title        string `json:"title"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	AddressLine3 string `json:"addressLine3"`
	PostalCode   string `json:"postalCode"`
	City         string `json:"city"`
	PhoneHome    string `json:"phoneHome"`
	CountryCode  string `json:"countryCode"`
}

type B2BUser struct {
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	CustomerNo        string     `json:"customerNo"`
	Email             string     `json:"email"`
	Login             string     `json:"login"`
	PhoneHome         string     `json:"phoneHome"`
	Title             string     `json:"title"`
	BusinessPartnerNo string     `json:"businessPartnerNo"`
	PreferredLanguage string     `json:"preferredLanguage"`
	DefaultAddress    B2BAddress `json:"defaultAddress"`
}

// StatusError возвращается, если бэкенд ответил кодом, отличным от 201 Created.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("create customer: unexpected status %d: %s", e.Status, e.Body)
}

// BuildB2BCustomer собирает тело запроса на создание бизнес-клиента.
// Номера клиента и партнёра берутся из времени now в миллисекундах.
func BuildB2BCustomer(reg Registration, now time.Time) B2BCustomer {
	no := strconv.FormatInt(now.UnixMilli(), 10)
	address := B2BAddress{
		Title:        reg.Title,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		AddressLine1: reg.AddressLine1,
		AddressLine2: reg.AddressLine2,
		AddressLine3: reg.AddressLine3,
		PostalCode:   reg.PostalCode,
		City:         reg.City,
		PhoneHome:    reg.PhoneHome,
		CountryCode:  reg.CountryCodeSwitch,
	}
	return B2BCustomer{
		Name:        "Test Company",
		Type:        "SMBCustomer",
		CustomerNo:  no,
		CompanyName: "AgroNet",
		Description: "AgroNet description",
		Credentials: B2BCredentials{
			Name:                   reg.LastName,
			Login:                  reg.Login,
			Password:               reg.Password,
			SecurityQuestion:       securityQuestion,
			SecurityQuestionAnswer: securityQuestionAnswer,
		},
		Address: address,
		User: B2BUser{
			FirstName:         reg.FirstName,
			LastName:          reg.LastName,
			CustomerNo:        no,
			Email:             reg.Login,
			Login:             reg.Login,
			PhoneHome:         reg.PhoneHome,
			Title:             reg.Title,
			BusinessPartnerNo: no,
			PreferredLanguage: "de_DE",
			DefaultAddress:    address,
		},
	}
}

// CreateB2BUserViaREST создаёт бизнес-клиента через REST API. Любой ответ, кроме
// 201, возвращается как *StatusError. Повторов нет.
func CreateB2BUserViaREST(ctx context.Context, client *http.Client, baseURL string, reg Registration) (B2BCustomer, error) {
	if client == nil {
		client = http.DefaultClient
	}
	customer := BuildB2BCustomer(reg, time.Now())
	body, err := json.Marshal(customer)
	if err != nil {
		return customer, fmt.Errorf("marshal customer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(baseURL, "/")+CustomersPath, bytes.NewReader(body))
	if err != nil {
		return customer, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return customer, fmt.Errorf("post customer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return customer, &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
	return customer, nil
}

// RequireB2BUser создаёт клиента или сразу проваливает тест.
func RequireB2BUser(t require.TestingT, ctx context.Context, client *http.Client, baseURL string, reg Registration) B2BCustomer {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	customer, err := CreateB2BUserViaREST(ctx, client, baseURL, reg)
	require.NoError(t, err, "create b2b user %s", reg.Login)
	return customer
}
