package domain

// Order представляет заказ клиента в истории заказов.
type Order struct {
	ID                   string      `json:"id"`
	DocumentNo           string      `json:"documentNo"`
	CreationDate         int64       `json:"creationDate"`
	StatusCode           string      `json:"statusCode"`
	Status               string      `json:"status"`
	PurchaseCurrency     string      `json:"purchaseCurrency"`
	InvoiceToAddress     *Address    `json:"invoiceToAddress,omitempty"`
	CommonShipToAddress  *Address    `json:"commonShipToAddress,omitempty"`
	CommonShippingMethod string      `json:"commonShippingMethod,omitempty"`
	LineItems            []LineItem  `json:"lineItems"`
	Totals               OrderTotals `json:"totals"`
}

type OrderTotals struct {
	ItemTotal     Price  `json:"itemTotal"`
	ShippingTotal Price  `json:"shippingTotal"`
	TaxTotal      *Price `json:"taxTotal,omitempty"`
	Total         Price  `json:"total"`
}

// DefaultOrderListLimit используется, когда запрос не задан.
const DefaultOrderListLimit = 30

// OrderListQuery задаёт выборку истории заказов.
type OrderListQuery struct {
	Limit   int      `json:"limit"`
	Include []string `json:"include,omitempty"`
}
