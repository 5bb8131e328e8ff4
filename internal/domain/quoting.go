package domain

const (
	QuoteType        = "Quote"
	QuoteRequestType = "QuoteRequest"
)

// QuotingEntity задаёт общий вид котировки и запроса котировки в объединённых списках.
type QuotingEntity interface {
	EntityID() string
	EntityType() string
}

// QuoteLineItem описывает позицию котировки или запроса котировки.
type QuoteLineItem struct {
	ID                    string   `json:"id"`
	ProductSKU            string   `json:"productSKU"`
	Quantity              Quantity `json:"quantity"`
	SingleBasePrice       *Price   `json:"singleBasePrice,omitempty"`
	OriginSingleBasePrice *Price   `json:"originSingleBasePrice,omitempty"`
	Total                 *Price   `json:"totals,omitempty"`
	OriginTotal           *Price   `json:"originTotal,omitempty"`
}

// Quote описывает предложение цены от продавца.
type Quote struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	DisplayName   string          `json:"displayName,omitempty"`
	Description   string          `json:"description,omitempty"`
	Number        string          `json:"number"`
	State         string          `json:"state,omitempty"`
	CreationDate  int64           `json:"creationDate,omitempty"`
	ValidFromDate int64           `json:"validFromDate,omitempty"`
	ValidToDate   int64           `json:"validToDate,omitempty"`
	SellerComment string          `json:"sellerComment,omitempty"`
	Items         []QuoteLineItem `json:"items"`
	Total         *Price          `json:"total,omitempty"`
}

func (q Quote) EntityID() string   { return q.ID }
func (q Quote) EntityType() string { return QuoteType }

// QuoteRequest описывает запрос клиента на получение котировки.
type QuoteRequest struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	DisplayName   string          `json:"displayName,omitempty"`
	Description   string          `json:"description,omitempty"`
	Number        string          `json:"number"`
	Editable      bool            `json:"editable"`
	Submitted     bool            `json:"submitted"`
	SubmittedDate int64           `json:"submittedDate,omitempty"`
	CreationDate  int64           `json:"creationDate,omitempty"`
	Items         []QuoteLineItem `json:"items"`
	Total         *Price          `json:"total,omitempty"`
}

func (r QuoteRequest) EntityID() string   { return r.ID }
func (r QuoteRequest) EntityType() string { return QuoteRequestType }

// QuoteRequestUpdate меняет только заданные поля запроса.
type QuoteRequestUpdate struct {
	DisplayName *string `json:"displayName,omitempty"`
	Description *string `json:"description,omitempty"`
}
