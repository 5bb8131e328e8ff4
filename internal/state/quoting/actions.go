package quoting

import (
	"github.com/example/storefront-state/internal/domain"
	"github.com/example/storefront-state/internal/store"
)

// QUOTE

type LoadQuotes struct{}

type LoadQuotesSuccess struct {
	Quotes []domain.Quote `json:"quotes"`
}

type LoadQuotesFail struct {
	Error *domain.HttpError `json:"error"`
}

type SelectQuote struct {
	ID string `json:"id"`
}

type RejectQuote struct{}

type RejectQuoteSuccess struct {
	ID string `json:"id"`
}

type DeleteQuote struct {
	ID string `json:"id"`
}

type DeleteQuoteSuccess struct {
	ID string `json:"id"`
}

type CreateQuoteRequestFromQuote struct{}

type CreateQuoteRequestFromQuoteSuccess struct {
	QuoteRequest domain.QuoteRequest `json:"quoteRequest"`
}

// QuoteFail сообщает об ошибке любой операции над котировкой, кроме загрузки.
type QuoteFail struct {
	Error *domain.HttpError `json:"error"`
}

// AddQuoteToBasket относится к корзине, но инициируется из котировок.
type AddQuoteToBasket struct {
	QuoteID string `json:"quoteId"`
}

// QUOTE REQUEST

type LoadQuoteRequests struct{}

type LoadQuoteRequestsSuccess struct {
	QuoteRequests []domain.QuoteRequest `json:"quoteRequests"`
}

type LoadQuoteRequestsFail struct {
	Error *domain.HttpError `json:"error"`
}

type SelectQuoteRequest struct {
	ID string `json:"id"`
}

type UpdateQuoteRequest struct {
	domain.QuoteRequestUpdate
}

type DeleteQuoteRequest struct {
	ID string `json:"id"`
}

type DeleteQuoteRequestSuccess struct {
	ID string `json:"id"`
}

type SubmitQuoteRequest struct{}

type SubmitQuoteRequestSuccess struct {
	ID            string `json:"id"`
	SubmittedDate int64  `json:"submittedDate"`
}

type CreateQuoteRequestFromQuoteRequest struct{}

type UpdateQuoteRequestItems struct {
	LineItemUpdates []domain.LineItemUpdate `json:"lineItemUpdates"`
}

type DeleteItemFromQuoteRequest struct {
	ItemID string `json:"itemId"`
}

type AddBasketToQuoteRequest struct{}

type AddProductToQuoteRequest struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// UpdateQuoteRequestSuccess приходит с актуальной версией запроса после любого его изменения на сервере.
type UpdateQuoteRequestSuccess struct {
	QuoteRequest domain.QuoteRequest `json:"quoteRequest"`
}

// QuoteRequestFail сообщает об ошибке любой операции над запросом, кроме загрузки.
type QuoteRequestFail struct {
	Error *domain.HttpError `json:"error"`
}

func (LoadQuotes) Kind() store.Kind                         { return "[Quote] Load Quotes" }
func (LoadQuotesSuccess) Kind() store.Kind                  { return "[Quote API] Load Quotes Success" }
func (LoadQuotesFail) Kind() store.Kind                     { return "[Quote API] Load Quotes Fail" }
func (SelectQuote) Kind() store.Kind                        { return "[Quote] Select Quote" }
func (RejectQuote) Kind() store.Kind                        { return "[Quote] Reject Quote" }
func (RejectQuoteSuccess) Kind() store.Kind                 { return "[Quote API] Reject Quote Success" }
func (DeleteQuote) Kind() store.Kind                        { return "[Quote] Delete Quote" }
func (DeleteQuoteSuccess) Kind() store.Kind                 { return "[Quote API] Delete Quote Success" }
func (CreateQuoteRequestFromQuote) Kind() store.Kind        { return "[Quote] Create Quote Request from Quote" }
func (CreateQuoteRequestFromQuoteSuccess) Kind() store.Kind { return "[Quote API] Create Quote Request from Quote Success" }
func (QuoteFail) Kind() store.Kind                          { return "[Quote API] Quote Operation Fail" }
func (AddQuoteToBasket) Kind() store.Kind                   { return "[Basket] Add Quote To Basket" }

func (LoadQuoteRequests) Kind() store.Kind         { return "[Quote Request] Load Quote Requests" }
func (LoadQuoteRequestsSuccess) Kind() store.Kind  { return "[Quote Request API] Load Quote Requests Success" }
func (LoadQuoteRequestsFail) Kind() store.Kind     { return "[Quote Request API] Load Quote Requests Fail" }
func (SelectQuoteRequest) Kind() store.Kind        { return "[Quote Request] Select Quote Request" }
func (UpdateQuoteRequest) Kind() store.Kind        { return "[Quote Request] Update Quote Request" }
func (DeleteQuoteRequest) Kind() store.Kind        { return "[Quote Request] Delete Quote Request" }
func (DeleteQuoteRequestSuccess) Kind() store.Kind { return "[Quote Request API] Delete Quote Request Success" }
func (SubmitQuoteRequest) Kind() store.Kind        { return "[Quote Request] Submit Quote Request" }
func (SubmitQuoteRequestSuccess) Kind() store.Kind { return "[Quote Request API] Submit Quote Request Success" }
func (CreateQuoteRequestFromQuoteRequest) Kind() store.Kind {
	return "[Quote Request] Create Quote Request from Quote Request"
}
func (UpdateQuoteRequestItems) Kind() store.Kind    { return "[Quote Request] Update Quote Request Items" }
func (DeleteItemFromQuoteRequest) Kind() store.Kind { return "[Quote Request] Delete Item from Quote Request" }
func (AddBasketToQuoteRequest) Kind() store.Kind    { return "[Quote Request] Add Basket To Quote Request" }
func (AddProductToQuoteRequest) Kind() store.Kind   { return "[Quote Request] Add Product To Quote Request" }
func (UpdateQuoteRequestSuccess) Kind() store.Kind  { return "[Quote Request API] Update Quote Request Success" }
func (QuoteRequestFail) Kind() store.Kind           { return "[Quote Request API] Quote Request Operation Fail" }

func (LoadQuotes) RemoteRequest()                         {}
func (RejectQuote) RemoteRequest()                        {}
func (DeleteQuote) RemoteRequest()                        {}
func (CreateQuoteRequestFromQuote) RemoteRequest()        {}
func (AddQuoteToBasket) RemoteRequest()                   {}
func (LoadQuoteRequests) RemoteRequest()                  {}
func (UpdateQuoteRequest) RemoteRequest()                 {}
func (DeleteQuoteRequest) RemoteRequest()                 {}
func (SubmitQuoteRequest) RemoteRequest()                 {}
func (CreateQuoteRequestFromQuoteRequest) RemoteRequest() {}
func (UpdateQuoteRequestItems) RemoteRequest()            {}
func (DeleteItemFromQuoteRequest) RemoteRequest()         {}
func (AddBasketToQuoteRequest) RemoteRequest()            {}
func (AddProductToQuoteRequest) RemoteRequest()           {}

// Register добавляет действия котировок в реестр декодирования.
func Register(r *store.Registry) {
	store.Register[LoadQuotes](r)
	store.Register[LoadQuotesSuccess](r)
	store.Register[LoadQuotesFail](r)
	store.Register[SelectQuote](r)
	store.Register[RejectQuote](r)
	store.Register[RejectQuoteSuccess](r)
	store.Register[DeleteQuote](r)
	store.Register[DeleteQuoteSuccess](r)
	store.Register[CreateQuoteRequestFromQuote](r)
	store.Register[CreateQuoteRequestFromQuoteSuccess](r)
	store.Register[QuoteFail](r)
	store.Register[AddQuoteToBasket](r)
	store.Register[LoadQuoteRequests](r)
	store.Register[LoadQuoteRequestsSuccess](r)
	store.Register[LoadQuoteRequestsFail](r)
	store.Register[SelectQuoteRequest](r)
	store.Register[UpdateQuoteRequest](r)
	store.Register[DeleteQuoteRequest](r)
	store.Register[DeleteQuoteRequestSuccess](r)
	store.Register[SubmitQuoteRequest](r)
	store.Register[SubmitQuoteRequestSuccess](r)
	store.Register[CreateQuoteRequestFromQuoteRequest](r)
	store.Register[UpdateQuoteRequestItems](r)
	store.Register[DeleteItemFromQuoteRequest](r)
	store.Register[AddBasketToQuoteRequest](r)
	store.Register[AddProductToQuoteRequest](r)
	store.Register[UpdateQuoteRequestSuccess](r)
	store.Register[QuoteRequestFail](r)
}
