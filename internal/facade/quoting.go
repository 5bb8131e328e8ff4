package facade

import (
	"github.com/example/storefront-state/internal/domain"
	"github.com/example/storefront-state/internal/state/quoting"
	"github.com/example/storefront-state/internal/store"
)

type QuotingFacade struct {
	store *Store

	quote        store.Stream[*domain.Quote]
	quoteLoading store.Stream[bool]
	quoteError   store.Stream[*domain.HttpError]
	quotes       store.Stream[[]domain.Quote]

	quoteRequest        store.Stream[*domain.QuoteRequest]
	quoteRequestLoading store.Stream[bool]
	quoteRequestError   store.Stream[*domain.HttpError]
	activeQuoteRequest  store.Stream[*domain.QuoteRequest]
	quoteRequests       store.Stream[[]domain.QuoteRequest]

	quotesAndQuoteRequests store.Stream[[]domain.QuotingEntity]
}

func NewQuotingFacade(st *Store) *QuotingFacade {
	return &QuotingFacade{
		store: st,

		quote:        selectQuoting(st, quoting.GetSelectedQuote),
		quoteLoading: selectQuoting(st, quoting.GetQuoteLoading),
		quoteError:   selectQuoting(st, quoting.GetQuoteError),
		quotes:       selectQuoting(st, quoting.GetCurrentQuotes),

		quoteRequest:        selectQuoting(st, quoting.GetSelectedQuoteRequest),
		quoteRequestLoading: selectQuoting(st, quoting.GetQuoteRequestLoading),
		quoteRequestError:   selectQuoting(st, quoting.GetQuoteRequestError),
		activeQuoteRequest:  selectQuoting(st, quoting.GetActiveQuoteRequest),
		quoteRequests:       selectQuoting(st, quoting.GetCurrentQuoteRequests),

		quotesAndQuoteRequests: selectQuoting(st, quoting.GetQuotesAndQuoteRequests),
	}
}

// QUOTE

func (f *QuotingFacade) Quote() store.Stream[*domain.Quote]          { return f.quote }
func (f *QuotingFacade) QuoteLoading() store.Stream[bool]            { return f.quoteLoading }
func (f *QuotingFacade) QuoteError() store.Stream[*domain.HttpError] { return f.quoteError }

// Quotes запускает загрузку котировок и возвращает их поток.
func (f *QuotingFacade) Quotes() store.Stream[[]domain.Quote] {
	f.loadQuotes()
	return f.quotes
}

func (f *QuotingFacade) loadQuotes() {
	f.store.Dispatch(quoting.LoadQuotes{})
}

func (f *QuotingFacade) SelectQuote(id string) {
	f.store.Dispatch(quoting.SelectQuote{ID: id})
}

// RejectQuote отклоняет выбранную котировку.
func (f *QuotingFacade) RejectQuote() {
	f.store.Dispatch(quoting.RejectQuote{})
}

func (f *QuotingFacade) DeleteQuote(id string) {
	f.store.Dispatch(quoting.DeleteQuote{ID: id})
}

func (f *QuotingFacade) AddQuoteToBasket(quoteID string) {
	f.store.Dispatch(quoting.AddQuoteToBasket{QuoteID: quoteID})
}

func (f *QuotingFacade) CreateQuoteRequestFromQuote() {
	f.store.Dispatch(quoting.CreateQuoteRequestFromQuote{})
}

// QUOTE REQUEST

func (f *QuotingFacade) QuoteRequest() store.Stream[*domain.QuoteRequest] { return f.quoteRequest }
func (f *QuotingFacade) QuoteRequestLoading() store.Stream[bool]          { return f.quoteRequestLoading }
func (f *QuotingFacade) QuoteRequestError() store.Stream[*domain.HttpError] {
	return f.quoteRequestError
}

// ActiveQuoteRequest отдаёт редактируемый запрос, в который попадают новые позиции.
func (f *QuotingFacade) ActiveQuoteRequest() store.Stream[*domain.QuoteRequest] {
	return f.activeQuoteRequest
}

// QuoteRequests запускает загрузку запросов котировок и возвращает их поток.
func (f *QuotingFacade) QuoteRequests() store.Stream[[]domain.QuoteRequest] {
	f.loadQuoteRequests()
	return f.quoteRequests
}

func (f *QuotingFacade) loadQuoteRequests() {
	f.store.Dispatch(quoting.LoadQuoteRequests{})
}

func (f *QuotingFacade) SelectQuoteRequest(id string) {
	f.store.Dispatch(quoting.SelectQuoteRequest{ID: id})
}

func (f *QuotingFacade) UpdateQuoteRequest(update domain.QuoteRequestUpdate) {
	f.store.Dispatch(quoting.UpdateQuoteRequest{QuoteRequestUpdate: update})
}

func (f *QuotingFacade) DeleteQuoteRequest(id string) {
	f.store.Dispatch(quoting.DeleteQuoteRequest{ID: id})
}

func (f *QuotingFacade) SubmitQuoteRequest() {
	f.store.Dispatch(quoting.SubmitQuoteRequest{})
}

// CopyQuoteRequest создаёт новый запрос из выбранного.
func (f *QuotingFacade) CopyQuoteRequest() {
	f.store.Dispatch(quoting.CreateQuoteRequestFromQuoteRequest{})
}

func (f *QuotingFacade) UpdateQuoteRequestItem(update domain.LineItemUpdate) {
	f.store.Dispatch(quoting.UpdateQuoteRequestItems{LineItemUpdates: []domain.LineItemUpdate{update}})
}

func (f *QuotingFacade) DeleteQuoteRequestItem(itemID string) {
	f.store.Dispatch(quoting.DeleteItemFromQuoteRequest{ItemID: itemID})
}

func (f *QuotingFacade) AddBasketToQuoteRequest() {
	f.store.Dispatch(quoting.AddBasketToQuoteRequest{})
}

func (f *QuotingFacade) AddProductToQuoteRequest(sku string, quantity int) {
	f.store.Dispatch(quoting.AddProductToQuoteRequest{SKU: sku, Quantity: quantity})
}

// QUOTE AND QUOTE REQUEST

// QuotesAndQuoteRequests загружает оба списка и отдаёт их объединение:
// сначала котировки, затем запросы.
func (f *QuotingFacade) QuotesAndQuoteRequests() store.Stream[[]domain.QuotingEntity] {
	f.loadQuotes()
	f.loadQuoteRequests()
	return f.quotesAndQuoteRequests
}

// DeleteQuoteOrRequest удаляет котировку или запрос в зависимости от типа элемента.
func (f *QuotingFacade) DeleteQuoteOrRequest(item domain.QuotingEntity) {
	switch item.EntityType() {
	case domain.QuoteRequestType:
		f.DeleteQuoteRequest(item.EntityID())
	case domain.QuoteType:
		f.DeleteQuote(item.EntityID())
	}
}
