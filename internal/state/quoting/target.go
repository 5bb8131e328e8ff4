package quoting

import "github.com/example/storefront-state/internal/store"

// Target указывает бэкенду, к какой котировке или запросу котировки относится
// запрос, у которого в самом действии идентификатора нет.
type Target struct {
	QuoteID        string `json:"quoteId,omitempty"`
	QuoteRequestID string `json:"quoteRequestId,omitempty"`
}

// TargetOf берёт цель из состояния после применения действия: выбранную
// котировку, выбранный запрос или, для добавления товаров, активный запрос.
// Пустой QuoteRequestID у добавления значит, что бэкенд создаст новый запрос.
func TargetOf(s *State, a store.Action) (Target, bool) {
	switch a.(type) {
	case RejectQuote, CreateQuoteRequestFromQuote:
		return Target{QuoteID: s.Quotes.Selected}, true
	case SubmitQuoteRequest, UpdateQuoteRequest, CreateQuoteRequestFromQuoteRequest,
		UpdateQuoteRequestItems, DeleteItemFromQuoteRequest:
		return Target{QuoteRequestID: s.Requests.Selected}, true
	case AddBasketToQuoteRequest, AddProductToQuoteRequest:
		var t Target
		if active := GetActiveQuoteRequest(s); active != nil {
			t.QuoteRequestID = active.ID
		}
		return t, true
	}
	return Target{}, false
}
