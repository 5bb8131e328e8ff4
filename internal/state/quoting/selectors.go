package quoting

import (
	"github.com/example/storefront-state/internal/domain"
	"github.com/example/storefront-state/internal/store"
)

func getQuoteState(s *State) *QuoteState               { return s.Quotes }
func getQuoteRequestState(s *State) *QuoteRequestState { return s.Requests }

var (
	GetCurrentQuotes = store.CreateSelector(getQuoteState, func(q *QuoteState) []domain.Quote { return q.Quotes })
	GetQuoteLoading  = store.CreateSelector(getQuoteState, func(q *QuoteState) bool { return q.Loading })
	GetQuoteError    = store.CreateSelector(getQuoteState, func(q *QuoteState) *domain.HttpError { return q.Error })
	GetSelectedQuote = store.CreateSelector(getQuoteState, func(q *QuoteState) *domain.Quote {
		for i := range q.Quotes {
			if q.Quotes[i].ID == q.Selected {
				return &q.Quotes[i]
			}
		}
		return nil
	})
)

var (
	GetCurrentQuoteRequests = store.CreateSelector(getQuoteRequestState, func(r *QuoteRequestState) []domain.QuoteRequest {
		return r.QuoteRequests
	})
	GetQuoteRequestLoading = store.CreateSelector(getQuoteRequestState, func(r *QuoteRequestState) bool {
		return r.Loading
	})
	GetQuoteRequestError = store.CreateSelector(getQuoteRequestState, func(r *QuoteRequestState) *domain.HttpError {
		return r.Error
	})
	GetSelectedQuoteRequest = store.CreateSelector(getQuoteRequestState, func(r *QuoteRequestState) *domain.QuoteRequest {
		for i := range r.QuoteRequests {
			if r.QuoteRequests[i].ID == r.Selected {
				return &r.QuoteRequests[i]
			}
		}
		return nil
	})
	// GetActiveQuoteRequest возвращает редактируемый, ещё не отправленный запрос.
	GetActiveQuoteRequest = store.CreateSelector(GetCurrentQuoteRequests, func(list []domain.QuoteRequest) *domain.QuoteRequest {
		for i := range list {
			if list[i].Editable && !list[i].Submitted {
				return &list[i]
			}
		}
		return nil
	})
)

// GetQuotesAndQuoteRequests объединяет котировки и запросы: сначала все котировки,
// затем все запросы, порядок внутри каждого списка сохраняется.
var GetQuotesAndQuoteRequests = store.CreateSelector2(GetCurrentQuotes, GetCurrentQuoteRequests,
	func(quotes []domain.Quote, requests []domain.QuoteRequest) []domain.QuotingEntity {
		merged := make([]domain.QuotingEntity, 0, len(quotes)+len(requests))
		for _, q := range quotes {
			merged = append(merged, q)
		}
		for _, qr := range requests {
			merged = append(merged, qr)
		}
		return merged
	})
