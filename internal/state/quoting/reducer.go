package quoting

import (
	"github.com/example/storefront-state/internal/domain"
	"github.com/example/storefront-state/internal/store"
)

func Reduce(s *State, a store.Action) *State {
	n := State{
		Quotes:   reduceQuotes(s.Quotes, a),
		Requests: reduceQuoteRequests(s.Requests, a),
	}
	if n == *s {
		return s
	}
	return &n
}

func reduceQuotes(s *QuoteState, a store.Action) *QuoteState {
	n := *s
	switch a := a.(type) {
	case LoadQuotes, RejectQuote, DeleteQuote, CreateQuoteRequestFromQuote:
		n.Loading = true
	case LoadQuotesSuccess:
		n.Quotes, n.Loading, n.Error = a.Quotes, false, nil
	case LoadQuotesFail:
		n.Loading, n.Error = false, a.Error
	case QuoteFail:
		n.Loading, n.Error = false, a.Error
	case SelectQuote:
		if s.Selected == a.ID {
			return s
		}
		n.Selected = a.ID
	case RejectQuoteSuccess:
		n.Quotes = make([]domain.Quote, len(s.Quotes))
		for i, q := range s.Quotes {
			if q.ID == a.ID {
				q.State = "Rejected"
			}
			n.Quotes[i] = q
		}
		n.Loading, n.Error = false, nil
	case DeleteQuoteSuccess:
		n.Quotes = make([]domain.Quote, 0, len(s.Quotes))
		for _, q := range s.Quotes {
			if q.ID != a.ID {
				n.Quotes = append(n.Quotes, q)
			}
		}
		if s.Selected == a.ID {
			n.Selected = ""
		}
		n.Loading, n.Error = false, nil
	case CreateQuoteRequestFromQuoteSuccess:
		n.Loading, n.Error = false, nil
	default:
		return s
	}
	return &n
}

func reduceQuoteRequests(s *QuoteRequestState, a store.Action) *QuoteRequestState {
	n := *s
	switch a := a.(type) {
	case LoadQuoteRequests, UpdateQuoteRequest, DeleteQuoteRequest, SubmitQuoteRequest,
		CreateQuoteRequestFromQuoteRequest, UpdateQuoteRequestItems, DeleteItemFromQuoteRequest,
		AddBasketToQuoteRequest, AddProductToQuoteRequest:
		n.Loading = true
	case LoadQuoteRequestsSuccess:
		n.QuoteRequests, n.Loading, n.Error = a.QuoteRequests, false, nil
	case LoadQuoteRequestsFail:
		n.Loading, n.Error = false, a.Error
	case QuoteRequestFail:
		n.Loading, n.Error = false, a.Error
	case SelectQuoteRequest:
		if s.Selected == a.ID {
			return s
		}
		n.Selected = a.ID
	case DeleteQuoteRequestSuccess:
		n.QuoteRequests = make([]domain.QuoteRequest, 0, len(s.QuoteRequests))
		for _, qr := range s.QuoteRequests {
			if qr.ID != a.ID {
				n.QuoteRequests = append(n.QuoteRequests, qr)
			}
		}
		if s.Selected == a.ID {
			n.Selected = ""
		}
		n.Loading, n.Error = false, nil
	case SubmitQuoteRequestSuccess:
		n.QuoteRequests = make([]domain.QuoteRequest, len(s.QuoteRequests))
		for i, qr := range s.QuoteRequests {
			if qr.ID == a.ID {
				qr.Submitted, qr.Editable, qr.SubmittedDate = true, false, a.SubmittedDate
			}
			n.QuoteRequests[i] = qr
		}
		n.Loading, n.Error = false, nil
	case UpdateQuoteRequestSuccess:
		n.QuoteRequests = upsert(s.QuoteRequests, a.QuoteRequest)
		n.Loading, n.Error = false, nil
	case CreateQuoteRequestFromQuoteSuccess:
		n.QuoteRequests = upsert(s.QuoteRequests, a.QuoteRequest)
		n.Selected = a.QuoteRequest.ID
	default:
		return s
	}
	return &n
}

func upsert(list []domain.QuoteRequest, qr domain.QuoteRequest) []domain.QuoteRequest {
	out := make([]domain.QuoteRequest, 0, len(list)+1)
	replaced := false
	for _, existing := range list {
		if existing.ID == qr.ID {
			existing, replaced = qr, true
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append(out, qr)
	}
	return out
}
