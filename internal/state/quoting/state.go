package quoting

import "github.com/example/storefront-state/internal/domain"

type State struct {
	Quotes   *QuoteState        `json:"quotes"`
	Requests *QuoteRequestState `json:"quoteRequests"`
}

type QuoteState struct {
	Quotes   []domain.Quote    `json:"quotes"`
	Selected string            `json:"selected,omitempty"`
	Loading  bool              `json:"loading"`
	Error    *domain.HttpError `json:"error,omitempty"`
}

type QuoteRequestState struct {
	QuoteRequests []domain.QuoteRequest `json:"quoteRequests"`
	Selected      string                `json:"selected,omitempty"`
	Loading       bool                  `json:"loading"`
	Error         *domain.HttpError     `json:"error,omitempty"`
}

func Initial() *State {
	return &State{Quotes: &QuoteState{}, Requests: &QuoteRequestState{}}
}

// Normalize заполняет отсутствующие подсрезы после восстановления из снимка.
func (s *State) Normalize() *State {
	n := *s
	if n.Quotes == nil {
		n.Quotes = &QuoteState{}
	}
	if n.Requests == nil {
		n.Requests = &QuoteRequestState{}
	}
	return &n
}
