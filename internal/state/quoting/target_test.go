package quoting

import (
	"testing"

	"github.com/example/storefront-state/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestTargetOf(t *testing.T) {
	s := Reduce(loaded(), SelectQuote{ID: "q2"})
	s = Reduce(s, SelectQuoteRequest{ID: "r1"})

	tests := []struct {
		name   string
		state  *State
		action store.Action
		want   Target
		ok     bool
	}{
		{"reject uses selected quote", s, RejectQuote{}, Target{QuoteID: "q2"}, true},
		{"copy quote uses selected quote", s, CreateQuoteRequestFromQuote{}, Target{QuoteID: "q2"}, true},
		{"submit uses selected request", s, SubmitQuoteRequest{}, Target{QuoteRequestID: "r1"}, true},
		{"update items uses selected request", s, UpdateQuoteRequestItems{}, Target{QuoteRequestID: "r1"}, true},
		{"delete item uses selected request", s, DeleteItemFromQuoteRequest{}, Target{QuoteRequestID: "r1"}, true},
		{"add product uses active request", s, AddProductToQuoteRequest{SKU: "s"}, Target{QuoteRequestID: "r2"}, true},
		{"add basket without active request", Initial(), AddBasketToQuoteRequest{}, Target{}, true},
		{"action carries its own id", s, DeleteQuote{ID: "q1"}, Target{}, false},
		{"load has no target", s, LoadQuotes{}, Target{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TargetOf(tt.state, tt.action)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
