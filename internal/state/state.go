package state

import (
	"github.com/example/storefront-state/internal/state/account"
	"github.com/example/storefront-state/internal/state/quoting"
	"github.com/example/storefront-state/internal/store"
)

// Имена срезов, под которыми хранятся снимки.
const (
	SliceAccount = "account"
	SliceQuoting = "quoting"
)

// State объединяет срезы витрины.
type State struct {
	Account *account.State `json:"account"`
	Quoting *quoting.State `json:"quoting"`
}

func Initial() State {
	return State{Account: account.Initial(), Quoting: quoting.Initial()}
}

// Hydrate заменяет срезы восстановленными из снимков; nil оставляет срез как есть.
type Hydrate struct {
	Account *account.State `json:"account,omitempty"`
	Quoting *quoting.State `json:"quoting,omitempty"`
}

func (Hydrate) Kind() store.Kind { return "[Snapshot] Hydrate" }

// Reduce применяет действие ко всем срезам.
func Reduce(s State, a store.Action) State {
	if h, ok := a.(Hydrate); ok {
		if h.Account != nil {
			s.Account = h.Account.Normalize()
		}
		if h.Quoting != nil {
			s.Quoting = h.Quoting.Normalize()
		}
		return s
	}
	return State{
		Account: account.Reduce(s.Account, a),
		Quoting: quoting.Reduce(s.Quoting, a),
	}
}

func AccountSlice(s State) *account.State { return s.Account }
func QuotingSlice(s State) *quoting.State { return s.Quoting }

// NewRegistry возвращает реестр всех действий витрины.
func NewRegistry() *store.Registry {
	r := store.NewRegistry()
	account.Register(r)
	quoting.Register(r)
	store.Register[Hydrate](r)
	return r
}

// New создаёт стор витрины с начальным состоянием.
func New(opts ...store.Option) *store.Store[State] {
	return store.New(Initial(), Reduce, opts...)
}
