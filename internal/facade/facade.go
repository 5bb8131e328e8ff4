// Package facade скрывает стор за методами предметной области: записи превращаются
// в действия, чтения отдаются кэшированными потоками селекторов.
package facade

import (
	"github.com/example/storefront-state/internal/state"
	"github.com/example/storefront-state/internal/state/account"
	"github.com/example/storefront-state/internal/state/quoting"
	"github.com/example/storefront-state/internal/store"
)

// Store это стор витрины, с которым работают фасады.
type Store = store.Store[state.State]

func selectAccount[V any](st *Store, sel func(*account.State) V) store.Stream[V] {
	return store.Select(st, store.CreateSelector(state.AccountSlice, sel))
}

// eachAccount не пропускает промежуточные значения, в отличие от selectAccount.
func eachAccount[V any](st *Store, sel func(*account.State) V) store.Stream[V] {
	return store.SelectEach(st, store.CreateSelector(state.AccountSlice, sel))
}

func selectQuoting[V any](st *Store, sel func(*quoting.State) V) store.Stream[V] {
	return store.Select(st, store.CreateSelector(state.QuotingSlice, sel))
}
