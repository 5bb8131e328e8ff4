package facade

import (
	"context"
	"testing"
	"time"

	"github.com/example/storefront-state/internal/state"
	"github.com/example/storefront-state/internal/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st := state.New()
	t.Cleanup(st.Close)
	return st
}

// recordActions подписывается на применённые действия до вызова фасада.
func recordActions(t *testing.T, st *Store) <-chan store.Envelope {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return st.Actions().Subscribe(ctx)
}

func next[V any](t *testing.T, ch <-chan V) V {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "stream closed")
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out")
	}
	var zero V
	return zero
}

func silent[V any](t *testing.T, ch <-chan V) {
	t.Helper()
	select {
	case v, ok := <-ch:
		if ok {
			t.Fatalf("unexpected emission %v", v)
		}
	case <-time.After(50 * time.Millisecond):
	}
}

// until читает поток, пока не придёт значение, удовлетворяющее pred.
func until[V any](t *testing.T, ch <-chan V, pred func(V) bool) V {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case v, ok := <-ch:
			require.True(t, ok, "stream closed")
			if pred(v) {
				return v
			}
		case <-deadline:
			t.Fatal("timed out")
			var zero V
			return zero
		}
	}
}
