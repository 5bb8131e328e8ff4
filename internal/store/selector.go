package store

import "sync"

// CreateSelector строит мемоизированную проекцию. proj пересчитывается только
// при изменении входа по Same, поэтому для одного и того же входа результат идентичен.
func CreateSelector[S, A, V any](in func(S) A, proj func(A) V) func(S) V {
	var (
		mu     sync.Mutex
		cached bool
		lastA  A
		lastV  V
	)
	return func(s S) V {
		a := in(s)
		mu.Lock()
		defer mu.Unlock()
		if cached && Same(a, lastA) {
			return lastV
		}
		lastA, lastV, cached = a, proj(a), true
		return lastV
	}
}

// CreateSelector2 объединяет два входа в одно производное представление.
func CreateSelector2[S, A, B, V any](inA func(S) A, inB func(S) B, proj func(A, B) V) func(S) V {
	var (
		mu     sync.Mutex
		cached bool
		lastA  A
		lastB  B
		lastV  V
	)
	return func(s S) V {
		a, b := inA(s), inB(s)
		mu.Lock()
		defer mu.Unlock()
		if cached && Same(a, lastA) && Same(b, lastB) {
			return lastV
		}
		lastA, lastB, lastV, cached = a, b, proj(a, b), true
		return lastV
	}
}
