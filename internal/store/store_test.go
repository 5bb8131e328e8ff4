package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	Value int
	Log   []string
}

type increment struct {
	By int `json:"by"`
}

func (increment) Kind() Kind { return "[Counter] Increment" }

type note struct {
	Text string `json:"text"`
}

func (note) Kind() Kind { return "[Counter] Note" }

type explode struct{}

func (explode) Kind() Kind { return "[Counter] Explode" }

type fetch struct{}

func (fetch) Kind() Kind     { return "[Counter] Fetch" }
func (fetch) RemoteRequest() {}

func reduceCounter(s *counter, a Action) *counter {
	switch a := a.(type) {
	case increment:
		n := *s
		n.Value += a.By
		return &n
	case note:
		n := *s
		n.Log = append(append([]string(nil), s.Log...), a.Text)
		return &n
	case explode:
		panic("boom")
	}
	return s
}

func newCounterStore(t *testing.T, opts ...Option) *Store[*counter] {
	t.Helper()
	st := New(&counter{}, reduceCounter, opts...)
	t.Cleanup(st.Close)
	return st
}

func next[V any](t *testing.T, ch <-chan V) V {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "stream closed")
		return v
	case <-time.After(time.Second):
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

func TestDispatchAppliesActionsInOrder(t *testing.T) {
	st := newCounterStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	actions := st.Actions().Subscribe(ctx)

	for i := 1; i <= 5; i++ {
		st.Dispatch(note{Text: string(rune('a' + i - 1))})
	}
	for i := 0; i < 5; i++ {
		next(t, actions)
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, st.State().Log)
}

func TestDispatchDoesNotTouchStateSynchronously(t *testing.T) {
	st := newCounterStore(t)
	before := st.State()
	st.Dispatch(increment{By: 1})
	assert.Equal(t, 0, before.Value)
}

func TestSelectEmitsCurrentThenDistinctValues(t *testing.T) {
	st := newCounterStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	values := Select(st, func(c *counter) int { return c.Value }).Subscribe(ctx)
	assert.Equal(t, 0, next(t, values))

	st.Dispatch(note{Text: "ignored by selector"})
	st.Dispatch(increment{By: 2})
	assert.Equal(t, 2, next(t, values))
	silent(t, values)
}

func TestSelectConflatesForSlowSubscriber(t *testing.T) {
	st := newCounterStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	actions := st.Actions().Subscribe(ctx)
	values := Select(st, func(c *counter) int { return c.Value }).Subscribe(ctx)
	for i := 0; i < 50; i++ {
		st.Dispatch(increment{By: 1})
	}
	for i := 0; i < 50; i++ {
		next(t, actions)
	}

	var last int
	require.Eventually(t, func() bool {
		select {
		case v := <-values:
			last = v
		default:
		}
		return last == 50
	}, time.Second, time.Millisecond)
}

func TestUnchangedSliceKeepsIdentity(t *testing.T) {
	st := newCounterStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	actions := st.Actions().Subscribe(ctx)

	before := st.State()
	st.Dispatch(fetch{})
	next(t, actions)
	assert.Same(t, before, st.State())
}

func TestReducerPanicLeavesStateUnchanged(t *testing.T) {
	st := newCounterStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	actions := st.Actions().Subscribe(ctx)

	st.Dispatch(explode{})
	st.Dispatch(increment{By: 3})
	env := next(t, actions)
	assert.Equal(t, Kind("[Counter] Increment"), env.Action.Kind())
	assert.Equal(t, 3, st.State().Value)
}

func TestEffectDispatchesFollowUp(t *testing.T) {
	effect := EffectFunc(func(ctx context.Context, env Envelope, dispatch func(Action)) {
		if _, ok := env.Action.(fetch); ok {
			dispatch(increment{By: 10})
		}
	})
	st := newCounterStore(t, WithEffect(effect))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	values := Select(st, func(c *counter) int { return c.Value }).Subscribe(ctx)
	next(t, values)
	st.Dispatch(fetch{})
	assert.Equal(t, 10, next(t, values))
}

func TestEnvelopeCarriesDispatchTime(t *testing.T) {
	st := newCounterStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	actions := st.Actions().Subscribe(ctx)

	before := time.Now()
	st.Dispatch(increment{By: 1})
	env := next(t, actions)
	assert.False(t, env.DispatchedAt.Before(before))
	assert.NotEqual(t, [16]byte{}, [16]byte(env.ID))
}

type recordingObserver struct {
	mu      sync.Mutex
	reduced []Kind
	subs    []int
}

func (o *recordingObserver) ActionReduced(k Kind, _ time.Duration) {
	o.mu.Lock()
	o.reduced = append(o.reduced, k)
	o.mu.Unlock()
}

func (o *recordingObserver) SubscribersChanged(n int) {
	o.mu.Lock()
	o.subs = append(o.subs, n)
	o.mu.Unlock()
}

func TestObserverSeesReductionsAndSubscribers(t *testing.T) {
	obs := &recordingObserver{}
	st := newCounterStore(t, WithObserver(obs))
	ctx, cancel := context.WithCancel(context.Background())
	values := Select(st, func(c *counter) int { return c.Value }).Subscribe(ctx)
	next(t, values)

	st.Dispatch(increment{By: 1})
	next(t, values)
	cancel()
	for range values {
	}

	require.Eventually(t, func() bool {
		obs.mu.Lock()
		defer obs.mu.Unlock()
		return len(obs.subs) == 2
	}, time.Second, 5*time.Millisecond)
	obs.mu.Lock()
	defer obs.mu.Unlock()
	assert.Equal(t, []Kind{"[Counter] Increment"}, obs.reduced)
	assert.Equal(t, []int{1, 0}, obs.subs)
}

func TestCloseEndsStreams(t *testing.T) {
	st := New(&counter{}, reduceCounter)
	values := Select(st, func(c *counter) int { return c.Value }).Subscribe(context.Background())
	next(t, values)

	st.Close()
	_, ok := <-values
	assert.False(t, ok)

	st.Dispatch(increment{By: 1})
	assert.Equal(t, 0, st.State().Value)

	_, err := Select(st, func(c *counter) int { return c.Value }).First(context.Background())
	assert.True(t, errors.Is(err, ErrStreamClosed))
}

func TestSelectEachDeliversEveryDistinctValue(t *testing.T) {
	st := newCounterStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	values := SelectEach(st, func(c *counter) int { return c.Value }).Subscribe(ctx)
	for i := 0; i < 100; i++ {
		st.Dispatch(increment{By: 1})
		st.Dispatch(note{Text: "same value"})
	}

	got := make([]int, 0, 101)
	for i := 0; i <= 100; i++ {
		got = append(got, next(t, values))
	}
	for i, v := range got {
		require.Equal(t, i, v)
	}
	silent(t, values)
}

func TestSelectEachOnClosedStore(t *testing.T) {
	st := New(&counter{}, reduceCounter)
	st.Close()
	_, err := SelectEach(st, func(c *counter) int { return c.Value }).First(context.Background())
	assert.True(t, errors.Is(err, ErrStreamClosed))
}

type valueRecorder struct {
	mu     sync.Mutex
	values []int
}

func (r *valueRecorder) Handle(context.Context, Envelope, func(Action)) {}

func (r *valueRecorder) HandleState(_ context.Context, env Envelope, state *counter, _ func(Action)) {
	if _, ok := env.Action.(fetch); !ok {
		return
	}
	r.mu.Lock()
	r.values = append(r.values, state.Value)
	r.mu.Unlock()
}

func TestStateEffectSeesStateProducedByItsAction(t *testing.T) {
	rec := &valueRecorder{}
	st := newCounterStore(t, WithEffect(rec))

	for i := 0; i < 20; i++ {
		st.Dispatch(increment{By: 1})
		st.Dispatch(fetch{})
	}
	require.Eventually(t, func() bool {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		return len(rec.values) == 20
	}, time.Second, 5*time.Millisecond)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	for i, v := range rec.values {
		assert.Equal(t, i+1, v)
	}
}
