package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/example/storefront-state/internal/adapter/cache"
	"github.com/example/storefront-state/internal/domain"
	"github.com/example/storefront-state/internal/state"
	"github.com/example/storefront-state/internal/state/account"
	"github.com/example/storefront-state/internal/state/quoting"
	"github.com/example/storefront-state/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	actions []store.Action
}

func (r *recorder) Dispatch(a store.Action) {
	r.mu.Lock()
	r.actions = append(r.actions, a)
	r.mu.Unlock()
}

type fixedSource state.State

func (s fixedSource) State() state.State { return state.State(s) }

type failingRepo struct {
	cache.MemorySnapshotCache
	err error
}

func (r *failingRepo) Upsert(context.Context, string, []byte) error { return r.err }

func TestPersistThenRestore(t *testing.T) {
	ctx := context.Background()
	snapshots := cache.NewMemorySnapshotCache()
	s := state.Reduce(state.Initial(), quoting.LoadQuotesSuccess{Quotes: []domain.Quote{{ID: "q1"}}})
	s = state.Reduce(s, account.LoginUserSuccess{User: &domain.User{Email: "a@b.com"}})

	persist := PersistState{Repo: snapshots, Cache: cache.NewMemorySnapshotCache()}
	require.NoError(t, persist.Execute(ctx, s))

	rec := &recorder{}
	restoreCache := cache.NewMemorySnapshotCache()
	h, err := RestoreState{Repo: snapshots, Cache: restoreCache, Store: rec}.Execute(ctx)
	require.NoError(t, err)

	require.Len(t, rec.actions, 1)
	assert.Equal(t, h, rec.actions[0])
	require.NotNil(t, h.Account)
	assert.Equal(t, "a@b.com", h.Account.User.User.Email)
	assert.Equal(t, "q1", h.Quoting.Quotes.Quotes[0].ID)
	_, cached := restoreCache.Get(state.SliceAccount)
	assert.True(t, cached)

	restored := state.Reduce(state.Initial(), h)
	assert.True(t, account.GetUserAuthorized(restored.Account))
}

func TestRestoreSkipsCorruptedAndUnknownSnapshots(t *testing.T) {
	ctx := context.Background()
	snapshots := cache.NewMemorySnapshotCache()
	snapshots.Set(state.SliceAccount, []byte(`{not json`))
	snapshots.Set("basket", []byte(`{}`))
	snapshots.Set(state.SliceQuoting, []byte(`{"quotes":{"quotes":[{"id":"q7"}]}}`))

	rec := &recorder{}
	h, err := RestoreState{Repo: snapshots, Store: rec}.Execute(ctx)
	require.NoError(t, err)
	assert.Nil(t, h.Account)
	require.NotNil(t, h.Quoting)
	assert.Len(t, rec.actions, 1)

	n := state.Reduce(state.Initial(), h)
	assert.Equal(t, "q7", quoting.GetCurrentQuotes(n.Quoting)[0].ID)
	assert.NotNil(t, n.Quoting.Requests)
}

func TestRestoreWithoutSnapshotsDispatchesNothing(t *testing.T) {
	rec := &recorder{}
	_, err := RestoreState{Repo: cache.NewMemorySnapshotCache(), Store: rec}.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rec.actions)
}

type snapshotCounter struct {
	mu     sync.Mutex
	writes map[string]int
	failed int
}

func (c *snapshotCounter) RecordSnapshot(slice string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.failed++
		return
	}
	c.writes[slice]++
}

func TestPersistWritesOnlyChangedSlices(t *testing.T) {
	ctx := context.Background()
	counter := &snapshotCounter{writes: map[string]int{}}
	uc := PersistState{Repo: cache.NewMemorySnapshotCache(), Cache: cache.NewMemorySnapshotCache(), Metrics: counter}

	s := state.Initial()
	require.NoError(t, uc.Execute(ctx, s))
	require.NoError(t, uc.Execute(ctx, s))
	assert.Equal(t, map[string]int{"account": 1, "quoting": 1}, counter.writes)

	s = state.Reduce(s, quoting.SelectQuote{ID: "q1"})
	require.NoError(t, uc.Execute(ctx, s))
	assert.Equal(t, map[string]int{"account": 1, "quoting": 2}, counter.writes)
}

func TestPersistReportsRepoErrors(t *testing.T) {
	boom := errors.New("db down")
	counter := &snapshotCounter{writes: map[string]int{}}
	c := cache.NewMemorySnapshotCache()
	uc := PersistState{Repo: &failingRepo{err: boom}, Cache: c, Metrics: counter}

	err := uc.Execute(context.Background(), state.Initial())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, counter.failed)
	_, ok := c.Get(state.SliceAccount)
	assert.False(t, ok, "failed write must not be cached")
}

func TestPersistRunFlushesOnStop(t *testing.T) {
	repo := cache.NewMemorySnapshotCache()
	uc := PersistState{Repo: repo, Cache: cache.NewMemorySnapshotCache()}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		uc.Run(ctx, fixedSource(state.Initial()), time.Hour)
		close(done)
	}()
	cancel()
	<-done

	_, ok := repo.Get(state.SliceQuoting)
	assert.True(t, ok)
}

func TestProcessIncomingAction(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
		want    store.Action
	}{
		{
			name: "result action",
			raw:  `{"type":"[Quote API] Load Quotes Success","payload":{"quotes":[{"id":"q1"}]}}`,
			want: quoting.LoadQuotesSuccess{Quotes: []domain.Quote{{ID: "q1"}}},
		},
		{
			name:    "request from backend rejected",
			raw:     `{"type":"[User] Login User","payload":{"credentials":{"login":"a"}}}`,
			wantErr: domain.ErrValidation,
		},
		{
			name:    "snapshot hydrate rejected",
			raw:     `{"type":"[Snapshot] Hydrate","payload":{"account":{}}}`,
			wantErr: domain.ErrValidation,
		},
		{
			name:    "unknown kind",
			raw:     `{"type":"[Basket] Load Basket"}`,
			wantErr: store.ErrUnknownAction,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			uc := ProcessIncomingAction{Registry: state.NewRegistry(), Store: rec}
			err := uc.Execute(context.Background(), []byte(tt.raw))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, rec.actions)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []store.Action{tt.want}, rec.actions)
		})
	}

	_, err := state.NewRegistry().Decode([]byte(`garbage`))
	assert.Error(t, err)
}

type fakePublisher struct {
	mu   sync.Mutex
	msgs [][]byte
	err  error
}

func (p *fakePublisher) Publish(_ context.Context, raw []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, raw)
	return p.err
}

type forwardCounter struct {
	mu    sync.Mutex
	kinds []store.Kind
	errs  int
}

func (c *forwardCounter) RecordForwarded(kind store.Kind, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.kinds = append(c.kinds, kind)
	if err != nil {
		c.errs++
	}
}

func TestForwardRequestPublishesOnlyRemoteRequests(t *testing.T) {
	pub := &fakePublisher{}
	counter := &forwardCounter{}
	st := state.New(store.WithEffect(ForwardRequest{Publisher: pub, Metrics: counter}))
	t.Cleanup(st.Close)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	actions := st.Actions().Subscribe(ctx)

	st.Dispatch(quoting.SelectQuote{ID: "q1"})
	st.Dispatch(account.LoginUser{Credentials: domain.Credentials{Login: "a@b.com", Password: "x"}})
	<-actions
	<-actions

	require.Eventually(t, func() bool {
		pub.mu.Lock()
		defer pub.mu.Unlock()
		return len(pub.msgs) == 1
	}, time.Second, 5*time.Millisecond)

	pub.mu.Lock()
	raw := pub.msgs[0]
	pub.mu.Unlock()
	a, err := state.NewRegistry().Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, account.LoginUser{Credentials: domain.Credentials{Login: "a@b.com", Password: "x"}}, a)

	counter.mu.Lock()
	defer counter.mu.Unlock()
	assert.Equal(t, []store.Kind{"[User] Login User"}, counter.kinds)
}

func TestForwardRequestAddsSelectedTarget(t *testing.T) {
	pub := &fakePublisher{}
	st := state.New(store.WithEffect(ForwardRequest{Publisher: pub}))
	t.Cleanup(st.Close)

	st.Dispatch(quoting.LoadQuoteRequestsSuccess{QuoteRequests: []domain.QuoteRequest{
		{ID: "r-old", Submitted: true},
		{ID: "r-7", Editable: true},
	}})
	st.Dispatch(quoting.SelectQuote{ID: "q-42"})
	st.Dispatch(quoting.RejectQuote{})
	st.Dispatch(quoting.SelectQuoteRequest{ID: "r-1"})
	st.Dispatch(quoting.SubmitQuoteRequest{})
	st.Dispatch(quoting.AddProductToQuoteRequest{SKU: "sku-1", Quantity: 2})
	st.Dispatch(quoting.SelectQuote{ID: "q-43"})
	st.Dispatch(quoting.CreateQuoteRequestFromQuote{})
	st.Dispatch(quoting.LoadQuotes{})

	want := []struct {
		kind   store.Kind
		target string
	}{
		{quoting.RejectQuote{}.Kind(), `{"quoteId":"q-42"}`},
		{quoting.SubmitQuoteRequest{}.Kind(), `{"quoteRequestId":"r-1"}`},
		{quoting.AddProductToQuoteRequest{}.Kind(), `{"quoteRequestId":"r-7"}`},
		{quoting.CreateQuoteRequestFromQuote{}.Kind(), `{"quoteId":"q-43"}`},
		{quoting.LoadQuotes{}.Kind(), ""},
	}

	require.Eventually(t, func() bool {
		pub.mu.Lock()
		defer pub.mu.Unlock()
		return len(pub.msgs) == len(want)
	}, time.Second, 5*time.Millisecond)

	pub.mu.Lock()
	defer pub.mu.Unlock()
	for i, w := range want {
		var msg store.Message
		require.NoError(t, json.Unmarshal(pub.msgs[i], &msg))
		assert.Equal(t, w.kind, msg.Type)
		if w.target == "" {
			assert.Empty(t, msg.Target, "%s", w.kind)
			continue
		}
		assert.JSONEq(t, w.target, string(msg.Target), "%s", w.kind)
	}

	// цель лежит рядом с payload и не мешает декодированию действия
	a, err := state.NewRegistry().Decode(pub.msgs[0])
	require.NoError(t, err)
	assert.Equal(t, quoting.RejectQuote{}, a)
}

func TestForwardRequestCountsFailures(t *testing.T) {
	counter := &forwardCounter{}
	uc := ForwardRequest{Publisher: &fakePublisher{err: errors.New("nats down")}, Metrics: counter}
	uc.Handle(context.Background(), store.Envelope{Action: account.LoadOrders{}}, nil)
	assert.Equal(t, 1, counter.errs)
}

func TestGetView(t *testing.T) {
	s := state.Initial()
	uc := GetView{Source: fixedSource(s)}

	v, ok := uc.Execute(state.SliceAccount)
	require.True(t, ok)
	assert.Same(t, s.Account, v)

	_, ok = uc.Execute("basket")
	assert.False(t, ok)
}
