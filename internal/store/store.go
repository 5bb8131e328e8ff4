package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/example/storefront-state/internal/broadcast"
	"github.com/sirupsen/logrus"
)

// Reducer вычисляет следующее состояние. Должен быть чистой функцией и
// возвращать тот же срез состояния, если действие его не касается.
type Reducer[S any] func(state S, action Action) S

// Effect реагирует на применённые действия и может диспетчеризовать новые.
type Effect interface {
	Handle(ctx context.Context, env Envelope, dispatch func(Action))
}

// StateEffect получает вместе с действием состояние сразу после его применения.
// Если эффект реализует и Effect, стор вызывает HandleState.
type StateEffect[S any] interface {
	HandleState(ctx context.Context, env Envelope, state S, dispatch func(Action))
}

// EffectFunc позволяет использовать функцию как Effect.
type EffectFunc func(ctx context.Context, env Envelope, dispatch func(Action))

func (f EffectFunc) Handle(ctx context.Context, env Envelope, dispatch func(Action)) {
	f(ctx, env, dispatch)
}

// Observer получает телеметрию стора.
type Observer interface {
	ActionReduced(kind Kind, d time.Duration)
	SubscribersChanged(n int)
}

type options struct {
	effects  []Effect
	observer Observer
	logger   *logrus.Entry
}

type Option func(*options)

func WithEffect(e Effect) Option {
	return func(o *options) { o.effects = append(o.effects, e) }
}

func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

func WithLogger(l *logrus.Entry) Option {
	return func(o *options) { o.logger = l }
}

type nopObserver struct{}

func (nopObserver) ActionReduced(Kind, time.Duration) {}
func (nopObserver) SubscribersChanged(int)            {}

// Store владеет единственным значением состояния. Все изменения проходят через
// одну очередь действий и применяются одной горутиной.
type Store[S any] struct {
	reducer Reducer[S]
	opts    options

	qmu   sync.Mutex
	queue []Envelope
	wake  chan struct{}

	mu     sync.RWMutex
	state  S
	subs   map[*stateSub[S]]struct{}
	closed bool

	actions *broadcast.Relay[Envelope]
	steps   *broadcast.Relay[step[S]]
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	effects sync.WaitGroup
}

// step связывает действие с состоянием, которое оно породило.
type step[S any] struct {
	env   Envelope
	state S
}

type stateSub[S any] struct {
	slot chan S
	done chan struct{}
}

func New[S any](initial S, reducer Reducer[S], opts ...Option) *Store[S] {
	o := options{observer: nopObserver{}, logger: logrus.NewEntry(logrus.StandardLogger())}
	for _, opt := range opts {
		opt(&o)
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Store[S]{
		reducer: reducer,
		opts:    o,
		wake:    make(chan struct{}, 1),
		state:   initial,
		subs:    make(map[*stateSub[S]]struct{}),
		actions: broadcast.NewRelay[Envelope](),
		steps:   broadcast.NewRelay[step[S]](),
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	for _, e := range o.effects {
		s.startEffect(e)
	}
	go s.run()
	return s
}

// Dispatch ставит действие в очередь и сразу возвращает управление.
func (s *Store[S]) Dispatch(a Action) {
	if a == nil {
		return
	}
	env := newEnvelope(a)
	s.qmu.Lock()
	if s.ctx.Err() != nil {
		s.qmu.Unlock()
		s.opts.logger.WithField("action", a.Kind()).Debug("dispatch after close ignored")
		return
	}
	s.queue = append(s.queue, env)
	s.qmu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// State возвращает текущее состояние.
func (s *Store[S]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Actions возвращает поток всех применённых действий без истории.
func (s *Store[S]) Actions() Stream[Envelope] {
	return NewStream(func(ctx context.Context) <-chan Envelope {
		return s.actions.Subscribe(ctx)
	})
}

// Close останавливает актор и завершает все подписки.
func (s *Store[S]) Close() {
	s.qmu.Lock()
	s.cancel()
	s.qmu.Unlock()
	<-s.done

	s.actions.Close()
	s.steps.Close()
	s.effects.Wait()

	s.mu.Lock()
	s.closed = true
	for sub := range s.subs {
		close(sub.done)
		delete(s.subs, sub)
	}
	s.mu.Unlock()
}

func (s *Store[S]) run() {
	defer close(s.done)
	for {
		batch := s.drain()
		if len(batch) == 0 {
			select {
			case <-s.wake:
				continue
			case <-s.ctx.Done():
				return
			}
		}
		for _, env := range batch {
			s.apply(env)
		}
	}
}

func (s *Store[S]) drain() []Envelope {
	s.qmu.Lock()
	defer s.qmu.Unlock()
	batch := s.queue
	s.queue = nil
	return batch
}

func (s *Store[S]) apply(env Envelope) {
	start := time.Now()
	current := s.State()
	next, err := s.reduce(current, env.Action)
	if err != nil {
		s.opts.logger.WithError(err).WithField("action", env.Action.Kind()).Error("reducer failed, state unchanged")
		return
	}

	s.mu.Lock()
	s.state = next
	for sub := range s.subs {
		offer(sub.slot, next)
	}
	// под s.mu, чтобы SelectEach получил согласованные текущее состояние и подписку
	s.steps.Publish(step[S]{env: env, state: next})
	s.mu.Unlock()

	s.opts.observer.ActionReduced(env.Action.Kind(), time.Since(start))
	s.opts.logger.WithFields(logrus.Fields{"action": env.Action.Kind(), "id": env.ID}).Trace("action reduced")
	s.actions.Publish(env)
}

func (s *Store[S]) reduce(state S, a Action) (next S, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reduce %s: %v", a.Kind(), r)
		}
	}()
	return s.reducer(state, a), nil
}

func (s *Store[S]) startEffect(e Effect) {
	ch := s.steps.Subscribe(s.ctx)
	withState, _ := e.(StateEffect[S])
	s.effects.Add(1)
	go func() {
		defer s.effects.Done()
		for st := range ch {
			if withState != nil {
				withState.HandleState(s.ctx, st.env, st.state, s.Dispatch)
				continue
			}
			e.Handle(s.ctx, st.env, s.Dispatch)
		}
	}()
}

func (s *Store[S]) subscribe() *stateSub[S] {
	sub := &stateSub[S]{slot: make(chan S, 1), done: make(chan struct{})}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(sub.done)
		return sub
	}
	sub.slot <- s.state
	s.subs[sub] = struct{}{}
	n := len(s.subs)
	s.mu.Unlock()
	s.opts.observer.SubscribersChanged(n)
	return sub
}

func (s *Store[S]) unsubscribe(sub *stateSub[S]) {
	s.mu.Lock()
	if _, ok := s.subs[sub]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.subs, sub)
	n := len(s.subs)
	s.mu.Unlock()
	s.opts.observer.SubscribersChanged(n)
}

// offer заменяет непрочитанное состояние в ячейке подписчика последним.
// Вызывается только под s.mu, поэтому отправка не блокируется.
func offer[S any](slot chan S, v S) {
	select {
	case <-slot:
	default:
	}
	slot <- v
}

// Select возвращает поток представления состояния: текущее значение при подписке
// и затем каждое отличающееся значение.
func Select[S, V any](st *Store[S], sel func(S) V) Stream[V] {
	return NewStream(func(ctx context.Context) <-chan V {
		out := make(chan V)
		sub := st.subscribe()
		go func() {
			defer close(out)
			defer st.unsubscribe(sub)
			var last V
			seen := false
			for {
				select {
				case <-ctx.Done():
					return
				case <-sub.done:
					return
				case state := <-sub.slot:
					v := sel(state)
					if seen && Same(last, v) {
						continue
					}
					seen, last = true, v
					select {
					case out <- v:
					case <-ctx.Done():
						return
					case <-sub.done:
						return
					}
				}
			}
		}()
		return out
	})
}

// SelectEach работает как Select, но без слияния: представление вычисляется для
// каждого применённого действия, и каждое отличающееся значение доставляется
// ровно один раз, даже если подписчик отстаёт.
func SelectEach[S, V any](st *Store[S], sel func(S) V) Stream[V] {
	return NewStream(func(ctx context.Context) <-chan V {
		out := make(chan V)
		st.mu.RLock()
		if st.closed {
			st.mu.RUnlock()
			close(out)
			return out
		}
		current := st.state
		steps := st.steps.Subscribe(ctx)
		st.mu.RUnlock()

		go func() {
			defer close(out)
			last := sel(current)
			select {
			case out <- last:
			case <-ctx.Done():
				return
			}
			for next := range steps {
				v := sel(next.state)
				if Same(last, v) {
					continue
				}
				last = v
				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
		}()
		return out
	})
}
