package broadcast

import (
	"context"
	"sync"
)

// Relay раздаёт значения всем текущим подписчикам без повторной выдачи истории.
// Каждый подписчик получает каждое значение, опубликованное после подписки, ровно один раз.
type Relay[T any] struct {
	mu     sync.Mutex
	subs   map[*subscriber[T]]struct{}
	closed bool
}

type subscriber[T any] struct {
	mu    sync.Mutex
	queue []T
	wake  chan struct{}
	done  chan struct{}
	once  sync.Once
}

func NewRelay[T any]() *Relay[T] {
	return &Relay[T]{subs: make(map[*subscriber[T]]struct{})}
}

// Publish не блокируется: значение кладётся в очередь каждого подписчика.
func (r *Relay[T]) Publish(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	for s := range r.subs {
		s.push(v)
	}
}

// Subscribe возвращает канал будущих значений. Канал закрывается по ctx или Close.
func (r *Relay[T]) Subscribe(ctx context.Context) <-chan T {
	out := make(chan T)
	s := &subscriber[T]{wake: make(chan struct{}, 1), done: make(chan struct{})}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		close(out)
		return out
	}
	r.subs[s] = struct{}{}
	r.mu.Unlock()

	go func() {
		defer close(out)
		defer r.remove(s)
		for {
			v, ok := s.pop()
			if !ok {
				select {
				case <-s.wake:
					continue
				case <-s.done:
					return
				case <-ctx.Done():
					return
				}
			}
			select {
			case out <- v:
			case <-s.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Subscribers возвращает число активных подписок.
func (r *Relay[T]) Subscribers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

// Close завершает все подписки; дальнейшие Publish игнорируются.
func (r *Relay[T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	for s := range r.subs {
		s.stop()
	}
}

func (r *Relay[T]) remove(s *subscriber[T]) {
	r.mu.Lock()
	delete(r.subs, s)
	r.mu.Unlock()
	s.stop()
}

func (s *subscriber[T]) push(v T) {
	s.mu.Lock()
	s.queue = append(s.queue, v)
	s.mu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscriber[T]) pop() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	if len(s.queue) == 0 {
		return zero, false
	}
	v := s.queue[0]
	s.queue[0] = zero
	s.queue = s.queue[1:]
	return v, true
}

func (s *subscriber[T]) stop() {
	s.once.Do(func() { close(s.done) })
}
