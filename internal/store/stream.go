package store

import (
	"context"
	"errors"
	"reflect"
)

// ErrStreamClosed возвращается First, если поток завершился без значений.
var ErrStreamClosed = errors.New("stream closed")

// Stream представляет лениво подписываемую последовательность значений.
// Подписка начинается только в Subscribe; каждый вызов даёт независимый канал.
type Stream[V any] struct {
	subscribe func(ctx context.Context) <-chan V
}

func NewStream[V any](fn func(ctx context.Context) <-chan V) Stream[V] {
	return Stream[V]{subscribe: fn}
}

// Subscribe открывает подписку. Канал закрывается по отмене ctx или завершению источника.
func (s Stream[V]) Subscribe(ctx context.Context) <-chan V {
	if s.subscribe == nil {
		ch := make(chan V)
		close(ch)
		return ch
	}
	return s.subscribe(ctx)
}

// First возвращает первое значение потока.
func (s Stream[V]) First(ctx context.Context) (V, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var zero V
	select {
	case v, ok := <-s.Subscribe(ctx):
		if !ok {
			if err := ctx.Err(); err != nil {
				return zero, err
			}
			return zero, ErrStreamClosed
		}
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Of возвращает поток из одного значения, который затем завершается.
func Of[V any](v V) Stream[V] {
	return NewStream(func(ctx context.Context) <-chan V {
		out := make(chan V, 1)
		out <- v
		close(out)
		return out
	})
}

// Map применяет fn к каждому значению.
func Map[V, W any](s Stream[V], fn func(V) W) Stream[W] {
	return NewStream(func(ctx context.Context) <-chan W {
		out := make(chan W)
		in := s.Subscribe(ctx)
		go func() {
			defer close(out)
			for v := range in {
				select {
				case out <- fn(v):
				case <-ctx.Done():
					return
				}
			}
		}()
		return out
	})
}

// Filter пропускает только значения, для которых keep возвращает true.
func Filter[V any](s Stream[V], keep func(V) bool) Stream[V] {
	return NewStream(func(ctx context.Context) <-chan V {
		out := make(chan V)
		in := s.Subscribe(ctx)
		go func() {
			defer close(out)
			for v := range in {
				if !keep(v) {
					continue
				}
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

// Same сравнивает значения по идентичности: указатели, срезы и map по адресу
// и длине, сравнимые значения через ==.
func Same[V any](a, b V) bool {
	va, vb := reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem()
	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Interface:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		if va.Elem().Type() != vb.Elem().Type() {
			return false
		}
		if va.Elem().Type().Comparable() {
			return va.Interface() == vb.Interface()
		}
		return false
	}
	if va.Type().Comparable() {
		return any(a) == any(b)
	}
	return reflect.DeepEqual(a, b)
}
