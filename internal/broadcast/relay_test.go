package broadcast

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for value")
	}
	var zero T
	return zero
}

func assertSilent[T any](t *testing.T, ch <-chan T) {
	t.Helper()
	select {
	case v := <-ch:
		t.Fatalf("unexpected value %v", v)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRelayDeliversToEverySubscriberOnce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := NewRelay[string]()
	a := r.Subscribe(ctx)
	b := r.Subscribe(ctx)

	r.Publish("boom")

	assert.Equal(t, "boom", receive(t, a))
	assert.Equal(t, "boom", receive(t, b))
	assertSilent(t, a)
	assertSilent(t, b)
}

func TestRelayDoesNotReplayToLateSubscribers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := NewRelay[int]()
	early := r.Subscribe(ctx)
	r.Publish(1)
	assert.Equal(t, 1, receive(t, early))

	late := r.Subscribe(ctx)
	assertSilent(t, late)

	r.Publish(2)
	assert.Equal(t, 2, receive(t, early))
	assert.Equal(t, 2, receive(t, late))
}

func TestRelayKeepsOrderForSlowSubscriber(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := NewRelay[int]()
	ch := r.Subscribe(ctx)
	for i := 0; i < 100; i++ {
		r.Publish(i)
	}
	for i := 0; i < 100; i++ {
		require.Equal(t, i, receive(t, ch))
	}
}

func TestRelayCloseEndsSubscriptions(t *testing.T) {
	r := NewRelay[int]()
	ch := r.Subscribe(context.Background())
	r.Close()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription not closed")
	}

	closed := r.Subscribe(context.Background())
	_, ok := <-closed
	assert.False(t, ok)
}

func TestRelayCancelRemovesSubscriber(t *testing.T) {
	r := NewRelay[int]()
	ctx, cancel := context.WithCancel(context.Background())
	ch := r.Subscribe(ctx)
	require.Equal(t, 1, r.Subscribers())

	cancel()
	for range ch {
	}
	assert.Eventually(t, func() bool { return r.Subscribers() == 0 }, time.Second, 5*time.Millisecond)
}
