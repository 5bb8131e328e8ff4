package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	Left  *[]string
	Right *[]string
}

func TestCreateSelector2IsMemoizedByInputIdentity(t *testing.T) {
	calls := 0
	merged := CreateSelector2(
		func(p pair) *[]string { return p.Left },
		func(p pair) *[]string { return p.Right },
		func(l, r *[]string) []string {
			calls++
			return append(append([]string{}, *l...), *r...)
		},
	)

	left, right := &[]string{"q1", "q2"}, &[]string{"r1"}
	first := merged(pair{left, right})
	second := merged(pair{left, right})

	assert.Equal(t, []string{"q1", "q2", "r1"}, first)
	assert.Equal(t, 1, calls)
	assert.True(t, Same(first, second))

	third := merged(pair{left, &[]string{"r2"}})
	assert.Equal(t, 2, calls)
	assert.Equal(t, []string{"q1", "q2", "r2"}, third)
}

func TestCreateSelectorComposes(t *testing.T) {
	calls := 0
	value := CreateSelector(func(c *counter) *counter { return c }, func(c *counter) int {
		calls++
		return c.Value * 2
	})
	c := &counter{Value: 4}
	assert.Equal(t, 8, value(c))
	assert.Equal(t, 8, value(c))
	assert.Equal(t, 1, calls)
}

func TestSame(t *testing.T) {
	s := []int{1, 2}
	p := &counter{}
	tests := []struct {
		name string
		same bool
		got  bool
	}{
		{"equal ints", true, Same(1, 1)},
		{"different ints", false, Same(1, 2)},
		{"same pointer", true, Same(p, p)},
		{"different pointers", false, Same(p, &counter{})},
		{"same slice header", true, Same(s, s)},
		{"copied slice", false, Same(s, append([]int(nil), s...))},
		{"nil interfaces", true, Same[Action](nil, nil)},
		{"equal interface values", true, Same[Action](increment{By: 1}, increment{By: 1})},
		{"different interface types", false, Same[Action](increment{}, note{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.same, tt.got)
		})
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	r := NewRegistry()
	Register[increment](r)
	Register[fetch](r)

	raw, err := Encode(increment{By: 7})
	require.NoError(t, err)

	var m Message
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, Kind("[Counter] Increment"), m.Type)

	a, err := r.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, increment{By: 7}, a)

	a, err = r.Decode([]byte(`{"type":"[Counter] Fetch"}`))
	require.NoError(t, err)
	_, remote := a.(RemoteRequest)
	assert.True(t, remote)

	assert.Equal(t, []Kind{"[Counter] Fetch", "[Counter] Increment"}, r.Kinds())
}

func TestRegistryRejectsUnknownAndMalformed(t *testing.T) {
	r := NewRegistry()
	Register[increment](r)

	_, err := r.Decode([]byte(`{"type":"[Counter] Nope"}`))
	assert.True(t, errors.Is(err, ErrUnknownAction))

	_, err = r.Decode([]byte(`{"type":"[Counter] Increment","payload":{"by":"x"}}`))
	assert.Error(t, err)

	_, err = r.Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestStreamHelpers(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	v, err := Map(Of(21), func(i int) int { return i * 2 }).First(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	st := newCounterStore(t)
	even := Filter(Select(st, func(c *counter) int { return c.Value }), func(i int) bool { return i > 0 && i%2 == 0 })
	ch := even.Subscribe(ctx)
	st.Dispatch(increment{By: 1})
	st.Dispatch(increment{By: 1})
	assert.Equal(t, 2, next(t, ch))

	var empty Stream[int]
	_, err = empty.First(ctx)
	assert.True(t, errors.Is(err, ErrStreamClosed))
}
