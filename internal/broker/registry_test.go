package broker

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AddGetRemove(t *testing.T) {
	r := NewRegistry(0)

	entry, err := r.Add("/", "orders", nil)
	require.NoError(t, err)

	got, err := r.Get("/", "orders")
	require.NoError(t, err)
	assert.Same(t, entry, got)
	require.Len(t, r.List(), 1)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.Equal(t, entry.CreatedAt, r.List()[0].CreatedAt)

	_, err = r.Get("other", "orders")
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, r.Remove("/", "orders", nil))
	assert.Empty(t, r.List())

	err = r.Remove("/", "orders", nil)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRegistry_AddFailureRegistersNothing(t *testing.T) {
	r := NewRegistry(0)

	_, err := r.Add("/", "orders", func() error { return errors.New("boom") })
	require.Error(t, err)

	_, err = r.Get("/", "orders")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRegistry_RemoveFailureKeepsQueue(t *testing.T) {
	r := NewRegistry(0)
	_, err := r.Add("/", "orders", nil)
	require.NoError(t, err)

	err = r.Remove("/", "orders", func(*Entry) error { return errors.New("boom") })
	require.Error(t, err)

	_, err = r.Get("/", "orders")
	assert.NoError(t, err)
}

func TestRegistry_ListIsSorted(t *testing.T) {
	r := NewRegistry(0)
	for _, q := range []struct{ vhost, name string }{{"b", "z"}, {"/", "m"}, {"b", "a"}, {"/", "c"}} {
		_, err := r.Add(q.vhost, q.name, nil)
		require.NoError(t, err)
	}

	entry, _ := r.Get("/", "c")
	_, _ = entry.Queue.Push([]byte("x"))

	assert.Equal(t, []QueueSummary{
		{Name: "c", VHost: "/", Messages: 1},
		{Name: "m", VHost: "/", Messages: 0},
		{Name: "a", VHost: "b", Messages: 0},
		{Name: "z", VHost: "b", Messages: 0},
	}, withoutTimes(r.List()))
}

func TestRegistry_ConcurrentCreateHasOneWinner(t *testing.T) {
	r := NewRegistry(0)

	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Add("/", "orders", nil); err == nil {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
}

func TestRegistry_ListDuringChurn(t *testing.T) {
	r := NewRegistry(0)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			name := fmt.Sprintf("q%d", i)
			_, _ = r.Add("/", name, nil)
			_ = r.Remove("/", name, nil)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			for _, q := range r.List() {
				assert.Equal(t, "/", q.VHost)
			}
		}
	}()
	wg.Wait()

	assert.Empty(t, r.List())
}
