package broker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinator_RetiredEntryRejectsWork(t *testing.T) {
	r := NewRegistry(0)
	c := NewCoordinator(nil)

	entry, err := r.Add("/", "jobs", nil)
	require.NoError(t, err)

	_, err = c.Accept(entry, []byte("a"))
	require.NoError(t, err)
	_, err = c.Accept(entry, []byte("b"))
	require.NoError(t, err)

	purged, err := c.Retire(entry)
	require.NoError(t, err)
	assert.Equal(t, 2, purged)

	_, err = c.Deliver(entry)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = c.Accept(entry, []byte("c"))
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = c.Retire(entry)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCoordinator_DeliverFollowsAcceptOrder(t *testing.T) {
	r := NewRegistry(0)
	c := NewCoordinator(nil)
	entry, _ := r.Add("/", "jobs", nil)

	for _, p := range []string{"a", "b", "c"} {
		_, err := c.Accept(entry, []byte(p))
		require.NoError(t, err)
	}

	for _, want := range []string{"a", "b", "c"} {
		delivery, err := c.Deliver(entry)
		require.NoError(t, err)
		require.False(t, delivery.Empty)
		assert.Equal(t, want, string(delivery.Message.Payload))
	}

	delivery, err := c.Deliver(entry)
	require.NoError(t, err)
	assert.True(t, delivery.Empty)
}
