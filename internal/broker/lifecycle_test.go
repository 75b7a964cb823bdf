package broker

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/andrelcunha/ottermq/internal/config"
	"github.com/andrelcunha/ottermq/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedPersister holds every storage call for one queue until release is
// closed, once armed is set. entered reports which call is waiting.
type gatedPersister struct {
	queue   string
	armed   atomic.Bool
	entered chan string
	release chan struct{}
}

func newGatedPersister(queue string) *gatedPersister {
	return &gatedPersister{
		queue:   queue,
		entered: make(chan string, 16),
		release: make(chan struct{}),
	}
}

func (g *gatedPersister) wait(op, queue string) error {
	if g.armed.Load() && queue == g.queue {
		g.entered <- op
		<-g.release
	}
	return nil
}

func (g *gatedPersister) SaveQueue(_, name string) error   { return g.wait("save", name) }
func (g *gatedPersister) DeleteQueue(_, name string) error { return g.wait("delete", name) }
func (g *gatedPersister) AppendMessage(_, queue string, _ *storage.Message) error {
	return g.wait("append", queue)
}
func (g *gatedPersister) RemoveMessage(_, queue string, _ *storage.Message) error {
	return g.wait("remove", queue)
}
func (g *gatedPersister) Load() ([]storage.QueueState, error)             { return nil, nil }
func (g *gatedPersister) SaveExchange(storage.ExchangeState) error        { return nil }
func (g *gatedPersister) DeleteExchange(string, string) error             { return nil }
func (g *gatedPersister) LoadExchanges() ([]storage.ExchangeState, error) { return nil, nil }
func (g *gatedPersister) Close() error                                    { return nil }

func TestBroker_DeleteWaitingOnLaneDoesNotBlockOtherQueues(t *testing.T) {
	g := newGatedPersister("a")
	b := NewBroker(config.Config{}, g)
	for _, name := range []string{"a", "b"} {
		_, err := b.CreateQueue("", name)
		require.NoError(t, err)
		_, err = b.PublishMessage("", name, []byte(name))
		require.NoError(t, err)
	}
	g.armed.Store(true)

	consumed := make(chan Delivery, 1)
	go func() {
		delivery, _ := b.ConsumeMessage("", "a")
		consumed <- delivery
	}()
	require.Equal(t, "remove", <-g.entered)

	deleted := make(chan error, 1)
	go func() { deleted <- b.DeleteQueue("", "a") }()
	require.Eventually(t, func() bool {
		_, err := b.CountMessages("", "a")
		return errors.Is(err, ErrNotFound)
	}, time.Second, 5*time.Millisecond)

	done := make(chan Delivery, 1)
	go func() {
		delivery, _ := b.ConsumeMessage("", "b")
		done <- delivery
	}()
	select {
	case delivery := <-done:
		require.False(t, delivery.Empty)
		assert.Equal(t, "b", string(delivery.Message.Payload))
	case <-time.After(time.Second):
		t.Fatal("consume on queue b waited for the delete of queue a")
	}

	_, err := b.CreateQueue("", "c")
	require.NoError(t, err)
	_, err = b.CreateQueue("", "a")
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Len(t, b.ListQueues(), 2)

	close(g.release)

	delivery := <-consumed
	require.False(t, delivery.Empty)
	assert.Equal(t, "a", string(delivery.Message.Payload))
	require.NoError(t, <-deleted)

	_, err = b.CreateQueue("", "a")
	assert.NoError(t, err)
}

func TestBroker_CreateWaitingOnStorageDoesNotBlockOtherQueues(t *testing.T) {
	g := newGatedPersister("slow")
	b := NewBroker(config.Config{}, g)
	_, err := b.CreateQueue("", "b")
	require.NoError(t, err)
	_, err = b.PublishMessage("", "b", []byte("x"))
	require.NoError(t, err)
	g.armed.Store(true)

	created := make(chan error, 1)
	go func() {
		_, err := b.CreateQueue("", "slow")
		created <- err
	}()
	require.Equal(t, "save", <-g.entered)

	done := make(chan error, 1)
	go func() {
		_, err := b.ConsumeMessage("", "b")
		done <- err
	}()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("consume on queue b waited for the create of queue slow")
	}

	_, err = b.CountMessages("", "slow")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = b.CreateQueue("", "slow")
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Len(t, b.ListQueues(), 1)

	close(g.release)
	require.NoError(t, <-created)

	count, err := b.CountMessages("", "slow")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestBroker_PublishIsHiddenUntilStored(t *testing.T) {
	g := newGatedPersister("jobs")
	b := NewBroker(config.Config{}, g)
	_, err := b.CreateQueue("", "jobs")
	require.NoError(t, err)
	g.armed.Store(true)

	published := make(chan error, 1)
	go func() {
		_, err := b.PublishMessage("", "jobs", []byte("a"))
		published <- err
	}()
	require.Equal(t, "append", <-g.entered)

	count, err := b.CountMessages("", "jobs")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	msgs, err := b.PeekMessages("", "jobs", 1)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	close(g.release)
	require.NoError(t, <-published)

	count, err = b.CountMessages("", "jobs")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
