package broker

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/andrelcunha/ottermq/internal/config"
	"github.com/andrelcunha/ottermq/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBroker(t *testing.T) *Broker {
	t.Helper()
	return NewBroker(config.Config{DefaultVHost: "/"}, nil)
}

func withoutTimes(queues []QueueSummary) []QueueSummary {
	out := make([]QueueSummary, 0, len(queues))
	for _, q := range queues {
		q.CreatedAt = time.Time{}
		out = append(out, q)
	}
	return out
}

func TestBroker_Scenario(t *testing.T) {
	b := newTestBroker(t)

	_, err := b.CreateQueue("", "q1")
	require.NoError(t, err)

	_, err = b.PublishMessage("", "q1", []byte("a"))
	require.NoError(t, err)
	_, err = b.PublishMessage("", "q1", []byte("b"))
	require.NoError(t, err)

	delivery, err := b.ConsumeMessage("", "q1")
	require.NoError(t, err)
	require.False(t, delivery.Empty)
	assert.Equal(t, "a", string(delivery.Message.Payload))

	count, err := b.CountMessages("", "q1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, b.DeleteQueue("", "q1"))

	_, err = b.CountMessages("", "q1")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestBroker_CreateDuplicateKeepsContents(t *testing.T) {
	b := newTestBroker(t)

	_, err := b.CreateQueue("", "orders")
	require.NoError(t, err)
	_, err = b.PublishMessage("", "orders", []byte("first"))
	require.NoError(t, err)

	_, err = b.CreateQueue("", "orders")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadyExists))

	count, err := b.CountMessages("", "orders")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestBroker_SameNameInDifferentVHosts(t *testing.T) {
	b := newTestBroker(t)

	_, err := b.CreateQueue("/", "orders")
	require.NoError(t, err)
	_, err = b.CreateQueue("staging", "orders")
	require.NoError(t, err)

	queues := withoutTimes(b.ListQueues())
	require.Len(t, queues, 2)
	assert.Equal(t, QueueSummary{Name: "orders", VHost: "/", Messages: 0}, queues[0])
	assert.Equal(t, QueueSummary{Name: "orders", VHost: "staging", Messages: 0}, queues[1])
}

func TestBroker_DeleteGhost(t *testing.T) {
	b := newTestBroker(t)

	err := b.DeleteQueue("", "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestBroker_CountAfterPushAndPop(t *testing.T) {
	b := newTestBroker(t)
	_, err := b.CreateQueue("", "jobs")
	require.NoError(t, err)

	for _, p := range []string{"1", "2", "3"} {
		_, err := b.PublishMessage("", "jobs", []byte(p))
		require.NoError(t, err)
	}
	_, err = b.ConsumeMessage("", "jobs")
	require.NoError(t, err)

	count, err := b.CountMessages("", "jobs")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestBroker_ConsumeEmptyIsNotAnError(t *testing.T) {
	b := newTestBroker(t)
	_, err := b.CreateQueue("", "jobs")
	require.NoError(t, err)

	delivery, err := b.ConsumeMessage("", "jobs")
	require.NoError(t, err)
	assert.True(t, delivery.Empty)
	assert.Nil(t, delivery.Message)
}

func TestBroker_InvalidNames(t *testing.T) {
	b := newTestBroker(t)

	_, err := b.CreateQueue("", "   ")
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = b.ConsumeMessage("", "")
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = b.CreateQueue(" \t", "orders")
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = b.PeekMessages("", "orders", 0)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestBroker_NamesAreTrimmed(t *testing.T) {
	b := newTestBroker(t)

	summary, err := b.CreateQueue("", "  orders ")
	require.NoError(t, err)
	assert.Equal(t, "orders", summary.Name)
	assert.Equal(t, "/", summary.VHost)

	_, err = b.PublishMessage("", "orders", []byte("x"))
	assert.NoError(t, err)
}

func TestBroker_CapacityError(t *testing.T) {
	b := NewBroker(config.Config{QueueMaxMessages: 1}, nil)
	_, err := b.CreateQueue("", "small")
	require.NoError(t, err)

	_, err = b.PublishMessage("", "small", []byte("a"))
	require.NoError(t, err)

	_, err = b.PublishMessage("", "small", []byte("b"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCapacity))
}

func TestBroker_PeekMessages(t *testing.T) {
	b := newTestBroker(t)
	_, err := b.CreateQueue("", "jobs")
	require.NoError(t, err)
	for _, p := range []string{"a", "b", "c"} {
		_, _ = b.PublishMessage("", "jobs", []byte(p))
	}

	msgs, err := b.PeekMessages("", "jobs", 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "a", string(msgs[0].Payload))
	assert.Equal(t, "b", string(msgs[1].Payload))

	count, _ := b.CountMessages("", "jobs")
	assert.Equal(t, 3, count)
}

func TestBroker_ConcurrentConsumersGetDistinctMessages(t *testing.T) {
	const consumers = 64
	const messages = 20

	b := newTestBroker(t)
	_, err := b.CreateQueue("", "jobs")
	require.NoError(t, err)
	for i := 0; i < messages; i++ {
		_, err := b.PublishMessage("", "jobs", []byte(fmt.Sprintf("%d", i)))
		require.NoError(t, err)
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	seen := make(map[string]int)
	empty := 0
	start := make(chan struct{})
	var errs []error

	for i := 0; i < consumers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			delivery, err := b.ConsumeMessage("", "jobs")
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if delivery.Empty {
				empty++
				return
			}
			seen[delivery.Message.ID]++
		}()
	}
	close(start)
	wg.Wait()

	require.Empty(t, errs)
	assert.Len(t, seen, messages)
	assert.Equal(t, consumers-messages, empty)
	for id, n := range seen {
		assert.Equal(t, 1, n, "message %s delivered more than once", id)
	}
}

func TestBroker_DeleteWhileConsuming(t *testing.T) {
	const messages = 500

	b := newTestBroker(t)
	_, err := b.CreateQueue("", "jobs")
	require.NoError(t, err)
	for i := 0; i < messages; i++ {
		_, _ = b.PublishMessage("", "jobs", []byte(fmt.Sprintf("%d", i)))
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	delivered := make(map[string]int)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				delivery, err := b.ConsumeMessage("", "jobs")
				if err != nil {
					if !errors.Is(err, ErrNotFound) {
						t.Errorf("unexpected error: %v", err)
					}
					return
				}
				if delivery.Empty {
					return
				}
				mu.Lock()
				delivered[delivery.Message.ID]++
				mu.Unlock()
			}
		}()
	}

	require.NoError(t, b.DeleteQueue("", "jobs"))
	wg.Wait()

	for id, n := range delivered {
		assert.Equal(t, 1, n, "message %s delivered more than once", id)
	}
	assert.LessOrEqual(t, len(delivered), messages)

	_, err = b.ConsumeMessage("", "jobs")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestBroker_RecreateAfterDeleteStartsEmpty(t *testing.T) {
	b := newTestBroker(t)
	_, _ = b.CreateQueue("", "jobs")
	_, _ = b.PublishMessage("", "jobs", []byte("old"))
	require.NoError(t, b.DeleteQueue("", "jobs"))

	_, err := b.CreateQueue("", "jobs")
	require.NoError(t, err)

	delivery, err := b.ConsumeMessage("", "jobs")
	require.NoError(t, err)
	assert.True(t, delivery.Empty)
}

func TestBroker_RestoreFromStorage(t *testing.T) {
	for _, backend := range []string{config.StorageFile, config.StoragePebble} {
		t.Run(backend, func(t *testing.T) {
			cfg := config.Config{
				BrokerStorage:     backend,
				BrokerStoreDir:    filepath.Join(t.TempDir(), "store"),
				BrokerStateDir:    "state",
				BrokerMessagesDir: "messages",
				BrokerPebbleDir:   "pebble",
				BrokerFsync:       true,
				DefaultVHost:      "/",
			}

			persister, err := OpenPersister(cfg)
			require.NoError(t, err)
			b := NewBroker(cfg, persister)
			require.NoError(t, b.Restore())

			_, err = b.CreateQueue("", "orders")
			require.NoError(t, err)
			_, err = b.CreateQueue("", "gone")
			require.NoError(t, err)
			for _, p := range []string{"a", "b", "c"} {
				_, err := b.PublishMessage("", "orders", []byte(p))
				require.NoError(t, err)
			}
			_, err = b.ConsumeMessage("", "orders")
			require.NoError(t, err)
			require.NoError(t, b.DeleteQueue("", "gone"))
			require.NoError(t, b.Close())

			persister, err = OpenPersister(cfg)
			require.NoError(t, err)
			restored := NewBroker(cfg, persister)
			defer restored.Close()
			require.NoError(t, restored.Restore())

			assert.Equal(t, []QueueSummary{{Name: "orders", VHost: "/", Messages: 2}}, withoutTimes(restored.ListQueues()))

			delivery, err := restored.ConsumeMessage("", "orders")
			require.NoError(t, err)
			assert.Equal(t, "b", string(delivery.Message.Payload))

			msg, err := restored.PublishMessage("", "orders", []byte("d"))
			require.NoError(t, err)
			assert.Equal(t, uint64(4), msg.Seq)
		})
	}
}

func TestOpenPersister_UnknownBackend(t *testing.T) {
	_, err := OpenPersister(config.Config{BrokerStorage: "redis"})
	assert.Error(t, err)
}

func TestOpenPersister_Memory(t *testing.T) {
	p, err := OpenPersister(config.Config{BrokerStorage: config.StorageMemory})
	require.NoError(t, err)
	assert.Nil(t, p)
}

// failingPersister fails every mutation after armed is set.
type failingPersister struct {
	armed bool
}

var errDisk = errors.New("disk full")

func (f *failingPersister) fail() error {
	if f.armed {
		return errDisk
	}
	return nil
}

func (f *failingPersister) SaveQueue(string, string) error                       { return f.fail() }
func (f *failingPersister) DeleteQueue(string, string) error                     { return f.fail() }
func (f *failingPersister) AppendMessage(string, string, *storage.Message) error { return f.fail() }
func (f *failingPersister) RemoveMessage(string, string, *storage.Message) error { return f.fail() }
func (f *failingPersister) Load() ([]storage.QueueState, error)                  { return nil, nil }
func (f *failingPersister) SaveExchange(storage.ExchangeState) error             { return f.fail() }
func (f *failingPersister) DeleteExchange(string, string) error                  { return f.fail() }
func (f *failingPersister) LoadExchanges() ([]storage.ExchangeState, error)      { return nil, nil }
func (f *failingPersister) Close() error                                         { return nil }

func TestBroker_PersistenceFailuresAreUndone(t *testing.T) {
	p := &failingPersister{}
	b := NewBroker(config.Config{}, p)

	_, err := b.CreateQueue("", "jobs")
	require.NoError(t, err)
	_, err = b.PublishMessage("", "jobs", []byte("a"))
	require.NoError(t, err)

	p.armed = true

	_, err = b.CreateQueue("", "other")
	assert.ErrorIs(t, err, errDisk)
	assert.Len(t, b.ListQueues(), 1)

	_, err = b.PublishMessage("", "jobs", []byte("b"))
	assert.ErrorIs(t, err, errDisk)

	_, err = b.ConsumeMessage("", "jobs")
	assert.ErrorIs(t, err, errDisk)

	err = b.DeleteQueue("", "jobs")
	assert.ErrorIs(t, err, errDisk)

	p.armed = false

	count, err := b.CountMessages("", "jobs")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	delivery, err := b.ConsumeMessage("", "jobs")
	require.NoError(t, err)
	assert.Equal(t, "a", string(delivery.Message.Payload))
}
