package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPersisters(t *testing.T) map[string]func() Persister {
	t.Helper()

	fileDir := t.TempDir()
	pebbleDir := filepath.Join(t.TempDir(), "pebble")

	return map[string]func() Persister{
		"file": func() Persister {
			fs, err := NewFileStorage(filepath.Join(fileDir, "state"), filepath.Join(fileDir, "messages"))
			require.NoError(t, err)
			return fs
		},
		"pebble": func() Persister {
			ps, err := NewPebbleStorage(pebbleDir, true)
			require.NoError(t, err)
			return ps
		},
	}
}

func TestPersister_RoundTrip(t *testing.T) {
	for name, open := range newPersisters(t) {
		t.Run(name, func(t *testing.T) {
			p := open()

			q := NewQueue("orders", "/", 0)
			require.NoError(t, p.SaveQueue("/", "orders"))
			require.NoError(t, p.SaveQueue("/", "empty"))
			require.NoError(t, p.SaveQueue("staging", "orders"))

			var msgs []*Message
			for _, payload := range []string{"a", "b", "c"} {
				msg, err := q.Push([]byte(payload))
				require.NoError(t, err)
				require.NoError(t, p.AppendMessage("/", "orders", msg))
				msgs = append(msgs, msg)
			}
			require.NoError(t, p.RemoveMessage("/", "orders", msgs[0]))
			require.NoError(t, p.Close())

			p = open()
			defer p.Close()

			queues, err := p.Load()
			require.NoError(t, err)
			require.Len(t, queues, 3)

			assert.Equal(t, "/", queues[0].VHost)
			assert.Equal(t, "empty", queues[0].Name)
			assert.Empty(t, queues[0].Messages)

			assert.Equal(t, "orders", queues[1].Name)
			require.Len(t, queues[1].Messages, 2)
			assert.Equal(t, "b", string(queues[1].Messages[0].Payload))
			assert.Equal(t, "c", string(queues[1].Messages[1].Payload))
			assert.Equal(t, msgs[1].ID, queues[1].Messages[0].ID)

			assert.Equal(t, "staging", queues[2].VHost)
		})
	}
}

func TestPersister_DeleteQueueDropsMessages(t *testing.T) {
	for name, open := range newPersisters(t) {
		t.Run(name, func(t *testing.T) {
			p := open()
			defer p.Close()

			q := NewQueue("jobs", "/", 0)
			require.NoError(t, p.SaveQueue("/", "jobs"))
			require.NoError(t, p.SaveQueue("/", "jobs2"))
			first, _ := q.Push([]byte("x"))
			second, _ := q.Push([]byte("y"))
			require.NoError(t, p.AppendMessage("/", "jobs", first))
			require.NoError(t, p.AppendMessage("/", "jobs2", second))

			require.NoError(t, p.DeleteQueue("/", "jobs"))

			queues, err := p.Load()
			require.NoError(t, err)
			require.Len(t, queues, 1)
			assert.Equal(t, "jobs2", queues[0].Name)
			assert.Len(t, queues[0].Messages, 1)
		})
	}
}

func TestPersister_ExchangeRoundTrip(t *testing.T) {
	for name, open := range newPersisters(t) {
		t.Run(name, func(t *testing.T) {
			p := open()

			require.NoError(t, p.SaveExchange(ExchangeState{VHost: "/", Name: "logs", Type: "fanout"}))
			require.NoError(t, p.SaveExchange(ExchangeState{
				VHost:    "/",
				Name:     "events",
				Type:     "direct",
				Bindings: map[string][]string{"orders": {"created"}},
			}))
			require.NoError(t, p.SaveExchange(ExchangeState{
				VHost:    "/",
				Name:     "events",
				Type:     "direct",
				Bindings: map[string][]string{"orders": {"created", "paid"}},
			}))
			require.NoError(t, p.SaveExchange(ExchangeState{VHost: "staging", Name: "gone", Type: "direct"}))
			require.NoError(t, p.DeleteExchange("staging", "gone"))
			require.NoError(t, p.Close())

			p = open()
			defer p.Close()

			exchanges, err := p.LoadExchanges()
			require.NoError(t, err)
			require.Len(t, exchanges, 2)
			assert.Equal(t, "events", exchanges[0].Name)
			assert.Equal(t, []string{"created", "paid"}, exchanges[0].Bindings["orders"])
			assert.Equal(t, "logs", exchanges[1].Name)
			assert.Equal(t, "fanout", exchanges[1].Type)
		})
	}
}

func TestFileStorage_DeleteQueueIgnoresStuckMessageFile(t *testing.T) {
	dir := t.TempDir()
	statePath, messagesPath := filepath.Join(dir, "state"), filepath.Join(dir, "messages")
	fs, err := NewFileStorage(statePath, messagesPath)
	require.NoError(t, err)

	q := NewQueue("jobs", "/", 0)
	require.NoError(t, fs.SaveQueue("/", "jobs"))
	msg, _ := q.Push([]byte("x"))
	require.NoError(t, fs.AppendMessage("/", "jobs", msg))

	// a non-empty directory in place of the message file cannot be removed
	path := fs.messagePath(msg.ID)
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.MkdirAll(filepath.Join(path, "pin"), 0o755))

	require.NoError(t, fs.DeleteQueue("/", "jobs"))

	reopened, err := NewFileStorage(statePath, messagesPath)
	require.NoError(t, err)
	queues, err := reopened.Load()
	require.NoError(t, err)
	assert.Empty(t, queues)
}

func TestFileStorage_AppendToUnknownQueue(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStorage(filepath.Join(dir, "state"), filepath.Join(dir, "messages"))
	require.NoError(t, err)

	err = fs.AppendMessage("/", "ghost", &Message{ID: "1"})
	assert.Error(t, err)
}

func TestPrefixEnd(t *testing.T) {
	assert.Equal(t, []byte{'m', 0x01}, prefixEnd([]byte{'m', 0x00}))
	assert.Equal(t, []byte{'n'}, prefixEnd([]byte{'m', 0xff}))
	assert.Nil(t, prefixEnd([]byte{0xff}))
}
