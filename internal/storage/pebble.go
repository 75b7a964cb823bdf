package storage

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
)

const keySep = 0x00

var (
	queuePrefix    = []byte{'q', keySep}
	messagePrefix  = []byte{'m', keySep}
	exchangePrefix = []byte{'x', keySep}
)

// PebbleStorage keeps queues and their messages in a Pebble database.
// Message keys embed the queue's sequence number big-endian so a prefix scan
// yields delivery order.
type PebbleStorage struct {
	db        *pebble.DB
	writeOpts *pebble.WriteOptions
}

func NewPebbleStorage(dataDir string, fsync bool) (*PebbleStorage, error) {
	if dataDir == "" {
		return nil, errors.New("pebble: data dir is required")
	}

	db, err := pebble.Open(dataDir, &pebble.Options{})
	if err != nil {
		return nil, err
	}

	writeOpts := pebble.NoSync
	if fsync {
		writeOpts = pebble.Sync
	}

	return &PebbleStorage{db: db, writeOpts: writeOpts}, nil
}

func queueKey(vhost, name string) []byte {
	key := append([]byte(nil), queuePrefix...)
	key = append(key, vhost...)
	key = append(key, keySep)
	return append(key, name...)
}

func exchangeKey(vhost, name string) []byte {
	key := append([]byte(nil), exchangePrefix...)
	key = append(key, vhost...)
	key = append(key, keySep)
	return append(key, name...)
}

func queueMessagesPrefix(vhost, name string) []byte {
	key := append([]byte(nil), messagePrefix...)
	key = append(key, vhost...)
	key = append(key, keySep)
	key = append(key, name...)
	return append(key, keySep)
}

func messageKey(vhost, name string, seq uint64) []byte {
	key := queueMessagesPrefix(vhost, name)
	return binary.BigEndian.AppendUint64(key, seq)
}

// prefixEnd returns the smallest key greater than every key with prefix p.
func prefixEnd(p []byte) []byte {
	end := append([]byte(nil), p...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

func (p *PebbleStorage) SaveQueue(vhost, name string) error {
	return p.db.Set(queueKey(vhost, name), []byte{}, p.writeOpts)
}

func (p *PebbleStorage) DeleteQueue(vhost, name string) error {
	b := p.db.NewBatch()
	defer b.Close()

	prefix := queueMessagesPrefix(vhost, name)
	if err := b.DeleteRange(prefix, prefixEnd(prefix), nil); err != nil {
		return err
	}
	if err := b.Delete(queueKey(vhost, name), nil); err != nil {
		return err
	}
	return b.Commit(p.writeOpts)
}

func (p *PebbleStorage) AppendMessage(vhost, queue string, msg *Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.db.Set(messageKey(vhost, queue, msg.Seq), data, p.writeOpts)
}

func (p *PebbleStorage) RemoveMessage(vhost, queue string, msg *Message) error {
	return p.db.Delete(messageKey(vhost, queue, msg.Seq), p.writeOpts)
}

func (p *PebbleStorage) Load() ([]QueueState, error) {
	iter, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: queuePrefix,
		UpperBound: prefixEnd(queuePrefix),
	})
	if err != nil {
		return nil, err
	}

	queues := make([]QueueState, 0)
	for iter.First(); iter.Valid(); iter.Next() {
		parts := bytes.SplitN(iter.Key()[len(queuePrefix):], []byte{keySep}, 2)
		if len(parts) != 2 {
			_ = iter.Close()
			return nil, fmt.Errorf("pebble: malformed queue key %q", iter.Key())
		}
		queues = append(queues, QueueState{VHost: string(parts[0]), Name: string(parts[1])})
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	for i := range queues {
		msgs, err := p.loadMessages(queues[i].VHost, queues[i].Name)
		if err != nil {
			return nil, err
		}
		queues[i].Messages = msgs
	}

	sortQueueStates(queues)
	return queues, nil
}

func (p *PebbleStorage) loadMessages(vhost, name string) ([]*Message, error) {
	prefix := queueMessagesPrefix(vhost, name)
	iter, err := p.db.NewIter(&pebble.IterOptions{LowerBound: prefix, UpperBound: prefixEnd(prefix)})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	msgs := make([]*Message, 0)
	for iter.First(); iter.Valid(); iter.Next() {
		var msg Message
		if err := json.Unmarshal(iter.Value(), &msg); err != nil {
			return nil, err
		}
		msgs = append(msgs, &msg)
	}
	return msgs, iter.Error()
}

func (p *PebbleStorage) SaveExchange(state ExchangeState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return p.db.Set(exchangeKey(state.VHost, state.Name), data, p.writeOpts)
}

func (p *PebbleStorage) DeleteExchange(vhost, name string) error {
	return p.db.Delete(exchangeKey(vhost, name), p.writeOpts)
}

func (p *PebbleStorage) LoadExchanges() ([]ExchangeState, error) {
	iter, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: exchangePrefix,
		UpperBound: prefixEnd(exchangePrefix),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	exchanges := make([]ExchangeState, 0)
	for iter.First(); iter.Valid(); iter.Next() {
		var state ExchangeState
		if err := json.Unmarshal(iter.Value(), &state); err != nil {
			return nil, err
		}
		exchanges = append(exchanges, state)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}

	sortExchangeStates(exchanges)
	return exchanges, nil
}

func (p *PebbleStorage) Close() error {
	if p == nil || p.db == nil {
		return nil
	}
	return p.db.Close()
}
