package storage

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrCapacity = errors.New("queue capacity exceeded")

type Message struct {
	ID         string    `json:"id"`
	Payload    []byte    `json:"payload"`
	EnqueuedAt time.Time `json:"enqueued_at"`
	Seq        uint64    `json:"seq"`
}

// Queue holds the ordered contents of a single queue. All methods are safe
// for concurrent use.
type Queue struct {
	Name        string
	VHost       string
	MaxMessages int

	messages []*Message
	nextSeq  uint64
	mu       sync.Mutex
}

func NewQueue(name, vhost string, maxMessages int) *Queue {
	return &Queue{
		Name:        name,
		VHost:       vhost,
		MaxMessages: maxMessages,
		messages:    make([]*Message, 0),
		nextSeq:     1,
	}
}

func (q *Queue) prepareLocked(payload []byte) (*Message, error) {
	if q.MaxMessages > 0 && len(q.messages) >= q.MaxMessages {
		return nil, fmt.Errorf("queue %s holds %d messages: %w", q.Name, len(q.messages), ErrCapacity)
	}

	data := make([]byte, len(payload))
	copy(data, payload)

	msg := &Message{
		ID:         uuid.New().String(),
		Payload:    data,
		EnqueuedAt: time.Now().UTC(),
		Seq:        q.nextSeq,
	}
	q.nextSeq++
	return msg, nil
}

// Push appends a copy of payload to the tail of the queue.
func (q *Queue) Push(payload []byte) (*Message, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	msg, err := q.prepareLocked(payload)
	if err != nil {
		return nil, err
	}
	q.messages = append(q.messages, msg)
	return msg, nil
}

// Prepare builds the next message for payload without making it visible.
// Only a single writer may hold a prepared message; it becomes visible with
// Append. A prepared message that is never appended leaves a gap in Seq.
func (q *Queue) Prepare(payload []byte) (*Message, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.prepareLocked(payload)
}

// Append puts a prepared message at the tail.
func (q *Queue) Append(msg *Message) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.messages = append(q.messages, msg)
}

// Head returns the oldest message without removing it.
func (q *Queue) Head() (*Message, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.messages) == 0 {
		return nil, false
	}
	return q.messages[0], true
}

// PopOne removes and returns the head of the queue. It reports false when
// the queue is empty.
func (q *Queue) PopOne() (*Message, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.messages) == 0 {
		return nil, false
	}

	msg := q.messages[0]
	q.messages[0] = nil
	q.messages = q.messages[1:]
	return msg, true
}

func (q *Queue) Count() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.messages)
}

// Peek returns up to n messages from the head without removing them.
func (q *Queue) Peek(n int) []*Message {
	q.mu.Lock()
	defer q.mu.Unlock()

	if n > len(q.messages) {
		n = len(q.messages)
	}

	out := make([]*Message, 0, n)
	for _, msg := range q.messages[:n] {
		clone := *msg
		out = append(out, &clone)
	}
	return out
}

// Purge removes every pending message and returns how many were dropped.
func (q *Queue) Purge() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := len(q.messages)
	q.messages = make([]*Message, 0)
	return n
}

// Restore replaces the contents with msgs, which must already be in
// delivery order. Sequence numbering continues after the highest restored Seq.
func (q *Queue) Restore(msgs []*Message) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.messages = make([]*Message, 0, len(msgs))
	for _, msg := range msgs {
		q.messages = append(q.messages, msg)
		if msg.Seq >= q.nextSeq {
			q.nextSeq = msg.Seq + 1
		}
	}
}
