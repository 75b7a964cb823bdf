package broker

import (
	"fmt"
	"log"

	"github.com/andrelcunha/ottermq/internal/storage"
)

// Delivery is the outcome of a consume poll. Empty is set when the queue had
// no message at poll time; it is not an error.
type Delivery struct {
	Message *storage.Message
	Empty   bool
}

// Coordinator runs every push and pop of a queue inside that queue's lane, so
// each message is handed to exactly one caller and a deleted queue never
// accepts or yields messages.
type Coordinator struct {
	persister storage.Persister
}

func NewCoordinator(persister storage.Persister) *Coordinator {
	return &Coordinator{persister: persister}
}

func closedQueueErr(e *Entry) error {
	return fmt.Errorf("queue %s does not exist in vhost %s: %w", e.Queue.Name, e.Queue.VHost, ErrNotFound)
}

// Deliver pops the head of the queue without waiting for new messages. With
// a persister the removal is stored before the message leaves the queue.
func (c *Coordinator) Deliver(e *Entry) (Delivery, error) {
	e.lane.Lock()
	defer e.lane.Unlock()

	if e.closed {
		return Delivery{}, closedQueueErr(e)
	}

	if c.persister == nil {
		msg, ok := e.Queue.PopOne()
		if !ok {
			return Delivery{Empty: true}, nil
		}
		return Delivery{Message: msg}, nil
	}

	// the lane is the only remover, so the head stays put until PopOne
	msg, ok := e.Queue.Head()
	if !ok {
		return Delivery{Empty: true}, nil
	}
	if err := c.persister.RemoveMessage(e.Queue.VHost, e.Queue.Name, msg); err != nil {
		log.Printf("error saving broker state %s, message %s stays in queue %s", err.Error(), msg.ID, e.Queue.Name)
		return Delivery{}, err
	}
	e.Queue.PopOne()

	return Delivery{Message: msg}, nil
}

// Accept appends payload to the tail of the queue. With a persister the
// message becomes visible only after it is stored.
func (c *Coordinator) Accept(e *Entry, payload []byte) (*storage.Message, error) {
	e.lane.Lock()
	defer e.lane.Unlock()

	if e.closed {
		return nil, closedQueueErr(e)
	}

	if c.persister == nil {
		msg, err := e.Queue.Push(payload)
		if err != nil {
			log.Printf("error enqueuing message to queue %s: %v", e.Queue.Name, err)
			return nil, err
		}
		return msg, nil
	}

	msg, err := e.Queue.Prepare(payload)
	if err != nil {
		log.Printf("error enqueuing message to queue %s: %v", e.Queue.Name, err)
		return nil, err
	}
	if err := c.persister.AppendMessage(e.Queue.VHost, e.Queue.Name, msg); err != nil {
		log.Printf("error saving message %s %s, queue %s unchanged", msg.ID, err.Error(), e.Queue.Name)
		return nil, err
	}
	e.Queue.Append(msg)

	return msg, nil
}

// Retire waits for in-flight lane holders, drops the persisted queue, closes
// the entry and purges its messages.
func (c *Coordinator) Retire(e *Entry) (int, error) {
	e.lane.Lock()
	defer e.lane.Unlock()

	if e.closed {
		return 0, closedQueueErr(e)
	}

	if c.persister != nil {
		if err := c.persister.DeleteQueue(e.Queue.VHost, e.Queue.Name); err != nil {
			log.Printf("error deleting queue %s from broker storage %s", e.Queue.Name, err.Error())
			return 0, err
		}
	}

	e.closed = true
	return e.Queue.Purge(), nil
}
