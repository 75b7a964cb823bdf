package broker

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/andrelcunha/ottermq/internal/storage"
	"github.com/andrelcunha/ottermq/internal/util"
)

const DefaultVHost = "/"

type entryState int

const (
	entryOpening entryState = iota
	entryOpen
	entryClosing
)

// Entry is a registered queue plus the delivery lane that serializes
// mutations of its contents.
type Entry struct {
	Queue     *storage.Queue
	CreatedAt time.Time

	// state is guarded by the registry lock, closed by the lane.
	state  entryState
	lane   sync.Mutex
	closed bool
}

type QueueSummary struct {
	Name      string    `json:"name"`
	VHost     string    `json:"vhost"`
	Messages  int       `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
}

// Registry maps vhost -> queue name -> Entry. Its lock covers the mapping
// only and is never held across persistence or a lane wait. Names that are
// being created or deleted stay reserved so they cannot be reused meanwhile.
type Registry struct {
	vhosts      map[string]map[string]*Entry
	maxMessages int

	mu sync.RWMutex
}

func NewRegistry(maxMessages int) *Registry {
	return &Registry{
		vhosts:      make(map[string]map[string]*Entry),
		maxMessages: maxMessages,
	}
}

func (r *Registry) setState(e *Entry, state entryState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.state = state
}

func (r *Registry) drop(vhost, name string, e *Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.vhosts[vhost][name] != e {
		return
	}
	delete(r.vhosts[vhost], name)
	if len(r.vhosts[vhost]) == 0 {
		delete(r.vhosts, vhost)
	}
}

func (r *Registry) reserve(vhost, name string) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if util.MapContains(r.vhosts[vhost], name) {
		log.Printf("queue with the name %s already exists in vhost %s", name, vhost)
		return nil, fmt.Errorf("queue with the name %s already exists in vhost %s: %w", name, vhost, ErrAlreadyExists)
	}

	entry := &Entry{
		Queue:     storage.NewQueue(name, vhost, r.maxMessages),
		CreatedAt: time.Now().UTC(),
		state:     entryOpening,
	}
	if r.vhosts[vhost] == nil {
		r.vhosts[vhost] = make(map[string]*Entry)
	}
	r.vhosts[vhost][name] = entry
	return entry, nil
}

// Add registers a new queue. The name is reserved first, then open runs
// without the registry lock; if it fails the reservation is dropped.
func (r *Registry) Add(vhost, name string, open func() error) (*Entry, error) {
	entry, err := r.reserve(vhost, name)
	if err != nil {
		return nil, err
	}

	if open != nil {
		if err := open(); err != nil {
			r.drop(vhost, name, entry)
			return nil, err
		}
	}

	r.setState(entry, entryOpen)
	return entry, nil
}

// Remove unregisters a queue. The entry is hidden from lookups first, then
// retire runs without the registry lock and must leave the entry closed; if
// it fails the queue becomes visible again.
func (r *Registry) Remove(vhost, name string, retire func(*Entry) error) error {
	r.mu.Lock()
	entry, exists := r.vhosts[vhost][name]
	if !exists || entry.state != entryOpen {
		r.mu.Unlock()
		log.Printf("queue with the name %s does not exist in vhost %s", name, vhost)
		return fmt.Errorf("queue with the name %s does not exist in vhost %s: %w", name, vhost, ErrNotFound)
	}
	entry.state = entryClosing
	r.mu.Unlock()

	if retire != nil {
		if err := retire(entry); err != nil {
			r.setState(entry, entryOpen)
			return err
		}
	}

	r.drop(vhost, name, entry)
	return nil
}

func (r *Registry) Get(vhost, name string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.vhosts[vhost][name]
	if !exists || entry.state != entryOpen {
		return nil, fmt.Errorf("queue %s does not exist in vhost %s: %w", name, vhost, ErrNotFound)
	}
	return entry, nil
}

// List returns a summary of every open queue, ordered by vhost then name.
// The set of queues reflects a single point in time.
func (r *Registry) List() []QueueSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	queues := make([]QueueSummary, 0)
	for _, vhost := range util.SortedKeys(r.vhosts) {
		names := r.vhosts[vhost]
		for _, name := range util.SortedKeys(names) {
			entry := names[name]
			if entry.state != entryOpen {
				continue
			}
			queues = append(queues, QueueSummary{
				Name:      name,
				VHost:     vhost,
				Messages:  entry.Queue.Count(),
				CreatedAt: entry.CreatedAt,
			})
		}
	}
	return queues
}

// VHosts returns the names of vhosts that hold at least one open queue.
func (r *Registry) VHosts() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vhosts := make([]string, 0, len(r.vhosts))
	for _, vhost := range util.SortedKeys(r.vhosts) {
		for _, entry := range r.vhosts[vhost] {
			if entry.state == entryOpen {
				vhosts = append(vhosts, vhost)
				break
			}
		}
	}
	return vhosts
}
