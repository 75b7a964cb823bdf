package broker

import (
	"sort"
	"sync"

	"github.com/andrelcunha/ottermq/internal/storage"
	"github.com/andrelcunha/ottermq/internal/util"
)

// DefaultExchange exists in every vhost. It is a direct exchange with an
// implicit binding from each queue name to that queue.
const DefaultExchange = "amq.default"

// Exchange is never modified after it is published to the table; changes
// build a new value.
type Exchange struct {
	Name  string
	VHost string
	Type  storage.ExchangeType

	// queue name -> routing keys, sorted
	bindings map[string][]string
}

type ExchangeSummary struct {
	Name  string `json:"name"`
	VHost string `json:"vhost"`
	Type  string `json:"type"`
}

type Binding struct {
	VHost      string `json:"vhost"`
	Exchange   string `json:"exchange"`
	Queue      string `json:"queue"`
	RoutingKey string `json:"routing_key"`
}

// Routed is a message placed in a queue by Publish.
type Routed struct {
	Queue   string
	Message *storage.Message
}

func exchangeFromState(state storage.ExchangeState) (*Exchange, error) {
	typ, err := storage.NewExchangeType(state.Type)
	if err != nil {
		return nil, err
	}

	x := &Exchange{Name: state.Name, VHost: state.VHost, Type: typ, bindings: make(map[string][]string)}
	for queue, keys := range state.Bindings {
		x.bindings[queue] = append([]string(nil), keys...)
		sort.Strings(x.bindings[queue])
	}
	return x, nil
}

func (x *Exchange) state() storage.ExchangeState {
	bindings := make(map[string][]string, len(x.bindings))
	for queue, keys := range x.bindings {
		bindings[queue] = append([]string(nil), keys...)
	}
	return storage.ExchangeState{VHost: x.VHost, Name: x.Name, Type: x.Type.String(), Bindings: bindings}
}

func (x *Exchange) summary() ExchangeSummary {
	return ExchangeSummary{Name: x.Name, VHost: x.VHost, Type: x.Type.String()}
}

func (x *Exchange) clone() *Exchange {
	next := &Exchange{Name: x.Name, VHost: x.VHost, Type: x.Type, bindings: make(map[string][]string, len(x.bindings))}
	for queue, keys := range x.bindings {
		next.bindings[queue] = keys
	}
	return next
}

func (x *Exchange) hasBinding(queue, key string) bool {
	for _, k := range x.bindings[queue] {
		if k == key {
			return true
		}
	}
	return false
}

func (x *Exchange) withBinding(queue, key string) *Exchange {
	next := x.clone()
	keys := append(append([]string(nil), x.bindings[queue]...), key)
	sort.Strings(keys)
	next.bindings[queue] = keys
	return next
}

func (x *Exchange) withoutBinding(queue, key string) (*Exchange, bool) {
	if !x.hasBinding(queue, key) {
		return nil, false
	}

	next := x.clone()
	keys := make([]string, 0, len(x.bindings[queue])-1)
	for _, k := range x.bindings[queue] {
		if k != key {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		delete(next.bindings, queue)
	} else {
		next.bindings[queue] = keys
	}
	return next, true
}

func (x *Exchange) withoutQueue(queue string) (*Exchange, bool) {
	if !util.MapContains(x.bindings, queue) {
		return nil, false
	}

	next := x.clone()
	delete(next.bindings, queue)
	return next, true
}

// Route returns the queues a message with routingKey is delivered to, sorted
// by name. Fanout ignores the key.
func (x *Exchange) Route(routingKey string) []string {
	queues := make([]string, 0)
	for _, queue := range util.SortedKeys(x.bindings) {
		if x.Type == storage.Fanout || x.hasBinding(queue, routingKey) {
			queues = append(queues, queue)
		}
	}
	return queues
}

func (x *Exchange) Bindings() []Binding {
	bindings := make([]Binding, 0)
	for _, queue := range util.SortedKeys(x.bindings) {
		for _, key := range x.bindings[queue] {
			bindings = append(bindings, Binding{VHost: x.VHost, Exchange: x.Name, Queue: queue, RoutingKey: key})
		}
	}
	return bindings
}

// ExchangeTable holds the declared exchanges of every vhost. write serializes
// changes and their persistence; mu only guards swapping snapshots in, so
// routing never waits on storage.
type ExchangeTable struct {
	vhosts map[string]map[string]*Exchange

	write sync.Mutex
	mu    sync.RWMutex
}

func NewExchangeTable() *ExchangeTable {
	return &ExchangeTable{vhosts: make(map[string]map[string]*Exchange)}
}

func (t *ExchangeTable) Get(vhost, name string) (*Exchange, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	x, ok := t.vhosts[vhost][name]
	return x, ok
}

func (t *ExchangeTable) put(x *Exchange) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.vhosts[x.VHost] == nil {
		t.vhosts[x.VHost] = make(map[string]*Exchange)
	}
	t.vhosts[x.VHost][x.Name] = x
}

func (t *ExchangeTable) remove(vhost, name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.vhosts[vhost], name)
	if len(t.vhosts[vhost]) == 0 {
		delete(t.vhosts, vhost)
	}
}

// InVHost returns the exchanges of vhost sorted by name.
func (t *ExchangeTable) InVHost(vhost string) []*Exchange {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := t.vhosts[vhost]
	exchanges := make([]*Exchange, 0, len(names))
	for _, name := range util.SortedKeys(names) {
		exchanges = append(exchanges, names[name])
	}
	return exchanges
}

func (t *ExchangeTable) VHosts() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return util.SortedKeys(t.vhosts)
}
