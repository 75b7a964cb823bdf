package broker

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/andrelcunha/ottermq/internal/config"
	"github.com/andrelcunha/ottermq/internal/storage"
	"github.com/andrelcunha/ottermq/internal/util"
)

// Broker is the service facade over the queue registry and the delivery
// coordinator.
type Broker struct {
	Config config.Config

	registry    *Registry
	exchanges   *ExchangeTable
	coordinator *Coordinator
	persister   storage.Persister
}

// OpenPersister opens the storage backend selected by cfg.BrokerStorage.
// The memory backend has no persister.
func OpenPersister(cfg config.Config) (storage.Persister, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	storeDir := cfg.BrokerStoreDir
	if !filepath.IsAbs(storeDir) {
		storeDir = filepath.Join(cwd, storeDir)
	}

	switch cfg.BrokerStorage {
	case "", config.StorageMemory:
		return nil, nil
	case config.StorageFile:
		fs, err := storage.NewFileStorage(
			filepath.Join(storeDir, cfg.BrokerStateDir),
			filepath.Join(storeDir, cfg.BrokerMessagesDir),
		)
		if err != nil {
			return nil, err
		}
		return fs, nil
	case config.StoragePebble:
		ps, err := storage.NewPebbleStorage(filepath.Join(storeDir, cfg.BrokerPebbleDir), cfg.BrokerFsync)
		if err != nil {
			return nil, err
		}
		return ps, nil
	default:
		return nil, fmt.Errorf("storage backend %s is not valid", cfg.BrokerStorage)
	}
}

func NewBroker(cfg config.Config, persister storage.Persister) *Broker {
	if cfg.DefaultVHost == "" {
		cfg.DefaultVHost = DefaultVHost
	}

	return &Broker{
		Config:      cfg,
		registry:    NewRegistry(cfg.QueueMaxMessages),
		exchanges:   NewExchangeTable(),
		coordinator: NewCoordinator(persister),
		persister:   persister,
	}
}

// Restore rebuilds the registry from the persister. It must run before the
// broker serves requests.
func (b *Broker) Restore() error {
	if b.persister == nil {
		return nil
	}

	log.Println("restoring broker state on startup")
	queues, err := b.persister.Load()
	if err != nil {
		return err
	}

	for _, state := range queues {
		entry, err := b.registry.Add(state.VHost, state.Name, nil)
		if err != nil {
			return err
		}
		entry.Queue.Restore(state.Messages)
		log.Printf("queue %s restored in vhost %s with %d messages", state.Name, state.VHost, len(state.Messages))
	}

	exchanges, err := b.persister.LoadExchanges()
	if err != nil {
		return err
	}
	for _, state := range exchanges {
		x, err := exchangeFromState(state)
		if err != nil {
			return err
		}
		for queue := range x.bindings {
			if _, err := b.registry.Get(x.VHost, queue); err != nil {
				log.Printf("dropping binding of missing queue %s from exchange %s", queue, x.Name)
				delete(x.bindings, queue)
			}
		}
		b.exchanges.put(x)
		log.Printf("exchange %s restored in vhost %s", x.Name, x.VHost)
	}

	return nil
}

func (b *Broker) Close() error {
	if b.persister == nil {
		return nil
	}
	return b.persister.Close()
}

func (b *Broker) resolve(vhost, name string) (string, string, error) {
	return b.resolveNamed("queue", vhost, name)
}

func (b *Broker) resolveNamed(kind, vhost, name string) (string, string, error) {
	name, ok := util.NormalizeName(name)
	if !ok {
		log.Printf("%s name %q is not valid", kind, name)
		return "", "", fmt.Errorf("%s name %q is not valid: %w", kind, name, ErrInvalidArgument)
	}

	if vhost == "" {
		return b.Config.DefaultVHost, name, nil
	}
	vhost, ok = util.NormalizeName(vhost)
	if !ok {
		log.Printf("vhost %q is not valid", vhost)
		return "", "", fmt.Errorf("vhost %q is not valid: %w", vhost, ErrInvalidArgument)
	}
	return vhost, name, nil
}

func (b *Broker) lookup(vhost, name string) (*Entry, error) {
	vhost, name, err := b.resolve(vhost, name)
	if err != nil {
		return nil, err
	}

	entry, err := b.registry.Get(vhost, name)
	if err != nil {
		log.Printf("queue %s does not exist in vhost %s", name, vhost)
		return nil, err
	}
	return entry, nil
}

func (b *Broker) ListQueues() []QueueSummary {
	return b.registry.List()
}

func (b *Broker) CreateQueue(vhost, name string) (QueueSummary, error) {
	vhost, name, err := b.resolve(vhost, name)
	if err != nil {
		return QueueSummary{}, err
	}

	entry, err := b.registry.Add(vhost, name, func() error {
		if b.persister == nil {
			return nil
		}
		if err := b.persister.SaveQueue(vhost, name); err != nil {
			log.Printf("error saving broker state %s, queue %s not created", err.Error(), name)
			return err
		}
		return nil
	})
	if err != nil {
		return QueueSummary{}, err
	}

	log.Printf("queue %s created in vhost %s", name, vhost)
	return QueueSummary{Name: name, VHost: vhost, Messages: 0, CreatedAt: entry.CreatedAt}, nil
}

func (b *Broker) DeleteQueue(vhost, name string) error {
	vhost, name, err := b.resolve(vhost, name)
	if err != nil {
		return err
	}

	var purged int
	err = b.registry.Remove(vhost, name, func(e *Entry) error {
		n, err := b.coordinator.Retire(e)
		purged = n
		return err
	})
	if err != nil {
		return err
	}

	log.Printf("queue %s removed from vhost %s, %d pending messages dropped", name, vhost, purged)
	b.unbindQueue(vhost, name)
	return nil
}

// unbindQueue drops every binding of a deleted queue. The queue is already
// gone, so storage failures are only logged.
func (b *Broker) unbindQueue(vhost, queue string) {
	b.exchanges.write.Lock()
	defer b.exchanges.write.Unlock()

	for _, x := range b.exchanges.InVHost(vhost) {
		next, ok := x.withoutQueue(queue)
		if !ok {
			continue
		}
		if b.persister != nil {
			if err := b.persister.SaveExchange(next.state()); err != nil {
				log.Printf("error saving exchange %s after removing queue %s: %v", x.Name, queue, err)
			}
		}
		b.exchanges.put(next)
	}
}

func (b *Broker) CountMessages(vhost, name string) (int, error) {
	entry, err := b.lookup(vhost, name)
	if err != nil {
		return 0, err
	}
	return entry.Queue.Count(), nil
}

// ConsumeMessage removes and returns the head message of a queue. It never
// waits: an empty queue yields a Delivery with Empty set.
func (b *Broker) ConsumeMessage(vhost, name string) (Delivery, error) {
	entry, err := b.lookup(vhost, name)
	if err != nil {
		return Delivery{}, err
	}

	delivery, err := b.coordinator.Deliver(entry)
	if err != nil {
		return Delivery{}, err
	}
	if !delivery.Empty {
		log.Printf("message %s consumed from queue %s", delivery.Message.ID, entry.Queue.Name)
	}
	return delivery, nil
}

func (b *Broker) PublishMessage(vhost, name string, payload []byte) (*storage.Message, error) {
	entry, err := b.lookup(vhost, name)
	if err != nil {
		return nil, err
	}

	msg, err := b.coordinator.Accept(entry, payload)
	if err != nil {
		return nil, err
	}

	log.Printf("message %s published to queue %s", msg.ID, entry.Queue.Name)
	return msg, nil
}

// PeekMessages returns up to n messages from the head of a queue without
// consuming them.
func (b *Broker) PeekMessages(vhost, name string, n int) ([]*storage.Message, error) {
	if n <= 0 {
		log.Printf("message count %d is not valid", n)
		return nil, fmt.Errorf("message count %d is not valid: %w", n, ErrInvalidArgument)
	}

	entry, err := b.lookup(vhost, name)
	if err != nil {
		return nil, err
	}
	return entry.Queue.Peek(n), nil
}

// resolveExchange treats an empty exchange name as the default exchange.
func (b *Broker) resolveExchange(vhost, name string) (string, string, error) {
	if name == "" {
		name = DefaultExchange
	}
	return b.resolveNamed("exchange", vhost, name)
}

func reservedExchangeErr(name string) error {
	log.Printf("exchange %s is managed by the broker", name)
	return fmt.Errorf("exchange %s is managed by the broker: %w", name, ErrInvalidArgument)
}

// ListExchanges returns the default exchange of every vhost in use plus the
// declared exchanges, ordered by vhost then name.
func (b *Broker) ListExchanges() []ExchangeSummary {
	vhosts := map[string]bool{b.Config.DefaultVHost: true}
	for _, vhost := range b.registry.VHosts() {
		vhosts[vhost] = true
	}
	for _, vhost := range b.exchanges.VHosts() {
		vhosts[vhost] = true
	}

	exchanges := make([]ExchangeSummary, 0)
	for _, vhost := range util.SortedKeys(vhosts) {
		declared := b.exchanges.InVHost(vhost)
		summaries := make([]ExchangeSummary, 0, len(declared)+1)
		summaries = append(summaries, ExchangeSummary{Name: DefaultExchange, VHost: vhost, Type: storage.Direct.String()})
		for _, x := range declared {
			summaries = append(summaries, x.summary())
		}
		sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
		exchanges = append(exchanges, summaries...)
	}
	return exchanges
}

func (b *Broker) CreateExchange(vhost, name, kind string) (ExchangeSummary, error) {
	vhost, name, err := b.resolveNamed("exchange", vhost, name)
	if err != nil {
		return ExchangeSummary{}, err
	}
	if name == DefaultExchange {
		return ExchangeSummary{}, reservedExchangeErr(name)
	}

	if kind == "" {
		kind = storage.Direct.String()
	}
	typ, err := storage.NewExchangeType(kind)
	if err != nil {
		log.Println(err.Error())
		return ExchangeSummary{}, fmt.Errorf("%v: %w", err, ErrInvalidArgument)
	}

	b.exchanges.write.Lock()
	defer b.exchanges.write.Unlock()

	if _, exists := b.exchanges.Get(vhost, name); exists {
		log.Printf("exchange with the name %s already exists in vhost %s", name, vhost)
		return ExchangeSummary{}, fmt.Errorf("exchange with the name %s already exists in vhost %s: %w", name, vhost, ErrAlreadyExists)
	}

	x := &Exchange{Name: name, VHost: vhost, Type: typ, bindings: make(map[string][]string)}
	if b.persister != nil {
		if err := b.persister.SaveExchange(x.state()); err != nil {
			log.Printf("error saving broker state %s, exchange %s not created", err.Error(), name)
			return ExchangeSummary{}, err
		}
	}
	b.exchanges.put(x)

	log.Printf("exchange %s of type %s created in vhost %s", name, typ, vhost)
	return x.summary(), nil
}

func (b *Broker) DeleteExchange(vhost, name string) error {
	vhost, name, err := b.resolveNamed("exchange", vhost, name)
	if err != nil {
		return err
	}
	if name == DefaultExchange {
		return reservedExchangeErr(name)
	}

	b.exchanges.write.Lock()
	defer b.exchanges.write.Unlock()

	if _, exists := b.exchanges.Get(vhost, name); !exists {
		log.Printf("exchange with the name %s does not exist in vhost %s", name, vhost)
		return fmt.Errorf("exchange with the name %s does not exist in vhost %s: %w", name, vhost, ErrNotFound)
	}

	if b.persister != nil {
		if err := b.persister.DeleteExchange(vhost, name); err != nil {
			log.Printf("error deleting exchange %s from broker storage %s", name, err.Error())
			return err
		}
	}
	b.exchanges.remove(vhost, name)

	log.Printf("exchange %s removed from vhost %s", name, vhost)
	return nil
}

// lookupExchange must be called with the exchange write lock held.
func (b *Broker) lookupExchange(vhost, name string) (*Exchange, error) {
	x, exists := b.exchanges.Get(vhost, name)
	if !exists {
		log.Printf("exchange %s does not exist in vhost %s", name, vhost)
		return nil, fmt.Errorf("exchange %s does not exist in vhost %s: %w", name, vhost, ErrNotFound)
	}
	return x, nil
}

func (b *Broker) BindQueue(vhost, exchange, queue, routingKey string) error {
	vhost, exchange, err := b.resolveNamed("exchange", vhost, exchange)
	if err != nil {
		return err
	}
	if _, queue, err = b.resolve(vhost, queue); err != nil {
		return err
	}
	if exchange == DefaultExchange {
		return reservedExchangeErr(exchange)
	}

	b.exchanges.write.Lock()
	defer b.exchanges.write.Unlock()

	x, err := b.lookupExchange(vhost, exchange)
	if err != nil {
		return err
	}
	if _, err := b.registry.Get(vhost, queue); err != nil {
		log.Printf("queue %s does not exist for exchange %s", queue, exchange)
		return err
	}
	if x.Type == storage.Direct && routingKey == "" {
		log.Printf("routing key is required for direct exchange %s", exchange)
		return fmt.Errorf("routing key is required for direct exchange %s: %w", exchange, ErrInvalidArgument)
	}
	if x.hasBinding(queue, routingKey) {
		log.Printf("queue %s is already bound to exchange %s with the routing key %s", queue, exchange, routingKey)
		return fmt.Errorf("queue %s is already bound to exchange %s with the routing key %s: %w", queue, exchange, routingKey, ErrAlreadyExists)
	}

	next := x.withBinding(queue, routingKey)
	if b.persister != nil {
		if err := b.persister.SaveExchange(next.state()); err != nil {
			log.Printf("error saving broker state %s, queue %s not bound", err.Error(), queue)
			return err
		}
	}
	b.exchanges.put(next)

	log.Printf("queue %s is bound to exchange %s with the routing key %s", queue, exchange, routingKey)
	return nil
}

func (b *Broker) UnbindQueue(vhost, exchange, queue, routingKey string) error {
	vhost, exchange, err := b.resolveNamed("exchange", vhost, exchange)
	if err != nil {
		return err
	}
	if _, queue, err = b.resolve(vhost, queue); err != nil {
		return err
	}
	if exchange == DefaultExchange {
		return reservedExchangeErr(exchange)
	}

	b.exchanges.write.Lock()
	defer b.exchanges.write.Unlock()

	x, err := b.lookupExchange(vhost, exchange)
	if err != nil {
		return err
	}
	next, ok := x.withoutBinding(queue, routingKey)
	if !ok {
		log.Printf("queue %s is not bound to exchange %s with the routing key %s", queue, exchange, routingKey)
		return fmt.Errorf("queue %s is not bound to exchange %s with the routing key %s: %w", queue, exchange, routingKey, ErrNotFound)
	}

	if b.persister != nil {
		if err := b.persister.SaveExchange(next.state()); err != nil {
			log.Printf("error saving broker state %s, queue %s stays bound", err.Error(), queue)
			return err
		}
	}
	b.exchanges.put(next)

	log.Printf("queue %s is unbound from exchange %s with the routing key %s", queue, exchange, routingKey)
	return nil
}

// ListBindings returns the bindings of an exchange ordered by queue then
// routing key. The default exchange reports its implicit bindings.
func (b *Broker) ListBindings(vhost, exchange string) ([]Binding, error) {
	vhost, exchange, err := b.resolveExchange(vhost, exchange)
	if err != nil {
		return nil, err
	}

	if exchange == DefaultExchange {
		bindings := make([]Binding, 0)
		for _, q := range b.registry.List() {
			if q.VHost == vhost {
				bindings = append(bindings, Binding{VHost: vhost, Exchange: exchange, Queue: q.Name, RoutingKey: q.Name})
			}
		}
		return bindings, nil
	}

	x, exists := b.exchanges.Get(vhost, exchange)
	if !exists {
		log.Printf("exchange %s does not exist in vhost %s", exchange, vhost)
		return nil, fmt.Errorf("exchange %s does not exist in vhost %s: %w", exchange, vhost, ErrNotFound)
	}
	return x.Bindings(), nil
}

// Publish routes payload through an exchange and appends a copy to every
// matching queue in queue name order. A message that matches no queue is
// dropped and yields no Routed entries. If appending to one queue fails the
// queues before it keep their copy.
func (b *Broker) Publish(vhost, exchange, routingKey string, payload []byte) ([]Routed, error) {
	vhost, exchange, err := b.resolveExchange(vhost, exchange)
	if err != nil {
		return nil, err
	}

	var targets []string
	if exchange == DefaultExchange {
		if routingKey != "" {
			targets = []string{routingKey}
		}
	} else {
		x, exists := b.exchanges.Get(vhost, exchange)
		if !exists {
			log.Printf("exchange %s does not exist in vhost %s", exchange, vhost)
			return nil, fmt.Errorf("exchange %s does not exist in vhost %s: %w", exchange, vhost, ErrNotFound)
		}
		targets = x.Route(routingKey)
	}

	routed := make([]Routed, 0, len(targets))
	for _, queue := range targets {
		entry, err := b.registry.Get(vhost, queue)
		if err != nil {
			continue
		}
		msg, err := b.coordinator.Accept(entry, payload)
		if err != nil {
			return routed, err
		}
		log.Printf("route-queue %s-%s is enqueued with message %s", routingKey, queue, msg.ID)
		routed = append(routed, Routed{Queue: queue, Message: msg})
	}

	if len(routed) == 0 {
		log.Printf("no queue is bound to exchange %s with the routing key %s", exchange, routingKey)
	}
	return routed, nil
}
