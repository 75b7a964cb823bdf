package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Persister records queue lifecycle and message changes so a broker can be
// rebuilt after a restart.
type Persister interface {
	SaveQueue(vhost, name string) error
	DeleteQueue(vhost, name string) error
	AppendMessage(vhost, queue string, msg *Message) error
	RemoveMessage(vhost, queue string, msg *Message) error
	Load() ([]QueueState, error)
	SaveExchange(state ExchangeState) error
	DeleteExchange(vhost, name string) error
	LoadExchanges() ([]ExchangeState, error)
	Close() error
}

// QueueState is a persisted queue with its pending messages in delivery order.
type QueueState struct {
	VHost    string
	Name     string
	Messages []*Message
}

type FileStorage struct {
	MessagesPath string
	StatePath    string

	state BrokerState
	mu    sync.Mutex
}

// BrokerState maps vhost -> queue -> pending message ids in delivery order,
// and vhost -> exchange name -> exchange.
type BrokerState struct {
	Queues    map[string]map[string][]string      `json:"queues"`
	Exchanges map[string]map[string]ExchangeState `json:"exchanges,omitempty"`
}

func NewFileStorage(statePath, messagesPath string) (*FileStorage, error) {
	for _, dir := range []string{statePath, messagesPath} {
		_, err := os.Stat(dir)
		if os.IsNotExist(err) {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}
	}

	f := &FileStorage{
		StatePath:    statePath,
		MessagesPath: messagesPath,
		state: BrokerState{
			Queues:    make(map[string]map[string][]string),
			Exchanges: make(map[string]map[string]ExchangeState),
		},
	}

	state, err := f.getBrokerState()
	if err != nil {
		return nil, err
	}
	if state != nil {
		if state.Queues != nil {
			f.state.Queues = state.Queues
		}
		if state.Exchanges != nil {
			f.state.Exchanges = state.Exchanges
		}
	}

	return f, nil
}

func (f *FileStorage) statePath() string {
	return filepath.Join(f.StatePath, fmt.Sprintf("%s.json", "state"))
}

func (f *FileStorage) messagePath(msgID string) string {
	return filepath.Join(f.MessagesPath, fmt.Sprintf("%s.json", msgID))
}

func (f *FileStorage) storeBrokerState() error {
	data, err := json.Marshal(f.state)
	if err != nil {
		return err
	}
	return os.WriteFile(f.statePath(), data, 0644)
}

func (f *FileStorage) getBrokerState() (*BrokerState, error) {
	data, err := os.ReadFile(f.statePath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var brokerState *BrokerState
	if err := json.Unmarshal(data, &brokerState); err != nil {
		return nil, err
	}
	return brokerState, nil
}

func (f *FileStorage) storeMessage(msg *Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return os.WriteFile(f.messagePath(msg.ID), data, 0644)
}

func (f *FileStorage) getMessage(msgID string) (*Message, error) {
	data, err := os.ReadFile(f.messagePath(msgID))
	if err != nil {
		return nil, err
	}

	var message *Message
	if err := json.Unmarshal(data, &message); err != nil {
		return nil, err
	}
	return message, nil
}

func (f *FileStorage) removeMessageFile(msgID string) error {
	if err := os.Remove(f.messagePath(msgID)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (f *FileStorage) SaveQueue(vhost, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Queues[vhost] == nil {
		f.state.Queues[vhost] = make(map[string][]string)
	}
	if _, exists := f.state.Queues[vhost][name]; exists {
		return nil
	}
	f.state.Queues[vhost][name] = make([]string, 0)

	if err := f.storeBrokerState(); err != nil {
		delete(f.state.Queues[vhost], name)
		return err
	}
	return nil
}

func (f *FileStorage) DeleteQueue(vhost, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	msgIDs, exists := f.state.Queues[vhost][name]
	if !exists {
		return nil
	}
	delete(f.state.Queues[vhost], name)

	if err := f.storeBrokerState(); err != nil {
		f.state.Queues[vhost][name] = msgIDs
		return err
	}

	// the queue is gone once the state is stored, leftover files are only logged
	for _, msgID := range msgIDs {
		if err := f.removeMessageFile(msgID); err != nil {
			log.Printf("error removing message %s of deleted queue %s: %v", msgID, name, err)
		}
	}
	return nil
}

func (f *FileStorage) AppendMessage(vhost, queue string, msg *Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	msgIDs, exists := f.state.Queues[vhost][queue]
	if !exists {
		return fmt.Errorf("queue %s is not persisted in vhost %s", queue, vhost)
	}

	if err := f.storeMessage(msg); err != nil {
		return err
	}

	f.state.Queues[vhost][queue] = append(msgIDs, msg.ID)
	if err := f.storeBrokerState(); err != nil {
		f.state.Queues[vhost][queue] = msgIDs
		_ = f.removeMessageFile(msg.ID)
		return err
	}
	return nil
}

func (f *FileStorage) RemoveMessage(vhost, queue string, msg *Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	msgIDs, exists := f.state.Queues[vhost][queue]
	if !exists {
		return fmt.Errorf("queue %s is not persisted in vhost %s", queue, vhost)
	}

	index := -1
	for i, id := range msgIDs {
		if id == msg.ID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil
	}

	remaining := make([]string, 0, len(msgIDs)-1)
	remaining = append(remaining, msgIDs[:index]...)
	remaining = append(remaining, msgIDs[index+1:]...)

	f.state.Queues[vhost][queue] = remaining
	if err := f.storeBrokerState(); err != nil {
		f.state.Queues[vhost][queue] = msgIDs
		return err
	}
	return f.removeMessageFile(msg.ID)
}

func (f *FileStorage) Load() ([]QueueState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	queues := make([]QueueState, 0)
	for vhost, names := range f.state.Queues {
		for name, msgIDs := range names {
			queue := QueueState{VHost: vhost, Name: name, Messages: make([]*Message, 0, len(msgIDs))}
			for _, msgID := range msgIDs {
				msg, err := f.getMessage(msgID)
				if err != nil {
					return nil, err
				}
				queue.Messages = append(queue.Messages, msg)
			}
			queues = append(queues, queue)
		}
	}

	sortQueueStates(queues)
	return queues, nil
}

func (f *FileStorage) SaveExchange(state ExchangeState) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Exchanges[state.VHost] == nil {
		f.state.Exchanges[state.VHost] = make(map[string]ExchangeState)
	}
	prev, existed := f.state.Exchanges[state.VHost][state.Name]
	f.state.Exchanges[state.VHost][state.Name] = state

	if err := f.storeBrokerState(); err != nil {
		if existed {
			f.state.Exchanges[state.VHost][state.Name] = prev
		} else {
			delete(f.state.Exchanges[state.VHost], state.Name)
		}
		return err
	}
	return nil
}

func (f *FileStorage) DeleteExchange(vhost, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, exists := f.state.Exchanges[vhost][name]
	if !exists {
		return nil
	}
	delete(f.state.Exchanges[vhost], name)

	if err := f.storeBrokerState(); err != nil {
		f.state.Exchanges[vhost][name] = prev
		return err
	}
	return nil
}

func (f *FileStorage) LoadExchanges() ([]ExchangeState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	exchanges := make([]ExchangeState, 0)
	for _, names := range f.state.Exchanges {
		for _, state := range names {
			exchanges = append(exchanges, state)
		}
	}

	sortExchangeStates(exchanges)
	return exchanges, nil
}

func (f *FileStorage) Close() error {
	return nil
}

func sortQueueStates(queues []QueueState) {
	sort.Slice(queues, func(i, j int) bool {
		if queues[i].VHost != queues[j].VHost {
			return queues[i].VHost < queues[j].VHost
		}
		return queues[i].Name < queues[j].Name
	})
}

func sortExchangeStates(exchanges []ExchangeState) {
	sort.Slice(exchanges, func(i, j int) bool {
		if exchanges[i].VHost != exchanges[j].VHost {
			return exchanges[i].VHost < exchanges[j].VHost
		}
		return exchanges[i].Name < exchanges[j].Name
	})
}
