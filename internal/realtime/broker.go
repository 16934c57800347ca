// Package realtime implements the live comment push channel: a
// publish/subscribe broker keyed by post id. Subscriptions are
// independent per client view and deliver nothing after Close.
package realtime

import (
	"context"
	"sync"
)

// subscriberBuffer bounds each subscriber's channel. A subscriber that
// falls this far behind loses messages rather than blocking publishers.
const subscriberBuffer = 16

// Subscription is one client's standing channel for a topic.
type Subscription interface {
	// C yields published payloads. Closed after Close is called.
	C() <-chan []byte

	// Close tears the subscription down. Safe to call more than once.
	// No payload is delivered after Close returns.
	Close()
}

// Broker is the comment push abstraction: topic = post id, payload =
// encoded comment view.
type Broker interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	Subscribe(topic string) (Subscription, error)
}

// MemoryBroker is the in-process Broker used when no NATS URL is
// configured. Suitable for a single API server.
type MemoryBroker struct {
	mu     sync.RWMutex
	topics map[string]map[*memorySub]struct{}
}

// NewMemoryBroker creates an empty in-process broker
func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{topics: make(map[string]map[*memorySub]struct{})}
}

type memorySub struct {
	broker *MemoryBroker
	topic  string
	ch     chan []byte
	once   sync.Once
}

func (s *memorySub) C() <-chan []byte { return s.ch }

func (s *memorySub) Close() {
	s.once.Do(func() {
		s.broker.remove(s)
		close(s.ch)
	})
}

// Publish delivers payload to every current subscriber of topic.
// Slow subscribers with a full buffer are skipped.
func (b *MemoryBroker) Publish(ctx context.Context, topic string, payload []byte) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.topics[topic] {
		select {
		case sub.ch <- payload:
		default:
			// Subscriber is not keeping up; drop rather than block
		}
	}
	return nil
}

// Subscribe registers a new standing channel for topic
func (b *MemoryBroker) Subscribe(topic string) (Subscription, error) {
	sub := &memorySub{
		broker: b,
		topic:  topic,
		ch:     make(chan []byte, subscriberBuffer),
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.topics[topic] == nil {
		b.topics[topic] = make(map[*memorySub]struct{})
	}
	b.topics[topic][sub] = struct{}{}
	return sub, nil
}

// remove detaches sub; after this no Publish can reach its channel
func (b *MemoryBroker) remove(sub *memorySub) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.topics[sub.topic]
	delete(subs, sub)
	if len(subs) == 0 {
		delete(b.topics, sub.topic)
	}
}
