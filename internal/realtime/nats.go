package realtime

import (
	"context"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"
)

// NatsBroker is the NATS-backed Broker, for deployments running more
// than one API server: a comment persisted on one instance reaches
// subscribers connected to another.
type NatsBroker struct {
	nc *nats.Conn
}

// NewNatsBroker connects to the NATS server at url
func NewNatsBroker(url string) (*NatsBroker, error) {
	nc, err := nats.Connect(url, nats.Name("linkup-comments"))
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return &NatsBroker{nc: nc}, nil
}

// Close drains the underlying connection
func (b *NatsBroker) Close() {
	b.nc.Close()
}

func subjectFor(topic string) string {
	return "comments." + topic
}

func (b *NatsBroker) Publish(ctx context.Context, topic string, payload []byte) error {
	if err := b.nc.Publish(subjectFor(topic), payload); err != nil {
		return fmt.Errorf("nats publish: %w", err)
	}
	return nil
}

func (b *NatsBroker) Subscribe(topic string) (Subscription, error) {
	msgs := make(chan *nats.Msg, subscriberBuffer)
	natsSub, err := b.nc.ChanSubscribe(subjectFor(topic), msgs)
	if err != nil {
		return nil, fmt.Errorf("nats subscribe: %w", err)
	}

	sub := &natsSubscription{
		natsSub: natsSub,
		msgs:    msgs,
		out:     make(chan []byte, subscriberBuffer),
		done:    make(chan struct{}),
	}
	go sub.pump()
	return sub, nil
}

type natsSubscription struct {
	natsSub *nats.Subscription
	msgs    chan *nats.Msg
	out     chan []byte
	done    chan struct{}
	once    sync.Once
}

func (s *natsSubscription) C() <-chan []byte { return s.out }

func (s *natsSubscription) Close() {
	s.once.Do(func() {
		// Unsubscribe first so no new messages land in msgs, then stop
		// the pump; out is closed by the pump goroutine
		_ = s.natsSub.Unsubscribe()
		close(s.done)
	})
}

// pump forwards NATS messages to the subscriber channel until Close
func (s *natsSubscription) pump() {
	defer close(s.out)
	for {
		select {
		case <-s.done:
			return
		case msg, ok := <-s.msgs:
			if !ok {
				return
			}
			select {
			case s.out <- msg.Data:
			case <-s.done:
				return
			}
		}
	}
}
