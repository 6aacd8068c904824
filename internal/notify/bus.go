// Package notify carries "collection changed" events between the write
// path and anything that needs to re-read: the in-process watcher and the
// websocket change feed. The bus never mutates state itself.
package notify

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/identity"
)

// Collection names an entity collection in a change event.
type Collection string

const (
	CollectionAccounts     Collection = "accounts"
	CollectionTransactions Collection = "transactions"
	CollectionSwaps        Collection = "swaps"
	CollectionPreferences  Collection = "preferences"
)

// Event signals that a user's collection changed. It carries no payload;
// consumers re-fetch from the store, which is the single source of truth.
type Event struct {
	User       identity.UserID
	Collection Collection
}

const subscriberBuffer = 64

// Bus is an in-process publish/subscribe channel for change events.
type Bus struct {
	logger *logrus.Logger

	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
}

func NewBus(logger *logrus.Logger) *Bus {
	return &Bus{
		logger: logger,
		subs:   make(map[int]chan Event),
	}
}

// Subscribe returns a channel of future events and a cancel function. The
// channel is closed on cancel.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Event, subscriberBuffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers the event to every subscriber. A subscriber that cannot
// keep up loses the event; it will catch up on the next one, since events
// only say "go re-read".
func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sub := range b.subs {
		select {
		case sub <- event:
		default:
			b.logger.WithFields(logrus.Fields{
				"collection": event.Collection,
			}).Warn("Bus.Publish.subscriber backlog, event dropped")
		}
	}
}
