package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/logging"
)

func TestBus_PublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus(logging.SetupLogging("info"))

	first, cancelFirst := bus.Subscribe()
	second, cancelSecond := bus.Subscribe()
	defer cancelFirst()
	defer cancelSecond()

	event := Event{User: "user-1", Collection: CollectionAccounts}
	bus.Publish(event)

	assert.Equal(t, event, <-first)
	assert.Equal(t, event, <-second)
}

func TestBus_CancelClosesChannel(t *testing.T) {
	bus := NewBus(logging.SetupLogging("info"))

	events, cancel := bus.Subscribe()
	cancel()

	_, open := <-events
	assert.False(t, open)

	// Publishing after cancel must not panic or deliver.
	bus.Publish(Event{User: "user-1", Collection: CollectionSwaps})
}

func TestWatcher_RunsMatchingRefreshers(t *testing.T) {
	bus := NewBus(logging.SetupLogging("info"))
	watcher := NewWatcher(bus, logging.SetupLogging("info"))

	var mu sync.Mutex
	var refreshed []identity.UserID
	done := make(chan struct{})

	watcher.OnChange(CollectionPreferences, func(ctx context.Context, user identity.UserID) error {
		mu.Lock()
		refreshed = append(refreshed, user)
		mu.Unlock()
		close(done)
		return nil
	})
	watcher.OnChange(CollectionAccounts, func(ctx context.Context, user identity.UserID) error {
		t.Fatal("accounts refresher must not run for a preferences event")
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Run(ctx)

	bus.Publish(Event{User: "user-9", Collection: CollectionPreferences})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("refresher was not invoked")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []identity.UserID{"user-9"}, refreshed)
}

func TestWatcher_SurvivesFailingRefresh(t *testing.T) {
	bus := NewBus(logging.SetupLogging("info"))
	watcher := NewWatcher(bus, logging.SetupLogging("info"))

	calls := make(chan struct{}, 2)
	watcher.OnChange(CollectionAccounts, func(ctx context.Context, user identity.UserID) error {
		calls <- struct{}{}
		return errors.New("store unavailable")
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Run(ctx)

	bus.Publish(Event{User: "user-1", Collection: CollectionAccounts})
	bus.Publish(Event{User: "user-1", Collection: CollectionAccounts})

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatalf("refresher call %d never happened; watcher loop died", i+1)
		}
	}
}
