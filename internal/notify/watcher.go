package notify

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/identity"
)

// RefreshFunc re-reads whatever derived state depends on a collection.
type RefreshFunc func(ctx context.Context, user identity.UserID) error

// Watcher is the push-to-pull bridge: it subscribes to the bus and runs the
// registered refreshers for each event's collection. A failing refresh is
// logged and skipped so the previous cached view stays in place.
type Watcher struct {
	bus        *Bus
	logger     *logrus.Logger
	refreshers map[Collection][]RefreshFunc
}

func NewWatcher(bus *Bus, logger *logrus.Logger) *Watcher {
	return &Watcher{
		bus:        bus,
		logger:     logger,
		refreshers: make(map[Collection][]RefreshFunc),
	}
}

// OnChange registers a refresher for a collection. Not safe to call after
// Run has started.
func (w *Watcher) OnChange(collection Collection, fn RefreshFunc) {
	w.refreshers[collection] = append(w.refreshers[collection], fn)
}

// Run consumes events until the context is canceled.
func (w *Watcher) Run(ctx context.Context) {
	events, cancel := w.bus.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			w.handle(ctx, event)
		}
	}
}

func (w *Watcher) handle(ctx context.Context, event Event) {
	for _, refresh := range w.refreshers[event.Collection] {
		if err := refresh(ctx, event.User); err != nil {
			w.logger.WithError(err).WithFields(logrus.Fields{
				"collection": event.Collection,
			}).Warn("Watcher.refresh failed, keeping previous view")
		}
	}
}
