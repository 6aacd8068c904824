package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/notify"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// IAction is one write against the store. Perform runs inside a single
// transaction; Events lists the change notifications to publish after the
// transaction commits.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
	Events() []notify.Event
}
