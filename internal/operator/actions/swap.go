package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/notify"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/swap"
)

// CreateSwap inserts a swap record. It deliberately does not touch the
// platform account's balance: swaps and balances are unsynchronized, and
// the user records any adjustment as a separate transaction.
type CreateSwap struct {
	Create *swap.SwapCreate

	Result *swap.Swap
}

func (c *CreateSwap) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Swap.Insert(ctx, c.Create)
	if err != nil {
		return err
	}
	c.Result = row
	return nil
}

func (c *CreateSwap) Events() []notify.Event {
	return []notify.Event{{User: c.Create.UserID, Collection: notify.CollectionSwaps}}
}

// UpdateSwap re-states an existing swap's mutable fields.
type UpdateSwap struct {
	Update *swap.SwapUpdate
}

func (u *UpdateSwap) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Swap.Update(ctx, u.Update)
}

func (u *UpdateSwap) Events() []notify.Event {
	return []notify.Event{{User: u.Update.UserID, Collection: notify.CollectionSwaps}}
}

// DeleteSwap removes a swap record.
type DeleteSwap struct {
	UserID identity.UserID
	ID     uuid.UUID
}

func (d *DeleteSwap) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Swap.Delete(ctx, d.UserID, d.ID)
}

func (d *DeleteSwap) Events() []notify.Event {
	return []notify.Event{{User: d.UserID, Collection: notify.CollectionSwaps}}
}
