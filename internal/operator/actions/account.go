package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/notify"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// CreateAccount inserts a new account. Result carries the stored row after
// Perform succeeds.
type CreateAccount struct {
	Create *account.AccountCreate

	Result *account.Account
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Account.Insert(ctx, c.Create)
	if err != nil {
		return err
	}
	c.Result = row
	return nil
}

func (c *CreateAccount) Events() []notify.Event {
	return []notify.Event{{User: c.Create.UserID, Collection: notify.CollectionAccounts}}
}

// UpdateAccount re-states an existing account's mutable fields.
type UpdateAccount struct {
	Update *account.AccountUpdate
}

func (u *UpdateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Account.Update(ctx, u.Update)
}

func (u *UpdateAccount) Events() []notify.Event {
	return []notify.Event{{User: u.Update.UserID, Collection: notify.CollectionAccounts}}
}

// DeleteAccount removes an account. Transactions referencing it are left
// in place; the reference is weak and no cascade is enforced here.
type DeleteAccount struct {
	UserID identity.UserID
	ID     uuid.UUID
}

func (d *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Account.Delete(ctx, d.UserID, d.ID)
}

func (d *DeleteAccount) Events() []notify.Event {
	return []notify.Event{{User: d.UserID, Collection: notify.CollectionAccounts}}
}
