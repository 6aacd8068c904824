package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/notify"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/storeerr"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// CreateTransaction inserts a transaction and applies its signed amount to
// the owning account's balance. The balance is only touched when the
// transaction is denominated in the account's own currency; a
// foreign-currency entry leaves the balance for the user to adjust.
type CreateTransaction struct {
	Create *transaction.TransactionCreate

	Result *transaction.Transaction
}

func (c *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	// A missing account surfaces as ErrNotFound so the caller can report a
	// request error rather than a server failure.
	acct, err := writer.Account.FindByIDForUpdate(ctx, c.Create.UserID, c.Create.AccountID)
	if err != nil {
		return err
	}

	row, err := writer.Transaction.Insert(ctx, c.Create)
	if err != nil {
		return err
	}
	c.Result = row

	if acct.Currency == c.Create.Currency {
		newBalance := acct.Balance.Add(c.Create.Amount)
		if err := writer.Account.UpdateBalance(ctx, c.Create.UserID, c.Create.AccountID, newBalance); err != nil {
			return err
		}
	}

	return nil
}

func (c *CreateTransaction) Events() []notify.Event {
	return []notify.Event{
		{User: c.Create.UserID, Collection: notify.CollectionTransactions},
		{User: c.Create.UserID, Collection: notify.CollectionAccounts},
	}
}

// UpdateTransaction re-states a transaction and moves the balance effect:
// the old amount is reversed on the old account, the new amount applied to
// the new one, each only when currencies line up.
type UpdateTransaction struct {
	Update *transaction.TransactionUpdate
}

func (u *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	old, err := writer.Transaction.FindByID(ctx, u.Update.UserID, u.Update.ID)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			// Already gone; the store's state wins.
			return nil
		}
		return err
	}

	if err := reverseBalance(ctx, writer, u.Update.UserID, old); err != nil {
		return err
	}

	if err := writer.Transaction.Update(ctx, u.Update); err != nil {
		return err
	}

	acct, err := writer.Account.FindByIDForUpdate(ctx, u.Update.UserID, u.Update.AccountID)
	if err != nil {
		return err
	}
	if acct.Currency == u.Update.Currency {
		newBalance := acct.Balance.Add(u.Update.Amount)
		return writer.Account.UpdateBalance(ctx, u.Update.UserID, u.Update.AccountID, newBalance)
	}
	return nil
}

func (u *UpdateTransaction) Events() []notify.Event {
	return []notify.Event{
		{User: u.Update.UserID, Collection: notify.CollectionTransactions},
		{User: u.Update.UserID, Collection: notify.CollectionAccounts},
	}
}

// DeleteTransaction removes a transaction and reverses its balance effect.
// Deleting an id that no longer exists is a no-op.
type DeleteTransaction struct {
	UserID identity.UserID
	ID     uuid.UUID
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	old, err := writer.Transaction.FindByID(ctx, d.UserID, d.ID)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := reverseBalance(ctx, writer, d.UserID, old); err != nil {
		return err
	}

	return writer.Transaction.Delete(ctx, d.UserID, d.ID)
}

func (d *DeleteTransaction) Events() []notify.Event {
	return []notify.Event{
		{User: d.UserID, Collection: notify.CollectionTransactions},
		{User: d.UserID, Collection: notify.CollectionAccounts},
	}
}

// reverseBalance backs the transaction's amount out of its account, when
// the account still exists and the currencies match.
func reverseBalance(ctx context.Context, writer *storage.Writer, user identity.UserID, tx *transaction.Transaction) error {
	acct, err := writer.Account.FindByIDForUpdate(ctx, user, tx.AccountID)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			return nil
		}
		return err
	}
	if acct.Currency != tx.Currency {
		return nil
	}
	return writer.Account.UpdateBalance(ctx, user, tx.AccountID, acct.Balance.Sub(tx.Amount))
}
