package account

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/storage/storeerr"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByIDForUpdate locks the account row for the rest of the transaction.
func (w *Writer) FindByIDForUpdate(ctx context.Context, user identity.UserID, id uuid.UUID) (*Account, error) {
	q := psql.Select(
		sm.Columns(columnClauses()...),
		sm.From(table),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(string(user)))),
		sm.ForUpdate(),
	)

	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[*Account]())
	if err != nil {
		return nil, storeerr.Wrap("find account for update", err)
	}
	return row, nil
}

// Insert writes a new account and returns the stored row, including the
// server-assigned timestamps.
func (w *Writer) Insert(ctx context.Context, create *AccountCreate) (*Account, error) {
	q := psql.Insert(
		im.Into(table,
			"id", "user_id", "name", "type", "currency", "balance",
			"provider", "category_tag",
		),
		im.Values(psql.Arg(
			create.ID, string(create.UserID), create.Name, create.Type,
			create.Currency, create.Balance, create.Provider, create.CategoryTag,
		)),
		im.Returning(columnClauses()...),
	)

	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[*Account]())
	if err != nil {
		return nil, storeerr.Wrap("insert account", err)
	}
	return row, nil
}

// Update re-states the mutable fields and re-stamps updated_at. The
// creation timestamp is never written. Updating an absent row is a no-op;
// the store's state wins.
func (w *Writer) Update(ctx context.Context, update *AccountUpdate) error {
	q := psql.Update(
		um.Table(table),
		um.SetCol("name").ToArg(update.Name),
		um.SetCol("type").ToArg(update.Type),
		um.SetCol("currency").ToArg(update.Currency),
		um.SetCol("balance").ToArg(update.Balance),
		um.SetCol("provider").ToArg(update.Provider),
		um.SetCol("category_tag").ToArg(update.CategoryTag),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(update.ID))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(string(update.UserID)))),
	)

	_, err := bob.Exec(ctx, w.tx, q)
	return storeerr.Wrap("update account", err)
}

// UpdateBalance adjusts only the balance column.
func (w *Writer) UpdateBalance(ctx context.Context, user identity.UserID, id uuid.UUID, balance decimal.Decimal) error {
	q := psql.Update(
		um.Table(table),
		um.SetCol("balance").ToArg(balance),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(string(user)))),
	)

	_, err := bob.Exec(ctx, w.tx, q)
	return storeerr.Wrap("update account balance", err)
}

// Delete removes the account row. Deleting an id that does not exist is
// not an error.
func (w *Writer) Delete(ctx context.Context, user identity.UserID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(table),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(string(user)))),
	)

	_, err := bob.Exec(ctx, w.tx, q)
	return storeerr.Wrap("delete account", err)
}
