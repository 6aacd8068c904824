package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
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

// Insert writes a new transaction and returns the stored row, including
// the server-assigned timestamps.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	q := psql.Insert(
		im.Into(table,
			"id", "user_id", "account_id", "transaction_date", "description",
			"category", "amount", "currency",
		),
		im.Values(psql.Arg(
			create.ID, string(create.UserID), create.AccountID, create.Date,
			create.Description, create.Category, create.Amount, create.Currency,
		)),
		im.Returning(columnClauses()...),
	)

	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, storeerr.Wrap("insert transaction", err)
	}
	return row, nil
}

// Update re-states the mutable fields and re-stamps updated_at; created_at
// is never written.
func (w *Writer) Update(ctx context.Context, update *TransactionUpdate) error {
	q := psql.Update(
		um.Table(table),
		um.SetCol("account_id").ToArg(update.AccountID),
		um.SetCol("transaction_date").ToArg(update.Date),
		um.SetCol("description").ToArg(update.Description),
		um.SetCol("category").ToArg(update.Category),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("currency").ToArg(update.Currency),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(update.ID))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(string(update.UserID)))),
	)

	_, err := bob.Exec(ctx, w.tx, q)
	return storeerr.Wrap("update transaction", err)
}

// Delete removes the transaction row. Deleting an id that does not exist
// is not an error.
func (w *Writer) Delete(ctx context.Context, user identity.UserID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(table),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(string(user)))),
	)

	_, err := bob.Exec(ctx, w.tx, q)
	return storeerr.Wrap("delete transaction", err)
}
