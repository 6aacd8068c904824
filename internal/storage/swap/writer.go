package swap

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

// Insert writes a new swap and returns the stored row, including the
// server-assigned timestamps.
func (w *Writer) Insert(ctx context.Context, create *SwapCreate) (*Swap, error) {
	q := psql.Insert(
		im.Into(table,
			"id", "user_id", "platform_account_id", "swap_date", "from_asset",
			"from_amount", "to_asset", "to_amount", "fee_amount",
			"fee_currency", "notes",
		),
		im.Values(psql.Arg(
			create.ID, string(create.UserID), create.PlatformAccountID,
			create.Date, create.FromAsset, create.FromAmount, create.ToAsset,
			create.ToAmount, create.FeeAmount, create.FeeCurrency, create.Notes,
		)),
		im.Returning(columnClauses()...),
	)

	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[*Swap]())
	if err != nil {
		return nil, storeerr.Wrap("insert swap", err)
	}
	return row, nil
}

// Update re-states the mutable fields and re-stamps updated_at; created_at
// is never written.
func (w *Writer) Update(ctx context.Context, update *SwapUpdate) error {
	q := psql.Update(
		um.Table(table),
		um.SetCol("platform_account_id").ToArg(update.PlatformAccountID),
		um.SetCol("swap_date").ToArg(update.Date),
		um.SetCol("from_asset").ToArg(update.FromAsset),
		um.SetCol("from_amount").ToArg(update.FromAmount),
		um.SetCol("to_asset").ToArg(update.ToAsset),
		um.SetCol("to_amount").ToArg(update.ToAmount),
		um.SetCol("fee_amount").ToArg(update.FeeAmount),
		um.SetCol("fee_currency").ToArg(update.FeeCurrency),
		um.SetCol("notes").ToArg(update.Notes),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(update.ID))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(string(update.UserID)))),
	)

	_, err := bob.Exec(ctx, w.tx, q)
	return storeerr.Wrap("update swap", err)
}

// Delete removes the swap row. Deleting an id that does not exist is not
// an error.
func (w *Writer) Delete(ctx context.Context, user identity.UserID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(table),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(string(user)))),
	)

	_, err := bob.Exec(ctx, w.tx, q)
	return storeerr.Wrap("delete swap", err)
}
