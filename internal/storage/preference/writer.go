package preference

import (
	"context"
	"encoding/json"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"

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

// Upsert writes the user's preference row, creating it on first use.
func (w *Writer) Upsert(ctx context.Context, user identity.UserID, displayCurrency string, groups map[string][]string) error {
	if groups == nil {
		groups = make(map[string][]string)
	}
	groupsJSON, err := json.Marshal(groups)
	if err != nil {
		return storeerr.Wrap("encode preference groups", err)
	}

	updateQuery := psql.Update(
		um.Table(table),
		um.SetCol("display_currency").ToArg(displayCurrency),
		um.SetCol("groups").ToArg(groupsJSON),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(string(user)))),
	)

	result, err := bob.Exec(ctx, w.tx, updateQuery)
	if err != nil {
		return storeerr.Wrap("update preference", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return storeerr.Wrap("update preference", err)
	}
	if affected > 0 {
		return nil
	}

	insertQuery := psql.Insert(
		im.Into(table, "user_id", "display_currency", "groups"),
		im.Values(psql.Arg(string(user), displayCurrency, groupsJSON)),
	)
	_, err = bob.Exec(ctx, w.tx, insertQuery)
	return storeerr.Wrap("insert preference", err)
}
