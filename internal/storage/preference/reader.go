package preference

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/storage/storeerr"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

type preferenceRow struct {
	UserID          string    `db:"user_id"`
	DisplayCurrency string    `db:"display_currency"`
	Groups          []byte    `db:"groups"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func rowToPreference(row *preferenceRow) (*Preference, error) {
	pref := &Preference{
		UserID:          row.UserID,
		DisplayCurrency: row.DisplayCurrency,
		Groups:          make(map[string][]string),
		UpdatedAt:       row.UpdatedAt,
	}
	if len(row.Groups) > 0 {
		if err := json.Unmarshal(row.Groups, &pref.Groups); err != nil {
			return nil, storeerr.Wrap("decode preference groups", err)
		}
	}
	return pref, nil
}

// Get returns the user's preference row, or nil when the user has never
// set one. Callers apply the configured default in that case.
func (r *Reader) Get(ctx context.Context, user identity.UserID) (*Preference, error) {
	q := psql.Select(
		sm.Columns(
			psql.Quote("user_id"), psql.Quote("display_currency"),
			psql.Quote("groups"), psql.Quote("updated_at"),
		),
		sm.From(table),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(string(user)))),
	)

	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[*preferenceRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeerr.Wrap("get preference", err)
	}
	return rowToPreference(row)
}
