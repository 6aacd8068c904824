package swap

import (
	"context"

	"github.com/gofrs/uuid/v5"
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

func columnClauses() []any {
	clauses := make([]any, len(columns))
	for i, column := range columns {
		clauses[i] = psql.Quote(column)
	}
	return clauses
}

// List returns the user's full swap collection, newest date first.
func (r *Reader) List(ctx context.Context, user identity.UserID) ([]*Swap, error) {
	q := psql.Select(
		sm.Columns(columnClauses()...),
		sm.From(table),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(string(user)))),
		sm.OrderBy(psql.Quote("swap_date")).Desc(),
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)

	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[*Swap]())
	if err != nil {
		return nil, storeerr.Wrap("list swaps", err)
	}
	return rows, nil
}

// FindByID retrieves one of the user's swaps.
func (r *Reader) FindByID(ctx context.Context, user identity.UserID, id uuid.UUID) (*Swap, error) {
	q := psql.Select(
		sm.Columns(columnClauses()...),
		sm.From(table),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(string(user)))),
	)

	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[*Swap]())
	if err != nil {
		return nil, storeerr.Wrap("find swap", err)
	}
	return row, nil
}
