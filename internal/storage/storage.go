package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage/storeerr"
)

// Storage owns the database handle. Reads go through Reader on the pooled
// connection; writes go through a Writer bound to a transaction.
type Storage struct {
	db     bob.DB
	Reader *Reader
}

func NewStorage(cfg *config.PostgresConfig) (*Storage, error) {
	sqlDB, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db := bob.NewDB(sqlDB)
	return &Storage{
		db:     db,
		Reader: NewReader(db),
	}, nil
}

// Write begins a transaction and returns a Writer over it. The caller must
// Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storeerr.Wrap("begin tx", err)
	}
	writer := NewWriter(tx)
	return &writer, nil
}
