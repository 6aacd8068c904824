// Package storeerr holds the storage error taxonomy. It is a leaf so both
// the storage fan-out and the per-entity packages can share it.
package storeerr

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable wraps transport/connection failures from the
	// database. Callers see it via errors.Is; nothing is retried here.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrNotFound reports a read of a row that does not exist. Deletes are
	// idempotent and never return it.
	ErrNotFound = errors.New("record not found")
)

// Wrap classifies a driver error. Absent rows are a domain condition, not
// a transport failure.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %v", op, ErrStoreUnavailable, err)
}
