package storage

import "github.com/carson-networks/ledger-server/internal/storage/storeerr"

// Re-exported so callers outside the storage tree depend on one package.
var (
	ErrStoreUnavailable = storeerr.ErrStoreUnavailable
	ErrNotFound         = storeerr.ErrNotFound
)
