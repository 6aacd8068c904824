// Package apierr maps service-layer errors onto HTTP status codes so every
// endpoint reports identity and lookup failures the same way.
package apierr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// Map converts a service error into a Huma status error. message is used
// for errors that have no more specific mapping.
func Map(message string, err error) error {
	switch {
	case errors.Is(err, identity.ErrUnauthenticated):
		return huma.NewError(http.StatusUnauthorized, "no user identity", err)
	case errors.Is(err, service.ErrMissingIdentifier):
		return huma.NewError(http.StatusBadRequest, "missing entity identifier", err)
	case errors.Is(err, storage.ErrNotFound):
		return huma.NewError(http.StatusNotFound, message, err)
	default:
		return huma.NewError(http.StatusInternalServerError, message, err)
	}
}
