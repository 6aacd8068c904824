package identity

import (
	"context"
	"errors"
)

// ErrUnauthenticated is returned whenever an operation is attempted without
// a resolved user identity.
var ErrUnauthenticated = errors.New("unauthenticated: no user identity")

// UserID is the stable identifier the authentication layer produces.
type UserID string

func (u UserID) String() string { return string(u) }

type ctxKey struct{}

// WithUser binds a resolved user identity to the context. Callers further
// down recover it with FromContext; there is no ambient fallback.
func WithUser(ctx context.Context, id UserID) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the bound user identity. Every storage-touching
// operation calls this first and must not issue any store call on error.
func FromContext(ctx context.Context) (UserID, error) {
	id, ok := ctx.Value(ctxKey{}).(UserID)
	if !ok || id == "" {
		return "", ErrUnauthenticated
	}
	return id, nil
}
