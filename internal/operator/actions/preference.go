package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/notify"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// SetPreference upserts a user's display settings.
type SetPreference struct {
	UserID          identity.UserID
	DisplayCurrency string
	Groups          map[string][]string
}

func (s *SetPreference) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Preference.Upsert(ctx, s.UserID, s.DisplayCurrency, s.Groups)
}

func (s *SetPreference) Events() []notify.Event {
	return []notify.Event{{User: s.UserID, Collection: notify.CollectionPreferences}}
}
