package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/carson-networks/ledger-server/internal/currency"
	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage/preference"
)

// preferenceStore is the read side this service needs.
type preferenceStore interface {
	Get(ctx context.Context, user identity.UserID) (*preference.Preference, error)
}

// Preference is a user's display settings. Users who never saved a
// preference get the configured default currency and no groups.
type Preference struct {
	DisplayCurrency string
	Groups          map[string][]string
	UpdatedAt       Timestamp
}

// PreferenceService serves display preferences from a per-user cache,
// falling through to the store on a miss. Refresh drops a user's cached
// entry; the change watcher calls it when the preferences collection
// changes, so concurrent sessions converge on the stored value.
type PreferenceService struct {
	store           preferenceStore
	operator        processor
	defaultCurrency string

	cache sync.Map // identity.UserID -> *Preference
}

func NewPreferenceService(store preferenceStore, op processor, defaultCurrency string) *PreferenceService {
	return &PreferenceService{
		store:           store,
		operator:        op,
		defaultCurrency: currency.Normalize(defaultCurrency),
	}
}

// Get returns the user's preference, served from cache when warm.
func (s *PreferenceService) Get(ctx context.Context) (*Preference, error) {
	user, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.cache.Load(user); ok {
		return cached.(*Preference), nil
	}

	row, err := s.store.Get(ctx, user)
	if err != nil {
		return nil, err
	}

	pref := &Preference{
		DisplayCurrency: s.defaultCurrency,
		Groups:          map[string][]string{},
	}
	if row != nil {
		pref.DisplayCurrency = row.DisplayCurrency
		pref.Groups = row.Groups
		pref.UpdatedAt = Confirmed(row.UpdatedAt)
	}

	s.cache.Store(user, pref)
	return pref, nil
}

// Set upserts the user's preference and drops the cached entry. The
// returned view carries a pending timestamp; the next Get reads through to
// the store and picks up the confirmed one.
func (s *PreferenceService) Set(ctx context.Context, pref Preference) (*Preference, error) {
	user, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	code := currency.Normalize(pref.DisplayCurrency)
	if code == "" {
		return nil, errors.New("displayCurrency is required")
	}
	if pref.Groups == nil {
		pref.Groups = map[string][]string{}
	}

	action := &actions.SetPreference{
		UserID:          user,
		DisplayCurrency: code,
		Groups:          pref.Groups,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	s.cache.Delete(user)
	return &Preference{
		DisplayCurrency: code,
		Groups:          pref.Groups,
		UpdatedAt:       Pending(time.Now()),
	}, nil
}

// Refresh invalidates the user's cached preference. The next Get reads
// through to the store.
func (s *PreferenceService) Refresh(ctx context.Context, user identity.UserID) error {
	s.cache.Delete(user)
	return nil
}
