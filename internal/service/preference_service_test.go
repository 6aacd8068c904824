package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage/preference"
)

func newPreferenceTestService(t *testing.T) (*PreferenceService, *mockPreferenceStore, *mockProcessor) {
	t.Helper()
	store := &mockPreferenceStore{}
	op := &mockProcessor{}
	t.Cleanup(func() {
		store.AssertExpectations(t)
		op.AssertExpectations(t)
	})
	return NewPreferenceService(store, op, "usd"), store, op
}

// -- Get tests --

func TestGetPreference_Default(t *testing.T) {
	svc, store, _ := newPreferenceTestService(t)

	store.On("Get", mock.Anything, testUser).Return(nil, nil)

	pref, err := svc.Get(userContext())

	assert.NoError(t, err)
	assert.Equal(t, "USD", pref.DisplayCurrency, "falls back to configured default")
	assert.Empty(t, pref.Groups)
	assert.False(t, pref.UpdatedAt.Confirmed)
}

func TestGetPreference_Stored(t *testing.T) {
	svc, store, _ := newPreferenceTestService(t)

	updatedAt := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	store.On("Get", mock.Anything, testUser).Return(&preference.Preference{
		UserID:          string(testUser),
		DisplayCurrency: "EUR",
		Groups:          map[string][]string{"essentials": {"food", "rent"}},
		UpdatedAt:       updatedAt,
	}, nil)

	pref, err := svc.Get(userContext())

	assert.NoError(t, err)
	assert.Equal(t, "EUR", pref.DisplayCurrency)
	assert.Equal(t, []string{"food", "rent"}, pref.Groups["essentials"])
	assert.True(t, pref.UpdatedAt.Confirmed)
}

func TestGetPreference_CachesPerUser(t *testing.T) {
	svc, store, _ := newPreferenceTestService(t)

	store.On("Get", mock.Anything, testUser).Return(nil, nil).Once()

	_, err := svc.Get(userContext())
	assert.NoError(t, err)
	_, err = svc.Get(userContext())
	assert.NoError(t, err, "second read served from cache")
}

func TestGetPreference_Unauthenticated(t *testing.T) {
	svc, _, _ := newPreferenceTestService(t)

	pref, err := svc.Get(context.Background())

	assert.ErrorIs(t, err, identity.ErrUnauthenticated)
	assert.Nil(t, pref)
}

// -- Set tests --

func TestSetPreference_Success(t *testing.T) {
	svc, store, op := newPreferenceTestService(t)

	op.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		set, ok := a.(*actions.SetPreference)
		return ok && set.UserID == testUser && set.DisplayCurrency == "EUR"
	})).Return(nil)
	store.On("Get", mock.Anything, testUser).Return(&preference.Preference{
		UserID:          string(testUser),
		DisplayCurrency: "EUR",
		UpdatedAt:       time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
	}, nil).Once()

	pref, err := svc.Set(userContext(), Preference{DisplayCurrency: "eur"})

	assert.NoError(t, err)
	assert.Equal(t, "EUR", pref.DisplayCurrency)
	assert.False(t, pref.UpdatedAt.Confirmed, "write response is client-stamped")

	// The write dropped the cached entry; the next read comes from the
	// store with its confirmed timestamp.
	stored, err := svc.Get(userContext())
	assert.NoError(t, err)
	assert.Equal(t, "EUR", stored.DisplayCurrency)
	assert.True(t, stored.UpdatedAt.Confirmed)
}

func TestSetPreference_InvalidatesWarmCache(t *testing.T) {
	svc, store, op := newPreferenceTestService(t)

	store.On("Get", mock.Anything, testUser).Return(nil, nil).Twice()
	op.On("Process", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Get(userContext())
	assert.NoError(t, err)

	_, err = svc.Set(userContext(), Preference{DisplayCurrency: "EUR"})
	assert.NoError(t, err)

	_, err = svc.Get(userContext())
	assert.NoError(t, err, "read through to the store after the write")
}

func TestSetPreference_MissingCurrency(t *testing.T) {
	svc, _, _ := newPreferenceTestService(t)

	pref, err := svc.Set(userContext(), Preference{})

	assert.Error(t, err)
	assert.Nil(t, pref)
}

// -- Refresh tests --

func TestRefreshPreference_DropsCache(t *testing.T) {
	svc, store, _ := newPreferenceTestService(t)

	store.On("Get", mock.Anything, testUser).Return(nil, nil).Twice()

	_, err := svc.Get(userContext())
	assert.NoError(t, err)

	assert.NoError(t, svc.Refresh(context.Background(), testUser))

	_, err = svc.Get(userContext())
	assert.NoError(t, err, "read through to the store after refresh")
}
