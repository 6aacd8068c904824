package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/currency"
	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage/swap"
)

// swapStore is the read side this service needs.
type swapStore interface {
	List(ctx context.Context, user identity.UserID) ([]*swap.Swap, error)
	FindByID(ctx context.Context, user identity.UserID, id uuid.UUID) (*swap.Swap, error)
}

// SwapService is the swap repository: identity-guarded CRUD over the
// user's swap collection.
type SwapService struct {
	store    swapStore
	operator processor
}

func NewSwapService(store swapStore, op processor) *SwapService {
	return &SwapService{store: store, operator: op}
}

// List returns the user's swaps, newest date first.
func (s *SwapService) List(ctx context.Context) ([]Swap, error) {
	user, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.List(ctx, user)
	if err != nil {
		return nil, err
	}

	converted := make([]Swap, len(rows))
	for i, row := range rows {
		converted[i] = swapFromStorage(row)
	}
	return converted, nil
}

// Add records a swap and returns it with pending local timestamps.
func (s *SwapService) Add(ctx context.Context, create SwapCreate) (*Swap, error) {
	user, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if create.PlatformAccountID == uuid.Nil {
		return nil, errors.New("platformAccountId is required")
	}
	fromAsset := currency.Normalize(create.FromAsset)
	toAsset := currency.Normalize(create.ToAsset)
	if fromAsset == "" || toAsset == "" {
		return nil, errors.New("fromAsset and toAsset are required")
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	date := dateOnly(create.Date)
	if create.Date.IsZero() {
		date = dateOnly(time.Now())
	}

	action := &actions.CreateSwap{
		Create: &swap.SwapCreate{
			ID:                id,
			UserID:            user,
			PlatformAccountID: create.PlatformAccountID,
			Date:              date,
			FromAsset:         fromAsset,
			FromAmount:        create.FromAmount,
			ToAsset:           toAsset,
			ToAmount:          create.ToAmount,
			FeeAmount:         create.FeeAmount,
			FeeCurrency:       create.FeeCurrency,
			Notes:             create.Notes,
		},
	}

	now := Pending(time.Now())
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	result := Swap{
		ID:                id,
		PlatformAccountID: create.PlatformAccountID,
		Date:              date,
		FromAsset:         fromAsset,
		FromAmount:        create.FromAmount,
		ToAsset:           toAsset,
		ToAmount:          create.ToAmount,
		FeeAmount:         create.FeeAmount,
		FeeCurrency:       create.FeeCurrency,
		Notes:             create.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if action.Result != nil {
		result = swapFromStorage(action.Result)
	}
	return &result, nil
}

// Update re-states an existing swap. The entity must carry its id.
func (s *SwapService) Update(ctx context.Context, sw Swap) (*Swap, error) {
	user, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if sw.ID == uuid.Nil {
		return nil, ErrMissingIdentifier
	}
	sw.FromAsset = currency.Normalize(sw.FromAsset)
	sw.ToAsset = currency.Normalize(sw.ToAsset)
	if sw.FromAsset == "" || sw.ToAsset == "" {
		return nil, errors.New("fromAsset and toAsset are required")
	}

	action := &actions.UpdateSwap{
		Update: &swap.SwapUpdate{
			ID:                sw.ID,
			UserID:            user,
			PlatformAccountID: sw.PlatformAccountID,
			Date:              dateOnly(sw.Date),
			FromAsset:         sw.FromAsset,
			FromAmount:        sw.FromAmount,
			ToAsset:           sw.ToAsset,
			ToAmount:          sw.ToAmount,
			FeeAmount:         sw.FeeAmount,
			FeeCurrency:       sw.FeeCurrency,
			Notes:             sw.Notes,
		},
	}

	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	sw.Date = dateOnly(sw.Date)
	sw.UpdatedAt = Pending(time.Now())
	return &sw, nil
}

// Remove deletes a swap by id. Removing an absent id is not an error.
func (s *SwapService) Remove(ctx context.Context, id uuid.UUID) error {
	user, err := identity.FromContext(ctx)
	if err != nil {
		return err
	}
	if id == uuid.Nil {
		return ErrMissingIdentifier
	}

	return s.operator.Process(ctx, &actions.DeleteSwap{UserID: user, ID: id})
}
