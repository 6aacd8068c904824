package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/currency"
	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// accountStore is the read side this service needs.
type accountStore interface {
	List(ctx context.Context, user identity.UserID) ([]*account.Account, error)
	FindByID(ctx context.Context, user identity.UserID, id uuid.UUID) (*account.Account, error)
}

// AccountService is the account repository: identity-guarded CRUD over the
// user's account collection.
type AccountService struct {
	store    accountStore
	operator processor
}

func NewAccountService(store accountStore, op processor) *AccountService {
	return &AccountService{store: store, operator: op}
}

// List returns the user's accounts in insertion order.
func (s *AccountService) List(ctx context.Context) ([]Account, error) {
	user, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.List(ctx, user)
	if err != nil {
		return nil, err
	}

	converted := make([]Account, len(rows))
	for i, row := range rows {
		converted[i] = accountFromStorage(row)
	}
	return converted, nil
}

// Add creates an account and returns it with a pending local timestamp.
// The next read supersedes the timestamps with the store's values.
func (s *AccountService) Add(ctx context.Context, create AccountCreate) (*Account, error) {
	user, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := ParseAccountType(string(create.Type)); err != nil {
		return nil, err
	}
	code := currency.Normalize(create.Currency)
	if code == "" {
		return nil, errors.New("currency code is required")
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	action := &actions.CreateAccount{
		Create: &account.AccountCreate{
			ID:          id,
			UserID:      user,
			Name:        create.Name,
			Type:        string(create.Type),
			Currency:    code,
			Balance:     create.Balance,
			Provider:    create.Provider,
			CategoryTag: create.CategoryTag,
		},
	}

	now := Pending(time.Now())
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	result := Account{
		ID:          id,
		Name:        create.Name,
		Type:        create.Type,
		Currency:    code,
		Balance:     create.Balance,
		Provider:    create.Provider,
		CategoryTag: create.CategoryTag,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if action.Result != nil {
		result = accountFromStorage(action.Result)
	}
	return &result, nil
}

// Update re-states an existing account. The entity must carry its id.
func (s *AccountService) Update(ctx context.Context, acct Account) (*Account, error) {
	user, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if acct.ID == uuid.Nil {
		return nil, ErrMissingIdentifier
	}
	if _, err := ParseAccountType(string(acct.Type)); err != nil {
		return nil, err
	}
	code := currency.Normalize(acct.Currency)
	if code == "" {
		return nil, errors.New("currency code is required")
	}

	action := &actions.UpdateAccount{
		Update: &account.AccountUpdate{
			ID:          acct.ID,
			UserID:      user,
			Name:        acct.Name,
			Type:        string(acct.Type),
			Currency:    code,
			Balance:     acct.Balance,
			Provider:    acct.Provider,
			CategoryTag: acct.CategoryTag,
		},
	}

	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	acct.Currency = code
	acct.UpdatedAt = Pending(time.Now())
	return &acct, nil
}

// Remove deletes an account by id. Removing an absent id is not an error.
func (s *AccountService) Remove(ctx context.Context, id uuid.UUID) error {
	user, err := identity.FromContext(ctx)
	if err != nil {
		return err
	}
	if id == uuid.Nil {
		return ErrMissingIdentifier
	}

	return s.operator.Process(ctx, &actions.DeleteAccount{UserID: user, ID: id})
}
