package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/currency"
	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// transactionStore is the read side this service needs.
type transactionStore interface {
	List(ctx context.Context, user identity.UserID) ([]*transaction.Transaction, error)
	FindByID(ctx context.Context, user identity.UserID, id uuid.UUID) (*transaction.Transaction, error)
}

// TransactionService is the transaction repository: identity-guarded CRUD
// over the user's transaction collection.
type TransactionService struct {
	store    transactionStore
	operator processor
}

func NewTransactionService(store transactionStore, op processor) *TransactionService {
	return &TransactionService{store: store, operator: op}
}

// List returns the user's transactions, newest date first.
func (s *TransactionService) List(ctx context.Context) ([]Transaction, error) {
	user, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.List(ctx, user)
	if err != nil {
		return nil, err
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = transactionFromStorage(row)
	}
	return converted, nil
}

// Add creates a transaction and returns it with pending local timestamps.
// The owning account's balance is adjusted in the same store transaction
// when the currencies match.
func (s *TransactionService) Add(ctx context.Context, create TransactionCreate) (*Transaction, error) {
	user, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if create.AccountID == uuid.Nil {
		return nil, errors.New("accountId is required")
	}
	code := currency.Normalize(create.Currency)
	if code == "" {
		return nil, errors.New("currency code is required")
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	date := dateOnly(create.Date)
	if create.Date.IsZero() {
		date = dateOnly(time.Now())
	}

	action := &actions.CreateTransaction{
		Create: &transaction.TransactionCreate{
			ID:          id,
			UserID:      user,
			AccountID:   create.AccountID,
			Date:        date,
			Description: create.Description,
			Category:    create.Category,
			Amount:      create.Amount,
			Currency:    code,
		},
	}

	now := Pending(time.Now())
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	result := Transaction{
		ID:          id,
		AccountID:   create.AccountID,
		Date:        date,
		Description: create.Description,
		Category:    create.Category,
		Amount:      create.Amount,
		Currency:    code,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if action.Result != nil {
		result = transactionFromStorage(action.Result)
	}
	return &result, nil
}

// Update re-states an existing transaction. The entity must carry its id.
func (s *TransactionService) Update(ctx context.Context, tx Transaction) (*Transaction, error) {
	user, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if tx.ID == uuid.Nil {
		return nil, ErrMissingIdentifier
	}
	code := currency.Normalize(tx.Currency)
	if code == "" {
		return nil, errors.New("currency code is required")
	}

	action := &actions.UpdateTransaction{
		Update: &transaction.TransactionUpdate{
			ID:          tx.ID,
			UserID:      user,
			AccountID:   tx.AccountID,
			Date:        dateOnly(tx.Date),
			Description: tx.Description,
			Category:    tx.Category,
			Amount:      tx.Amount,
			Currency:    code,
		},
	}

	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	tx.Currency = code
	tx.Date = dateOnly(tx.Date)
	tx.UpdatedAt = Pending(time.Now())
	return &tx, nil
}

// Remove deletes a transaction by id, reversing its balance effect.
// Removing an absent id is not an error.
func (s *TransactionService) Remove(ctx context.Context, id uuid.UUID) error {
	user, err := identity.FromContext(ctx)
	if err != nil {
		return err
	}
	if id == uuid.Nil {
		return ErrMissingIdentifier
	}

	return s.operator.Process(ctx, &actions.DeleteTransaction{UserID: user, ID: id})
}
