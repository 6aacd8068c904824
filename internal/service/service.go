package service

import (
	"context"
	"errors"

	"github.com/carson-networks/ledger-server/internal/currency"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// ErrMissingIdentifier reports an update or delete without a valid id. No
// write is attempted.
var ErrMissingIdentifier = errors.New("missing entity identifier")

// processor enqueues a write action and waits for its transaction.
// Implemented by operator.OperatorDelegator.
type processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Swap        *SwapService
	Preference  *PreferenceService
	Summary     *SummaryService
}

// NewService wires the services over the given storage and operator.
// defaultCurrency is the display currency for users without a preference.
func NewService(store *storage.Storage, op processor, currencySvc *currency.Service, defaultCurrency string) *Service {
	accountSvc := NewAccountService(store.Reader.Accounts, op)
	transactionSvc := NewTransactionService(store.Reader.Transactions, op)
	swapSvc := NewSwapService(store.Reader.Swaps, op)
	preferenceSvc := NewPreferenceService(store.Reader.Preferences, op, defaultCurrency)
	summarySvc := NewSummaryService(store.Reader.Accounts, store.Reader.Transactions, preferenceSvc, currencySvc)

	return &Service{
		Account:     accountSvc,
		Transaction: transactionSvc,
		Swap:        swapSvc,
		Preference:  preferenceSvc,
		Summary:     summarySvc,
	}
}
