package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/preference"
	"github.com/carson-networks/ledger-server/internal/storage/swap"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

const testUser identity.UserID = "user-1"

func userContext() context.Context {
	return identity.WithUser(context.Background(), testUser)
}

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

type mockAccountStore struct {
	mock.Mock
}

func (m *mockAccountStore) List(ctx context.Context, user identity.UserID) ([]*account.Account, error) {
	args := m.Called(ctx, user)
	if rows := args.Get(0); rows != nil {
		return rows.([]*account.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountStore) FindByID(ctx context.Context, user identity.UserID, id uuid.UUID) (*account.Account, error) {
	args := m.Called(ctx, user, id)
	if row := args.Get(0); row != nil {
		return row.(*account.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockTransactionStore struct {
	mock.Mock
}

func (m *mockTransactionStore) List(ctx context.Context, user identity.UserID) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, user)
	if rows := args.Get(0); rows != nil {
		return rows.([]*transaction.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTransactionStore) FindByID(ctx context.Context, user identity.UserID, id uuid.UUID) (*transaction.Transaction, error) {
	args := m.Called(ctx, user, id)
	if row := args.Get(0); row != nil {
		return row.(*transaction.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSwapStore struct {
	mock.Mock
}

func (m *mockSwapStore) List(ctx context.Context, user identity.UserID) ([]*swap.Swap, error) {
	args := m.Called(ctx, user)
	if rows := args.Get(0); rows != nil {
		return rows.([]*swap.Swap), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSwapStore) FindByID(ctx context.Context, user identity.UserID, id uuid.UUID) (*swap.Swap, error) {
	args := m.Called(ctx, user, id)
	if row := args.Get(0); row != nil {
		return row.(*swap.Swap), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPreferenceStore struct {
	mock.Mock
}

func (m *mockPreferenceStore) Get(ctx context.Context, user identity.UserID) (*preference.Preference, error) {
	args := m.Called(ctx, user)
	if row := args.Get(0); row != nil {
		return row.(*preference.Preference), args.Error(1)
	}
	return nil, args.Error(1)
}
