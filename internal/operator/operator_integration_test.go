package operator

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/notify"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

const testUser identity.UserID = "user-1"

func newTestStorage(t *testing.T) *storage.Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed operator test in short mode")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("ledger"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("testpassword"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, testcontainers.TerminateContainer(container))
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	cfg := &config.PostgresConfig{
		Address:  host,
		Port:     port.Port(),
		DB:       "ledger",
		Username: "postgres",
		Password: "testpassword",
	}

	migrations, err := migrate.New("file://../../migrations", cfg.ConnectionString())
	require.NoError(t, err)
	require.NoError(t, migrations.Up())

	store, err := storage.NewStorage(cfg)
	require.NoError(t, err)
	return store
}

func nextEvent(t *testing.T, events <-chan notify.Event) notify.Event {
	t.Helper()
	select {
	case event := <-events:
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("no change event published")
		return notify.Event{}
	}
}

func assertNoEvent(t *testing.T, events <-chan notify.Event) {
	t.Helper()
	select {
	case event := <-events:
		t.Fatalf("unexpected %s change event after a failed action", event.Collection)
	case <-time.After(200 * time.Millisecond):
	}
}

func accountBalance(t *testing.T, store *storage.Storage, id uuid.UUID) decimal.Decimal {
	t.Helper()
	row, err := store.Reader.Accounts.FindByID(context.Background(), testUser, id)
	require.NoError(t, err)
	return row.Balance
}

func TestOperator_TransactionActions(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	bus := notify.NewBus(logrus.New())
	delegator := NewOperatorDelegator(store, bus, 1)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	events, cancel := bus.Subscribe()
	t.Cleanup(cancel)

	acctID := uuid.Must(uuid.NewV4())
	createAcct := &actions.CreateAccount{Create: &account.AccountCreate{
		ID:       acctID,
		UserID:   testUser,
		Name:     "Checking",
		Type:     "checking",
		Currency: "USD",
		Balance:  decimal.RequireFromString("100.00"),
	}}
	require.NoError(t, delegator.Process(ctx, createAcct))
	require.NotNil(t, createAcct.Result)
	assert.Equal(t, notify.CollectionAccounts, nextEvent(t, events).Collection)

	txID := uuid.Must(uuid.NewV4())

	t.Run("matching-currency create moves the balance", func(t *testing.T) {
		action := &actions.CreateTransaction{Create: &transaction.TransactionCreate{
			ID:        txID,
			UserID:    testUser,
			AccountID: acctID,
			Date:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Category:  "food",
			Amount:    decimal.RequireFromString("-40.50"),
			Currency:  "USD",
		}}
		require.NoError(t, delegator.Process(ctx, action))
		require.NotNil(t, action.Result)

		// Events only go out once the write is committed, so the new
		// state is readable by the time they arrive.
		event := nextEvent(t, events)
		assert.Equal(t, notify.CollectionTransactions, event.Collection)
		assert.Equal(t, testUser, event.User)
		assert.Equal(t, notify.CollectionAccounts, nextEvent(t, events).Collection)
		assert.True(t, accountBalance(t, store, acctID).Equal(decimal.RequireFromString("59.50")))
	})

	t.Run("foreign-currency create leaves the balance alone", func(t *testing.T) {
		action := &actions.CreateTransaction{Create: &transaction.TransactionCreate{
			ID:        uuid.Must(uuid.NewV4()),
			UserID:    testUser,
			AccountID: acctID,
			Date:      time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			Category:  "travel",
			Amount:    decimal.RequireFromString("-10.00"),
			Currency:  "EUR",
		}}
		require.NoError(t, delegator.Process(ctx, action))
		nextEvent(t, events)
		nextEvent(t, events)

		assert.True(t, accountBalance(t, store, acctID).Equal(decimal.RequireFromString("59.50")))
	})

	t.Run("create against a missing account fails without side effects", func(t *testing.T) {
		before, err := store.Reader.Transactions.List(ctx, testUser)
		require.NoError(t, err)

		action := &actions.CreateTransaction{Create: &transaction.TransactionCreate{
			ID:        uuid.Must(uuid.NewV4()),
			UserID:    testUser,
			AccountID: uuid.Must(uuid.NewV4()),
			Date:      time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
			Amount:    decimal.RequireFromString("-1.00"),
			Currency:  "USD",
		}}
		err = delegator.Process(ctx, action)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		after, err := store.Reader.Transactions.List(ctx, testUser)
		require.NoError(t, err)
		assert.Len(t, after, len(before))
		assertNoEvent(t, events)
	})

	t.Run("failed update rolls the reversal back", func(t *testing.T) {
		action := &actions.UpdateTransaction{Update: &transaction.TransactionUpdate{
			ID:        txID,
			UserID:    testUser,
			AccountID: uuid.Must(uuid.NewV4()),
			Date:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Category:  "food",
			Amount:    decimal.RequireFromString("-99.00"),
			Currency:  "USD",
		}}
		err := delegator.Process(ctx, action)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		// The reversal and row update performed before the failing
		// account lookup were rolled back with the transaction.
		assert.True(t, accountBalance(t, store, acctID).Equal(decimal.RequireFromString("59.50")))
		row, err := store.Reader.Transactions.FindByID(ctx, testUser, txID)
		require.NoError(t, err)
		assert.True(t, row.Amount.Equal(decimal.RequireFromString("-40.50")))
		assert.Equal(t, acctID, row.AccountID)
		assertNoEvent(t, events)
	})

	t.Run("delete reverses the balance effect", func(t *testing.T) {
		action := &actions.DeleteTransaction{UserID: testUser, ID: txID}
		require.NoError(t, delegator.Process(ctx, action))
		nextEvent(t, events)
		nextEvent(t, events)

		assert.True(t, accountBalance(t, store, acctID).Equal(decimal.RequireFromString("100.00")))
		_, err := store.Reader.Transactions.FindByID(ctx, testUser, txID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("delete of a missing transaction is a no-op", func(t *testing.T) {
		action := &actions.DeleteTransaction{UserID: testUser, ID: uuid.Must(uuid.NewV4())}
		require.NoError(t, delegator.Process(ctx, action))
		nextEvent(t, events)
		nextEvent(t, events)

		assert.True(t, accountBalance(t, store, acctID).Equal(decimal.RequireFromString("100.00")))
	})
}
