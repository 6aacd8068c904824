package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer. A positive
// amount is an inflow, a negative one an outflow; there is no type field.
type Transaction struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Date        time.Time
	Description string
	Category    string
	Amount      decimal.Decimal
	Currency    string
	CreatedAt   Timestamp
	UpdatedAt   Timestamp
}

// TransactionCreate is the input for creating a transaction.
type TransactionCreate struct {
	AccountID   uuid.UUID
	Date        time.Time
	Description string
	Category    string
	Amount      decimal.Decimal
	Currency    string
}

// dateOnly normalizes a timestamp to midnight UTC; transactions carry no
// time-of-day semantics.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		AccountID:   row.AccountID,
		Date:        dateOnly(row.Date),
		Description: row.Description,
		Category:    row.Category,
		Amount:      row.Amount,
		Currency:    row.Currency,
		CreatedAt:   Confirmed(row.CreatedAt),
		UpdatedAt:   Confirmed(row.UpdatedAt),
	}
}
