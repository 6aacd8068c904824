package transaction

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/identity"
)

// Transaction represents a transaction row. The sign of Amount is the sole
// inflow/outflow gate; there is no separate type column.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	UserID      string          `db:"user_id"`
	AccountID   uuid.UUID       `db:"account_id"`
	Date        time.Time       `db:"transaction_date"`
	Description string          `db:"description"`
	Category    string          `db:"category"`
	Amount      decimal.Decimal `db:"amount"`
	Currency    string          `db:"currency"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

// TransactionCreate is the input for inserting a new transaction.
type TransactionCreate struct {
	ID          uuid.UUID
	UserID      identity.UserID
	AccountID   uuid.UUID
	Date        time.Time
	Description string
	Category    string
	Amount      decimal.Decimal
	Currency    string
}

// TransactionUpdate re-states every mutable field.
type TransactionUpdate struct {
	ID          uuid.UUID
	UserID      identity.UserID
	AccountID   uuid.UUID
	Date        time.Time
	Description string
	Category    string
	Amount      decimal.Decimal
	Currency    string
}

const table = "transactions"

var columns = []string{
	"id", "user_id", "account_id", "transaction_date", "description",
	"category", "amount", "currency", "created_at", "updated_at",
}
