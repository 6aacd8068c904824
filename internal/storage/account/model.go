package account

import (
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/identity"
)

// Account represents an account row. Optional columns are explicit nulls
// in storage and null.Val values in memory; a field is never "missing".
type Account struct {
	ID          uuid.UUID        `db:"id"`
	UserID      string           `db:"user_id"`
	Name        string           `db:"name"`
	Type        string           `db:"type"`
	Currency    string           `db:"currency"`
	Balance     decimal.Decimal  `db:"balance"`
	Provider    null.Val[string] `db:"provider"`
	CategoryTag null.Val[string] `db:"category_tag"`
	CreatedAt   time.Time        `db:"created_at"`
	UpdatedAt   time.Time        `db:"updated_at"`
}

// AccountCreate is the input for inserting a new account. The ID is
// assigned by the caller, timestamps by the database.
type AccountCreate struct {
	ID          uuid.UUID
	UserID      identity.UserID
	Name        string
	Type        string
	Currency    string
	Balance     decimal.Decimal
	Provider    null.Val[string]
	CategoryTag null.Val[string]
}

// AccountUpdate re-states every mutable field; created_at is never
// touched and updated_at is re-stamped by the writer.
type AccountUpdate struct {
	ID          uuid.UUID
	UserID      identity.UserID
	Name        string
	Type        string
	Currency    string
	Balance     decimal.Decimal
	Provider    null.Val[string]
	CategoryTag null.Val[string]
}

const table = "accounts"

var columns = []string{
	"id", "user_id", "name", "type", "currency", "balance",
	"provider", "category_tag", "created_at", "updated_at",
}
