package swap

import (
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/identity"
)

// Swap represents a conversion event between two assets on a platform
// account. Writing a swap never touches the platform account's balance;
// the user records any balance adjustment as a separate transaction.
type Swap struct {
	ID                uuid.UUID                 `db:"id"`
	UserID            string                    `db:"user_id"`
	PlatformAccountID uuid.UUID                 `db:"platform_account_id"`
	Date              time.Time                 `db:"swap_date"`
	FromAsset         string                    `db:"from_asset"`
	FromAmount        decimal.Decimal           `db:"from_amount"`
	ToAsset           string                    `db:"to_asset"`
	ToAmount          decimal.Decimal           `db:"to_amount"`
	FeeAmount         null.Val[decimal.Decimal] `db:"fee_amount"`
	FeeCurrency       null.Val[string]          `db:"fee_currency"`
	Notes             null.Val[string]          `db:"notes"`
	CreatedAt         time.Time                 `db:"created_at"`
	UpdatedAt         time.Time                 `db:"updated_at"`
}

// SwapCreate is the input for inserting a new swap.
type SwapCreate struct {
	ID                uuid.UUID
	UserID            identity.UserID
	PlatformAccountID uuid.UUID
	Date              time.Time
	FromAsset         string
	FromAmount        decimal.Decimal
	ToAsset           string
	ToAmount          decimal.Decimal
	FeeAmount         null.Val[decimal.Decimal]
	FeeCurrency       null.Val[string]
	Notes             null.Val[string]
}

// SwapUpdate re-states every mutable field.
type SwapUpdate struct {
	ID                uuid.UUID
	UserID            identity.UserID
	PlatformAccountID uuid.UUID
	Date              time.Time
	FromAsset         string
	FromAmount        decimal.Decimal
	ToAsset           string
	ToAmount          decimal.Decimal
	FeeAmount         null.Val[decimal.Decimal]
	FeeCurrency       null.Val[string]
	Notes             null.Val[string]
}

const table = "swaps"

var columns = []string{
	"id", "user_id", "platform_account_id", "swap_date", "from_asset",
	"from_amount", "to_asset", "to_amount", "fee_amount", "fee_currency",
	"notes", "created_at", "updated_at",
}
