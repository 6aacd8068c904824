package service

import (
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage/swap"
)

// Swap represents an asset conversion on a platform account. Swaps are a
// record of the event only; the platform account's balance is adjusted
// separately, via transactions, if at all.
type Swap struct {
	ID                uuid.UUID
	PlatformAccountID uuid.UUID
	Date              time.Time
	FromAsset         string
	FromAmount        decimal.Decimal
	ToAsset           string
	ToAmount          decimal.Decimal
	FeeAmount         null.Val[decimal.Decimal]
	FeeCurrency       null.Val[string]
	Notes             null.Val[string]
	CreatedAt         Timestamp
	UpdatedAt         Timestamp
}

// SwapCreate is the input for recording a swap.
type SwapCreate struct {
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

func swapFromStorage(row *swap.Swap) Swap {
	return Swap{
		ID:                row.ID,
		PlatformAccountID: row.PlatformAccountID,
		Date:              dateOnly(row.Date),
		FromAsset:         row.FromAsset,
		FromAmount:        row.FromAmount,
		ToAsset:           row.ToAsset,
		ToAmount:          row.ToAmount,
		FeeAmount:         row.FeeAmount,
		FeeCurrency:       row.FeeCurrency,
		Notes:             row.Notes,
		CreatedAt:         Confirmed(row.CreatedAt),
		UpdatedAt:         Confirmed(row.UpdatedAt),
	}
}
