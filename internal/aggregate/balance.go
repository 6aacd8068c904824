// Package aggregate derives totals, monthly summaries, and breakdowns from
// already-fetched collections. Every pass is a pure transformation, safe to
// recompute on each request.
package aggregate

import (
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/currency"
)

// AccountBalance is the slice of an account this package needs.
type AccountBalance struct {
	ID       uuid.UUID
	Name     string
	Currency string
	Balance  decimal.Decimal
}

// ExcludedAccount flags an account left out of a converted total because
// its currency had no known rate. Formatted is the balance rendered in its
// own currency.
type ExcludedAccount struct {
	ID        uuid.UUID
	Name      string
	Currency  string
	Balance   decimal.Decimal
	Formatted string
}

// TotalBalance is a converted sum plus the accounts that could not be
// converted. Excluded accounts are flagged, never coerced to zero.
type TotalBalance struct {
	Currency  string
	Total     decimal.Decimal
	Formatted string
	Excluded  []ExcludedAccount
}

// SumBalances converts every account balance into displayCurrency and sums
// them. An account whose currency has no rate lands in Excluded; any other
// conversion failure propagates.
func SumBalances(accounts []AccountBalance, displayCurrency string, svc *currency.Service) (TotalBalance, error) {
	result := TotalBalance{
		Currency: currency.Normalize(displayCurrency),
		Total:    decimal.Zero,
	}

	for _, acct := range accounts {
		converted, err := svc.Convert(acct.Balance, acct.Currency, result.Currency)
		if errors.Is(err, currency.ErrRateUnavailable) {
			result.Excluded = append(result.Excluded, ExcludedAccount{
				ID:        acct.ID,
				Name:      acct.Name,
				Currency:  acct.Currency,
				Balance:   acct.Balance,
				Formatted: svc.Format(acct.Balance, acct.Currency),
			})
			continue
		}
		if err != nil {
			return TotalBalance{}, err
		}
		result.Total = result.Total.Add(converted)
	}

	result.Formatted = svc.Format(result.Total, result.Currency)
	return result, nil
}
