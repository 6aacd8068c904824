package summary

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/aggregate"
)

// ExcludedAccount is an account left out of a converted total because its
// currency had no known rate.
type ExcludedAccount struct {
	ID        string `json:"id" doc:"Account UUID"`
	Name      string `json:"name" doc:"Account name"`
	Currency  string `json:"currency" doc:"Currency with no known rate"`
	Balance   string `json:"balance" doc:"Decimal balance in the account currency"`
	Formatted string `json:"formatted" doc:"Balance rendered in the account's own currency"`
}

// TotalBalance is the converted sum of every account balance.
type TotalBalance struct {
	Currency  string            `json:"currency" doc:"Display currency the total is expressed in"`
	Total     string            `json:"total" doc:"Decimal sum of all convertible balances"`
	Formatted string            `json:"formatted" doc:"Total rendered with the display currency's symbol"`
	Excluded  []ExcludedAccount `json:"excluded,omitempty" doc:"Accounts left out because no rate was known"`
}

// MonthlySummary reports one calendar month of transactions.
type MonthlySummary struct {
	Month            string            `json:"month" doc:"Year-month key, e.g. 2024-01"`
	TransactionCount int               `json:"transactionCount" doc:"Number of transactions in the month"`
	Totals           map[string]string `json:"totals" doc:"Signed decimal totals per currency"`
}

// Bucket is one slice of a category or group breakdown.
type Bucket struct {
	Name             string            `json:"name" doc:"Category, group name, or 'uncategorized'"`
	TransactionCount int               `json:"transactionCount" doc:"Number of transactions in the bucket"`
	Totals           map[string]string `json:"totals" doc:"Signed decimal totals per currency"`
}

func totalsToAPI(totals map[string]decimal.Decimal) map[string]string {
	out := make(map[string]string, len(totals))
	for code, total := range totals {
		out[code] = total.String()
	}
	return out
}

func totalBalanceToAPI(total aggregate.TotalBalance) TotalBalance {
	out := TotalBalance{
		Currency:  total.Currency,
		Total:     total.Total.String(),
		Formatted: total.Formatted,
	}
	for _, excluded := range total.Excluded {
		out.Excluded = append(out.Excluded, ExcludedAccount{
			ID:        excluded.ID.String(),
			Name:      excluded.Name,
			Currency:  excluded.Currency,
			Balance:   excluded.Balance.String(),
			Formatted: excluded.Formatted,
		})
	}
	return out
}
