package aggregate

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionEntry is the slice of a transaction this package needs.
type TransactionEntry struct {
	Date     time.Time
	Category string
	Amount   decimal.Decimal
	Currency string
}

// MonthlySummary reports one calendar month. Subtotals stay per-currency so
// no rounding compounds before display.
type MonthlySummary struct {
	// Key is the year-month key, e.g. "2024-01".
	Key              string
	Month            time.Time
	TransactionCount int
	TotalsByCurrency map[string]decimal.Decimal
}

// MonthlySummaries groups transactions by calendar month, most recent
// month first. Dates are normalized to midnight UTC before keying.
func MonthlySummaries(entries []TransactionEntry) []MonthlySummary {
	byMonth := make(map[string]*MonthlySummary)

	for _, entry := range entries {
		date := entry.Date.UTC()
		monthStart := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
		key := fmt.Sprintf("%04d-%02d", monthStart.Year(), int(monthStart.Month()))

		summary, ok := byMonth[key]
		if !ok {
			summary = &MonthlySummary{
				Key:              key,
				Month:            monthStart,
				TotalsByCurrency: make(map[string]decimal.Decimal),
			}
			byMonth[key] = summary
		}

		summary.TransactionCount++
		cur := entry.Currency
		summary.TotalsByCurrency[cur] = summary.TotalsByCurrency[cur].Add(entry.Amount)
	}

	summaries := make([]MonthlySummary, 0, len(byMonth))
	for _, summary := range byMonth {
		summaries = append(summaries, *summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Month.After(summaries[j].Month)
	})
	return summaries
}
