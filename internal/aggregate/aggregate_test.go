package aggregate

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/ledger-server/internal/currency"
)

func usd(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// -- SumBalances --

func TestSumBalances_SameCurrency(t *testing.T) {
	svc := currency.NewService(currency.NewTable())

	accounts := []AccountBalance{
		{ID: uuid.Must(uuid.NewV4()), Name: "Checking", Currency: "USD", Balance: usd("100")},
		{ID: uuid.Must(uuid.NewV4()), Name: "Savings", Currency: "USD", Balance: usd("50")},
	}

	total, err := SumBalances(accounts, "USD", svc)
	assert.NoError(t, err)
	assert.True(t, total.Total.Equal(usd("150")))
	assert.Equal(t, "$150.00", total.Formatted)
	assert.Empty(t, total.Excluded)
}

func TestSumBalances_UnknownRateExcludesAndFlags(t *testing.T) {
	svc := currency.NewService(currency.NewTable())

	oddball := AccountBalance{ID: uuid.Must(uuid.NewV4()), Name: "Staking", Currency: "PEPE", Balance: usd("9999")}
	accounts := []AccountBalance{
		{ID: uuid.Must(uuid.NewV4()), Name: "Checking", Currency: "USD", Balance: usd("100")},
		{ID: uuid.Must(uuid.NewV4()), Name: "Savings", Currency: "USD", Balance: usd("50")},
		oddball,
	}

	total, err := SumBalances(accounts, "USD", svc)
	assert.NoError(t, err)
	assert.True(t, total.Total.Equal(usd("150")))
	assert.Len(t, total.Excluded, 1)
	assert.Equal(t, oddball.ID, total.Excluded[0].ID)
	assert.Equal(t, "PEPE", total.Excluded[0].Currency)
	assert.Equal(t, "9999 PEPE", total.Excluded[0].Formatted)
}

func TestSumBalances_ConvertsAcrossCurrencies(t *testing.T) {
	table := currency.NewTable()
	table.Set("EUR", "USD", usd("1.25"))
	svc := currency.NewService(table)

	accounts := []AccountBalance{
		{Name: "Checking", Currency: "USD", Balance: usd("100")},
		{Name: "Euro", Currency: "EUR", Balance: usd("40")},
	}

	total, err := SumBalances(accounts, "usd", svc)
	assert.NoError(t, err)
	assert.Equal(t, "USD", total.Currency)
	assert.True(t, total.Total.Equal(usd("150")))
}

// -- MonthlySummaries --

func TestMonthlySummaries_GroupsByMonth(t *testing.T) {
	entries := []TransactionEntry{
		{Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Amount: usd("100"), Currency: "USD"},
		{Date: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), Amount: usd("-40"), Currency: "USD"},
	}

	summaries := MonthlySummaries(entries)
	assert.Len(t, summaries, 1)
	assert.Equal(t, "2024-01", summaries[0].Key)
	assert.Equal(t, 2, summaries[0].TransactionCount)
	assert.True(t, summaries[0].TotalsByCurrency["USD"].Equal(usd("60")))
}

func TestMonthlySummaries_SortedDescending(t *testing.T) {
	entries := []TransactionEntry{
		{Date: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), Amount: usd("1"), Currency: "USD"},
		{Date: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), Amount: usd("1"), Currency: "USD"},
		{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Amount: usd("1"), Currency: "USD"},
	}

	summaries := MonthlySummaries(entries)
	assert.Len(t, summaries, 3)
	assert.Equal(t, "2024-02", summaries[0].Key)
	assert.Equal(t, "2024-01", summaries[1].Key)
	assert.Equal(t, "2023-12", summaries[2].Key)
}

func TestMonthlySummaries_KeepsCurrenciesApart(t *testing.T) {
	entries := []TransactionEntry{
		{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Amount: usd("100"), Currency: "USD"},
		{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Amount: usd("200"), Currency: "EUR"},
	}

	summaries := MonthlySummaries(entries)
	assert.Len(t, summaries, 1)
	assert.True(t, summaries[0].TotalsByCurrency["USD"].Equal(usd("100")))
	assert.True(t, summaries[0].TotalsByCurrency["EUR"].Equal(usd("200")))
}

// -- Breakdown --

func TestBreakdown_ByCategory(t *testing.T) {
	entries := []TransactionEntry{
		{Category: "groceries", Amount: usd("-30"), Currency: "USD"},
		{Category: "groceries", Amount: usd("-20"), Currency: "USD"},
		{Category: "", Amount: usd("-5"), Currency: "USD"},
	}

	buckets := Breakdown(entries, nil)
	assert.Len(t, buckets, 2)
	assert.Equal(t, "groceries", buckets[0].Name)
	assert.True(t, buckets[0].TotalsByCurrency["USD"].Equal(usd("-50")))
	assert.Equal(t, DefaultBucket, buckets[1].Name)
	assert.Equal(t, 1, buckets[1].TransactionCount)
}

func TestBreakdown_ByGroupWithFallback(t *testing.T) {
	entries := []TransactionEntry{
		{Category: "groceries", Amount: usd("-30"), Currency: "USD"},
		{Category: "restaurants", Amount: usd("-20"), Currency: "USD"},
		{Category: "rocket-parts", Amount: usd("-999"), Currency: "USD"},
	}
	groups := map[string][]string{
		"food": {"groceries", "restaurants"},
	}

	buckets := Breakdown(entries, groups)
	assert.Len(t, buckets, 2)
	assert.Equal(t, "food", buckets[0].Name)
	assert.Equal(t, 2, buckets[0].TransactionCount)
	assert.True(t, buckets[0].TotalsByCurrency["USD"].Equal(usd("-50")))
	assert.Equal(t, DefaultBucket, buckets[1].Name)
	assert.True(t, buckets[1].TotalsByCurrency["USD"].Equal(usd("-999")))
}
