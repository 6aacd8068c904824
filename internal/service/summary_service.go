package service

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/aggregate"
	"github.com/carson-networks/ledger-server/internal/currency"
	"github.com/carson-networks/ledger-server/internal/identity"
)

// SummaryService derives aggregated views on demand from the full
// collections. Nothing is cached between requests; the collections are
// small enough that a fresh pass is cheaper than keeping derived state
// consistent.
type SummaryService struct {
	accounts     accountStore
	transactions transactionStore
	preferences  *PreferenceService
	currency     *currency.Service
}

func NewSummaryService(accounts accountStore, transactions transactionStore, prefs *PreferenceService, currencySvc *currency.Service) *SummaryService {
	return &SummaryService{
		accounts:     accounts,
		transactions: transactions,
		preferences:  prefs,
		currency:     currencySvc,
	}
}

// TotalBalance sums every account balance in the user's display currency.
// Accounts whose currency has no known rate come back flagged in
// Excluded instead of silently skewing the total.
func (s *SummaryService) TotalBalance(ctx context.Context) (*aggregate.TotalBalance, error) {
	user, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	pref, err := s.preferences.Get(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.accounts.List(ctx, user)
	if err != nil {
		return nil, err
	}

	balances := make([]aggregate.AccountBalance, len(rows))
	for i, row := range rows {
		balances[i] = aggregate.AccountBalance{
			ID:       row.ID,
			Name:     row.Name,
			Currency: row.Currency,
			Balance:  row.Balance,
		}
	}

	total, err := aggregate.SumBalances(balances, pref.DisplayCurrency, s.currency)
	if err != nil {
		return nil, err
	}
	return &total, nil
}

// Monthly groups the user's transactions by calendar month, most recent
// first, with per-currency subtotals.
func (s *SummaryService) Monthly(ctx context.Context) ([]aggregate.MonthlySummary, error) {
	entries, err := s.transactionEntries(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.MonthlySummaries(entries), nil
}

// Breakdown buckets the user's transactions by category, or by the
// user's configured category groups when any exist.
func (s *SummaryService) Breakdown(ctx context.Context) ([]aggregate.Bucket, error) {
	pref, err := s.preferences.Get(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.transactionEntries(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.Breakdown(entries, pref.Groups), nil
}

func (s *SummaryService) transactionEntries(ctx context.Context) ([]aggregate.TransactionEntry, error) {
	user, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.transactions.List(ctx, user)
	if err != nil {
		return nil, err
	}

	entries := make([]aggregate.TransactionEntry, len(rows))
	for i, row := range rows {
		entries[i] = aggregate.TransactionEntry{
			Date:     row.Date,
			Category: row.Category,
			Amount:   row.Amount,
			Currency: row.Currency,
		}
	}
	return entries, nil
}
