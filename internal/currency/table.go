package currency

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Table is an in-memory rate table keyed by currency pair. It is the
// process-local view of whatever rate feed the deployment uses; pairs it
// does not know yield ErrRateUnavailable.
type Table struct {
	mu    sync.RWMutex
	rates map[string]decimal.Decimal
}

var _ Source = (*Table)(nil)

func NewTable() *Table {
	return &Table{rates: make(map[string]decimal.Decimal)}
}

func pairKey(from, to string) string {
	return from + "/" + to
}

// Set records the rate for one unit of from in to.
func (t *Table) Set(from, to string, rate decimal.Decimal) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rates[pairKey(Normalize(from), Normalize(to))] = rate
}

// Rate returns the rate for the pair. The direct pair wins; the inverse
// pair is used as a fallback. Anything else fails loudly.
func (t *Table) Rate(from, to string) (decimal.Decimal, error) {
	from = Normalize(from)
	to = Normalize(to)

	t.mu.RLock()
	defer t.mu.RUnlock()

	if rate, ok := t.rates[pairKey(from, to)]; ok {
		return rate, nil
	}
	if inverse, ok := t.rates[pairKey(to, from)]; ok && !inverse.IsZero() {
		return decimal.NewFromInt(1).Div(inverse), nil
	}
	return decimal.Zero, ErrRateUnavailable
}
