package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ErrRateUnavailable is returned when no rate is known for a currency pair.
// Callers must surface the original-currency amount instead of guessing.
var ErrRateUnavailable = errors.New("no conversion rate available")

// Source provides exchange rates between two currency codes. How rates are
// acquired and refreshed is outside this package.
type Source interface {
	Rate(from, to string) (decimal.Decimal, error)
}

// Service converts and formats monetary amounts.
type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// Convert converts amount from one currency to another. Same-currency
// conversion is the identity and performs no rate lookup.
func (s *Service) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	from = Normalize(from)
	to = Normalize(to)
	if from == to {
		return amount, nil
	}

	rate, err := s.source.Rate(from, to)
	if err != nil {
		return decimal.Zero, fmt.Errorf("convert %s to %s: %w", from, to, err)
	}
	return amount.Mul(rate), nil
}

// Format renders an amount in its own currency using the currency's
// canonical symbol and fraction rules. Codes unknown to the ISO/crypto
// table render as "<amount> <CODE>" with full precision.
func (s *Service) Format(amount decimal.Decimal, code string) string {
	code = Normalize(code)
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.String() + " " + code
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), code).Display()
}

// FormatIn renders an amount for display in displayCode. When convert is
// false, or the two codes match, the native rendering is returned. A
// converted figure carries a leading "≈" so it is never mistaken for an
// authoritative balance.
func (s *Service) FormatIn(amount decimal.Decimal, code, displayCode string, convert bool) (string, error) {
	code = Normalize(code)
	displayCode = Normalize(displayCode)

	if !convert || code == displayCode {
		return s.Format(amount, code), nil
	}

	converted, err := s.Convert(amount, code, displayCode)
	if err != nil {
		return "", err
	}
	return "≈" + s.Format(converted, displayCode), nil
}

// Normalize upper-cases and trims a currency code. Stored currency codes
// are always uppercase.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
