package currency

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) Rate(from, to string) (decimal.Decimal, error) {
	args := m.Called(from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func TestConvert_SameCurrencySkipsLookup(t *testing.T) {
	source := new(mockSource)
	svc := NewService(source)

	amount := decimal.RequireFromString("123.45")
	got, err := svc.Convert(amount, "USD", "usd")

	assert.NoError(t, err)
	assert.True(t, got.Equal(amount))
	source.AssertNotCalled(t, "Rate")
}

func TestConvert_UsesRate(t *testing.T) {
	source := new(mockSource)
	source.On("Rate", "USD", "EUR").Return(decimal.RequireFromString("0.5"), nil)
	svc := NewService(source)

	got, err := svc.Convert(decimal.RequireFromString("100"), "USD", "EUR")

	assert.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("50")))
	source.AssertExpectations(t)
}

func TestConvert_RateUnavailable(t *testing.T) {
	source := new(mockSource)
	source.On("Rate", "USD", "XYZ").Return(decimal.Zero, ErrRateUnavailable)
	svc := NewService(source)

	_, err := svc.Convert(decimal.RequireFromString("100"), "USD", "XYZ")
	assert.ErrorIs(t, err, ErrRateUnavailable)
}

func TestFormat_KnownCurrency(t *testing.T) {
	svc := NewService(NewTable())

	assert.Equal(t, "$150.00", svc.Format(decimal.RequireFromString("150"), "USD"))
	assert.Equal(t, "-$40.50", svc.Format(decimal.RequireFromString("-40.5"), "usd"))
}

func TestFormat_UnknownTickerKeepsFullPrecision(t *testing.T) {
	svc := NewService(NewTable())

	got := svc.Format(decimal.RequireFromString("0.00012345"), "pepe")
	assert.Equal(t, "0.00012345 PEPE", got)
}

func TestFormatIn_NativeWhenNotConverting(t *testing.T) {
	source := new(mockSource)
	svc := NewService(source)

	got, err := svc.FormatIn(decimal.RequireFromString("10"), "EUR", "USD", false)
	assert.NoError(t, err)
	assert.Equal(t, "€10.00", got)
	source.AssertNotCalled(t, "Rate")
}

func TestFormatIn_ConvertedCarriesApproximationMarker(t *testing.T) {
	source := new(mockSource)
	source.On("Rate", "EUR", "USD").Return(decimal.RequireFromString("1.2"), nil)
	svc := NewService(source)

	got, err := svc.FormatIn(decimal.RequireFromString("10"), "EUR", "USD", true)
	assert.NoError(t, err)
	assert.Equal(t, "≈$12.00", got)
}

func TestFormatIn_PropagatesMissingRate(t *testing.T) {
	source := new(mockSource)
	source.On("Rate", "EUR", "JPY").Return(decimal.Zero, errors.New("feed down"))
	svc := NewService(source)

	_, err := svc.FormatIn(decimal.RequireFromString("10"), "EUR", "JPY", true)
	assert.Error(t, err)
}

func TestTable_DirectAndInverse(t *testing.T) {
	table := NewTable()
	table.Set("usd", "eur", decimal.RequireFromString("0.8"))

	direct, err := table.Rate("USD", "EUR")
	assert.NoError(t, err)
	assert.True(t, direct.Equal(decimal.RequireFromString("0.8")))

	inverse, err := table.Rate("EUR", "USD")
	assert.NoError(t, err)
	assert.True(t, inverse.Equal(decimal.RequireFromString("1.25")))
}

func TestTable_UnknownPair(t *testing.T) {
	table := NewTable()

	_, err := table.Rate("USD", "CHF")
	assert.ErrorIs(t, err, ErrRateUnavailable)
}
