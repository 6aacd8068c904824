package rates

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/ledger-server/internal/currency"
)

func newTestAPI(t *testing.T, table *currency.Table) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewSetRatesHandler(table).Register(api)
	return api
}

func TestHTTP_SetRates_Success(t *testing.T) {
	table := currency.NewTable()

	resp := newTestAPI(t, table).Put("/v1/rates", SetRatesBody{
		Rates: []Rate{
			{From: "EUR", To: "USD", Rate: "1.10"},
			{From: "BTC", To: "USD", Rate: "64000"},
		},
	})

	assert.Equal(t, http.StatusOK, resp.Code)

	rate, err := table.Rate("EUR", "USD")
	assert.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("1.10")))
}

func TestHTTP_SetRates_InvalidRate(t *testing.T) {
	table := currency.NewTable()

	resp := newTestAPI(t, table).Put("/v1/rates", SetRatesBody{
		Rates: []Rate{{From: "EUR", To: "USD", Rate: "not-a-decimal"}},
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_SetRates_RejectsNonPositive(t *testing.T) {
	table := currency.NewTable()

	resp := newTestAPI(t, table).Put("/v1/rates", SetRatesBody{
		Rates: []Rate{{From: "EUR", To: "USD", Rate: "0"}},
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	_, err := table.Rate("EUR", "USD")
	assert.ErrorIs(t, err, currency.ErrRateUnavailable)
}

func TestHTTP_SetRates_EmptyList(t *testing.T) {
	table := currency.NewTable()

	// Huma minItems validation rejects the request before the handler runs.
	resp := newTestAPI(t, table).Put("/v1/rates", SetRatesBody{Rates: []Rate{}})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
