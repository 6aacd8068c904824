package rates

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/logging"
)

// Rate is one currency pair rate.
type Rate struct {
	From string `json:"from" minLength:"1" doc:"Currency sold, e.g. EUR"`
	To   string `json:"to" minLength:"1" doc:"Currency bought, e.g. USD"`
	Rate string `json:"rate" minLength:"1" doc:"Decimal price of one unit of 'from' in 'to'"`
}

// SetRatesBody is the request body for loading rates.
type SetRatesBody struct {
	Rates []Rate `json:"rates" minItems:"1" doc:"Rates to load into the table"`
}

// SetRatesInput is the Huma input for loading rates.
type SetRatesInput struct {
	Body SetRatesBody
}

// SetRatesResponseBody is the response body for loading rates.
type SetRatesResponseBody struct {
	Loaded int `json:"loaded" doc:"Number of rates loaded"`
}

// SetRatesOutput is the Huma output for loading rates.
type SetRatesOutput struct {
	Body SetRatesResponseBody
}

// rateTable is the interface for the in-memory rate table.
type rateTable interface {
	Set(from, to string, rate decimal.Decimal)
}

// SetRatesHandler handles PUT /v1/rates. Rates are process-wide, not
// per-user: whatever feed the deployment uses pushes them here.
type SetRatesHandler struct {
	Table rateTable
}

// NewSetRatesHandler creates a new SetRatesHandler.
func NewSetRatesHandler(table rateTable) *SetRatesHandler {
	return &SetRatesHandler{Table: table}
}

// Register registers the set rates endpoint with the Huma API.
func (h *SetRatesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "set-rates",
		Method:      http.MethodPut,
		Path:        "/v1/rates",
		Summary:     "Load exchange rates",
		Description: "Loads currency pair rates into the in-memory table used by conversions. Existing pairs are overwritten.",
		Tags:        []string{"Rates"},
	}, h.handle)
}

func (h *SetRatesHandler) handle(ctx context.Context, input *SetRatesInput) (*SetRatesOutput, error) {
	logData := logging.GetLogData(ctx)

	for _, rate := range input.Body.Rates {
		value, err := decimal.NewFromString(rate.Rate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid rate for "+rate.From+"/"+rate.To, err)
		}
		if value.IsZero() || value.IsNegative() {
			return nil, huma.NewError(http.StatusBadRequest, "rate must be positive for "+rate.From+"/"+rate.To, nil)
		}
		h.Table.Set(rate.From, rate.To, value)
	}

	if logData != nil {
		logData.AddData("rateCount", len(input.Body.Rates))
	}

	return &SetRatesOutput{Body: SetRatesResponseBody{Loaded: len(input.Body.Rates)}}, nil
}
