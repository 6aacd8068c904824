package swap

import (
	"net/http"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/service"
)

// Swap is the API response model for a swap.
type Swap struct {
	ID                string `json:"id" doc:"Swap UUID"`
	PlatformAccountID string `json:"platformAccountId" doc:"Exchange or platform account UUID"`
	Date              string `json:"date" doc:"Swap date (RFC 3339, midnight UTC)"`
	FromAsset         string `json:"fromAsset" doc:"Asset sold"`
	FromAmount        string `json:"fromAmount" doc:"Decimal amount sold"`
	ToAsset           string `json:"toAsset" doc:"Asset bought"`
	ToAmount          string `json:"toAmount" doc:"Decimal amount bought"`
	FeeAmount         string `json:"feeAmount,omitempty" doc:"Decimal fee paid"`
	FeeCurrency       string `json:"feeCurrency,omitempty" doc:"Currency the fee was paid in"`
	Notes             string `json:"notes,omitempty" doc:"Free-form notes"`
	CreatedAt         string `json:"createdAt" doc:"RFC 3339 creation time"`
	UpdatedAt         string `json:"updatedAt" doc:"RFC 3339 last update time"`
	Pending           bool   `json:"pending,omitempty" doc:"True while timestamps are local and not yet confirmed by the store"`
}

// SwapBody is the request body for creating or updating a swap.
type SwapBody struct {
	PlatformAccountID string `json:"platformAccountId" format:"uuid" doc:"Exchange or platform account UUID"`
	Date              string `json:"date,omitempty" format:"date-time" doc:"Swap date, defaults to today"`
	FromAsset         string `json:"fromAsset" minLength:"1" doc:"Asset sold"`
	FromAmount        string `json:"fromAmount" minLength:"1" doc:"Decimal amount sold"`
	ToAsset           string `json:"toAsset" minLength:"1" doc:"Asset bought"`
	ToAmount          string `json:"toAmount" minLength:"1" doc:"Decimal amount bought"`
	FeeAmount         string `json:"feeAmount,omitempty" doc:"Decimal fee paid"`
	FeeCurrency       string `json:"feeCurrency,omitempty" doc:"Currency the fee was paid in"`
	Notes             string `json:"notes,omitempty" doc:"Free-form notes"`
}

func swapToAPI(sw service.Swap) Swap {
	out := Swap{
		ID:                sw.ID.String(),
		PlatformAccountID: sw.PlatformAccountID.String(),
		Date:              sw.Date.Format(time.RFC3339),
		FromAsset:         sw.FromAsset,
		FromAmount:        sw.FromAmount.String(),
		ToAsset:           sw.ToAsset,
		ToAmount:          sw.ToAmount.String(),
		FeeCurrency:       sw.FeeCurrency.GetOr(""),
		Notes:             sw.Notes.GetOr(""),
		CreatedAt:         sw.CreatedAt.Time.Format(time.RFC3339),
		UpdatedAt:         sw.UpdatedAt.Time.Format(time.RFC3339),
		Pending:           !sw.CreatedAt.Confirmed || !sw.UpdatedAt.Confirmed,
	}
	if fee, ok := sw.FeeAmount.Get(); ok {
		out.FeeAmount = fee.String()
	}
	return out
}

func parseSwapBody(body SwapBody) (service.SwapCreate, error) {
	accountID, err := uuid.FromString(body.PlatformAccountID)
	if err != nil {
		return service.SwapCreate{}, huma.NewError(http.StatusBadRequest, "invalid platformAccountId", err)
	}
	fromAmount, err := decimal.NewFromString(body.FromAmount)
	if err != nil {
		return service.SwapCreate{}, huma.NewError(http.StatusBadRequest, "invalid fromAmount", err)
	}
	toAmount, err := decimal.NewFromString(body.ToAmount)
	if err != nil {
		return service.SwapCreate{}, huma.NewError(http.StatusBadRequest, "invalid toAmount", err)
	}

	var date time.Time
	if body.Date != "" {
		date, err = time.Parse(time.RFC3339, body.Date)
		if err != nil {
			return service.SwapCreate{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	create := service.SwapCreate{
		PlatformAccountID: accountID,
		Date:              date,
		FromAsset:         body.FromAsset,
		FromAmount:        fromAmount,
		ToAsset:           body.ToAsset,
		ToAmount:          toAmount,
	}
	if body.FeeAmount != "" {
		fee, err := decimal.NewFromString(body.FeeAmount)
		if err != nil {
			return service.SwapCreate{}, huma.NewError(http.StatusBadRequest, "invalid feeAmount", err)
		}
		create.FeeAmount = null.From(fee)
	}
	if body.FeeCurrency != "" {
		create.FeeCurrency = null.From(body.FeeCurrency)
	}
	if body.Notes != "" {
		create.Notes = null.From(body.Notes)
	}
	return create, nil
}
