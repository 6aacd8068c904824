package swap

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// UpdateSwapInput is the Huma input for updating a swap.
type UpdateSwapInput struct {
	ID   string `path:"id" format:"uuid" doc:"Swap UUID"`
	Body SwapBody
}

// UpdateSwapOutput is the response for updating a swap.
type UpdateSwapOutput struct {
	Body Swap
}

// swapUpdater is the interface for updating swaps.
type swapUpdater interface {
	Update(ctx context.Context, sw service.Swap) (*service.Swap, error)
}

// UpdateSwapHandler handles PUT /v1/swap/{id}.
type UpdateSwapHandler struct {
	SwapService swapUpdater
}

// NewUpdateSwapHandler creates a new UpdateSwapHandler.
func NewUpdateSwapHandler(svc swapUpdater) *UpdateSwapHandler {
	return &UpdateSwapHandler{SwapService: svc}
}

// Register registers the update swap endpoint with the Huma API.
func (h *UpdateSwapHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-swap",
		Method:      http.MethodPut,
		Path:        "/v1/swap/{id}",
		Summary:     "Update a swap",
		Description: "Re-states every field of an existing swap.",
		Tags:        []string{"Swaps"},
	}, h.handle)
}

func (h *UpdateSwapHandler) handle(ctx context.Context, input *UpdateSwapInput) (*UpdateSwapOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid swap id", err)
	}
	create, err := parseSwapBody(input.Body)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateSwapMs")
	}
	sw, err := h.SwapService.Update(ctx, service.Swap{
		ID:                id,
		PlatformAccountID: create.PlatformAccountID,
		Date:              create.Date,
		FromAsset:         create.FromAsset,
		FromAmount:        create.FromAmount,
		ToAsset:           create.ToAsset,
		ToAmount:          create.ToAmount,
		FeeAmount:         create.FeeAmount,
		FeeCurrency:       create.FeeCurrency,
		Notes:             create.Notes,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.Map("failed to update swap", err)
	}

	return &UpdateSwapOutput{Body: swapToAPI(*sw)}, nil
}
