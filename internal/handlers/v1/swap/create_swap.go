package swap

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// CreateSwapInput is the Huma input for recording a swap.
type CreateSwapInput struct {
	Body SwapBody
}

// CreateSwapOutput is the response for recording a swap.
type CreateSwapOutput struct {
	Status int
	Body   Swap
}

// swapCreator is the interface for recording swaps.
type swapCreator interface {
	Add(ctx context.Context, create service.SwapCreate) (*service.Swap, error)
}

// CreateSwapHandler handles POST /v1/swap.
type CreateSwapHandler struct {
	SwapService swapCreator
}

// NewCreateSwapHandler creates a new CreateSwapHandler.
func NewCreateSwapHandler(svc swapCreator) *CreateSwapHandler {
	return &CreateSwapHandler{SwapService: svc}
}

// Register registers the create swap endpoint with the Huma API.
func (h *CreateSwapHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-swap",
		Method:      http.MethodPost,
		Path:        "/v1/swap",
		Summary:     "Record a swap",
		Description: "Records an asset conversion on a platform account. Account balances are not adjusted.",
		Tags:        []string{"Swaps"},
	}, h.handle)
}

func (h *CreateSwapHandler) handle(ctx context.Context, input *CreateSwapInput) (*CreateSwapOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseSwapBody(input.Body)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createSwapMs")
	}
	sw, err := h.SwapService.Add(ctx, create)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.Map("failed to record swap", err)
	}

	if logData != nil {
		logData.AddData("swapID", sw.ID.String())
	}

	return &CreateSwapOutput{
		Status: http.StatusCreated,
		Body:   swapToAPI(*sw),
	}, nil
}
