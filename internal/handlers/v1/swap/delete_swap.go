package swap

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/ledger-server/internal/logging"
)

// DeleteSwapInput is the Huma input for deleting a swap.
type DeleteSwapInput struct {
	ID string `path:"id" format:"uuid" doc:"Swap UUID"`
}

// DeleteSwapOutput is the response for deleting a swap.
type DeleteSwapOutput struct {
	Status int
}

// swapRemover is the interface for deleting swaps.
type swapRemover interface {
	Remove(ctx context.Context, id uuid.UUID) error
}

// DeleteSwapHandler handles DELETE /v1/swap/{id}.
type DeleteSwapHandler struct {
	SwapService swapRemover
}

// NewDeleteSwapHandler creates a new DeleteSwapHandler.
func NewDeleteSwapHandler(svc swapRemover) *DeleteSwapHandler {
	return &DeleteSwapHandler{SwapService: svc}
}

// Register registers the delete swap endpoint with the Huma API.
func (h *DeleteSwapHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-swap",
		Method:      http.MethodDelete,
		Path:        "/v1/swap/{id}",
		Summary:     "Delete a swap",
		Description: "Deletes a swap record. Account balances are not adjusted.",
		Tags:        []string{"Swaps"},
	}, h.handle)
}

func (h *DeleteSwapHandler) handle(ctx context.Context, input *DeleteSwapInput) (*DeleteSwapOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid swap id", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deleteSwapMs")
	}
	err = h.SwapService.Remove(ctx, id)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.Map("failed to delete swap", err)
	}

	return &DeleteSwapOutput{Status: http.StatusNoContent}, nil
}
