package swap

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ListSwapsInput is the Huma input for listing swaps.
type ListSwapsInput struct{}

// ListSwapsResponseBody is the response body for listing swaps.
type ListSwapsResponseBody struct {
	Swaps []Swap `json:"swaps" doc:"All of the user's swaps, newest date first"`
}

// ListSwapsOutput is the Huma output for listing swaps.
type ListSwapsOutput struct {
	Body ListSwapsResponseBody
}

// swapLister is the interface for listing swaps.
type swapLister interface {
	List(ctx context.Context) ([]service.Swap, error)
}

// ListSwapsHandler handles GET /v1/swaps.
type ListSwapsHandler struct {
	SwapService swapLister
}

// NewListSwapsHandler creates a new ListSwapsHandler.
func NewListSwapsHandler(svc swapLister) *ListSwapsHandler {
	return &ListSwapsHandler{SwapService: svc}
}

// Register registers the list swaps endpoint with the Huma API.
func (h *ListSwapsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-swaps",
		Method:      http.MethodGet,
		Path:        "/v1/swaps",
		Summary:     "List swaps",
		Description: "Returns every swap owned by the requesting user.",
		Tags:        []string{"Swaps"},
	}, h.handle)
}

func (h *ListSwapsHandler) handle(ctx context.Context, _ *ListSwapsInput) (*ListSwapsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listSwapsMs")
	}
	swaps, err := h.SwapService.List(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.Map("failed to list swaps", err)
	}

	if logData != nil {
		logData.AddData("swapCount", len(swaps))
	}

	resp := ListSwapsResponseBody{Swaps: make([]Swap, len(swaps))}
	for i, sw := range swaps {
		resp.Swaps[i] = swapToAPI(sw)
	}
	return &ListSwapsOutput{Body: resp}, nil
}
