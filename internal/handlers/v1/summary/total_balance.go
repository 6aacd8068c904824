package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/aggregate"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/ledger-server/internal/logging"
)

// TotalBalanceInput is the Huma input for the total balance view.
type TotalBalanceInput struct{}

// TotalBalanceOutput is the Huma output for the total balance view.
type TotalBalanceOutput struct {
	Body TotalBalance
}

// balanceSummarizer is the interface for computing the total balance.
type balanceSummarizer interface {
	TotalBalance(ctx context.Context) (*aggregate.TotalBalance, error)
}

// TotalBalanceHandler handles GET /v1/summary/balance.
type TotalBalanceHandler struct {
	SummaryService balanceSummarizer
}

// NewTotalBalanceHandler creates a new TotalBalanceHandler.
func NewTotalBalanceHandler(svc balanceSummarizer) *TotalBalanceHandler {
	return &TotalBalanceHandler{SummaryService: svc}
}

// Register registers the total balance endpoint with the Huma API.
func (h *TotalBalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "total-balance",
		Method:      http.MethodGet,
		Path:        "/v1/summary/balance",
		Summary:     "Total balance",
		Description: "Sums every account balance in the user's display currency. Accounts whose currency has no known rate are listed as excluded.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *TotalBalanceHandler) handle(ctx context.Context, _ *TotalBalanceInput) (*TotalBalanceOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("totalBalanceMs")
	}
	total, err := h.SummaryService.TotalBalance(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.Map("failed to compute total balance", err)
	}

	if logData != nil {
		logData.AddData("excludedCount", len(total.Excluded))
	}

	return &TotalBalanceOutput{Body: totalBalanceToAPI(*total)}, nil
}
