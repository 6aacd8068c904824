package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/aggregate"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/ledger-server/internal/logging"
)

// MonthlyInput is the Huma input for the monthly summary view.
type MonthlyInput struct{}

// MonthlyResponseBody is the response body for the monthly summary view.
type MonthlyResponseBody struct {
	Months []MonthlySummary `json:"months" doc:"Calendar months with transactions, most recent first"`
}

// MonthlyOutput is the Huma output for the monthly summary view.
type MonthlyOutput struct {
	Body MonthlyResponseBody
}

// monthlySummarizer is the interface for computing monthly summaries.
type monthlySummarizer interface {
	Monthly(ctx context.Context) ([]aggregate.MonthlySummary, error)
}

// MonthlyHandler handles GET /v1/summary/monthly.
type MonthlyHandler struct {
	SummaryService monthlySummarizer
}

// NewMonthlyHandler creates a new MonthlyHandler.
func NewMonthlyHandler(svc monthlySummarizer) *MonthlyHandler {
	return &MonthlyHandler{SummaryService: svc}
}

// Register registers the monthly summary endpoint with the Huma API.
func (h *MonthlyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary/monthly",
		Summary:     "Monthly summary",
		Description: "Groups the user's transactions by calendar month with per-currency totals.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *MonthlyHandler) handle(ctx context.Context, _ *MonthlyInput) (*MonthlyOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("monthlySummaryMs")
	}
	summaries, err := h.SummaryService.Monthly(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.Map("failed to compute monthly summary", err)
	}

	resp := MonthlyResponseBody{Months: make([]MonthlySummary, len(summaries))}
	for i, summary := range summaries {
		resp.Months[i] = MonthlySummary{
			Month:            summary.Key,
			TransactionCount: summary.TransactionCount,
			Totals:           totalsToAPI(summary.TotalsByCurrency),
		}
	}
	return &MonthlyOutput{Body: resp}, nil
}
