package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/aggregate"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/ledger-server/internal/logging"
)

// BreakdownInput is the Huma input for the breakdown view.
type BreakdownInput struct{}

// BreakdownResponseBody is the response body for the breakdown view.
type BreakdownResponseBody struct {
	Buckets []Bucket `json:"buckets" doc:"Category or group buckets, sorted by name"`
}

// BreakdownOutput is the Huma output for the breakdown view.
type BreakdownOutput struct {
	Body BreakdownResponseBody
}

// breakdownSummarizer is the interface for computing breakdowns.
type breakdownSummarizer interface {
	Breakdown(ctx context.Context) ([]aggregate.Bucket, error)
}

// BreakdownHandler handles GET /v1/summary/breakdown.
type BreakdownHandler struct {
	SummaryService breakdownSummarizer
}

// NewBreakdownHandler creates a new BreakdownHandler.
func NewBreakdownHandler(svc breakdownSummarizer) *BreakdownHandler {
	return &BreakdownHandler{SummaryService: svc}
}

// Register registers the breakdown endpoint with the Huma API.
func (h *BreakdownHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "breakdown-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary/breakdown",
		Summary:     "Category breakdown",
		Description: "Buckets the user's transactions by category, or by the user's configured category groups when any exist.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *BreakdownHandler) handle(ctx context.Context, _ *BreakdownInput) (*BreakdownOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("breakdownSummaryMs")
	}
	buckets, err := h.SummaryService.Breakdown(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.Map("failed to compute breakdown", err)
	}

	resp := BreakdownResponseBody{Buckets: make([]Bucket, len(buckets))}
	for i, bucket := range buckets {
		resp.Buckets[i] = Bucket{
			Name:             bucket.Name,
			TransactionCount: bucket.TransactionCount,
			Totals:           totalsToAPI(bucket.TotalsByCurrency),
		}
	}
	return &BreakdownOutput{Body: resp}, nil
}
