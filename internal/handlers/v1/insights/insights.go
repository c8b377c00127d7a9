package insights

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/sms-ledger/internal/service"
	"github.com/carson-networks/sms-ledger/internal/summary"
)

// SummaryOutput is the Huma output for the monthly summary.
type SummaryOutput struct {
	Body summary.MonthlySummary
}

// InsightsOutput is the Huma output for the full insight view set.
type InsightsOutput struct {
	Body service.Insights
}

// summaryGetter is the interface for computing the current-month summary.
type summaryGetter interface {
	Summary(ctx context.Context, now time.Time) (summary.MonthlySummary, error)
}

// insightsGetter is the interface for computing the full insight views.
type insightsGetter interface {
	Insights(ctx context.Context) (service.Insights, error)
}

// SummaryHandler handles GET /v1/insights/summary.
type SummaryHandler struct {
	Service summaryGetter
	now     func() time.Time
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc summaryGetter) *SummaryHandler {
	return &SummaryHandler{Service: svc, now: time.Now}
}

// Register registers the summary endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-monthly-summary",
		Method:      http.MethodGet,
		Path:        "/v1/insights/summary",
		Summary:     "Monthly summary",
		Description: "Returns totals, category breakdown, and projections for the current month.",
		Tags:        []string{"Insights"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, _ *struct{}) (*SummaryOutput, error) {
	monthly, err := h.Service.Summary(ctx, h.now())
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute summary", err)
	}
	return &SummaryOutput{Body: monthly}, nil
}

// InsightsHandler handles GET /v1/insights.
type InsightsHandler struct {
	Service insightsGetter
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(svc insightsGetter) *InsightsHandler {
	return &InsightsHandler{Service: svc}
}

// Register registers the insights endpoint with the Huma API.
func (h *InsightsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-insights",
		Method:      http.MethodGet,
		Path:        "/v1/insights",
		Summary:     "Insights",
		Description: "Returns the monthly series, category breakdowns, top merchants, and overall stats.",
		Tags:        []string{"Insights"},
	}, h.handle)
}

func (h *InsightsHandler) handle(ctx context.Context, _ *struct{}) (*InsightsOutput, error) {
	views, err := h.Service.Insights(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute insights", err)
	}
	return &InsightsOutput{Body: views}, nil
}
