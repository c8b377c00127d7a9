package scan

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/sms-ledger/internal/extract"
	"github.com/carson-networks/sms-ledger/internal/handlers/v1/transaction"
	"github.com/carson-networks/sms-ledger/internal/service"
)

// ScanRequestBody is the request body for triggering a scan. Zero values
// fall back to the configured defaults.
type ScanRequestBody struct {
	WindowDays int `json:"windowDays,omitempty" doc:"How many days of messages to read, defaults to the configured window"`
	MaxCount   int `json:"maxCount,omitempty" doc:"Maximum messages to read, defaults to the configured cap"`
}

// ScanInput is the Huma input for triggering a scan.
type ScanInput struct {
	Body ScanRequestBody
}

// ScanResponseBody is the response body for a completed scan.
type ScanResponseBody struct {
	TransactionCount int                       `json:"transactionCount" doc:"Transactions extracted and persisted"`
	Transactions     []transaction.Transaction `json:"transactions" doc:"The persisted batch, newest first"`
}

// ScanOutput is the Huma output for a completed scan.
type ScanOutput struct {
	Body ScanResponseBody
}

// scanner is the interface for running a scan.
type scanner interface {
	Scan(ctx context.Context, windowDays, maxCount int) ([]extract.Transaction, error)
}

// ScanHandler handles POST /v1/scan.
type ScanHandler struct {
	Scanner           scanner
	DefaultWindowDays int
	DefaultMaxCount   int
}

// NewScanHandler creates a new ScanHandler.
func NewScanHandler(svc scanner, defaultWindowDays, defaultMaxCount int) *ScanHandler {
	return &ScanHandler{
		Scanner:           svc,
		DefaultWindowDays: defaultWindowDays,
		DefaultMaxCount:   defaultMaxCount,
	}
}

// Register registers the scan endpoint with the Huma API.
func (h *ScanHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "scan",
		Method:      http.MethodPost,
		Path:        "/v1/scan",
		Summary:     "Scan messages",
		Description: "Reads recent SMS messages, extracts transactions, and persists the batch.",
		Tags:        []string{"Scan"},
	}, h.handle)
}

func (h *ScanHandler) handle(ctx context.Context, input *ScanInput) (*ScanOutput, error) {
	windowDays := input.Body.WindowDays
	if windowDays <= 0 {
		windowDays = h.DefaultWindowDays
	}
	maxCount := input.Body.MaxCount
	if maxCount <= 0 {
		maxCount = h.DefaultMaxCount
	}

	txs, err := h.Scanner.Scan(ctx, windowDays, maxCount)
	if err != nil {
		if errors.Is(err, service.ErrPermissionDenied) {
			return nil, huma.NewError(http.StatusForbidden, "sms permission not granted", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "scan failed", err)
	}

	return &ScanOutput{
		Body: ScanResponseBody{
			TransactionCount: len(txs),
			Transactions:     transaction.FromExtractBatch(txs),
		},
	}, nil
}
