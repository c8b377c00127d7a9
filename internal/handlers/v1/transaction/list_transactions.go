package transaction

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/sms-ledger/internal/extract"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Month string `query:"month" pattern:"^\\d{4}-\\d{2}$" required:"false" doc:"Optional year-month filter, e.g. 2025-06"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Persisted batch, newest first"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// batchRestorer is the interface for reading the persisted batch.
type batchRestorer interface {
	Restore(ctx context.Context) ([]extract.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	Restorer batchRestorer
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(restorer batchRestorer) *ListTransactionsHandler {
	return &ListTransactionsHandler{Restorer: restorer}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns the persisted transaction batch from the last scan, newest first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	txs, err := h.Restorer.Restore(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if input.Month != "" {
		filtered := txs[:0]
		for _, tx := range txs {
			if strings.HasPrefix(tx.OccurredAt, input.Month) {
				filtered = append(filtered, tx)
			}
		}
		txs = filtered
	}

	return &ListTransactionsOutput{
		Body: ListTransactionsResponseBody{Transactions: FromExtractBatch(txs)},
	}, nil
}
