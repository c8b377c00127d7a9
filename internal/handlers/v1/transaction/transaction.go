package transaction

import (
	"github.com/carson-networks/sms-ledger/internal/extract"
)

// Transaction is the API response model for an extracted transaction.
// It is used only for responses; transactions are never created via the API.
type Transaction struct {
	ID          string `json:"id" doc:"Derived ID: occurredAt-amount-merchant"`
	Amount      string `json:"amount" doc:"Decimal amount, always positive"`
	Type        string `json:"type" doc:"debit or credit"`
	Merchant    string `json:"merchant,omitempty" doc:"Best-effort merchant name"`
	Description string `json:"description" doc:"Original message body, truncated"`
	Category    string `json:"category" doc:"Spending/income category"`
	OccurredAt  string `json:"occurredAt" doc:"RFC3339 occurrence time"`
}

// FromExtract converts a pipeline transaction to the API model.
func FromExtract(tx extract.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID,
		Amount:      tx.Amount.String(),
		Type:        string(tx.Type),
		Merchant:    tx.Merchant,
		Description: tx.Description,
		Category:    tx.Category,
		OccurredAt:  tx.OccurredAt,
	}
}

// FromExtractBatch converts a batch, preserving order.
func FromExtractBatch(txs []extract.Transaction) []Transaction {
	converted := make([]Transaction, len(txs))
	for i, tx := range txs {
		converted[i] = FromExtract(tx)
	}
	return converted
}
