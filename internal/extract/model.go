package extract

import (
	"github.com/shopspring/decimal"
)

// Type is the direction of a transaction: money leaving or entering an account.
type Type string

const (
	TypeDebit  Type = "debit"
	TypeCredit Type = "credit"
)

// RawMessage is one inbound SMS notification as delivered by the bridge.
// A zero TimestampMs means the source carried no timestamp.
type RawMessage struct {
	Body        string `json:"body"`
	Sender      string `json:"sender,omitempty"`
	TimestampMs int64  `json:"timestampMs,omitempty"`
}

// Transaction is a normalized financial event derived from a RawMessage.
// Amount is always the magnitude; direction is carried solely by Type.
type Transaction struct {
	// ID is derived from occurredAt, amount, and merchant so that repeated
	// scans of overlapping message windows produce identical IDs for the
	// same underlying message.
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        Type            `json:"type"`
	Merchant    string          `json:"merchant,omitempty"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	OccurredAt  string          `json:"occurred_at"`
}
