package extract

import (
	"sort"
	"time"
)

// maxDescriptionLen bounds the stored copy of the message body.
const maxDescriptionLen = 160

// Assemble converts one RawMessage into zero or one Transaction. Messages
// failing the currency-marker pre-filter, direction classification, or amount
// parsing are rejected silently (ok=false); no partially-filled Transaction
// is ever produced. now supplies occurredAt for messages without a timestamp.
func Assemble(msg RawMessage, now time.Time) (Transaction, bool) {
	body := msg.Body

	if !HasCurrencyMarker(body) {
		return Transaction{}, false
	}

	direction, ok := ParseDirection(body)
	if !ok {
		return Transaction{}, false
	}

	amount, ok := ParseAmount(body)
	if !ok {
		return Transaction{}, false
	}

	merchant, _ := ExtractMerchant(body)
	category := Categorize(body + " " + merchant)

	when := now
	if msg.TimestampMs > 0 {
		when = time.UnixMilli(msg.TimestampMs)
	}
	occurredAt := when.UTC().Format(time.RFC3339)

	return Transaction{
		ID:          occurredAt + "-" + amount.String() + "-" + merchant,
		Amount:      amount,
		Type:        direction,
		Merchant:    merchant,
		Description: truncate(body, maxDescriptionLen),
		Category:    category,
		OccurredAt:  occurredAt,
	}, true
}

// AssembleBatch assembles every message in msgs and returns the surviving
// transactions ordered newest-first. Ties on occurredAt keep input order.
func AssembleBatch(msgs []RawMessage, now time.Time) []Transaction {
	txs := make([]Transaction, 0, len(msgs))
	for _, msg := range msgs {
		if tx, ok := Assemble(msg, now); ok {
			txs = append(txs, tx)
		}
	}

	// RFC3339 UTC strings sort lexicographically in time order.
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].OccurredAt > txs[j].OccurredAt
	})

	return txs
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
