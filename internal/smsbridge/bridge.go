// Package smsbridge provides access to the device-side SMS inbox. The core
// pipeline only ever sees the narrow Bridge interface; the concrete gateway
// client is an implementation detail of the deployment.
package smsbridge

import (
	"context"

	"github.com/carson-networks/sms-ledger/internal/extract"
)

// Bridge is the message source consumed by the scan service. A denied
// permission or an empty inbox is a normal result, not an error; errors are
// reserved for transport-level failures.
type Bridge interface {
	EnsurePermission(ctx context.Context) (bool, error)
	ReadRecent(ctx context.Context, windowDays, maxCount int) ([]extract.RawMessage, error)
}
