package sqlconfig

import (
	"context"
	"time"
)

// Item is one row of the secure_items table: an opaque (possibly encrypted)
// value stored under a caller-chosen key.
type Item struct {
	Key       string    `db:"key"`
	Value     []byte    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

// IItemsTable defines the interface for secure item storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without
// changing callers.
//
//go:generate mockery --name IItemsTable --output mock_IItemsTable.go
type IItemsTable interface {
	// Get retrieves an item by key. A missing key returns (nil, nil).
	Get(ctx context.Context, key string) (*Item, error)

	// Put stores value under key, replacing any existing value whole.
	Put(ctx context.Context, key string, value []byte) error
}
