package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/sms-ledger/internal/extract"
	"github.com/carson-networks/sms-ledger/internal/smsbridge"
)

// transactionsKey is the fixed store key for the persisted batch. Every scan
// replaces the whole batch; there are no partial updates.
const transactionsKey = "transactions"

// ErrPermissionDenied reports that SMS read access is not granted. Callers
// surface it to the user; it is never retried automatically.
var ErrPermissionDenied = errors.New("sms permission not granted")

// BatchStore is the persistence interface the scan service needs: whole-value
// JSON save and best-effort load.
type BatchStore interface {
	Save(ctx context.Context, key string, value interface{}) error
	Load(ctx context.Context, key string, dest interface{}) error
}

// ScanService runs the bridge-to-store scan operation.
type ScanService struct {
	bridge smsbridge.Bridge
	store  BatchStore
	now    func() time.Time
}

// NewScanService creates a new ScanService.
func NewScanService(bridge smsbridge.Bridge, store BatchStore) *ScanService {
	return &ScanService{
		bridge: bridge,
		store:  store,
		now:    time.Now,
	}
}

// Scan reads recent messages from the bridge, assembles them into
// transactions, persists the whole batch, and returns it newest-first.
// Messages that fail extraction are dropped silently; only bridge and store
// failures surface as errors. Scans are not guarded against re-entrancy:
// concurrent scans each write their own batch and the last write wins.
func (s *ScanService) Scan(ctx context.Context, windowDays, maxCount int) ([]extract.Transaction, error) {
	scanID := uuid.Must(uuid.NewV4())
	log := logrus.WithFields(logrus.Fields{
		"scanID":     scanID.String(),
		"windowDays": windowDays,
		"maxCount":   maxCount,
	})

	granted, err := s.bridge.EnsurePermission(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan: ensure permission: %w", err)
	}
	if !granted {
		return nil, ErrPermissionDenied
	}

	msgs, err := s.bridge.ReadRecent(ctx, windowDays, maxCount)
	if err != nil {
		return nil, fmt.Errorf("scan: read messages: %w", err)
	}

	txs := extract.AssembleBatch(msgs, s.now())
	log.WithFields(logrus.Fields{
		"messageCount":     len(msgs),
		"transactionCount": len(txs),
	}).Info("ScanService.Scan.assembled")
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		log.Debug(spew.Sdump(txs))
	}

	if err := s.store.Save(ctx, transactionsKey, txs); err != nil {
		return nil, fmt.Errorf("scan: persist batch: %w", err)
	}

	return txs, nil
}

// Restore loads the last persisted batch. Missing or malformed stored data
// yields an empty batch; storage read failures propagate.
func (s *ScanService) Restore(ctx context.Context) ([]extract.Transaction, error) {
	txs := []extract.Transaction{}
	if err := s.store.Load(ctx, transactionsKey, &txs); err != nil {
		return nil, fmt.Errorf("restore: %w", err)
	}
	return txs, nil
}
