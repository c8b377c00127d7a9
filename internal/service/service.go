package service

import (
	"github.com/carson-networks/sms-ledger/internal/smsbridge"
)

// Service holds all business logic services.
type Service struct {
	Scan     *ScanService
	Insights *InsightsService
}

// NewService creates a new Service with the given bridge and batch store.
func NewService(bridge smsbridge.Bridge, store BatchStore) *Service {
	scan := NewScanService(bridge, store)
	return &Service{
		Scan:     scan,
		Insights: NewInsightsService(scan),
	}
}
