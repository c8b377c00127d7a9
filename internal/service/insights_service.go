package service

import (
	"context"
	"time"

	"github.com/carson-networks/sms-ledger/internal/extract"
	"github.com/carson-networks/sms-ledger/internal/summary"
)

const (
	categoryLimit = 6
	merchantLimit = 5
)

// batchRestorer is the slice of ScanService the insights service depends on.
type batchRestorer interface {
	Restore(ctx context.Context) ([]extract.Transaction, error)
}

// Insights bundles the derived views over the whole persisted batch.
type Insights struct {
	Series            []summary.MonthPoint     `json:"series"`
	ExpenseCategories []summary.CategoryAmount `json:"expenseCategories"`
	IncomeCategories  []summary.CategoryAmount `json:"incomeCategories"`
	TopMerchants      []summary.MerchantSpend  `json:"topMerchants"`
	Stats             summary.Stats            `json:"stats"`
}

// InsightsService derives summaries from the persisted transaction batch.
// Every call recomputes from scratch; nothing is cached.
type InsightsService struct {
	restorer batchRestorer
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(restorer batchRestorer) *InsightsService {
	return &InsightsService{restorer: restorer}
}

// Summary computes the monthly summary for now's calendar month.
func (s *InsightsService) Summary(ctx context.Context, now time.Time) (summary.MonthlySummary, error) {
	txs, err := s.restorer.Restore(ctx)
	if err != nil {
		return summary.MonthlySummary{}, err
	}
	return summary.Compute(txs, now), nil
}

// Insights computes the full derived view set over the persisted batch.
func (s *InsightsService) Insights(ctx context.Context) (Insights, error) {
	txs, err := s.restorer.Restore(ctx)
	if err != nil {
		return Insights{}, err
	}

	return Insights{
		Series:            summary.MonthlySeries(txs),
		ExpenseCategories: summary.CategoryBreakdown(txs, extract.TypeDebit, categoryLimit),
		IncomeCategories:  summary.CategoryBreakdown(txs, extract.TypeCredit, categoryLimit),
		TopMerchants:      summary.TopMerchants(txs, merchantLimit),
		Stats:             summary.ComputeStats(txs),
	}, nil
}
