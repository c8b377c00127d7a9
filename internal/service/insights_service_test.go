package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/sms-ledger/internal/extract"
)

type mockRestorer struct {
	mock.Mock
}

func (m *mockRestorer) Restore(ctx context.Context) ([]extract.Transaction, error) {
	args := m.Called(ctx)
	txs, _ := args.Get(0).([]extract.Transaction)
	return txs, args.Error(1)
}

func insightsBatch() []extract.Transaction {
	return []extract.Transaction{
		{Amount: decimal.RequireFromString("100"), Type: extract.TypeDebit, Category: "Food", Merchant: "Swiggy", OccurredAt: "2025-06-10T08:00:00Z"},
		{Amount: decimal.RequireFromString("200"), Type: extract.TypeDebit, Category: "Travel", Merchant: "Uber", OccurredAt: "2025-06-11T08:00:00Z"},
		{Amount: decimal.RequireFromString("500"), Type: extract.TypeCredit, Category: "Income", OccurredAt: "2025-06-12T08:00:00Z"},
		{Amount: decimal.RequireFromString("50"), Type: extract.TypeDebit, Category: "Food", Merchant: "Swiggy", OccurredAt: "2025-05-20T08:00:00Z"},
	}
}

func TestInsightsService_Summary(t *testing.T) {
	restorer := new(mockRestorer)
	restorer.On("Restore", mock.Anything).Return(insightsBatch(), nil)

	svc := NewInsightsService(restorer)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	s, err := svc.Summary(context.Background(), now)
	assert.NoError(t, err)
	assert.Equal(t, "2025-06", s.Month)
	assert.True(t, s.TotalExpense.Equal(decimal.RequireFromString("300")), "May transaction excluded")
	assert.True(t, s.TotalIncome.Equal(decimal.RequireFromString("500")))
	assert.Equal(t, "Travel", s.TopCategory)
}

func TestInsightsService_Insights(t *testing.T) {
	restorer := new(mockRestorer)
	restorer.On("Restore", mock.Anything).Return(insightsBatch(), nil)

	svc := NewInsightsService(restorer)

	insights, err := svc.Insights(context.Background())
	assert.NoError(t, err)

	assert.Len(t, insights.Series, 2)
	assert.Equal(t, "2025-05", insights.Series[0].Month)

	assert.Len(t, insights.ExpenseCategories, 2)
	assert.Equal(t, "Travel", insights.ExpenseCategories[0].Category)

	assert.Len(t, insights.IncomeCategories, 1)
	assert.Equal(t, "Income", insights.IncomeCategories[0].Category)

	assert.Len(t, insights.TopMerchants, 2)
	assert.Equal(t, "Uber", insights.TopMerchants[0].Merchant)
	assert.Equal(t, 2, insights.TopMerchants[1].Transactions)

	assert.Equal(t, 4, insights.Stats.TransactionCount)
	assert.True(t, insights.Stats.TotalExpense.Equal(decimal.RequireFromString("350")))
}

func TestInsightsService_RestoreErrorPropagates(t *testing.T) {
	restorer := new(mockRestorer)
	restorer.On("Restore", mock.Anything).Return(nil, errors.New("database unavailable"))

	svc := NewInsightsService(restorer)

	_, err := svc.Summary(context.Background(), time.Now())
	assert.Error(t, err)

	_, err = svc.Insights(context.Background())
	assert.Error(t, err)
}
