package summary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/sms-ledger/internal/extract"
)

func merchantTx(amount, merchant, occurredAt string) extract.Transaction {
	t := tx(extract.TypeDebit, amount, "Other", occurredAt)
	t.Merchant = merchant
	return t
}

func TestMonthlySeries_GroupsChronologically(t *testing.T) {
	batch := []extract.Transaction{
		tx(extract.TypeDebit, "50", "Food", "2025-06-10T08:00:00Z"),
		tx(extract.TypeCredit, "400", "Income", "2025-05-01T08:00:00Z"),
		tx(extract.TypeDebit, "100", "Travel", "2025-05-20T08:00:00Z"),
	}

	series := MonthlySeries(batch)
	assert.Len(t, series, 2)

	assert.Equal(t, "2025-05", series[0].Month)
	assert.True(t, series[0].Income.Equal(decimal.RequireFromString("400")))
	assert.True(t, series[0].Expense.Equal(decimal.RequireFromString("100")))
	assert.True(t, series[0].Net.Equal(decimal.RequireFromString("300")))

	assert.Equal(t, "2025-06", series[1].Month)
	assert.True(t, series[1].Expense.Equal(decimal.RequireFromString("50")))
}

func TestCategoryBreakdown_SortedAndLimited(t *testing.T) {
	batch := []extract.Transaction{
		tx(extract.TypeDebit, "50", "Food", "2025-06-01T08:00:00Z"),
		tx(extract.TypeDebit, "200", "Travel", "2025-06-02T08:00:00Z"),
		tx(extract.TypeDebit, "75", "Bills", "2025-06-03T08:00:00Z"),
		tx(extract.TypeCredit, "999", "Income", "2025-06-04T08:00:00Z"),
	}

	breakdown := CategoryBreakdown(batch, extract.TypeDebit, 2)
	assert.Len(t, breakdown, 2)
	assert.Equal(t, "Travel", breakdown[0].Category)
	assert.Equal(t, "Bills", breakdown[1].Category)
}

func TestCategoryBreakdown_CreditDirection(t *testing.T) {
	batch := []extract.Transaction{
		tx(extract.TypeDebit, "50", "Food", "2025-06-01T08:00:00Z"),
		tx(extract.TypeCredit, "500", "Income", "2025-06-02T08:00:00Z"),
	}

	breakdown := CategoryBreakdown(batch, extract.TypeCredit, 0)
	assert.Len(t, breakdown, 1)
	assert.Equal(t, "Income", breakdown[0].Category)
	assert.True(t, breakdown[0].Amount.Equal(decimal.RequireFromString("500")))
}

func TestTopMerchants_RanksBySpend(t *testing.T) {
	batch := []extract.Transaction{
		merchantTx("100", "Swiggy", "2025-06-01T08:00:00Z"),
		merchantTx("300", "Amazon", "2025-06-02T08:00:00Z"),
		merchantTx("50", "Swiggy", "2025-06-03T08:00:00Z"),
		tx(extract.TypeDebit, "80", "Other", "2025-06-04T08:00:00Z"), // no merchant
		func() extract.Transaction {
			t := tx(extract.TypeCredit, "700", "Income", "2025-06-05T08:00:00Z")
			t.Merchant = "Employer"
			return t
		}(),
	}

	merchants := TopMerchants(batch, 5)
	assert.Len(t, merchants, 2, "credits and merchant-less debits excluded")

	assert.Equal(t, "Amazon", merchants[0].Merchant)
	assert.True(t, merchants[0].Amount.Equal(decimal.RequireFromString("300")))
	assert.Equal(t, 1, merchants[0].Transactions)

	assert.Equal(t, "Swiggy", merchants[1].Merchant)
	assert.True(t, merchants[1].Amount.Equal(decimal.RequireFromString("150")))
	assert.Equal(t, 2, merchants[1].Transactions)
}

func TestComputeStats(t *testing.T) {
	batch := []extract.Transaction{
		tx(extract.TypeDebit, "100", "Food", "2025-06-01T08:00:00Z"),
		tx(extract.TypeDebit, "200", "Travel", "2025-05-01T08:00:00Z"),
		tx(extract.TypeCredit, "600", "Income", "2025-04-01T08:00:00Z"),
	}

	stats := ComputeStats(batch)
	assert.True(t, stats.TotalExpense.Equal(decimal.RequireFromString("300")))
	assert.True(t, stats.TotalIncome.Equal(decimal.RequireFromString("600")))
	assert.True(t, stats.NetSavings.Equal(decimal.RequireFromString("300")))
	assert.True(t, stats.AvgTransaction.Equal(decimal.RequireFromString("300")))
	assert.Equal(t, 3, stats.TransactionCount)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Equal(t, 0, stats.TransactionCount)
	assert.True(t, stats.AvgTransaction.IsZero())
}
