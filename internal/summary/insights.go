package summary

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/sms-ledger/internal/extract"
)

// MonthPoint is one month's income/expense totals in a chronological series.
type MonthPoint struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// CategoryAmount is a category's total for one direction.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// MerchantSpend ranks a merchant by total debit amount.
type MerchantSpend struct {
	Merchant     string          `json:"merchant"`
	Amount       decimal.Decimal `json:"amount"`
	Transactions int             `json:"transactions"`
}

// Stats are whole-batch totals, not limited to a single month.
type Stats struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	NetSavings       decimal.Decimal `json:"netSavings"`
	AvgTransaction   decimal.Decimal `json:"avgTransaction"`
	TransactionCount int             `json:"transactionCount"`
}

// MonthlySeries groups the batch into per-month totals, oldest month first.
func MonthlySeries(txs []extract.Transaction) []MonthPoint {
	totals := make(map[string]*MonthPoint)
	var months []string

	for _, tx := range txs {
		if len(tx.OccurredAt) < 7 {
			continue
		}
		month := tx.OccurredAt[:7]
		point, ok := totals[month]
		if !ok {
			point = &MonthPoint{Month: month}
			totals[month] = point
			months = append(months, month)
		}
		if tx.Type == extract.TypeCredit {
			point.Income = point.Income.Add(tx.Amount)
		} else {
			point.Expense = point.Expense.Add(tx.Amount)
		}
	}

	sort.Strings(months)

	series := make([]MonthPoint, len(months))
	for i, month := range months {
		point := totals[month]
		point.Net = point.Income.Sub(point.Expense)
		series[i] = *point
	}
	return series
}

// CategoryBreakdown sums the batch by category for one direction and returns
// the top limit categories by amount, descending. Ties keep first-seen order.
func CategoryBreakdown(txs []extract.Transaction, txType extract.Type, limit int) []CategoryAmount {
	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, tx := range txs {
		if tx.Type != txType {
			continue
		}
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	breakdown := make([]CategoryAmount, 0, len(order))
	for _, category := range order {
		breakdown = append(breakdown, CategoryAmount{Category: category, Amount: totals[category]})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})

	if limit > 0 && len(breakdown) > limit {
		breakdown = breakdown[:limit]
	}
	return breakdown
}

// TopMerchants ranks debit merchants by total spend, descending, returning at
// most limit entries. Transactions without a merchant are skipped.
func TopMerchants(txs []extract.Transaction, limit int) []MerchantSpend {
	totals := make(map[string]*MerchantSpend)
	var order []string

	for _, tx := range txs {
		if tx.Type != extract.TypeDebit || tx.Merchant == "" {
			continue
		}
		spend, ok := totals[tx.Merchant]
		if !ok {
			spend = &MerchantSpend{Merchant: tx.Merchant}
			totals[tx.Merchant] = spend
			order = append(order, tx.Merchant)
		}
		spend.Amount = spend.Amount.Add(tx.Amount)
		spend.Transactions++
	}

	merchants := make([]MerchantSpend, 0, len(order))
	for _, merchant := range order {
		merchants = append(merchants, *totals[merchant])
	}
	sort.SliceStable(merchants, func(i, j int) bool {
		return merchants[i].Amount.GreaterThan(merchants[j].Amount)
	})

	if limit > 0 && len(merchants) > limit {
		merchants = merchants[:limit]
	}
	return merchants
}

// ComputeStats totals the whole batch regardless of month.
func ComputeStats(txs []extract.Transaction) Stats {
	stats := Stats{TransactionCount: len(txs)}
	sum := decimal.Zero

	for _, tx := range txs {
		if tx.Type == extract.TypeCredit {
			stats.TotalIncome = stats.TotalIncome.Add(tx.Amount)
		} else {
			stats.TotalExpense = stats.TotalExpense.Add(tx.Amount)
		}
		sum = sum.Add(tx.Amount)
	}

	stats.NetSavings = stats.TotalIncome.Sub(stats.TotalExpense)
	if len(txs) > 0 {
		stats.AvgTransaction = sum.Div(decimal.NewFromInt(int64(len(txs))))
	}
	return stats
}
