// Package summary derives monthly totals and insight rankings from an
// assembled transaction batch. Everything here is a pure function of its
// inputs: no state is kept between calls, and the reference time is always
// an explicit parameter.
package summary

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/sms-ledger/internal/extract"
)

// topCategoryNone is reported when the month holds no debit transactions.
const topCategoryNone = "None"

// MonthlySummary is the on-demand aggregate for one calendar month.
type MonthlySummary struct {
	Month            string                     `json:"month"`
	TotalExpense     decimal.Decimal            `json:"totalExpense"`
	TotalIncome      decimal.Decimal            `json:"totalIncome"`
	NetAmount        decimal.Decimal            `json:"netAmount"`
	CategoryTotals   map[string]decimal.Decimal `json:"categoryTotals"`
	TopCategory      string                     `json:"topCategory"`
	AverageDaily     decimal.Decimal            `json:"averageDaily"`
	ProjectedMonthly decimal.Decimal            `json:"projectedMonthly"`
	TransactionCount int                        `json:"transactionCount"`
}

// Compute aggregates the transactions falling in now's calendar month.
// Category totals cover debits only: spending categorization is expense-only.
// TopCategory ties break in favor of the category seen first in input order.
func Compute(txs []extract.Transaction, now time.Time) MonthlySummary {
	monthKey := now.Format("2006-01")

	totalExpense := decimal.Zero
	totalIncome := decimal.Zero
	categoryTotals := make(map[string]decimal.Decimal)
	var categoryOrder []string
	count := 0

	for _, tx := range txs {
		if len(tx.OccurredAt) < len(monthKey) || tx.OccurredAt[:len(monthKey)] != monthKey {
			continue
		}
		count++

		switch tx.Type {
		case extract.TypeDebit:
			totalExpense = totalExpense.Add(tx.Amount)
			if _, seen := categoryTotals[tx.Category]; !seen {
				categoryOrder = append(categoryOrder, tx.Category)
			}
			categoryTotals[tx.Category] = categoryTotals[tx.Category].Add(tx.Amount)
		case extract.TypeCredit:
			totalIncome = totalIncome.Add(tx.Amount)
		}
	}

	topCategory := topCategoryNone
	topAmount := decimal.Zero
	for _, category := range categoryOrder {
		// Strict greater-than keeps the first-seen category on ties.
		if categoryTotals[category].GreaterThan(topAmount) {
			topCategory = category
			topAmount = categoryTotals[category]
		}
	}

	dayOfMonth := decimal.NewFromInt(int64(now.Day()))
	averageDaily := totalExpense.Div(dayOfMonth)
	daysInMonth := decimal.NewFromInt(int64(daysIn(now)))

	return MonthlySummary{
		Month:            monthKey,
		TotalExpense:     totalExpense,
		TotalIncome:      totalIncome,
		NetAmount:        totalIncome.Sub(totalExpense),
		CategoryTotals:   categoryTotals,
		TopCategory:      topCategory,
		AverageDaily:     averageDaily,
		ProjectedMonthly: averageDaily.Mul(daysInMonth),
		TransactionCount: count,
	}
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
