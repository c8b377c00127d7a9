package extract

import (
	"regexp"
)

// CategoryOther is the fallback category when no rule matches.
const CategoryOther = "Other"

// categoryRule maps a keyword pattern to a spending/income category.
type categoryRule struct {
	pattern  *regexp.Regexp
	category string
}

// categoryRules is evaluated top-down with first-match-wins. The ordering is
// a deliberate tie-break contract: a message matching several categories'
// keywords resolves to the earliest rule. Do not reorder.
var categoryRules = []categoryRule{
	{regexp.MustCompile(`(?i)swiggy|zomato|eat|restaurant|diner|food`), "Food"},
	{regexp.MustCompile(`(?i)uber|ola|rapido|fuel|petrol|diesel|metro|train|bus|flight|airlines`), "Travel"},
	{regexp.MustCompile(`(?i)amazon|flipkart|myntra|ajio|tata cliq|snapdeal|shopping`), "Shopping"},
	{regexp.MustCompile(`(?i)electricity|water bill|gas bill|broadband|wifi|mobile bill|recharge|dth|postpaid|prepaid`), "Bills"},
	{regexp.MustCompile(`(?i)rent|maintenance|society|emi|loan|insurance`), "Home"},
	{regexp.MustCompile(`(?i)salary|credit|interest|refund|cashback`), "Income"},
	{regexp.MustCompile(`(?i)upi|gpay|phonepe|paytm|bhim|imps|neft|rtgs`), "Transfers"},
}

// Categorize maps message text (typically body plus extracted merchant) to
// exactly one category label, or CategoryOther when no rule matches.
func Categorize(text string) string {
	for _, rule := range categoryRules {
		if rule.pattern.MatchString(text) {
			return rule.category
		}
	}
	return CategoryOther
}
