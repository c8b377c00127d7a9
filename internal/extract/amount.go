package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// currencyMarkerPattern is the cheap pre-filter for transactional messages.
// Messages with no currency marker at all are never worth parsing.
var currencyMarkerPattern = regexp.MustCompile(`(?i)(inr|₹|rs\.?)`)

// amountPattern matches a currency marker immediately followed by a numeric
// literal with optional thousands separators and up to two decimal places.
// A marker is required: bare numbers (OTPs, phone numbers) must not parse.
var amountPattern = regexp.MustCompile(`(?i)(?:inr|rs\.?|₹)\s*([\d,]+(?:\.\d{1,2})?)`)

// HasCurrencyMarker reports whether text mentions rupees in any recognized form.
func HasCurrencyMarker(text string) bool {
	return currencyMarkerPattern.MatchString(text)
}

// ParseAmount extracts the monetary amount from message text. Only the first
// currency mention is considered. Returns ok=false when no marker+number pair
// exists.
func ParseAmount(text string) (decimal.Decimal, bool) {
	match := amountPattern.FindStringSubmatch(text)
	if match == nil {
		return decimal.Decimal{}, false
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(match[1], ",", ""))
	if err != nil {
		return decimal.Decimal{}, false
	}

	return amount, true
}
