package extract

import (
	"regexp"
)

var (
	debitPattern  = regexp.MustCompile(`(?i)debit|debited|spent|purchase|pos|withdrawn`)
	creditPattern = regexp.MustCompile(`(?i)credit|credited|received|refund|cashback`)
)

// ParseDirection decides whether message text describes money leaving (debit)
// or entering (credit) an account. The debit group is checked first, so a
// message containing both keyword families classifies as debit. Returns
// ok=false when neither group matches.
func ParseDirection(text string) (Type, bool) {
	if debitPattern.MatchString(text) {
		return TypeDebit, true
	}
	if creditPattern.MatchString(text) {
		return TypeCredit, true
	}
	return "", false
}
