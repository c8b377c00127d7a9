package extract

import (
	"regexp"
	"strings"
)

// Merchant heuristics: "at <name>" is tried before "to <name>". The token is
// a run of 2+ alphanumerics, spaces, ampersands, periods, underscores, or
// hyphens. This is a heuristic, not a named-entity recognizer; false
// positives are acceptable because merchant is advisory metadata.
var merchantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)at\s+([A-Za-z0-9 &._-]{2,})`),
	regexp.MustCompile(`(?i)to\s+([A-Za-z0-9 &._-]{2,})`),
}

// ExtractMerchant isolates a best-effort merchant name from message text.
// Returns ok=false when neither pattern matches; absence is a normal outcome.
func ExtractMerchant(text string) (string, bool) {
	for _, pattern := range merchantPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		merchant := strings.TrimSpace(match[1])
		if merchant != "" {
			return merchant, true
		}
	}
	return "", false
}
