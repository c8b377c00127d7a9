package extract

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount_RupeeAbbreviationWithSeparators(t *testing.T) {
	amount, ok := ParseAmount("Rs. 1,234.50 debited from your account")
	assert.True(t, ok)
	assert.True(t, amount.Equal(decimal.RequireFromString("1234.50")))
}

func TestParseAmount_INRToken(t *testing.T) {
	amount, ok := ParseAmount("INR 500 credited to your account")
	assert.True(t, ok)
	assert.True(t, amount.Equal(decimal.RequireFromString("500")))
}

func TestParseAmount_RupeeSymbol(t *testing.T) {
	amount, ok := ParseAmount("Paid ₹89.99 at Swiggy")
	assert.True(t, ok)
	assert.True(t, amount.Equal(decimal.RequireFromString("89.99")))
}

func TestParseAmount_CaseInsensitiveMarker(t *testing.T) {
	amount, ok := ParseAmount("rs 250 spent")
	assert.True(t, ok)
	assert.True(t, amount.Equal(decimal.RequireFromString("250")))
}

func TestParseAmount_NoBareNumberFallback(t *testing.T) {
	// Digits without a currency marker (OTPs, phone numbers) must not parse.
	_, ok := ParseAmount("your OTP is 4521")
	assert.False(t, ok)
}

func TestParseAmount_NoMatch(t *testing.T) {
	_, ok := ParseAmount("hello, lunch tomorrow?")
	assert.False(t, ok)
}

func TestParseAmount_FirstCurrencyMentionWins(t *testing.T) {
	// Known simplification: a trailing balance mention is ignored.
	amount, ok := ParseAmount("Rs. 120 debited. Available balance Rs. 9,880")
	assert.True(t, ok)
	assert.True(t, amount.Equal(decimal.RequireFromString("120")))
}

func TestHasCurrencyMarker(t *testing.T) {
	assert.True(t, HasCurrencyMarker("INR 20 debited"))
	assert.True(t, HasCurrencyMarker("₹20 spent"))
	assert.True(t, HasCurrencyMarker("Rs.20 withdrawn"))
	assert.False(t, HasCurrencyMarker("your OTP is 4521"))
}
