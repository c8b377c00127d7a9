package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDirection_DebitKeywords(t *testing.T) {
	for _, text := range []string{
		"Rs 100 debited from your account",
		"you spent Rs 100",
		"POS purchase of Rs 100",
		"Rs 100 withdrawn at ATM",
	} {
		direction, ok := ParseDirection(text)
		assert.True(t, ok, text)
		assert.Equal(t, TypeDebit, direction, text)
	}
}

func TestParseDirection_CreditKeywords(t *testing.T) {
	for _, text := range []string{
		"Rs 100 credited to your account",
		"you received Rs 100",
		"refund of Rs 100 processed",
		"cashback of Rs 10 earned",
	} {
		direction, ok := ParseDirection(text)
		assert.True(t, ok, text)
		assert.Equal(t, TypeCredit, direction, text)
	}
}

func TestParseDirection_DebitWinsOverCredit(t *testing.T) {
	// Priority order invariant: debit group is checked first, so a message
	// containing both keyword families classifies as debit.
	direction, ok := ParseDirection("Rs 100 debited, cashback credited later")
	assert.True(t, ok)
	assert.Equal(t, TypeDebit, direction)
}

func TestParseDirection_Indeterminate(t *testing.T) {
	_, ok := ParseDirection("Rs 100 towards your account")
	assert.False(t, ok)
}

func TestParseDirection_CaseInsensitive(t *testing.T) {
	direction, ok := ParseDirection("RS 100 DEBITED")
	assert.True(t, ok)
	assert.Equal(t, TypeDebit, direction)
}
