package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize_Food(t *testing.T) {
	assert.Equal(t, "Food", Categorize("paid via Swiggy for dinner"))
	assert.Equal(t, "Food", Categorize("dinner at Olive Restaurant"))
}

func TestCategorize_Travel(t *testing.T) {
	assert.Equal(t, "Travel", Categorize("Uber ride completed"))
	assert.Equal(t, "Travel", Categorize("petrol pump payment"))
}

func TestCategorize_Shopping(t *testing.T) {
	assert.Equal(t, "Shopping", Categorize("order placed on Flipkart"))
}

func TestCategorize_Bills(t *testing.T) {
	assert.Equal(t, "Bills", Categorize("electricity payment successful"))
	assert.Equal(t, "Bills", Categorize("mobile bill due"))
}

func TestCategorize_Home(t *testing.T) {
	assert.Equal(t, "Home", Categorize("rent transferred"))
	assert.Equal(t, "Home", Categorize("EMI deducted"))
}

func TestCategorize_Income(t *testing.T) {
	assert.Equal(t, "Income", Categorize("salary credited"))
}

func TestCategorize_Transfers(t *testing.T) {
	assert.Equal(t, "Transfers", Categorize("sent via PhonePe"))
	assert.Equal(t, "Transfers", Categorize("NEFT transfer done"))
}

func TestCategorize_Default(t *testing.T) {
	assert.Equal(t, "Other", Categorize("random text with no keywords"))
}

func TestCategorize_RuleOrderIsTheTieBreak(t *testing.T) {
	// Mentions both a ride-hailing brand and a payment rail; Travel's rule
	// sits earlier in the list than Transfers.
	assert.Equal(t, "Travel", Categorize("Uber trip paid via paytm"))

	// Food beats Travel for the same reason.
	assert.Equal(t, "Food", Categorize("Swiggy order delivered by Uber driver"))
}
