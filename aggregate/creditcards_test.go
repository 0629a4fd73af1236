package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
)

func TestSummarizeCreditCardsTotals(t *testing.T) {
	cards := []domain.CreditCard{
		{
			ID: "cc1", Name: "Blue", TotalLimit: 10000, CurrentLimit: 7000,
			Interest: 20, OutstandingDebt: 3000, AnnualFee: 95,
			RewardsSummary: "2% groceries",
			CurrentBillingTransactions: []domain.BillingCycleTransaction{
				{Amount: -120.50, Category: "Groceries"},
				{Amount: -40, Category: "gas"},
			},
		},
		{
			ID: "cc2", Name: "Red", TotalLimit: 5000, CurrentLimit: 5000,
			Interest: 28, OutstandingDebt: 0, AnnualFee: 0,
			RewardsSummary: "1.5% everything",
			CurrentBillingTransactions: []domain.BillingCycleTransaction{
				{Amount: -60, Category: "GROCERIES"},
				{Amount: 200, Category: "payment"},
			},
		},
	}

	s := SummarizeCreditCards(cards)

	assert.Equal(t, 15000.0, s.TotalLimit)
	assert.Equal(t, 12000.0, s.AvailableCredit)
	assert.Equal(t, 3000.0, s.OutstandingDebt)
	assert.Equal(t, [2]float64{20, 28}, s.APRRange)
	assert.Equal(t, 95.0, s.TotalAnnualFees)

	// Only the card with debt weights the rate: 20 * 3000 / 3000.
	assert.Equal(t, 20.0, s.WeightedAvgDebtRate)

	// Categories are lower-cased and merged across cards.
	assert.Equal(t, -180.50, s.SpendingByCategory["groceries"])
	assert.Equal(t, -40.0, s.SpendingByCategory["gas"])
	assert.Equal(t, 200.0, s.SpendingByCategory["payment"])

	assert.Contains(t, s.RewardsSummary, "Blue: 2% groceries")
	assert.Contains(t, s.RewardsSummary, "Red: 1.5% everything")
}

func TestSummarizeCreditCardsWeightedRateAcrossDebts(t *testing.T) {
	cards := []domain.CreditCard{
		{ID: "cc1", Interest: 10, OutstandingDebt: 1000},
		{ID: "cc2", Interest: 30, OutstandingDebt: 3000},
		{ID: "cc3", Interest: 99, OutstandingDebt: 0},
	}
	s := SummarizeCreditCards(cards)
	// (10*1000 + 30*3000) / 4000 = 25
	assert.Equal(t, 25.0, s.WeightedAvgDebtRate)
}

func TestSummarizeCreditCardsRepeatedCallsIdentical(t *testing.T) {
	cards := []domain.CreditCard{
		{
			ID: "cc1", Name: "Blue", TotalLimit: 10000, CurrentLimit: 7000,
			Interest: 20, OutstandingDebt: 3000, AnnualFee: 95,
			RewardsSummary: "2% groceries",
			CurrentBillingTransactions: []domain.BillingCycleTransaction{
				{Amount: -120.50, Category: "Groceries"},
			},
		},
		{ID: "cc2", Name: "Red", Interest: 28, OutstandingDebt: 1000},
	}
	before := append([]domain.CreditCard(nil), cards...)

	first := SummarizeCreditCards(cards)
	second := SummarizeCreditCards(cards)

	assert.Equal(t, first, second)
	assert.Equal(t, before, cards)
}

func TestSummarizeCreditCardsEmpty(t *testing.T) {
	s := SummarizeCreditCards(nil)
	assert.Equal(t, [2]float64{0, 0}, s.APRRange)
	assert.Equal(t, 0.0, s.WeightedAvgDebtRate)
	assert.Empty(t, s.SpendingByCategory)
}
