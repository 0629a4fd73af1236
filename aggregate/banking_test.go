package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
)

func TestSummarizeBankAccounts(t *testing.T) {
	accounts := []domain.CheckingOrSavingsAccount{
		{
			ID: "ch1", Type: domain.TagChecking, CurrentAmount: 2500, Interest: 0.5,
			RewardsSummary: "none",
			Fee: domain.AccountFee{
				NoMinimumBalanceFee: 10, MonthlyFee: 5, ATMFee: 3, OverdraftFee: 35,
			},
			CurrentBillingTransactions: []domain.BillingCycleTransaction{
				{Amount: -200, Category: "Rent"},
				{Amount: 1500, Category: "salary"},
			},
		},
		{
			ID: "ch2", Type: domain.TagChecking, CurrentAmount: 500, Interest: 1.5,
			RewardsSummary: "cashback",
			Fee: domain.AccountFee{
				NoMinimumBalanceFee: 0, MonthlyFee: 15, ATMFee: 1, OverdraftFee: 25,
			},
			CurrentBillingTransactions: []domain.BillingCycleTransaction{
				{Amount: -100, Category: "rent"},
			},
		},
	}

	s := SummarizeBankAccounts(accounts)

	assert.Equal(t, 3000.0, s.TotalBalance)
	assert.Equal(t, 1200.0, s.NetFlowCurrent)
	assert.Equal(t, [2]float64{0.5, 1.5}, s.InterestRange)
	assert.Equal(t, -300.0, s.CategorySpending["rent"])
	assert.Equal(t, 1500.0, s.CategorySpending["salary"])

	// Each fee averages over its own field.
	assert.Equal(t, 5.0, s.FeesSummary["no_minimum_balance_fee"])
	assert.Equal(t, 10.0, s.FeesSummary["monthly_fee_avg"])
	assert.Equal(t, 2.0, s.FeesSummary["atm_fee_avg"])
	assert.Equal(t, 30.0, s.FeesSummary["overdraft_fee_avg"])
}

func TestSummarizeBankAccountsEmpty(t *testing.T) {
	s := SummarizeBankAccounts(nil)
	assert.Equal(t, 0.0, s.TotalBalance)
	assert.Equal(t, [2]float64{0, 0}, s.InterestRange)
	assert.Equal(t, 0.0, s.FeesSummary["monthly_fee_avg"])
}
