package aggregate

import (
	"strings"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
)

// SummarizeBankAccounts folds checking or savings accounts into balance,
// flow, interest-range and average-fee totals. Each fee average is taken over
// its own field across accounts.
func SummarizeBankAccounts(accounts []domain.CheckingOrSavingsAccount) domain.SummaryOfCheckingOrSavingsAccounts {
	var (
		totalBalance float64
		netFlow      float64

		noMinBalanceFees float64
		monthlyFees      float64
		atmFees          float64
		overdraftFees    float64
	)
	categorySpending := map[string]float64{}
	var rewards strings.Builder
	var minRate, maxRate float64
	haveRate := false

	for _, acc := range accounts {
		totalBalance += acc.CurrentAmount

		rewards.WriteString(acc.RewardsSummary)
		rewards.WriteString("\n, ")

		if !haveRate || acc.Interest < minRate {
			minRate = acc.Interest
		}
		if !haveRate || acc.Interest > maxRate {
			maxRate = acc.Interest
		}
		haveRate = true

		for _, txn := range acc.CurrentBillingTransactions {
			categorySpending[strings.ToLower(txn.Category)] += txn.Amount
			netFlow += txn.Amount
		}

		noMinBalanceFees += acc.Fee.NoMinimumBalanceFee
		monthlyFees += acc.Fee.MonthlyFee
		atmFees += acc.Fee.ATMFee
		overdraftFees += acc.Fee.OverdraftFee
	}

	avg := func(total float64) float64 {
		if len(accounts) == 0 {
			return 0
		}
		return round2(total / float64(len(accounts)))
	}

	return domain.SummaryOfCheckingOrSavingsAccounts{
		TotalBalance:     round2(totalBalance),
		RewardsSummary:   rewards.String(),
		NetFlowCurrent:   round2(netFlow),
		CategorySpending: categorySpending,
		InterestRange:    [2]float64{minRate, maxRate},
		FeesSummary: map[string]float64{
			"no_minimum_balance_fee": avg(noMinBalanceFees),
			"monthly_fee_avg":        avg(monthlyFees),
			"atm_fee_avg":            avg(atmFees),
			"overdraft_fee_avg":      avg(overdraftFees),
		},
	}
}
