package aggregate

import (
	"strings"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
)

// SummarizeCreditCards folds all cards into portfolio-level totals. The
// weighted average rate on debt weights each card's APR by its outstanding
// debt and divides by the total debt across cards that carry any; cards with
// zero debt contribute nothing to either side.
func SummarizeCreditCards(cards []domain.CreditCard) domain.SummaryOfCreditCards {
	var (
		totalLimit      float64
		availableCredit float64
		outstandingDebt float64
		totalAnnualFees float64
		weightedRateSum float64
		debtWithAPRSum  float64
	)
	categorySpending := map[string]float64{}
	var rewards strings.Builder
	var minAPR, maxAPR float64
	haveAPR := false

	for _, card := range cards {
		totalLimit += card.TotalLimit
		availableCredit += card.CurrentLimit
		outstandingDebt += card.OutstandingDebt
		totalAnnualFees += card.AnnualFee

		if !haveAPR || card.Interest < minAPR {
			minAPR = card.Interest
		}
		if !haveAPR || card.Interest > maxAPR {
			maxAPR = card.Interest
		}
		haveAPR = true

		if card.OutstandingDebt > 0 {
			weightedRateSum += card.Interest * card.OutstandingDebt
			debtWithAPRSum += card.OutstandingDebt
		}

		for _, txn := range card.CurrentBillingTransactions {
			categorySpending[strings.ToLower(txn.Category)] += txn.Amount
		}

		rewards.WriteString(card.Name)
		rewards.WriteString(": ")
		rewards.WriteString(card.RewardsSummary)
		rewards.WriteString("\n")
	}

	var weightedRate float64
	if debtWithAPRSum > 0 {
		weightedRate = weightedRateSum / debtWithAPRSum
	}

	return domain.SummaryOfCreditCards{
		TotalLimit:          round2(totalLimit),
		AvailableCredit:     round2(availableCredit),
		OutstandingDebt:     round2(outstandingDebt),
		APRRange:            [2]float64{minAPR, maxAPR},
		SpendingByCategory:  categorySpending,
		WeightedAvgDebtRate: round2(weightedRate),
		RewardsSummary:      rewards.String(),
		TotalAnnualFees:     round2(totalAnnualFees),
	}
}
