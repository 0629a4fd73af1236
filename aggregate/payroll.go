package aggregate

import (
	"strings"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
)

// SummarizePayrolls folds payroll records into income and withholding totals.
// The most recent year-to-date figure is the maximum across entries, since
// each entry's YTD value already accumulates the earlier pay periods.
func SummarizePayrolls(payrolls []domain.Payroll) domain.SummaryOfPayrollAccounts {
	var (
		totalGross    float64
		totalNet      float64
		totalBonus    float64
		totalFederal  float64
		totalState    float64
		totalSS       float64
		totalMedicare float64
		totalOther    float64
		ytdMax        float64
	)
	withheldByState := map[string]float64{}
	payFrequencies := map[string]int{}
	var benefits strings.Builder

	for _, record := range payrolls {
		totalGross += record.AnnualIncome
		totalNet += record.NetIncome
		totalBonus += record.BonusIncome
		totalFederal += record.FederalTaxesWithheld
		totalState += record.StateTaxesWithheld
		totalSS += record.SocialSecurityWithheld
		totalMedicare += record.MedicareWithheld
		totalOther += record.OtherDeductions

		withheldByState[strings.ToLower(record.State)] += record.StateTaxesWithheld
		payFrequencies[strings.ToLower(record.PayFrequency)]++
		benefits.WriteString(record.Benefits)

		if record.YearToDateIncome > ytdMax {
			ytdMax = record.YearToDateIncome
		}
	}

	for state, amount := range withheldByState {
		withheldByState[state] = round2(amount)
	}

	return domain.SummaryOfPayrollAccounts{
		TotalEntries:      len(payrolls),
		TotalAnnualIncome: round2(totalGross),
		TotalNetIncome:    round2(totalNet),
		TotalBonusIncome:  round2(totalBonus),
		TotalWithheld: domain.SummaryOfPayrollWithholdings{
			Federal:        round2(totalFederal),
			State:          round2(totalState),
			SocialSecurity: round2(totalSS),
			Medicare:       round2(totalMedicare),
			Other:          round2(totalOther),
		},
		WithheldByState:     withheldByState,
		PayFrequencies:      payFrequencies,
		MostRecentYTDIncome: round2(ytdMax),
		BenefitsSummary:     benefits.String(),
	}
}

// SummarizeOtherAccounts totals income and debt across the catch-all family.
func SummarizeOtherAccounts(accounts []domain.OtherAccount) domain.SummaryOfOtherAccounts {
	var summary domain.SummaryOfOtherAccounts
	for _, acc := range accounts {
		summary.TotalIncome += acc.TotalIncome
		summary.TotalDebt += acc.TotalDebt
	}
	return summary
}
