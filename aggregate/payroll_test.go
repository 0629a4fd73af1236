package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
)

func TestSummarizePayrolls(t *testing.T) {
	payrolls := []domain.Payroll{
		{
			ID: "p1", AnnualIncome: 120000, NetIncome: 3200, BonusIncome: 5000,
			FederalTaxesWithheld: 900, State: "CA", StateTaxesWithheld: 300,
			SocialSecurityWithheld: 250, MedicareWithheld: 60, OtherDeductions: 40,
			PayFrequency: "Biweekly", Benefits: "health insurance; ",
			YearToDateIncome: 45000,
		},
		{
			ID: "p2", AnnualIncome: 120000, NetIncome: 3200, BonusIncome: 0,
			FederalTaxesWithheld: 900, State: "ca", StateTaxesWithheld: 300,
			SocialSecurityWithheld: 250, MedicareWithheld: 60, OtherDeductions: 40,
			PayFrequency: "biweekly", Benefits: "401k match",
			YearToDateIncome: 48200,
		},
	}

	s := SummarizePayrolls(payrolls)

	assert.Equal(t, 2, s.TotalEntries)
	assert.Equal(t, 240000.0, s.TotalAnnualIncome)
	assert.Equal(t, 6400.0, s.TotalNetIncome)
	assert.Equal(t, 5000.0, s.TotalBonusIncome)
	assert.Equal(t, 1800.0, s.TotalWithheld.Federal)
	assert.Equal(t, 600.0, s.TotalWithheld.State)
	assert.Equal(t, 500.0, s.TotalWithheld.SocialSecurity)
	assert.Equal(t, 120.0, s.TotalWithheld.Medicare)
	assert.Equal(t, 80.0, s.TotalWithheld.Other)

	// States merge case-insensitively; frequencies count entries.
	assert.Equal(t, 600.0, s.WithheldByState["ca"])
	assert.Equal(t, 2, s.PayFrequencies["biweekly"])

	// YTD is the max across entries, not the sum.
	assert.Equal(t, 48200.0, s.MostRecentYTDIncome)
}

func TestSummarizeOtherAccounts(t *testing.T) {
	s := SummarizeOtherAccounts([]domain.OtherAccount{
		{ID: "o1", TotalIncome: 100, TotalDebt: 40},
		{ID: "o2", TotalIncome: 50, TotalDebt: 10},
	})
	assert.Equal(t, 150.0, s.TotalIncome)
	assert.Equal(t, 50.0, s.TotalDebt)
}
