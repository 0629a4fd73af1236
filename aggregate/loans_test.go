package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
)

func TestSummarizeLoansAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	loans := []domain.Loan{
		{
			ID: "l1", Name: "Mortgage", LoanType: "Mortgage",
			PrincipalLeft: 200000, OutstandingBal: 210000, TotalPaid: 90000,
			InterestRate: 5.5, LoanTerm: "30 years",
			LoanEndDate: "2045-01-01", PaymentDueDate: "2025-07-01",
			Collateral:      "House",
			OutstandingFees: domain.LoanFee{LateFee: 50, OriginationFee: 100},
		},
		{
			ID: "l2", Name: "Auto", LoanType: "auto",
			PrincipalLeft: 8000, OutstandingBal: 8200, TotalPaid: 12000,
			InterestRate: 7.0, LoanTerm: "5 years",
			LoanEndDate: "2024-12-31", PaymentDueDate: "2025-07-05",
			OutstandingFees: domain.LoanFee{LateFee: 25, PrepaymentPenalty: 10},
		},
		{
			ID: "l3", Name: "Personal", LoanType: "Personal",
			InterestRate: 11.0, LoanTerm: "flexible",
			LoanEndDate:     "not-a-date",
			OutstandingFees: domain.LoanFee{OtherFees: 5},
		},
	}

	s := SummarizeLoansAt(loans, now)

	assert.Equal(t, 3, s.TotalLoans)
	assert.Equal(t, 218200.0, s.TotalOutstanding)
	assert.Equal(t, 102000.0, s.TotalPaid)
	assert.Equal(t, 208000.0, s.TotalPrincipalLeft)

	// Only the mortgage's end date is parseable and in the future.
	assert.Equal(t, 1, s.ActiveLoans)

	assert.Equal(t, []string{"auto", "mortgage", "personal"}, s.LoanTypes)
	assert.Equal(t, []string{"2025-07-01", "2025-07-05"}, s.UpcomingDueDates)
	assert.Equal(t, [2]float64{5.5, 11.0}, s.InterestRateRange)

	// "flexible" has no leading year count and is excluded from the range.
	assert.Equal(t, [2]int{5, 30}, s.LoanTermRangeYears)

	assert.Equal(t, 2, s.LoansWithLateFees)
	assert.Equal(t, 1, s.LoansWithPrepayments)

	// Fees accumulate across loans.
	assert.Equal(t, 75.0, s.TotalFeesSummary["late_fees"])
	assert.Equal(t, 10.0, s.TotalFeesSummary["prepayment_penalties"])
	assert.Equal(t, 100.0, s.TotalFeesSummary["origination_fees"])
	assert.Equal(t, 5.0, s.TotalFeesSummary["other_fees"])

	assert.Contains(t, s.CollateralsInfo, "Mortgage: House")
}

func TestSummarizeLoansEmpty(t *testing.T) {
	s := SummarizeLoansAt(nil, time.Now())
	assert.Equal(t, 0, s.TotalLoans)
	assert.Equal(t, [2]float64{0, 0}, s.InterestRateRange)
	assert.Equal(t, [2]int{0, 0}, s.LoanTermRangeYears)
	assert.Empty(t, s.LoanTypes)
}

func TestSummarizeLoansEndDateExactlyNowNotActive(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	loans := []domain.Loan{{ID: "l1", LoanEndDate: "2025-06-15"}}
	s := SummarizeLoansAt(loans, now)
	assert.Equal(t, 0, s.ActiveLoans)
}
