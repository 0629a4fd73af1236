package aggregate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
)

const loanDateLayout = "2006-01-02"

// SummarizeLoans folds the loan accounts using the current time to decide
// which loans are still active.
func SummarizeLoans(loans []domain.Loan) domain.SummaryOfLoanAccounts {
	return SummarizeLoansAt(loans, time.Now())
}

// SummarizeLoansAt is SummarizeLoans with an explicit clock. A loan counts as
// active when its end date parses and lies strictly after now. Fee totals
// accumulate across loans; term ranges only consider terms whose leading
// token is an integer year count.
func SummarizeLoansAt(loans []domain.Loan, now time.Time) domain.SummaryOfLoanAccounts {
	var (
		totalOutstanding float64
		totalPaid        float64
		totalPrincipal   float64

		lateFees      float64
		prepayFees    float64
		originFees    float64
		otherFees     float64
		withLateFees  int
		withPrepayPen int
		activeLoans   int
	)
	var collaterals strings.Builder
	loanTypes := map[string]struct{}{}
	var dueDates []string
	var interestRates []float64
	var loanTerms []int

	for _, loan := range loans {
		totalOutstanding += loan.OutstandingBal
		totalPaid += loan.TotalPaid
		totalPrincipal += loan.PrincipalLeft
		fmt.Fprintf(&collaterals, "%s: %s\n ", loan.Name, loan.Collateral)

		if fields := strings.Fields(loan.LoanTerm); len(fields) > 0 {
			if years, err := strconv.Atoi(fields[0]); err == nil {
				loanTerms = append(loanTerms, years)
			}
		}

		interestRates = append(interestRates, loan.InterestRate)
		loanTypes[strings.ToLower(loan.LoanType)] = struct{}{}

		if loan.PaymentDueDate != "" {
			dueDates = append(dueDates, loan.PaymentDueDate)
		}

		if loan.OutstandingFees.LateFee > 0 {
			withLateFees++
		}
		if loan.OutstandingFees.PrepaymentPenalty > 0 {
			withPrepayPen++
		}
		lateFees += loan.OutstandingFees.LateFee
		prepayFees += loan.OutstandingFees.PrepaymentPenalty
		originFees += loan.OutstandingFees.OriginationFee
		otherFees += loan.OutstandingFees.OtherFees

		if loan.LoanEndDate != "" {
			if end, err := time.Parse(loanDateLayout, loan.LoanEndDate); err == nil && end.After(now) {
				activeLoans++
			}
		}
	}

	types := make([]string, 0, len(loanTypes))
	for t := range loanTypes {
		types = append(types, t)
	}
	sort.Strings(types)

	var rateRange [2]float64
	if len(interestRates) > 0 {
		rateRange = [2]float64{minFloat(interestRates), maxFloat(interestRates)}
	}
	var termRange [2]int
	if len(loanTerms) > 0 {
		termRange = [2]int{minInt(loanTerms), maxInt(loanTerms)}
	}

	return domain.SummaryOfLoanAccounts{
		TotalLoans:           len(loans),
		TotalOutstanding:     round2(totalOutstanding),
		TotalPaid:            round2(totalPaid),
		TotalPrincipalLeft:   round2(totalPrincipal),
		LoanTypes:            types,
		ActiveLoans:          activeLoans,
		UpcomingDueDates:     dueDates,
		InterestRateRange:    rateRange,
		LoanTermRangeYears:   termRange,
		LoansWithLateFees:    withLateFees,
		LoansWithPrepayments: withPrepayPen,
		TotalFeesSummary: map[string]float64{
			"late_fees":            round2(lateFees),
			"prepayment_penalties": round2(prepayFees),
			"origination_fees":     round2(originFees),
			"other_fees":           round2(otherFees),
		},
		CollateralsInfo: collaterals.String(),
	}
}

func minFloat(vs []float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxFloat(vs []float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func minInt(vs []int) int {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxInt(vs []int) int {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
