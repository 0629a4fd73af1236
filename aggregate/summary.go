package aggregate

import (
	"context"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/store"
)

// FinancialSummary composes the whole-picture record: anonymized user details
// plus every family summary, with a "NO <FAMILY>" placeholder wherever the
// snapshot holds no accounts of that family. Placeholders skip the family's
// aggregation entirely, so an empty snapshot triggers no market lookups.
func FinancialSummary(ctx context.Context, resolver TickerResolver, user domain.UserDetails, snap *store.Snapshot) (domain.FinancialSummary, error) {
	summary := domain.FinancialSummary{
		UserDetails:           user.Anonymized().String(),
		InvestmentSummary:     "NO INVESTMENT ACCOUNTS",
		CreditCardSummary:     "NO CREDIT CARDS",
		CheckingSummary:       "NO CHECKING ACCOUNTS",
		SavingSummary:         "NO SAVING ACCOUNTS",
		LoansSummary:          "NO LOANS",
		PayrollsSummary:       "NO PAYROLLS",
		TraditionalIRASummary: "NO TRADITIONAL IRAS",
		RothIRASummary:        "NO ROTH IRAS",
		Retirement401kSummary: "NO RETIREMENT 401K",
		Roth401kSummary:       "NO ROTH 401K",
		HSASummary:            "NO HSA ACCOUNTS",
		OtherAccountsSummary:  "NO OTHER ACCOUNTS",
	}

	if len(snap.Investment) > 0 {
		s, err := SummarizeInvestmentAccounts(ctx, resolver, snap)
		if err != nil {
			return domain.FinancialSummary{}, err
		}
		summary.InvestmentSummary = s.String()
	}
	if len(snap.CreditCards) > 0 {
		summary.CreditCardSummary = SummarizeCreditCards(snap.CreditCards).String()
	}
	if len(snap.Checking) > 0 {
		summary.CheckingSummary = SummarizeBankAccounts(snap.Checking).String()
	}
	if len(snap.Savings) > 0 {
		summary.SavingSummary = SummarizeBankAccounts(snap.Savings).String()
	}
	if len(snap.Loans) > 0 {
		summary.LoansSummary = SummarizeLoans(snap.Loans).String()
	}
	if len(snap.Payrolls) > 0 {
		summary.PayrollsSummary = SummarizePayrolls(snap.Payrolls).String()
	}
	if len(snap.TraditionalIRA) > 0 {
		s, err := SummarizeRetirementAccounts(ctx, resolver, snap.TraditionalIRA)
		if err != nil {
			return domain.FinancialSummary{}, err
		}
		summary.TraditionalIRASummary = s.String()
	}
	if len(snap.RothIRA) > 0 {
		s, err := SummarizeRetirementAccounts(ctx, resolver, snap.RothIRA)
		if err != nil {
			return domain.FinancialSummary{}, err
		}
		summary.RothIRASummary = s.String()
	}
	if len(snap.Retirement401K) > 0 {
		s, err := Summarize401kAccounts(ctx, resolver, snap.Retirement401K)
		if err != nil {
			return domain.FinancialSummary{}, err
		}
		summary.Retirement401kSummary = s.String()
	}
	if len(snap.Roth401K) > 0 {
		s, err := Summarize401kAccounts(ctx, resolver, snap.Roth401K)
		if err != nil {
			return domain.FinancialSummary{}, err
		}
		summary.Roth401kSummary = s.String()
	}
	if len(snap.HSA) > 0 {
		s, err := SummarizeRetirementAccounts(ctx, resolver, snap.HSA)
		if err != nil {
			return domain.FinancialSummary{}, err
		}
		summary.HSASummary = s.String()
	}
	if len(snap.Other) > 0 {
		summary.OtherAccountsSummary = SummarizeOtherAccounts(snap.Other).String()
	}

	return summary, nil
}
