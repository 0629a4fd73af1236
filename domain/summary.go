package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Summary records mirror the tool-result payloads the assistant hands to the
// model. Map-valued fields are rendered with sorted keys so repeated calls on
// the same snapshot produce identical text.

// AssetSummary covers the six asset-holding families. The contribution and
// employer-match fields only apply to the retirement-style families and are
// skipped by the renderers of families that do not carry them.
type AssetSummary struct {
	TotalUninvestedAmount           float64                  `json:"total_uninvested_amount"`
	TotalAverageMonthlyContribution float64                  `json:"total_average_monthly_contribution,omitempty"`
	EmployerMatchesSummary          string                   `json:"employer_matches_summary,omitempty"`
	InvestedSecuritiesInfo          map[string]TickerHolding `json:"invested_securities_info"`
}

func (s AssetSummary) holdingsDetail() string {
	tickers := make([]string, 0, len(s.InvestedSecuritiesInfo))
	for t := range s.InvestedSecuritiesInfo {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)

	lines := make([]string, 0, len(tickers))
	for _, t := range tickers {
		lines = append(lines, fmt.Sprintf("%s: %s", t, s.InvestedSecuritiesInfo[t]))
	}
	return strings.Join(lines, "\n")
}

// SummaryOfInvestmentAccounts covers the plain brokerage family, which has no
// contribution or employer-match fields.
type SummaryOfInvestmentAccounts struct {
	AssetSummary
}

func (s SummaryOfInvestmentAccounts) String() string {
	return fmt.Sprintf(
		"The total uninvested amount across the given investment accounts is $%.2f. "+
			"The details of the invested securities are as follows:\n%s",
		s.TotalUninvestedAmount, s.holdingsDetail(),
	)
}

// SummaryOfRetirementAccounts covers Traditional IRA, Roth IRA and HSA.
type SummaryOfRetirementAccounts struct {
	AssetSummary
}

func (s SummaryOfRetirementAccounts) String() string {
	return fmt.Sprintf(
		"The total uninvested amount across the given accounts is $%.2f. "+
			"The total average monthly contribution across the given accounts is $%.2f. "+
			"The details of the invested securities are as follows:\n%s",
		s.TotalUninvestedAmount, s.TotalAverageMonthlyContribution, s.holdingsDetail(),
	)
}

// SummaryOf401kAccounts covers Retirement 401k and Roth 401k, which add the
// joined employer-match text.
type SummaryOf401kAccounts struct {
	AssetSummary
}

func (s SummaryOf401kAccounts) String() string {
	return fmt.Sprintf(
		"The total uninvested amount across the given accounts is $%.2f. "+
			"The total average monthly contribution across the given accounts is $%.2f. "+
			"Employer matches across the accounts: %s. "+
			"The details of the invested securities are as follows:\n%s",
		s.TotalUninvestedAmount, s.TotalAverageMonthlyContribution,
		s.EmployerMatchesSummary, s.holdingsDetail(),
	)
}

type SummaryOfCreditCards struct {
	TotalLimit          float64            `json:"total_limit"`
	AvailableCredit     float64            `json:"available_credit"`
	OutstandingDebt     float64            `json:"outstanding_debt"`
	APRRange            [2]float64         `json:"apr_range"`
	SpendingByCategory  map[string]float64 `json:"spending_by_category"`
	WeightedAvgDebtRate float64            `json:"weighted_average_interest_rate_applied_on_debt"`
	RewardsSummary      string             `json:"rewards_summary"`
	TotalAnnualFees     float64            `json:"total_annual_fees"`
}

func (s SummaryOfCreditCards) String() string {
	return fmt.Sprintf(
		"Summary of Credit Cards: "+
			"Total Limit across all the credit cards available is: $%.2f "+
			"Available Credit is: $%.2f "+
			"Outstanding Debt is: $%.2f "+
			"APR Range is: [%g, %g] "+
			"Spending by Category: %s "+
			"Weighted Average Interest Rate Applied on the outstanding debt is: %.2f%% "+
			"Rewards Summary: %s "+
			"Total Annual Fees: $%.2f",
		s.TotalLimit, s.AvailableCredit, s.OutstandingDebt,
		s.APRRange[0], s.APRRange[1],
		renderCategoryFlow(s.SpendingByCategory),
		s.WeightedAvgDebtRate, s.RewardsSummary, s.TotalAnnualFees,
	)
}

type SummaryOfCheckingOrSavingsAccounts struct {
	TotalBalance     float64            `json:"total_balance"`
	RewardsSummary   string             `json:"rewards_summary"`
	NetFlowCurrent   float64            `json:"net_flow_current_cycle"`
	CategorySpending map[string]float64 `json:"category_spending"`
	InterestRange    [2]float64         `json:"interest_range"`
	FeesSummary      map[string]float64 `json:"fees_summary"`
}

func (s SummaryOfCheckingOrSavingsAccounts) String() string {
	return fmt.Sprintf(
		"Summary of Checking/Savings Accounts: "+
			"Total Balance across all the accounts is: $%.2f "+
			"Rewards Summary: %s "+
			"Net Flow in the current cycle is: $%.2f "+
			"Category Spending: %s "+
			"Interest Range: [%g, %g] "+
			"Fees Summary: %s",
		s.TotalBalance, s.RewardsSummary, s.NetFlowCurrent,
		renderCategoryFlow(s.CategorySpending),
		s.InterestRange[0], s.InterestRange[1],
		renderDollarMap(s.FeesSummary),
	)
}

type SummaryOfLoanAccounts struct {
	TotalLoans           int                `json:"total_loans"`
	TotalOutstanding     float64            `json:"total_outstanding_balance"`
	TotalPaid            float64            `json:"total_paid"`
	TotalPrincipalLeft   float64            `json:"total_principal_remaining"`
	LoanTypes            []string           `json:"loan_types"`
	ActiveLoans          int                `json:"active_loans"`
	UpcomingDueDates     []string           `json:"upcoming_due_dates"`
	InterestRateRange    [2]float64         `json:"interest_rate_range"`
	LoanTermRangeYears   [2]int             `json:"loan_term_range_years"`
	LoansWithLateFees    int                `json:"loans_with_late_fees"`
	LoansWithPrepayments int                `json:"loans_with_prepayment_penalties"`
	TotalFeesSummary     map[string]float64 `json:"total_fees_summary"`
	CollateralsInfo      string             `json:"collaterals_info"`
}

func (s SummaryOfLoanAccounts) String() string {
	return fmt.Sprintf(
		"Summary of Loan Accounts: "+
			"Total Loans: %d, "+
			"Total Outstanding Balance: $%.2f, "+
			"Total Paid: $%.2f, "+
			"Total Principal Remaining: $%.2f, "+
			"Collaterals Info: %s, "+
			"Loan Types: %s, "+
			"Active Loans: %d, "+
			"Upcoming Due Dates: %s, "+
			"Interest Rate Range: [%g, %g], "+
			"Loan Term Range (Years): [%d, %d], "+
			"Loans with Late Fees: %d, "+
			"Loans with Prepayment Penalties: %d, "+
			"Total Fees Summary: %s",
		s.TotalLoans, s.TotalOutstanding, s.TotalPaid, s.TotalPrincipalLeft,
		s.CollateralsInfo, strings.Join(s.LoanTypes, ", "),
		s.ActiveLoans, strings.Join(s.UpcomingDueDates, ", "),
		s.InterestRateRange[0], s.InterestRateRange[1],
		s.LoanTermRangeYears[0], s.LoanTermRangeYears[1],
		s.LoansWithLateFees, s.LoansWithPrepayments,
		renderDollarMap(s.TotalFeesSummary),
	)
}

type SummaryOfPayrollWithholdings struct {
	Federal        float64 `json:"federal"`
	State          float64 `json:"state"`
	SocialSecurity float64 `json:"social_security"`
	Medicare       float64 `json:"medicare"`
	Other          float64 `json:"other"`
}

func (w SummaryOfPayrollWithholdings) String() string {
	return fmt.Sprintf(
		"Federal: $%.2f, State: $%.2f, Social Security: $%.2f, Medicare: $%.2f, Other: $%.2f.",
		w.Federal, w.State, w.SocialSecurity, w.Medicare, w.Other,
	)
}

type SummaryOfPayrollAccounts struct {
	TotalEntries        int                          `json:"total_entries"`
	TotalAnnualIncome   float64                      `json:"total_annual_income"`
	TotalNetIncome      float64                      `json:"total_net_income"`
	TotalBonusIncome    float64                      `json:"total_bonus_income"`
	TotalWithheld       SummaryOfPayrollWithholdings `json:"total_withheld"`
	WithheldByState     map[string]float64           `json:"withheld_by_state"`
	PayFrequencies      map[string]int               `json:"pay_frequencies"`
	MostRecentYTDIncome float64                      `json:"most_recent_ytd_income"`
	BenefitsSummary     string                       `json:"benefits_summary"`
}

func (s SummaryOfPayrollAccounts) String() string {
	return fmt.Sprintf(
		"Summary of Payroll Accounts: "+
			"Total Entries: %d, "+
			"Total Annual Income: $%.2f, "+
			"Total Net Income: $%.2f, "+
			"Total Bonus Income: $%.2f, "+
			"Total Withheld: %s, "+
			"Withheld by State: %s, "+
			"Pay Frequencies: %s, "+
			"Most Recent Year-to-Date Income: $%.2f, "+
			"Benefits Summary: %s",
		s.TotalEntries, s.TotalAnnualIncome, s.TotalNetIncome, s.TotalBonusIncome,
		s.TotalWithheld, renderDollarMap(s.WithheldByState),
		renderCountMap(s.PayFrequencies),
		s.MostRecentYTDIncome, s.BenefitsSummary,
	)
}

type SummaryOfOtherAccounts struct {
	TotalIncome float64 `json:"total_income"`
	TotalDebt   float64 `json:"total_debt"`
}

func (s SummaryOfOtherAccounts) String() string {
	return fmt.Sprintf(
		"Summary of Other Accounts: "+
			"Total Income across all of the other accounts is: $%.2f "+
			"Total Debt across all of the other accounts is: $%.2f",
		s.TotalIncome, s.TotalDebt,
	)
}

// FinancialSummary is the whole-picture record behind the financial-summary
// tool. Every family field is pre-rendered text so empty families can carry
// their "NO <FAMILY>" placeholder.
type FinancialSummary struct {
	UserDetails           string `json:"user_details"`
	InvestmentSummary     string `json:"investment_summary"`
	CreditCardSummary     string `json:"credit_card_summary"`
	CheckingSummary       string `json:"checking_summary"`
	SavingSummary         string `json:"saving_summary"`
	LoansSummary          string `json:"loans_summary"`
	PayrollsSummary       string `json:"payrolls_summary"`
	TraditionalIRASummary string `json:"traditional_ira_summary"`
	RothIRASummary        string `json:"roth_ira_summary"`
	Retirement401kSummary string `json:"retirement_401k_summary"`
	Roth401kSummary       string `json:"roth_401k_summary"`
	HSASummary            string `json:"hsa_summary"`
	OtherAccountsSummary  string `json:"other_accounts_summary"`
}

func (s FinancialSummary) String() string {
	return fmt.Sprintf(
		"User Details: %s "+
			"Here is the investment account details %s "+
			"Here is the credit card details %s "+
			"Here is the checking account details %s and the saving account details %s "+
			"Here is the loans details %s "+
			"Here is the payrolls details %s "+
			"Here is the traditional ira account details %s "+
			"Here is the roth ira account details %s "+
			"Here is the retirement 401k account details %s "+
			"Here is the roth 401k account details %s "+
			"Here is the hsa account details %s "+
			"Here is the other accounts details %s",
		s.UserDetails,
		s.InvestmentSummary, s.CreditCardSummary,
		s.CheckingSummary, s.SavingSummary,
		s.LoansSummary, s.PayrollsSummary,
		s.TraditionalIRASummary, s.RothIRASummary,
		s.Retirement401kSummary, s.Roth401kSummary,
		s.HSASummary, s.OtherAccountsSummary,
	)
}

// renderCategoryFlow prints signed cash flow per category: negative amounts
// are spending, positive amounts are credits.
func renderCategoryFlow(flow map[string]float64) string {
	keys := sortedKeys(flow)
	parts := make([]string, 0, len(keys))
	for _, cat := range keys {
		amount := flow[cat]
		if amount < 0 {
			parts = append(parts, fmt.Sprintf("$%.2f spent on %s", -amount, cat))
		} else {
			parts = append(parts, fmt.Sprintf("$%.2f credited under %s", amount, cat))
		}
	}
	return strings.Join(parts, ", ")
}

func renderDollarMap(m map[string]float64) string {
	keys := sortedKeys(m)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: $%.2f", k, m[k]))
	}
	return strings.Join(parts, ", ")
}

func renderCountMap(m map[string]int) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %d", k, m[k]))
	}
	return strings.Join(parts, ", ")
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
