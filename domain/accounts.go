package domain

import (
	"fmt"
	"strings"
)

// Family tags carried by the `type` field of every inbound account object.
const (
	TagInvestment     = "Investment"
	TagCreditCard     = "Credit Card"
	TagChecking       = "Checking"
	TagSavings        = "Savings"
	TagLoan           = "Loan"
	TagPayroll        = "Payroll"
	TagTraditionalIRA = "Traditional IRA"
	TagRothIRA        = "Roth IRA"
	TagRetirement401K = "Retirement 401k"
	TagRoth401K       = "Roth 401k"
	TagHSA            = "HSA"
	TagOther          = "Other"
)

// NotFoundError is returned by id lookups in any family. Tool handlers
// surface it to the model as an error result; it never aborts a request.
type NotFoundError struct {
	Family string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.Family, e.ID)
}

// AssetDistribution is one position inside a holding account. Tickers are
// stored as received; consumers normalize to uppercase.
type AssetDistribution struct {
	Ticker           string  `json:"ticker"`
	Quantity         float64 `json:"quantity"`
	AverageCostBasis float64 `json:"average_cost_basis"`
}

func (a AssetDistribution) String() string {
	return fmt.Sprintf("%g shares of %s at an average cost basis of $%.2f",
		a.Quantity, a.Ticker, a.AverageCostBasis)
}

// HoldingAccount is the shape shared by all six asset-bearing families.
// Employer match is only populated for the 401(k) variants, and the average
// monthly contribution is zero for plain investment accounts.
type HoldingAccount struct {
	ID                         string              `json:"id"`
	Name                       string              `json:"name"`
	Type                       string              `json:"type"`
	UninvestedAmount           float64             `json:"uninvested_amount"`
	AverageMonthlyContribution float64             `json:"average_monthly_contribution,omitempty"`
	EmployerMatch              string              `json:"employer_match,omitempty"`
	AssetDistribution          []AssetDistribution `json:"asset_distribution"`
}

func (h HoldingAccount) String() string {
	assets := make([]string, len(h.AssetDistribution))
	for i, a := range h.AssetDistribution {
		assets[i] = a.String()
	}
	s := fmt.Sprintf("%s account of ID %s named %s with uninvested amount of $%.2f. ",
		h.Type, h.ID, h.Name, h.UninvestedAmount)
	if h.AverageMonthlyContribution != 0 {
		s += fmt.Sprintf("Average monthly contribution is $%.2f. ", h.AverageMonthlyContribution)
	}
	s += "Asset distribution of this account is as follows: " + strings.Join(assets, ", ")
	if h.EmployerMatch != "" {
		s += ". Employer match details: " + h.EmployerMatch
	}
	return s
}

// BillingCycleTransaction is a signed amount within the current billing
// cycle: negative = debit/spend, positive = credit/payment.
type BillingCycleTransaction struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

func (t BillingCycleTransaction) String() string {
	kind := "Debit"
	if t.Amount > 0 {
		kind = "Credit"
	}
	return fmt.Sprintf("%s of $%.2f in category %s", kind, abs(t.Amount), t.Category)
}

// CreditCard is one card with its current-cycle transactions.
type CreditCard struct {
	ID                         string                    `json:"id"`
	Name                       string                    `json:"name"`
	Type                       string                    `json:"type"`
	TotalLimit                 float64                   `json:"total_limit"`
	CurrentLimit               float64                   `json:"current_limit"`
	RewardsSummary             string                    `json:"rewards_summary"`
	Interest                   float64                   `json:"interest"`
	OutstandingDebt            float64                   `json:"outstanding_debt"`
	CurrentBillingTransactions []BillingCycleTransaction `json:"current_billing_cycle_transactions"`
	AnnualFee                  float64                   `json:"annual_fee"`
}

func (c CreditCard) String() string {
	txns := make([]string, len(c.CurrentBillingTransactions))
	for i, t := range c.CurrentBillingTransactions {
		txns[i] = t.String()
	}
	return fmt.Sprintf(
		"Credit card of ID %s named %s with total limit of $%.2f and outstanding debt of $%.2f. "+
			"Interest rate is %g%% APR. Rewards of this card are as follows: %s. "+
			"Current billing cycle transactions: %s. Annual fee: $%.2f",
		c.ID, c.Name, c.TotalLimit, c.OutstandingDebt, c.Interest, c.RewardsSummary,
		strings.Join(txns, ", "), c.AnnualFee,
	)
}

// AccountFee describes the fee schedule of a checking or savings account.
type AccountFee struct {
	NoMinimumBalanceFee float64 `json:"no_minimum_balance_fee"`
	MonthlyFee          float64 `json:"monthly_fee"`
	ATMFee              float64 `json:"ATM_fee"`
	OverdraftFee        float64 `json:"overdraft_fee"`
}

func (f AccountFee) String() string {
	return fmt.Sprintf(
		"No minimum balance fee is $%.2f, monthly fee is $%.2f, ATM fee is $%.2f, overdraft fee is $%.2f.",
		f.NoMinimumBalanceFee, f.MonthlyFee, f.ATMFee, f.OverdraftFee,
	)
}

// CheckingOrSavingsAccount covers both bank account families; Type carries
// "Checking" or "Savings".
type CheckingOrSavingsAccount struct {
	ID                         string                    `json:"id"`
	Name                       string                    `json:"name"`
	Type                       string                    `json:"type"`
	RewardsSummary             string                    `json:"rewards_summary"`
	CurrentAmount              float64                   `json:"current_amount"`
	Interest                   float64                   `json:"interest"`
	OverdraftProtection        string                    `json:"overdraft_protection"`
	MinimumBalanceRequirement  float64                   `json:"minimum_balance_requirement"`
	Fee                        AccountFee                `json:"fee"`
	CurrentBillingTransactions []BillingCycleTransaction `json:"current_billing_cycle_transactions"`
}

func (a CheckingOrSavingsAccount) String() string {
	txns := make([]string, len(a.CurrentBillingTransactions))
	for i, t := range a.CurrentBillingTransactions {
		txns[i] = t.String()
	}
	return fmt.Sprintf(
		"%s account of ID %s named %s with current amount of $%.2f. "+
			"Interest rate on the current amount is %g%% APY. Rewards of this account are as follows: %s. "+
			"Overdraft protection is %s. Minimum balance requirement is $%.2f. Fees: %s "+
			"Current billing cycle transactions: %s",
		a.Type, a.ID, a.Name, a.CurrentAmount, a.Interest, a.RewardsSummary,
		a.OverdraftProtection, a.MinimumBalanceRequirement, a.Fee, strings.Join(txns, ", "),
	)
}

// LoanFee describes the currently outstanding fees of a loan.
type LoanFee struct {
	LateFee           float64 `json:"late_fee"`
	PrepaymentPenalty float64 `json:"prepayment_penalty"`
	OriginationFee    float64 `json:"origination_fee"`
	OtherFees         float64 `json:"other_fees"`
}

func (f LoanFee) String() string {
	return fmt.Sprintf(
		"Late fee is $%.2f, prepayment penalty is $%.2f, origination fee is $%.2f, other fees are $%.2f.",
		f.LateFee, f.PrepaymentPenalty, f.OriginationFee, f.OtherFees,
	)
}

// LoanPayment is one entry of a loan's payment history.
type LoanPayment struct {
	AmountPaid  float64 `json:"amount_paid"`
	PaymentDate string  `json:"payment_date"`
}

// OtherLoanPayment is a miscellaneous payment outside the regular schedule.
type OtherLoanPayment struct {
	PaymentAmount float64 `json:"payment_amount"`
	PaymentDate   string  `json:"payment_date"`
	PaymentType   string  `json:"payment_type"`
	Description   string  `json:"description"`
}

// Loan is one loan account. LoanTerm is free text whose first token is the
// numeric year count ("30 years").
type Loan struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Type            string             `json:"type"`
	PrincipalLeft   float64            `json:"principal_left"`
	InterestRate    float64            `json:"interest_rate"`
	MonthlyPayment  float64            `json:"monthly_contribution"`
	LoanTerm        string             `json:"loan_term"`
	LoanStartDate   string             `json:"loan_start_date"`
	LoanEndDate     string             `json:"loan_end_date"`
	OutstandingBal  float64            `json:"outstanding_balance"`
	TotalPaid       float64            `json:"total_paid"`
	PaymentDueDate  string             `json:"payment_due_date"`
	PaymentHistory  []LoanPayment      `json:"payment_history"`
	LoanType        string             `json:"loan_type"`
	Collateral      string             `json:"collateral,omitempty"`
	OutstandingFees LoanFee            `json:"current_outstanding_fees"`
	OtherPayments   []OtherLoanPayment `json:"other_payments"`
}

func (l Loan) String() string {
	history := make([]string, len(l.PaymentHistory))
	for i, p := range l.PaymentHistory {
		history[i] = fmt.Sprintf("$%.2f on %s", p.AmountPaid, p.PaymentDate)
	}
	others := make([]string, len(l.OtherPayments))
	for i, p := range l.OtherPayments {
		others[i] = fmt.Sprintf("$%.2f on %s under type %s (%s)",
			p.PaymentAmount, p.PaymentDate, p.PaymentType, p.Description)
	}
	return fmt.Sprintf(
		"Loan of ID %s named %s with principal left of $%.2f. Interest rate is %g%% APR. "+
			"Monthly payment is $%.2f. Loan term is %s starting from %s to %s. "+
			"Outstanding balance is $%.2f. Total paid so far is $%.2f. Payment due date is %s. "+
			"Payment history: %s. Current outstanding fees: %s Other payments: %s",
		l.ID, l.Name, l.PrincipalLeft, l.InterestRate, l.MonthlyPayment,
		l.LoanTerm, l.LoanStartDate, l.LoanEndDate, l.OutstandingBal, l.TotalPaid,
		l.PaymentDueDate, strings.Join(history, ", "), l.OutstandingFees, strings.Join(others, ", "),
	)
}

// Payroll is one payroll record for one pay period.
type Payroll struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	Type                   string  `json:"type"`
	AnnualIncome           float64 `json:"annual_income"`
	FederalTaxesWithheld   float64 `json:"federal_taxes_withheld"`
	State                  string  `json:"state"`
	StateTaxesWithheld     float64 `json:"state_taxes_withheld"`
	SocialSecurityWithheld float64 `json:"social_security_withheld"`
	MedicareWithheld       float64 `json:"medicare_withheld"`
	OtherDeductions        float64 `json:"other_deductions"`
	NetIncome              float64 `json:"net_income"`
	PayPeriodStartDate     string  `json:"pay_period_start_date"`
	PayPeriodEndDate       string  `json:"pay_period_end_date"`
	PayFrequency           string  `json:"pay_frequency"`
	Benefits               string  `json:"benefits"`
	BonusIncome            float64 `json:"bonus_income"`
	YearToDateIncome       float64 `json:"year_to_date_income"`
}

func (p Payroll) String() string {
	return fmt.Sprintf(
		"Payroll of ID %s named %s with annual income of $%.2f. "+
			"Federal taxes withheld: $%.2f, state: %s, state taxes withheld: $%.2f. "+
			"Social Security withheld: $%.2f, Medicare withheld: $%.2f, other deductions: $%.2f. "+
			"Net income for the pay period is $%.2f. Pay period from %s to %s. Pay frequency is %s. "+
			"Benefits include: %s. Bonus income is $%.2f. Year-to-date income is $%.2f.",
		p.ID, p.Name, p.AnnualIncome, p.FederalTaxesWithheld, p.State, p.StateTaxesWithheld,
		p.SocialSecurityWithheld, p.MedicareWithheld, p.OtherDeductions, p.NetIncome,
		p.PayPeriodStartDate, p.PayPeriodEndDate, p.PayFrequency, p.Benefits,
		p.BonusIncome, p.YearToDateIncome,
	)
}

// OtherAccount is the catch-all family.
type OtherAccount struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	TotalIncome float64 `json:"total_income"`
	TotalDebt   float64 `json:"total_debt"`
}

func (o OtherAccount) String() string {
	return fmt.Sprintf("Other account of ID %s named %s with total income of $%.2f and total debt of $%.2f.",
		o.ID, o.Name, o.TotalIncome, o.TotalDebt)
}

// AccountRef is the id/name pair returned by the list tools.
type AccountRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
