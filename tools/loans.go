package tools

import (
	"context"
	"encoding/json"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/aggregate"
)

func (f *Finance) loanTools() []*Tool {
	return []*Tool{
		New("summary_of_loan_accounts").
			Description(
				"Provides a consolidated summary of all of the user's loans: counts, total outstanding balance, total " +
					"paid, total principal remaining, loan types, number of active loans, upcoming payment due dates, " +
					"interest rate and term ranges, counts of loans carrying late fees or prepayment penalties, accumulated " +
					"fee totals and collateral details. Invoke for questions about overall debt or loan obligations.").
			HandlerFunc(func(_ context.Context, _ json.RawMessage) (string, error) {
				return aggregate.SummarizeLoans(f.snap.Loans).String(), nil
			}).
			Build(),

		New("get_all_loans").
			Description(
				"Fetches a list of all of the user's loans, showing their IDs and names. " +
					"Useful when the user needs to identify or select a specific loan before requesting its details.").
			HandlerFunc(func(_ context.Context, _ json.RawMessage) (string, error) {
				return renderRefs(f.snap.LoanRefs())
			}).
			Build(),

		New("get_loan").
			Description(
				"Retrieves the full details of a single loan identified by its ID: principal left, interest rate, " +
					"monthly payment, term and dates, outstanding balance, amounts paid, payment history, outstanding fees, " +
					"collateral and miscellaneous payments. Returns an error if no loan with the given ID exists.").
			Schema(ObjectSchema(map[string]any{
				"loan_id": StringProperty("The unique identifier of the loan to retrieve."),
			}, "loan_id")).
			HandlerFunc(func(_ context.Context, input json.RawMessage) (string, error) {
				args, err := decodeInput[struct {
					LoanID string `json:"loan_id"`
				}](input)
				if err != nil {
					return "", err
				}
				loan, err := f.snap.LoanByID(args.LoanID)
				if err != nil {
					return "", err
				}
				return loan.String(), nil
			}).
			Build(),
	}
}

func (f *Finance) payrollTools() []*Tool {
	return []*Tool{
		New("summary_of_payroll_accounts").
			Description(
				"Provides a consolidated summary of all of the user's payroll records: entry count, total annual, net " +
					"and bonus income, withholding totals (federal, state, Social Security, Medicare, other), state taxes " +
					"grouped by state, pay frequency counts, the most recent year-to-date income and a benefits overview. " +
					"Invoke for questions about income, taxes withheld or employment benefits.").
			HandlerFunc(func(_ context.Context, _ json.RawMessage) (string, error) {
				return aggregate.SummarizePayrolls(f.snap.Payrolls).String(), nil
			}).
			Build(),

		New("get_all_payrolls").
			Description(
				"Fetches a list of all of the user's payroll records, showing their IDs and names. " +
					"Useful when the user needs to identify or select a specific record before requesting its details.").
			HandlerFunc(func(_ context.Context, _ json.RawMessage) (string, error) {
				return renderRefs(f.snap.PayrollRefs())
			}).
			Build(),

		New("get_payroll").
			Description(
				"Retrieves the full details of a single payroll record identified by its ID: income figures, " +
					"withholdings, pay period and frequency, benefits, bonus and year-to-date income. " +
					"Returns an error if no record with the given ID exists.").
			Schema(ObjectSchema(map[string]any{
				"payroll_id": StringProperty("The unique identifier of the payroll record to retrieve."),
			}, "payroll_id")).
			HandlerFunc(func(_ context.Context, input json.RawMessage) (string, error) {
				args, err := decodeInput[struct {
					PayrollID string `json:"payroll_id"`
				}](input)
				if err != nil {
					return "", err
				}
				payroll, err := f.snap.PayrollByID(args.PayrollID)
				if err != nil {
					return "", err
				}
				return payroll.String(), nil
			}).
			Build(),
	}
}

func (f *Finance) otherAccountTools() []*Tool {
	return []*Tool{
		New("summary_of_other_accounts").
			Description(
				"Provides a consolidated summary of the user's accounts that fit no other family, " +
					"totalling their income and debt. Invoke when a question touches accounts outside the standard families.").
			HandlerFunc(func(_ context.Context, _ json.RawMessage) (string, error) {
				return aggregate.SummarizeOtherAccounts(f.snap.Other).String(), nil
			}).
			Build(),

		New("get_all_other_accounts").
			Description(
				"Fetches a list of all of the user's other (uncategorized) accounts, showing their IDs and names.").
			HandlerFunc(func(_ context.Context, _ json.RawMessage) (string, error) {
				return renderRefs(f.snap.OtherAccountRefs())
			}).
			Build(),

		New("get_other_account").
			Description(
				"Retrieves the details of a single other (uncategorized) account identified by its ID: " +
					"its total income and total debt. Returns an error if no account with the given ID exists.").
			Schema(ObjectSchema(map[string]any{
				"account_id": StringProperty("The unique identifier of the account to retrieve."),
			}, "account_id")).
			HandlerFunc(func(_ context.Context, input json.RawMessage) (string, error) {
				args, err := decodeInput[struct {
					AccountID string `json:"account_id"`
				}](input)
				if err != nil {
					return "", err
				}
				account, err := f.snap.OtherAccountByID(args.AccountID)
				if err != nil {
					return "", err
				}
				return account.String(), nil
			}).
			Build(),
	}
}
