package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/aggregate"
	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
)

func (f *Finance) bankAccountTools() []*Tool {
	var out []*Tool
	for _, family := range []struct {
		tag         string
		label       string
		summaryName string
		listName    string
		getName     string
		idField     string
	}{
		{domain.TagChecking, "checking", "summary_of_checking_accounts", "get_all_checking_accounts", "get_checking_account", "account_id"},
		{domain.TagSavings, "saving", "summary_of_saving_accounts", "get_all_saving_accounts", "get_saving_account", "account_id"},
	} {
		family := family
		accountsOf := func() []domain.CheckingOrSavingsAccount {
			if family.tag == domain.TagSavings {
				return f.snap.Savings
			}
			return f.snap.Checking
		}

		out = append(out,
			New(family.summaryName).
				Description(fmt.Sprintf(
					"Provides a consolidated summary of all of the user's %s accounts: total balance, rewards overview, "+
						"net cash flow and category spending for the current billing cycle, the interest rate range across "+
						"accounts, and average fees (no-minimum-balance, monthly, ATM, overdraft). "+
						"Invoke for questions about overall %s balances, flows or fees.",
					family.label, family.label)).
				HandlerFunc(func(_ context.Context, _ json.RawMessage) (string, error) {
					return aggregate.SummarizeBankAccounts(accountsOf()).String(), nil
				}).
				Build(),

			New(family.listName).
				Description(fmt.Sprintf(
					"Fetches a list of all of the user's %s accounts, showing their IDs and names. "+
						"Useful when the user needs to identify or select a specific account before requesting its details.",
					family.label)).
				HandlerFunc(func(_ context.Context, _ json.RawMessage) (string, error) {
					return renderRefs(f.snap.BankAccountRefs(family.tag))
				}).
				Build(),

			New(family.getName).
				Description(fmt.Sprintf(
					"Retrieves the full details of a single %s account identified by its ID: balance, interest rate, "+
						"rewards, overdraft protection, minimum balance requirement, fee schedule and current billing cycle "+
						"transactions. Returns an error if no account with the given ID exists.",
					family.label)).
				Schema(ObjectSchema(map[string]any{
					family.idField: StringProperty(fmt.Sprintf("The unique identifier of the %s account to retrieve.", family.label)),
				}, family.idField)).
				HandlerFunc(func(_ context.Context, input json.RawMessage) (string, error) {
					args, err := decodeInput[struct {
						AccountID string `json:"account_id"`
					}](input)
					if err != nil {
						return "", err
					}
					account, err := f.snap.BankAccountByID(family.tag, args.AccountID)
					if err != nil {
						return "", err
					}
					return account.String(), nil
				}).
				Build(),
		)
	}
	return out
}
