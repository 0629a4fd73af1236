package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/aggregate"
	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
)

// assetFamily describes one asset-bearing account family's tool set. Each
// family gets a summary tool, a single-account tool and a list tool; every
// family except HSA also gets a ticker extraction tool.
type assetFamily struct {
	tag         string
	label       string
	summaryName string
	getName     string
	listName    string
	extractName string
	summarize   func(ctx context.Context, f *Finance, accounts []domain.HoldingAccount) (fmt.Stringer, error)
}

func summarizeAsInvestment(ctx context.Context, f *Finance, accounts []domain.HoldingAccount) (fmt.Stringer, error) {
	holdings, err := aggregate.SummarizeAssets(ctx, f.advisor, accounts)
	if err != nil {
		return nil, err
	}
	var uninvested float64
	for _, acc := range accounts {
		uninvested += acc.UninvestedAmount
	}
	return domain.SummaryOfInvestmentAccounts{AssetSummary: domain.AssetSummary{
		TotalUninvestedAmount:  uninvested,
		InvestedSecuritiesInfo: holdings,
	}}, nil
}

func summarizeAsRetirement(ctx context.Context, f *Finance, accounts []domain.HoldingAccount) (fmt.Stringer, error) {
	return aggregate.SummarizeRetirementAccounts(ctx, f.advisor, accounts)
}

func summarizeAs401k(ctx context.Context, f *Finance, accounts []domain.HoldingAccount) (fmt.Stringer, error) {
	return aggregate.Summarize401kAccounts(ctx, f.advisor, accounts)
}

var assetFamilies = []assetFamily{
	{
		tag:         domain.TagInvestment,
		label:       "taxable investment",
		summaryName: "summary_of_investment_accounts",
		getName:     "get_investment_account",
		listName:    "get_all_investment_account_ids_and_names",
		extractName: "extract_unique_tickers_investment_accounts",
		summarize:   summarizeAsInvestment,
	},
	{
		tag:         domain.TagTraditionalIRA,
		label:       "Traditional IRA",
		summaryName: "summary_of_traditional_ira_accounts",
		getName:     "get_traditional_ira_account",
		listName:    "get_all_traditional_ira_account_ids_and_names",
		extractName: "extract_unique_tickers_traditional_ira",
		summarize:   summarizeAsRetirement,
	},
	{
		tag:         domain.TagRothIRA,
		label:       "Roth IRA",
		summaryName: "summary_of_roth_ira_accounts",
		getName:     "get_roth_ira_account",
		listName:    "get_all_roth_ira_account_ids_and_names",
		extractName: "extract_unique_tickers_roth_ira",
		summarize:   summarizeAsRetirement,
	},
	{
		tag:         domain.TagRetirement401K,
		label:       "401(k)",
		summaryName: "summary_of_401k_accounts",
		getName:     "get_401k_account",
		listName:    "get_all_401k_account_ids_and_names",
		extractName: "extract_unique_tickers_401k",
		summarize:   summarizeAs401k,
	},
	{
		tag:         domain.TagRoth401K,
		label:       "Roth 401(k)",
		summaryName: "summary_of_roth_401k_accounts",
		getName:     "get_roth_401k_account",
		listName:    "get_all_roth_401k_account_ids_and_names",
		extractName: "extract_unique_tickers_roth_401k",
		summarize:   summarizeAs401k,
	},
	{
		tag:         domain.TagHSA,
		label:       "HSA",
		summaryName: "summary_of_hsa_accounts",
		getName:     "get_hsa_account",
		listName:    "get_all_hsa_accounts",
		summarize:   summarizeAsRetirement,
	},
}

func (f *Finance) assetFamilyTools() []*Tool {
	var out []*Tool
	for _, family := range assetFamilies {
		family := family
		out = append(out, f.assetSummaryTool(family), f.assetGetTool(family), f.assetListTool(family))
		if family.extractName != "" {
			out = append(out, f.assetExtractTickersTool(family))
		}
	}
	return out
}

func (f *Finance) assetSummaryTool(family assetFamily) *Tool {
	return New(family.summaryName).
		Description(fmt.Sprintf(
			"Provides a consolidated summary of all of the user's %s accounts. "+
				"Returns the total uninvested cash across the accounts and, per held ticker, the total quantity, "+
				"weighted average cost basis, live market data (current price, daily/weekly/monthly/YTD price changes, "+
				"50- and 100-day moving averages, 52-week high/low, volume, latest market news) and the total unrealized "+
				"value change. Invoke when the user asks about their %s holdings as a whole, e.g. \"How are my %s accounts doing?\"",
			family.label, family.label, family.label)).
		HandlerFunc(func(ctx context.Context, _ json.RawMessage) (string, error) {
			accounts, _ := f.snap.Holdings(family.tag)
			summary, err := family.summarize(ctx, f, accounts)
			if err != nil {
				return "", err
			}
			return summary.String(), nil
		}).
		Build()
}

func (f *Finance) assetGetTool(family assetFamily) *Tool {
	return New(family.getName).
		Description(fmt.Sprintf(
			"Retrieves the summary details for a single, specific %s account identified by its ID. "+
				"Returns the account's uninvested cash and a per-ticker holdings summary with live market data. "+
				"Use after the user names a particular account, typically selected from %s. "+
				"Returns an error if no account with the given ID exists.",
			family.label, family.listName)).
		Schema(ObjectSchema(map[string]any{
			"account_id": StringProperty(fmt.Sprintf("The unique identifier of the %s account to retrieve.", family.label)),
		}, "account_id")).
		HandlerFunc(func(ctx context.Context, input json.RawMessage) (string, error) {
			args, err := decodeInput[struct {
				AccountID string `json:"account_id"`
			}](input)
			if err != nil {
				return "", err
			}
			account, err := f.snap.HoldingByID(family.tag, args.AccountID)
			if err != nil {
				return "", err
			}
			summary, err := family.summarize(ctx, f, []domain.HoldingAccount{account})
			if err != nil {
				return "", err
			}
			return summary.String(), nil
		}).
		Build()
}

func (f *Finance) assetListTool(family assetFamily) *Tool {
	return New(family.listName).
		Description(fmt.Sprintf(
			"Fetches a list of all %s accounts belonging to the user, showing their IDs and names. "+
				"Useful when the user needs to identify or select a specific account before requesting its details.",
			family.label)).
		HandlerFunc(func(_ context.Context, _ json.RawMessage) (string, error) {
			return renderRefs(f.snap.HoldingRefs(family.tag))
		}).
		Build()
}

func (f *Finance) assetExtractTickersTool(family assetFamily) *Tool {
	return New(family.extractName).
		Description(fmt.Sprintf(
			"Extracts a unique list of stock ticker symbols from the specified %s accounts. "+
				"Scans the asset holdings of the accounts identified by their IDs and returns every distinct ticker "+
				"in uppercase. Useful for identifying the user's holdings before fetching detailed market data. "+
				"IDs that match no account are skipped.",
			family.label)).
		Schema(ObjectSchema(map[string]any{
			"account_ids": StringArrayProperty(fmt.Sprintf("Unique identifiers of the %s accounts to scan.", family.label)),
		}, "account_ids")).
		HandlerFunc(func(_ context.Context, input json.RawMessage) (string, error) {
			args, err := decodeInput[struct {
				AccountIDs []string `json:"account_ids"`
			}](input)
			if err != nil {
				return "", err
			}
			return strings.Join(f.uniqueTickers(family.tag, args.AccountIDs), ", "), nil
		}).
		Build()
}

func (f *Finance) uniqueTickers(tag string, accountIDs []string) []string {
	seen := map[string]struct{}{}
	for _, id := range accountIDs {
		account, err := f.snap.HoldingByID(tag, id)
		if err != nil {
			continue
		}
		for _, asset := range account.AssetDistribution {
			seen[strings.ToUpper(asset.Ticker)] = struct{}{}
		}
	}
	tickers := make([]string, 0, len(seen))
	for t := range seen {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	return tickers
}
