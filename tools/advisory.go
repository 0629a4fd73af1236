package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/aggregate"
)

func (f *Finance) advisoryTools() []*Tool {
	return []*Tool{
		New("search_and_answer").
			Description(
				"Searches the web for relevant information based on the provided query and retrieves the best possible " +
					"response. The search results are analyzed and the most accurate or informative answer is returned. " +
					"Use for general or current-events questions the account data cannot answer, e.g. " +
					"\"What is the current federal funds rate?\"").
			Schema(ObjectSchema(map[string]any{
				"query": StringProperty("The query or question for which the information is being sought."),
			}, "query")).
			HandlerFunc(func(ctx context.Context, input json.RawMessage) (string, error) {
				args, err := decodeInput[struct {
					Query string `json:"query"`
				}](input)
				if err != nil {
					return "", err
				}
				return f.advisor.Grounded(ctx, args.Query)
			}).
			Build(),

		New("get_user_details").
			Description(
				"Retrieves the user's essential personal and financial context details: age, state and country of " +
					"residence, citizenship, tax filing status and tax residency. The user's name is anonymized for " +
					"privacy. Use before giving tax, residency or age-dependent advice, e.g. " +
					"\"What are the contribution limits for someone my age?\"").
			HandlerFunc(func(_ context.Context, _ json.RawMessage) (string, error) {
				return f.user.Anonymized().String(), nil
			}).
			Build(),

		New("get_tickers_info").
			Description(
				"Retrieves detailed, current market information for each specified stock ticker using grounded web " +
					"search: current price, daily/weekly/monthly/YTD price changes, 50- and 100-day moving averages, " +
					"52-week high/low, volume and a summary of the latest market news. " +
					"Invoke when the user asks about specific tickers, held or not.").
			Schema(ObjectSchema(map[string]any{
				"tickers": StringArrayProperty("The stock ticker symbols to look up, e.g. [\"AAPL\", \"MSFT\"]."),
			}, "tickers")).
			HandlerFunc(func(ctx context.Context, input json.RawMessage) (string, error) {
				args, err := decodeInput[struct {
					Tickers []string `json:"tickers"`
				}](input)
				if err != nil {
					return "", err
				}
				snapshots, err := f.advisor.ResolveTickers(ctx, args.Tickers)
				if err != nil {
					return "", err
				}
				lines := make([]string, len(snapshots))
				for i, s := range snapshots {
					lines[i] = s.String()
				}
				return strings.Join(lines, "\n\n"), nil
			}).
			Build(),

		New("identify_better_tickers").
			Description(
				"Identifies up to three alternative stock tickers that better match the given investment criteria, " +
					"using grounded web search, and returns full market data for each suggestion. The previous tickers " +
					"serve as a comparison baseline and may be empty. Invoke for requests like " +
					"\"Find stocks similar to AAPL but with a higher dividend yield.\"").
			Schema(ObjectSchema(map[string]any{
				"prev_tickers": StringArrayProperty("Ticker symbols for context or comparison. May be empty."),
				"criteria":     StringProperty("Natural-language description of what makes an investment \"better\", e.g. \"stronger YTD growth in the AI sector\"."),
			}, "prev_tickers", "criteria")).
			HandlerFunc(func(ctx context.Context, input json.RawMessage) (string, error) {
				args, err := decodeInput[struct {
					PrevTickers []string `json:"prev_tickers"`
					Criteria    string   `json:"criteria"`
				}](input)
				if err != nil {
					return "", err
				}
				return f.advisor.BetterTickers(ctx, args.PrevTickers, args.Criteria)
			}).
			Build(),

		New("get_user_financial_summary").
			Description(
				"Provides a complete summary of the user's financial situation across every account family: " +
					"investments, credit cards, checking and savings, loans, payrolls, IRAs, 401(k)s, HSAs and other " +
					"accounts, plus anonymized personal details. Families with no accounts are marked as absent. " +
					"Invoke for broad questions about the user's overall finances.").
			HandlerFunc(func(ctx context.Context, _ json.RawMessage) (string, error) {
				summary, err := aggregate.FinancialSummary(ctx, f.advisor, f.user, f.snap)
				if err != nil {
					return "", err
				}
				return summary.String(), nil
			}).
			Build(),
	}
}

func (f *Finance) planningTools() []*Tool {
	return []*Tool{
		New("optimize_financial_plan").
			Description(
				"Generates a personalized financial plan aimed at optimizing the user's finances toward a stated goal, " +
					"using grounded web search and the user's overall financial summary. Considers realism and may adjust " +
					"ambitious goals. Returns a plan summary and step-by-step instructions. Invoke for requests like " +
					"\"Help me create a plan to reach financial independence.\"").
			Schema(ObjectSchema(map[string]any{
				"criteria": StringProperty("The user's financial goal or the area to optimize, e.g. \"pay down high-interest debt faster\"."),
			}, "criteria")).
			HandlerFunc(func(ctx context.Context, input json.RawMessage) (string, error) {
				args, err := decodeInput[struct {
					Criteria string `json:"criteria"`
				}](input)
				if err != nil {
					return "", err
				}
				summary, err := aggregate.FinancialSummary(ctx, f.advisor, f.user, f.snap)
				if err != nil {
					return "", err
				}
				plan, err := f.advisor.OptimizeFinancialPlan(ctx, f.user.Anonymized().String(), summary.String(), args.Criteria)
				if err != nil {
					return "", err
				}
				return plan.String(), nil
			}).
			Build(),

		New("how_can_I_make_X_money_in_Y_months").
			Description(
				"Generates a financial plan focused on achieving a specific monetary gain within a defined timeframe, " +
					"using grounded web search and the user's financial summary. Suggests realistic strategies such as side " +
					"hustles, investment adjustments or cost-cutting, and assesses whether the goal is feasible. " +
					"Invoke for requests like \"How can I make an extra $5,000 in the next 6 months?\"").
			Schema(ObjectSchema(map[string]any{
				"amount":   NumberProperty("The target amount of additional money the user wants to make (net gain)."),
				"months":   IntegerProperty("The number of months the user has to achieve this goal."),
				"criteria": StringProperty("Additional context for structuring the plan, e.g. \"focus on side hustles\"."),
			}, "amount", "months", "criteria")).
			HandlerFunc(func(ctx context.Context, input json.RawMessage) (string, error) {
				args, err := decodeInput[struct {
					Amount   float64 `json:"amount"`
					Months   int     `json:"months"`
					Criteria string  `json:"criteria"`
				}](input)
				if err != nil {
					return "", err
				}
				summary, err := aggregate.FinancialSummary(ctx, f.advisor, f.user, f.snap)
				if err != nil {
					return "", err
				}
				plan, err := f.advisor.EarnTargetPlan(ctx, summary.String(), args.Amount, args.Months, args.Criteria)
				if err != nil {
					return "", err
				}
				return plan.String(), nil
			}).
			Build(),

		New("how_can_save_X_money_in_Y_months").
			Description(
				"Generates a financial plan focused on reaching a specific savings target within a defined timeframe, " +
					"using grounded web search and the user's financial summary. Covers budgeting adjustments, expense " +
					"reduction, savings automation and where to keep the saved money, and assesses feasibility. " +
					"Invoke for requests like \"Help me save $10,000 in 12 months for a vacation.\"").
			Schema(ObjectSchema(map[string]any{
				"amount":   NumberProperty("The target amount of money the user wants to save."),
				"months":   IntegerProperty("The number of months the user has to achieve this savings goal."),
				"criteria": StringProperty("Additional context for structuring the plan, e.g. \"focus on budgeting\"."),
			}, "amount", "months", "criteria")).
			HandlerFunc(func(ctx context.Context, input json.RawMessage) (string, error) {
				args, err := decodeInput[struct {
					Amount   float64 `json:"amount"`
					Months   int     `json:"months"`
					Criteria string  `json:"criteria"`
				}](input)
				if err != nil {
					return "", err
				}
				summary, err := aggregate.FinancialSummary(ctx, f.advisor, f.user, f.snap)
				if err != nil {
					return "", err
				}
				plan, err := f.advisor.SaveTargetPlan(ctx, summary.String(), args.Amount, args.Months, args.Criteria)
				if err != nil {
					return "", err
				}
				return plan.String(), nil
			}).
			Build(),
	}
}
