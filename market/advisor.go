package market

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
)

// BetterTickers suggests up to three alternative tickers matching the given
// criteria, using the previous tickers as a comparison baseline, and returns
// the resolved market data for each suggestion as rendered text.
func (c *Client) BetterTickers(ctx context.Context, prevTickers []string, criteria string) (string, error) {
	prompt := fmt.Sprintf(`
Objective: Identify and provide detailed information on potential alternative stock investments that meet specific financial criteria, potentially offering a better profile compared to a set of reference tickers.

Instructions:

1.  Analyze Criteria: Carefully examine the provided investment criteria. Understand the key metrics and desired characteristics (e.g., high growth, low P/E, specific dividend yield, low volatility, sector focus).
    * Criteria: %s

2.  Reference Tickers (Context): Use the reference tickers as a baseline or context for comparison, if provided and relevant to the criteria. The goal is to find alternatives that align better with the criteria than these reference points.
    * Reference Tickers: %s

3.  Identify Alternatives: Based *strictly* on the criteria, search for and identify up to three potential alternative stock tickers that represent compelling investment opportunities according to those criteria. Prioritize tickers demonstrating strong alignment.

4.  Gather Detailed Data: For *each* suggested alternative ticker, use grounded web search via available tools to find accurate, up-to-date values for *all* the fields listed below. Use reputable financial sources. Do not omit any fields. If precise data isn't available, provide the best reliable estimate. Ensure price data is current (as of %s).

5.  Required Data Fields per Alternative:
%s`, criteria, strings.Join(prevTickers, " "), time.Now().Format(dateLayout), tickerFieldList)

	var suggestions []domain.TickerSnapshot
	if err := c.groundedStructured(ctx, prompt, tickerListSchema(), &suggestions); err != nil {
		return "", err
	}

	lines := make([]string, len(suggestions))
	for i, s := range suggestions {
		lines[i] = fmt.Sprintf("%s : %s", s.Ticker, s)
	}
	return strings.Join(lines, "\n\n"), nil
}

// OptimizeCategorySpending builds a card-usage plan for one spending
// category. New-card suggestions only appear when the user opted into them.
func (c *Client) OptimizeCategorySpending(ctx context.Context, openToNewCards bool, category string, currentCards []domain.BasicCreditCardDetails, spendingByCategory map[string]float64) (domain.OptimalCreditCardSpending, error) {
	stance := "The user wants to optimize spending using only their existing credit cards."
	if openToNewCards {
		stance = "The user is open to applying for new credit cards if they offer significant benefits for this category."
	}

	prompt := fmt.Sprintf(`
**Context:**
* User's current credit cards details:
%s
* User's stance on new cards: %s
* User's spending context (e.g., recent category spending): %s
* Optimization Focus Category: '%s'

**Your Task:** Generate a credit card optimization plan focused on the '%s' spending category, strictly respecting the user's stated stance on acquiring new cards.

**Instructions:**

1.  **Analyze Existing Cards:** Review the user's current cards. Identify which existing card(s) offer the best rewards (cash back, points, miles) or benefits specifically for the '%s' spending category. Note their relevant reward rates or terms.

2.  **Consider New Cards (Conditionally based on User Stance):**
    * **IF** the user's stance indicates they **ARE OPEN** or willing to consider new cards: search for potentially better credit cards currently available in the market (use grounded search). Focus on cards offering demonstrably superior rewards or benefits *specifically* for '%s' spending compared to the user's *best existing card* for this category. Identify only 1 or 2 top alternatives if strong candidates exist.
    * **ELSE:** **DO NOT** search for, suggest, or mention any new credit cards in the plan or the output list. The analysis should focus *exclusively* on optimizing with existing cards.

3.  **Develop Optimization Plan:** Create a clear, actionable plan.
    * The plan **MUST** first state which **EXISTING** card(s) should be prioritized for '%s' purchases and explain why (mentioning the relevant reward rate or benefit).
    * **ONLY IF** the user is open to new cards AND you identified a superior new card in Step 2, the plan MAY *additionally* suggest considering that specific new card. Clearly state its name, key benefit for the category, and annual fee.
`, renderCards(currentCards), stance, renderSpending(spendingByCategory), category, category, category, category, category)

	var plan domain.OptimalCreditCardSpending
	if err := c.groundedStructured(ctx, prompt, optimalSpendingSchema(), &plan); err != nil {
		return domain.OptimalCreditCardSpending{}, err
	}
	return plan, nil
}

// OptimizeAllCategorySpending builds a holistic card-usage strategy across
// the user's top spending categories.
func (c *Client) OptimizeAllCategorySpending(ctx context.Context, openToNewCards bool, currentCards []domain.BasicCreditCardDetails, spendingByCategory map[string]float64) (domain.OptimalCreditCardSpending, error) {
	stance := "User is not open to new cards"
	if openToNewCards {
		stance = "User is open to new cards"
	}

	prompt := fmt.Sprintf(`
Context:
- User's current credit cards and their rewards:
%s
- User's stance on new cards: %s
- User's spending summary (by category, showing money spent):
%s
- Current Date for data freshness reference: %s

Task: Create a holistic credit card optimization strategy based on the user's spending across their major categories. The strategy MUST strictly respect the user's stated preference regarding new cards.

Instructions:

1. Analyze Spending and Existing Cards: Review the user's spending summary to identify the top 3-5 spending categories (highest absolute spending). For these top categories, determine which of the user's CURRENT cards offer the best rewards based on their rewards summary.

2. Consider New Cards (Conditionally based on User Stance):
   IF the user IS OPEN to new cards: use grounded search to find 1 or 2 potential new credit cards available now that could SIGNIFICANTLY improve rewards in the user's top spending categories where existing cards are weak OR offer superior overall value based on the total spending pattern.
   ELSE: DO NOT search for, suggest, or include any new credit cards in the output. The optimization plan MUST rely solely on the user's existing cards.

3. Develop Optimization Plan: Create a clear, actionable strategy string detailing which EXISTING card to use for each of the user's top 3-5 spending categories, mentioning the card name and the relevant reward. ONLY IF the user is open to new cards AND a suitable new card was identified: suggest considering that card, naming the categories it benefits, its annual fee, and the specific reward that beats the existing options.
`, renderCards(currentCards), stance, renderSpending(spendingByCategory), time.Now().Format(dateLayout))

	var plan domain.OptimalCreditCardSpending
	if err := c.groundedStructured(ctx, prompt, optimalSpendingSchema(), &plan); err != nil {
		return domain.OptimalCreditCardSpending{}, err
	}
	return plan, nil
}

// BetterCardsForCategory searches the market for cards that excel in one
// spending category under the given criteria and returns them rendered.
func (c *Client) BetterCardsForCategory(ctx context.Context, category, criteria string) (string, error) {
	prompt := fmt.Sprintf(`
Context:
- Search Focus Category: '%s'
- Desired Card Criteria: '%s'
- Current Date for data freshness reference: %s

Task: Search the general credit card market for currently available cards that are strong matches for the specified '%s' based on the '%s'.

Instructions:

1. Understand Requirements: Analyze the category and the desired criteria (e.g., highest rate, no fee, specific perks).

2. Market Search: Use grounded search to identify several (aiming for about 3-5, if available) generally available credit cards that excel in the category according to the criteria. Prioritize cards with clear and strong alignment currently offered to new applicants.

3. Gather Key Details: For each identified card, retrieve the following details accurately:
   - Name (Card's official name)
   - Annual Fee (Use 0.0 if none)
   - Rewards Summary (Provide a concise summary focusing on how its rewards/benefits apply to the category and meet the criteria. Mention specific rates or point multipliers for the category if possible.)
`, category, criteria, time.Now().Format(dateLayout), category, criteria)

	var cards []domain.BasicCreditCardDetails
	schema := &genai.Schema{Type: genai.TypeArray, Items: cardSchema()}
	if err := c.groundedStructured(ctx, prompt, schema, &cards); err != nil {
		return "", err
	}

	lines := make([]string, len(cards))
	for i, card := range cards {
		lines[i] = card.String()
	}
	return strings.Join(lines, "\n"), nil
}

// OptimizeFinancialPlan generates a plan toward a stated goal from the user's
// full financial summary.
func (c *Client) OptimizeFinancialPlan(ctx context.Context, userDetails, financialSummary, criteria string) (domain.FinancialPlan, error) {
	prompt := fmt.Sprintf(`
Context:
- User Details:
%s
- User's Comprehensive Financial Summary:
%s
- User's Stated Financial Goal/Optimization Criteria: %s

Task: Develop a personalized and actionable financial plan to help the user achieve their stated goal or optimize based on their criteria, using their provided financial summary. The plan MUST be realistic given their situation.

Instructions:

1. Analyze Financial Situation: Thoroughly review the user's entire financial summary provided in the context, including income sources (payrolls), spending patterns (inferred from checking/credit card summaries), assets (investments, savings, retirement accounts), liabilities (loans, credit card debt), and savings/contribution rates. Consider user details like age, location, and tax status if available.

2. Evaluate Goal vs. Situation: Assess the user's goal in light of their current financial situation. Determine if the goal seems realistic within any implied timeframe. If the goal appears overly ambitious, acknowledge this respectfully in the plan summary and propose either a more achievable version of the goal OR break the original goal down into concrete, sequential phases with realistic milestones.

3. Formulate Strategy (plan_summary): Create a concise summary (typically 1-3 sentences) of the overall recommended financial strategy.

4. Develop Actionable Steps (instructions): Create specific, actionable steps the user can take, derived primarily from their financial summary. Format these steps into a single, well-structured string using clear Markdown formatting (headings and numbered or bulleted lists). Use grounded search ONLY if external general financial information (e.g., current retirement contribution limits, standard financial benchmarks) is necessary to make the plan realistic or informative. Do NOT give specific investment advice (e.g., "buy stock X").
`, userDetails, financialSummary, criteria)

	return c.financialPlan(ctx, prompt)
}

// EarnTargetPlan generates a plan for gaining a target amount within a number
// of months, including a feasibility assessment.
func (c *Client) EarnTargetPlan(ctx context.Context, financialSummary string, amount float64, months int, criteria string) (domain.FinancialPlan, error) {
	monthlyGain := amount
	if months > 0 {
		monthlyGain = amount / float64(months)
	}

	prompt := fmt.Sprintf(
		"User's Financial Summary Context:\n%s\n\n"+
			"Additional context regarding how to structure the financial plan, given by the user: %s\n\n"+
			"User's Goal: To make an additional $%.2f within %d months.\n\n"+
			"Required average monthly gain: $%.2f per month.\n\n"+
			"Task: Generate a detailed, actionable, and personalized financial plan to help the user achieve this monetary gain goal. Use grounded web search where necessary for market context or specific opportunities (e.g., investment ideas, side hustle platforms), but tailor suggestions primarily to the user's provided summary.\n\n"+
			"Instructions for Plan Generation:\n"+
			"1. Analyze the User's Summary: Thoroughly review their income, expenses, assets, and debts. Identify potential resources and constraints.\n"+
			"2. Propose Specific Strategies: Based on the analysis, suggest concrete actions focused on MAKING money: increasing income (raises, part-time work, freelance, side hustles), investment strategies if the user has capital (CLEARLY STATE THE RISKS; avoid specific ticker recommendations), and capital optimization to free up money for income-generating activities.\n"+
			"3. Assess Feasibility & Manage Expectations: Critically evaluate whether making $%.2f in %d months ($%.2f per month) is realistic given their financial picture. State your assessment clearly in the plan summary. If the goal seems highly ambitious, say so explicitly and either propose a more achievable target/timeframe or focus on the most impactful first steps.\n"+
			"4. Develop Actionable Steps: Combine every step into a single string value for the instructions field. Use grounded search ONLY if external general financial information is necessary for context or realism. Do NOT give specific investment advice.\n",
		financialSummary, criteria, amount, months, monthlyGain, amount, months, monthlyGain,
	)

	return c.financialPlan(ctx, prompt)
}

// SaveTargetPlan generates a savings plan for reaching a target amount within
// a number of months.
func (c *Client) SaveTargetPlan(ctx context.Context, financialSummary string, amount float64, months int, criteria string) (domain.FinancialPlan, error) {
	prompt := fmt.Sprintf(`
You are a financial planning assistant. The user wants to save $%.2f in %d months.

Use the following financial summary to assess their situation:
%s

Additional context regarding how to structure the financial plan, given by the user: %s

Your job is to create a personalized savings plan that is realistic and actionable based on the user's income, spending habits, and current financial obligations. Assess whether the savings target is feasible in the given timeframe; if it is not, say so in the plan summary and propose an achievable alternative. The instructions field must hold every step as one well-structured string, covering budgeting adjustments, expense reductions, automation of savings, and where to keep the saved money. Use grounded search ONLY for general financial reference data. Do NOT give specific investment advice.
`, amount, months, financialSummary, criteria)

	return c.financialPlan(ctx, prompt)
}

func (c *Client) financialPlan(ctx context.Context, prompt string) (domain.FinancialPlan, error) {
	var plan domain.FinancialPlan
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"plan_summary": {Type: genai.TypeString},
			"instructions": {Type: genai.TypeString},
		},
		Required: []string{"plan_summary", "instructions"},
	}
	if err := c.groundedStructured(ctx, prompt, schema, &plan); err != nil {
		return domain.FinancialPlan{}, err
	}
	return plan, nil
}

func cardSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":            {Type: genai.TypeString},
			"annual_fee":      {Type: genai.TypeNumber},
			"rewards_summary": {Type: genai.TypeString},
		},
		Required: []string{"name", "rewards_summary"},
	}
}

func optimalSpendingSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"better_credit_cards":   {Type: genai.TypeArray, Items: cardSchema()},
			"plan_for_optimization": {Type: genai.TypeString},
		},
		Required: []string{"plan_for_optimization"},
	}
}

func renderCards(cards []domain.BasicCreditCardDetails) string {
	var b strings.Builder
	for _, card := range cards {
		fmt.Fprintf(&b, "- %s \n", card)
	}
	return b.String()
}

func renderSpending(spending map[string]float64) string {
	var b strings.Builder
	for _, category := range sortedCategories(spending) {
		fmt.Fprintf(&b, "$%g is being spent on %s\n", spending[category], category)
	}
	return b.String()
}

func sortedCategories(spending map[string]float64) []string {
	categories := make([]string, 0, len(spending))
	for category := range spending {
		categories = append(categories, category)
	}
	// Stable prompt text for identical inputs.
	sort.Strings(categories)
	return categories
}
