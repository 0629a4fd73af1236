package tools

import (
	"context"
	"encoding/json"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/aggregate"
	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
)

func (f *Finance) creditCardTools() []*Tool {
	return []*Tool{
		New("summary_of_credit_cards").
			Description(
				"Provides a consolidated summary of all of the user's credit cards: total credit limit, available credit, " +
					"total outstanding debt, the APR range across cards, spending grouped by category for the current billing " +
					"cycle, the average interest rate weighted by each card's outstanding debt, a per-card rewards overview " +
					"and total annual fees. Invoke for questions about overall card debt, utilization or spending patterns.").
			HandlerFunc(func(_ context.Context, _ json.RawMessage) (string, error) {
				return aggregate.SummarizeCreditCards(f.snap.CreditCards).String(), nil
			}).
			Build(),

		New("get_all_credit_cards").
			Description(
				"Fetches a list of all of the user's credit cards, showing their IDs and names. " +
					"Useful when the user needs to identify or select a specific card before requesting its details.").
			HandlerFunc(func(_ context.Context, _ json.RawMessage) (string, error) {
				return renderRefs(f.snap.CreditCardRefs())
			}).
			Build(),

		New("get_credit_card").
			Description(
				"Retrieves the full details of a single credit card identified by its ID: limits, interest rate, " +
					"outstanding debt, rewards, annual fee and the current billing cycle's transactions. " +
					"Returns an error if no card with the given ID exists.").
			Schema(ObjectSchema(map[string]any{
				"card_id": StringProperty("The unique identifier of the credit card to retrieve."),
			}, "card_id")).
			HandlerFunc(func(_ context.Context, input json.RawMessage) (string, error) {
				args, err := decodeInput[struct {
					CardID string `json:"card_id"`
				}](input)
				if err != nil {
					return "", err
				}
				card, err := f.snap.CreditCardByID(args.CardID)
				if err != nil {
					return "", err
				}
				return card.String(), nil
			}).
			Build(),

		New("optimize_spending_in_a_category").
			Description(
				"Analyzes the user's spending in a specific category and suggests optimal credit card usage for it, " +
					"using grounded web search. Reviews the user's current cards and category spending; if the user is open " +
					"to new cards, it may additionally recommend 1-2 market cards with superior rewards for the category, " +
					"otherwise the plan relies exclusively on existing cards. Invoke for questions like " +
					"\"How can I maximize rewards on groceries?\" or \"Which of my cards is best for travel?\"").
			Schema(ObjectSchema(map[string]any{
				"open_to_new_cards": BooleanProperty("True if the user is willing to apply for new credit cards, false to optimize with existing cards only."),
				"category":          StringProperty("The spending category to optimize, e.g. \"Groceries\", \"Travel\", \"Gas\", \"Dining\"."),
			}, "open_to_new_cards", "category")).
			HandlerFunc(func(ctx context.Context, input json.RawMessage) (string, error) {
				args, err := decodeInput[struct {
					OpenToNewCards bool   `json:"open_to_new_cards"`
					Category       string `json:"category"`
				}](input)
				if err != nil {
					return "", err
				}
				summary := aggregate.SummarizeCreditCards(f.snap.CreditCards)
				plan, err := f.advisor.OptimizeCategorySpending(ctx, args.OpenToNewCards, args.Category,
					f.basicCardDetails(), summary.SpendingByCategory)
				if err != nil {
					return "", err
				}
				return plan.String(), nil
			}).
			Build(),

		New("optimize_spending_with_cc_all_categories").
			Description(
				"Analyzes the user's overall credit card spending across all categories and suggests a holistic usage " +
					"strategy, using grounded web search. Details which existing card to use for each top spending category; " +
					"if the user is open to new cards, it may additionally recommend market cards that significantly improve " +
					"rewards. Invoke for requests like \"Analyze my card spending and optimize my rewards overall.\"").
			Schema(ObjectSchema(map[string]any{
				"open_to_new_cards": BooleanProperty("True if the user is willing to apply for new credit cards, false to optimize with existing cards only."),
			}, "open_to_new_cards")).
			HandlerFunc(func(ctx context.Context, input json.RawMessage) (string, error) {
				args, err := decodeInput[struct {
					OpenToNewCards bool `json:"open_to_new_cards"`
				}](input)
				if err != nil {
					return "", err
				}
				summary := aggregate.SummarizeCreditCards(f.snap.CreditCards)
				plan, err := f.advisor.OptimizeAllCategorySpending(ctx, args.OpenToNewCards,
					f.basicCardDetails(), summary.SpendingByCategory)
				if err != nil {
					return "", err
				}
				return plan.String(), nil
			}).
			Build(),

		New("get_better_cards_for_category").
			Description(
				"Retrieves credit cards available in the market that are well-suited for a specific spending category " +
					"under the given criteria, using grounded web search. The cards need not be held by the user. " +
					"Invoke for requests like \"List the top cash back cards for groceries with no annual fee.\"").
			Schema(ObjectSchema(map[string]any{
				"category": StringProperty("The spending category of interest, e.g. \"Travel\", \"Online Shopping\", \"Restaurants\"."),
				"criteria": StringProperty("The features the user wants in a card for this category, e.g. \"highest cash back rate\", \"no annual fee\"."),
			}, "category", "criteria")).
			HandlerFunc(func(ctx context.Context, input json.RawMessage) (string, error) {
				args, err := decodeInput[struct {
					Category string `json:"category"`
					Criteria string `json:"criteria"`
				}](input)
				if err != nil {
					return "", err
				}
				return f.advisor.BetterCardsForCategory(ctx, args.Category, args.Criteria)
			}).
			Build(),
	}
}

func (f *Finance) basicCardDetails() []domain.BasicCreditCardDetails {
	cards := make([]domain.BasicCreditCardDetails, len(f.snap.CreditCards))
	for i, card := range f.snap.CreditCards {
		cards[i] = domain.BasicCreditCardDetails{
			Name:           card.Name,
			AnnualFee:      card.AnnualFee,
			RewardsSummary: card.RewardsSummary,
		}
	}
	return cards
}
