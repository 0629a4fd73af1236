package domain

import (
	"fmt"
	"strings"
)

// FinancialPlan is the structured result of the plan-building advisory calls.
type FinancialPlan struct {
	PlanSummary  string `json:"plan_summary"`
	Instructions string `json:"instructions"`
}

func (p FinancialPlan) String() string {
	return fmt.Sprintf("Financial Plan Summary: %s - Step by Step Instructions: %s",
		p.PlanSummary, p.Instructions)
}

// BasicCreditCardDetails describes a candidate card surfaced by a
// market-grounded card search.
type BasicCreditCardDetails struct {
	Name           string  `json:"name"`
	AnnualFee      float64 `json:"annual_fee"`
	RewardsSummary string  `json:"rewards_summary"`
}

func (c BasicCreditCardDetails) String() string {
	return fmt.Sprintf("%s credit card - Annual Fee: %g, Rewards: %s",
		c.Name, c.AnnualFee, c.RewardsSummary)
}

// OptimalCreditCardSpending pairs candidate cards with a spending plan that
// plays the cards' reward categories against the user's observed spending.
type OptimalCreditCardSpending struct {
	BetterCreditCards   []BasicCreditCardDetails `json:"better_credit_cards"`
	PlanForOptimization string                   `json:"plan_for_optimization"`
}

func (o OptimalCreditCardSpending) String() string {
	cards := make([]string, 0, len(o.BetterCreditCards))
	for _, c := range o.BetterCreditCards {
		cards = append(cards, c.String())
	}
	return fmt.Sprintf("Better credit cards: %s. Plan for optimization: %s",
		strings.Join(cards, "; "), o.PlanForOptimization)
}
