package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/store"
)

// MarketAdvisor is the market-data and advisory surface the tools call into.
// Implemented by market.Client; tests substitute fakes.
type MarketAdvisor interface {
	ResolveTickers(ctx context.Context, tickers []string) ([]domain.TickerSnapshot, error)
	Grounded(ctx context.Context, query string) (string, error)
	BetterTickers(ctx context.Context, prevTickers []string, criteria string) (string, error)
	OptimizeCategorySpending(ctx context.Context, openToNewCards bool, category string, currentCards []domain.BasicCreditCardDetails, spendingByCategory map[string]float64) (domain.OptimalCreditCardSpending, error)
	OptimizeAllCategorySpending(ctx context.Context, openToNewCards bool, currentCards []domain.BasicCreditCardDetails, spendingByCategory map[string]float64) (domain.OptimalCreditCardSpending, error)
	BetterCardsForCategory(ctx context.Context, category, criteria string) (string, error)
	OptimizeFinancialPlan(ctx context.Context, userDetails, financialSummary, criteria string) (domain.FinancialPlan, error)
	EarnTargetPlan(ctx context.Context, financialSummary string, amount float64, months int, criteria string) (domain.FinancialPlan, error)
	SaveTargetPlan(ctx context.Context, financialSummary string, amount float64, months int, criteria string) (domain.FinancialPlan, error)
}

// Finance binds the whole tool surface to one request's data. A new Finance
// is built per request, around that request's snapshot, so handlers never
// share mutable state across requests.
type Finance struct {
	snap    *store.Snapshot
	user    domain.UserDetails
	advisor MarketAdvisor
}

// NewFinance builds the per-request tool set factory.
func NewFinance(snap *store.Snapshot, user domain.UserDetails, advisor MarketAdvisor) *Finance {
	return &Finance{snap: snap, user: user, advisor: advisor}
}

// All returns every tool the assistant can call for this request.
func (f *Finance) All() []*Tool {
	var all []*Tool
	all = append(all, f.advisoryTools()...)
	all = append(all, f.assetFamilyTools()...)
	all = append(all, f.creditCardTools()...)
	all = append(all, f.bankAccountTools()...)
	all = append(all, f.loanTools()...)
	all = append(all, f.payrollTools()...)
	all = append(all, f.otherAccountTools()...)
	all = append(all, f.planningTools()...)
	return all
}

// decodeInput unmarshals a tool call's input. Empty input decodes to the zero
// value so no-argument tools tolerate both `{}` and nothing.
func decodeInput[T any](input json.RawMessage) (T, error) {
	var v T
	if len(input) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(input, &v); err != nil {
		return v, fmt.Errorf("invalid tool input: %w", err)
	}
	return v, nil
}

// renderRefs serializes id/name pairs as JSON for the model.
func renderRefs(refs []domain.AccountRef) (string, error) {
	data, err := json.Marshal(refs)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
