package aggregate

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/store"
)

func TestFinancialSummaryPlaceholdersForEmptyFamilies(t *testing.T) {
	resolver := &fakeResolver{}
	user := domain.UserDetails{Name: "Jordan Lee", Age: 34, State: "WA", Country: "USA"}

	summary, err := FinancialSummary(context.Background(), resolver, user, &store.Snapshot{})
	require.NoError(t, err)

	assert.Equal(t, "NO INVESTMENT ACCOUNTS", summary.InvestmentSummary)
	assert.Equal(t, "NO CREDIT CARDS", summary.CreditCardSummary)
	assert.Equal(t, "NO CHECKING ACCOUNTS", summary.CheckingSummary)
	assert.Equal(t, "NO SAVING ACCOUNTS", summary.SavingSummary)
	assert.Equal(t, "NO LOANS", summary.LoansSummary)
	assert.Equal(t, "NO PAYROLLS", summary.PayrollsSummary)
	assert.Equal(t, "NO TRADITIONAL IRAS", summary.TraditionalIRASummary)
	assert.Equal(t, "NO ROTH IRAS", summary.RothIRASummary)
	assert.Equal(t, "NO RETIREMENT 401K", summary.Retirement401kSummary)
	assert.Equal(t, "NO ROTH 401K", summary.Roth401kSummary)
	assert.Equal(t, "NO HSA ACCOUNTS", summary.HSASummary)
	assert.Equal(t, "NO OTHER ACCOUNTS", summary.OtherAccountsSummary)

	// Empty snapshot never reaches for market data.
	assert.Empty(t, resolver.requested)

	// Name is anonymized in the rendered details.
	assert.NotContains(t, summary.UserDetails, "Jordan Lee")
	assert.Contains(t, summary.UserDetails, domain.AnonymizedName)
}

func TestFinancialSummaryPopulatedFamilies(t *testing.T) {
	raw := []json.RawMessage{
		json.RawMessage(`{"id":"cc1","name":"Blue","type":"Credit Card","total_limit":1000,"current_limit":800,"rewards_summary":"2% back","interest":22,"outstanding_debt":200,"current_billing_cycle_transactions":[],"annual_fee":0}`),
		json.RawMessage(`{"id":"o1","name":"Side gig","type":"Other","total_income":900,"total_debt":100}`),
	}
	snap, err := store.NewSnapshot(raw)
	require.NoError(t, err)

	summary, err := FinancialSummary(context.Background(), &fakeResolver{}, domain.UserDetails{Name: "A"}, snap)
	require.NoError(t, err)

	assert.Contains(t, summary.CreditCardSummary, "Outstanding Debt is: $200.00")
	assert.Contains(t, summary.OtherAccountsSummary, "$900.00")
	assert.Equal(t, "NO LOANS", summary.LoansSummary)

	// The composed record renders every family in order.
	rendered := summary.String()
	assert.Contains(t, rendered, "Here is the credit card details")
	assert.Contains(t, rendered, "NO HSA ACCOUNTS")
}
