package market

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
)

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(genai.APIError{Code: 429}))
	assert.True(t, isRetryable(genai.APIError{Code: 503}))
	assert.False(t, isRetryable(genai.APIError{Code: 400}))
	assert.False(t, isRetryable(genai.APIError{Code: 500}))
	assert.False(t, isRetryable(fmt.Errorf("plain failure")))

	// Wrapped API errors still classify.
	assert.True(t, isRetryable(fmt.Errorf("call failed: %w", genai.APIError{Code: 429})))
}

func TestTickerSchemaCoversAllFields(t *testing.T) {
	schema := tickerSchema()
	for _, field := range []string{
		"ticker", "company_name", "current_price",
		"daily_price_change", "weekly_price_change", "monthly_price_change", "ytd_price_change",
		"MA50", "MA100", "high_52_week", "low_52_week", "volume",
		"summary_of_latest_market_news",
	} {
		assert.Contains(t, schema.Properties, field)
	}
	assert.Equal(t, genai.TypeInteger, schema.Properties["volume"].Type)
}

func TestRenderSpendingIsSortedAndSigned(t *testing.T) {
	out := renderSpending(map[string]float64{
		"travel":    -300,
		"groceries": -120.5,
	})
	assert.Equal(t, "$-120.5 is being spent on groceries\n$-300 is being spent on travel\n", out)
}

func TestRenderCards(t *testing.T) {
	out := renderCards([]domain.BasicCreditCardDetails{
		{Name: "Blue", AnnualFee: 95, RewardsSummary: "2% groceries"},
	})
	assert.Contains(t, out, "Blue credit card - Annual Fee: 95, Rewards: 2% groceries")
}
