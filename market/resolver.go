// Package market resolves live market data and advisory analyses through
// Gemini with Google Search grounding. Every structured lookup is two model
// calls: a grounded call that answers in free text from live search results,
// then an extraction call that converts that text into the requested JSON
// shape. Search grounding and JSON response schemas cannot be combined in a
// single call, which is why the protocol is split.
package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
)

const (
	defaultModel   = "gemini-2.0-flash"
	defaultRetries = 3
	dateLayout     = "2006-01-02"
)

// Client talks to Gemini. Results are never cached: market data goes stale
// within a session, so every tool call pays for fresh grounding.
type Client struct {
	genai   *genai.Client
	model   string
	retries int
	logger  zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithModel overrides the default Gemini model.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithLogger attaches a logger for per-call diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient builds a market client from an API key.
func NewClient(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("market: API key is required")
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("market: create genai client: %w", err)
	}
	c := &Client{
		genai:   gc,
		model:   defaultModel,
		retries: defaultRetries,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Grounded runs a single search-grounded call and returns the model's free
// text answer.
func (c *Client) Grounded(ctx context.Context, query string) (string, error) {
	result, err := c.generate(ctx, query, &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err != nil {
		return "", fmt.Errorf("market: grounded query: %w", err)
	}
	return result.Text(), nil
}

// groundedStructured runs the two-call protocol: grounded answer first, then
// schema-constrained extraction of that answer into out.
func (c *Client) groundedStructured(ctx context.Context, prompt string, schema *genai.Schema, out any) error {
	grounded, err := c.generate(ctx, prompt, &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err != nil {
		return fmt.Errorf("market: grounding call: %w", err)
	}

	extraction := grounded.Text() + "\nConvert the above into the respective JSON structure"
	structured, err := c.generate(ctx, extraction, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return fmt.Errorf("market: extraction call: %w", err)
	}

	if err := json.Unmarshal([]byte(structured.Text()), out); err != nil {
		return fmt.Errorf("market: decode structured response: %w", err)
	}
	return nil
}

// generate issues one model call with bounded retries on rate-limit and
// overload responses.
func (c *Client) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * 2 * time.Second
			c.logger.Warn().Err(lastErr).Int("attempt", attempt).Dur("backoff", backoff).
				Msg("retrying market model call")
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
		if err == nil {
			return result, nil
		}
		if !isRetryable(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("market: model call failed after %d retries: %w", c.retries, lastErr)
}

func isRetryable(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code == http.StatusServiceUnavailable
	}
	return false
}

// ResolveTickers fetches current market data for every ticker in the list.
// The grounding prompt asks for all fields per ticker; the extraction schema
// pins the JSON field names the rest of the system keys on.
func (c *Client) ResolveTickers(ctx context.Context, tickers []string) ([]domain.TickerSnapshot, error) {
	if len(tickers) == 0 {
		return nil, nil
	}

	prompt := fmt.Sprintf(`
Objective: Retrieve detailed, current financial information for each specified stock ticker using grounded web search.

Instructions:

1.  Identify Tickers: Process the following list of stock tickers:
    * Tickers: %s

2.  Gather Detailed Data: For *each* ticker in the list, use grounded web search via available tools to find accurate, up-to-date values for *all* the fields listed below. Use reputable financial sources (e.g., major financial news sites, stock market data providers). Do not omit any fields. If precise real-time data isn't available for a specific field (like moving averages which might update slightly delayed), provide the latest reliable value or estimate from your sources. Ensure price data is as current as possible (as of %s).

3.  Required Data Fields per Ticker:
%s`, strings.Join(tickers, ", "), time.Now().Format(dateLayout), tickerFieldList)

	var snapshots []domain.TickerSnapshot
	if err := c.groundedStructured(ctx, prompt, tickerListSchema(), &snapshots); err != nil {
		return nil, err
	}
	c.logger.Debug().Int("requested", len(tickers)).Int("resolved", len(snapshots)).
		Msg("resolved ticker market data")
	return snapshots, nil
}

const tickerFieldList = `    * Ticker Symbol (Map this to 'ticker' in the final JSON object)
    * Company Name (Map to 'company_name')
    * Current Price (Map to 'current_price', specify currency if not USD)
    * Daily Price Change (% - Map to 'daily_price_change')
    * Weekly Price Change (% - Map to 'weekly_price_change')
    * Monthly Price Change (% - Map to 'monthly_price_change')
    * Year-to-Date Price Change (% - Map to 'ytd_price_change')
    * 50-day Moving Average (MA50) (Map to 'MA50')
    * 100-day Moving Average (MA100) (Map to 'MA100')
    * 52 Week High (Map to 'high_52_week')
    * 52 Week Low (Map to 'low_52_week')
    * Volume (Shares traded today - Map to 'volume')
    * Summary of latest market news (1-2 relevant paragraphs - Map to 'summary_of_latest_market_news')`

func tickerListSchema() *genai.Schema {
	return &genai.Schema{
		Type:  genai.TypeArray,
		Items: tickerSchema(),
	}
}

func tickerSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"ticker":                        {Type: genai.TypeString},
			"company_name":                  {Type: genai.TypeString},
			"current_price":                 {Type: genai.TypeNumber},
			"daily_price_change":            {Type: genai.TypeNumber},
			"weekly_price_change":           {Type: genai.TypeNumber},
			"monthly_price_change":          {Type: genai.TypeNumber},
			"ytd_price_change":              {Type: genai.TypeNumber},
			"MA50":                          {Type: genai.TypeNumber},
			"MA100":                         {Type: genai.TypeNumber},
			"high_52_week":                  {Type: genai.TypeNumber},
			"low_52_week":                   {Type: genai.TypeNumber},
			"volume":                        {Type: genai.TypeInteger},
			"summary_of_latest_market_news": {Type: genai.TypeString},
		},
		Required: []string{"ticker", "company_name"},
	}
}
