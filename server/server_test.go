package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/engine"
)

type fakeEngine struct {
	reply     string
	err       error
	lastInput string
	toolNames []string
	history   []anthropic.MessageParam
}

func (f *fakeEngine) Run(ctx context.Context, registry *engine.ToolRegistry, history []anthropic.MessageParam, userMessage string) (string, []anthropic.MessageParam, error) {
	f.lastInput = userMessage
	f.toolNames = registry.List()
	f.history = history
	if f.err != nil {
		return "", history, f.err
	}
	return f.reply, history, nil
}

type stubAdvisor struct{}

func (stubAdvisor) ResolveTickers(ctx context.Context, tickers []string) ([]domain.TickerSnapshot, error) {
	return nil, nil
}
func (stubAdvisor) Grounded(ctx context.Context, query string) (string, error) { return "", nil }
func (stubAdvisor) BetterTickers(ctx context.Context, prevTickers []string, criteria string) (string, error) {
	return "", nil
}
func (stubAdvisor) OptimizeCategorySpending(ctx context.Context, openToNewCards bool, category string, currentCards []domain.BasicCreditCardDetails, spendingByCategory map[string]float64) (domain.OptimalCreditCardSpending, error) {
	return domain.OptimalCreditCardSpending{}, nil
}
func (stubAdvisor) OptimizeAllCategorySpending(ctx context.Context, openToNewCards bool, currentCards []domain.BasicCreditCardDetails, spendingByCategory map[string]float64) (domain.OptimalCreditCardSpending, error) {
	return domain.OptimalCreditCardSpending{}, nil
}
func (stubAdvisor) BetterCardsForCategory(ctx context.Context, category, criteria string) (string, error) {
	return "", nil
}
func (stubAdvisor) OptimizeFinancialPlan(ctx context.Context, userDetails, financialSummary, criteria string) (domain.FinancialPlan, error) {
	return domain.FinancialPlan{}, nil
}
func (stubAdvisor) EarnTargetPlan(ctx context.Context, financialSummary string, amount float64, months int, criteria string) (domain.FinancialPlan, error) {
	return domain.FinancialPlan{}, nil
}
func (stubAdvisor) SaveTargetPlan(ctx context.Context, financialSummary string, amount float64, months int, criteria string) (domain.FinancialPlan, error) {
	return domain.FinancialPlan{}, nil
}

func newTestServer(t *testing.T, eng ChatEngine) *Server {
	t.Helper()
	srv, err := New(Config{Advisor: stubAdvisor{}, Engine: eng})
	require.NoError(t, err)
	t.Cleanup(srv.Close)
	return srv
}

func chatBody(t *testing.T, accounts []map[string]any, messages []ChatMessage) []byte {
	t.Helper()
	raw := make([]json.RawMessage, 0, len(accounts))
	for _, acct := range accounts {
		data, err := json.Marshal(acct)
		require.NoError(t, err)
		raw = append(raw, data)
	}
	body, err := json.Marshal(map[string]any{
		"user_details": map[string]any{"name": "Jordan", "age": 34},
		"accounts":     raw,
		"chatMessages": messages,
	})
	require.NoError(t, err)
	return body
}

func postChat(t *testing.T, srv *Server, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestChatSuccess(t *testing.T) {
	eng := &fakeEngine{reply: "You hold two investment accounts."}
	srv := newTestServer(t, eng)

	body := chatBody(t,
		[]map[string]any{
			{"type": "Investment", "id": "inv-1", "name": "Brokerage", "uninvested_amount": 100.0},
		},
		[]ChatMessage{
			{Sender: "bot", Text: engine.WelcomeMessage},
			{Sender: "user", Text: "What do I own?"},
		},
	)
	rec := postChat(t, srv, body)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "You hold two investment accounts.", resp.Response)
	assert.Equal(t, "What do I own?", eng.lastInput)
	assert.Contains(t, eng.toolNames, "get_user_financial_summary")
	assert.Contains(t, eng.toolNames, "summary_of_investment_accounts")
}

func TestChatMalformedJSON(t *testing.T) {
	srv := newTestServer(t, &fakeEngine{})

	rec := postChat(t, srv, []byte("{not json"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestChatUnknownAccountTag(t *testing.T) {
	srv := newTestServer(t, &fakeEngine{})

	body := chatBody(t,
		[]map[string]any{
			{"type": "Crypto Wallet", "id": "x-1"},
		},
		[]ChatMessage{{Sender: "user", Text: "hi"}},
	)
	rec := postChat(t, srv, body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "Crypto Wallet")
}

func TestChatEmptyTranscript(t *testing.T) {
	srv := newTestServer(t, &fakeEngine{})

	body := chatBody(t, nil, nil)
	rec := postChat(t, srv, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatEngineFailureMapsTo500(t *testing.T) {
	srv := newTestServer(t, &fakeEngine{err: engine.ErrNoFinalMessage})

	body := chatBody(t, nil, []ChatMessage{{Sender: "user", Text: "hi"}})
	rec := postChat(t, srv, body)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "no final message")
}

func TestChatCORSPreflight(t *testing.T) {
	srv := newTestServer(t, &fakeEngine{})

	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestChatHistoryDropsLeadingBotTurn(t *testing.T) {
	eng := &fakeEngine{reply: "ok"}
	srv := newTestServer(t, eng)

	body := chatBody(t, nil, []ChatMessage{
		{Sender: "bot", Text: engine.WelcomeMessage},
		{Sender: "user", Text: "hello"},
		{Sender: "bot", Text: "hi there"},
		{Sender: "user", Text: "what next"},
	})
	rec := postChat(t, srv, body)

	require.Equal(t, http.StatusOK, rec.Code)
	// Welcome turn dropped, user/bot pair kept.
	assert.Len(t, eng.history, 2)
	assert.Equal(t, "what next", eng.lastInput)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	srv := newTestServer(t, &fakeEngine{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down after cancellation")
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &fakeEngine{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
