package engine

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/rs/zerolog"
)

// SystemPrompt is the standing instruction for every conversation turn.
const SystemPrompt = "You are finance bot and you will help users make better financial decisions"

// WelcomeMessage greets a fresh session before any user input.
const WelcomeMessage = "Welcome to your personal financial advisor. Type `q` to quit. How can I help you today?"

// GoodbyeMessage closes a session when the user sends an exit keyword.
const GoodbyeMessage = "Thanks for stopping by. Goodbye!"

const (
	defaultModel     = anthropic.Model("claude-sonnet-4-20250514")
	defaultMaxTokens = 4096
	defaultMaxTurns  = 20
)

// ErrNoFinalMessage is returned when the model keeps requesting tools past
// the turn budget without ever producing a final text reply.
var ErrNoFinalMessage = errors.New("engine: model produced no final message")

var exitKeywords = map[string]struct{}{
	"q":       {},
	"quit":    {},
	"exit":    {},
	"goodbye": {},
}

// ExitRequested reports whether a user message is an exit keyword.
func ExitRequested(message string) bool {
	_, ok := exitKeywords[strings.ToLower(strings.TrimSpace(message))]
	return ok
}

// Engine drives the model/tool loop for one conversation turn.
type Engine struct {
	client    *anthropic.Client
	model     anthropic.Model
	maxTokens int64
	maxTurns  int
	logger    zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithModel overrides the default model.
func WithModel(model anthropic.Model) Option {
	return func(e *Engine) { e.model = model }
}

// WithMaxTokens overrides the per-call token budget.
func WithMaxTokens(maxTokens int64) Option {
	return func(e *Engine) { e.maxTokens = maxTokens }
}

// WithMaxTurns bounds the number of model calls per user message.
func WithMaxTurns(maxTurns int) Option {
	return func(e *Engine) { e.maxTurns = maxTurns }
}

// WithLogger attaches a logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine creates an engine around an Anthropic client.
func NewEngine(client *anthropic.Client, opts ...Option) *Engine {
	e := &Engine{
		client:    client,
		model:     defaultModel,
		maxTokens: defaultMaxTokens,
		maxTurns:  defaultMaxTurns,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run appends the user message to the history and loops the model until it
// produces a final text reply, executing every requested tool along the way.
// It returns the reply and the updated history. Exit keywords short-circuit
// without a model call.
func (e *Engine) Run(ctx context.Context, registry *ToolRegistry, history []anthropic.MessageParam, userMessage string) (string, []anthropic.MessageParam, error) {
	if ExitRequested(userMessage) {
		history = append(history,
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMessage)),
			anthropic.NewAssistantMessage(anthropic.NewTextBlock(GoodbyeMessage)),
		)
		return GoodbyeMessage, history, nil
	}

	messages := append(history, anthropic.NewUserMessage(anthropic.NewTextBlock(userMessage)))
	apiTools := registry.ToAPITools()

	for turn := 0; turn < e.maxTurns; turn++ {
		message, err := e.client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     e.model,
			MaxTokens: e.maxTokens,
			System:    []anthropic.TextBlockParam{{Text: SystemPrompt}},
			Messages:  messages,
			Tools:     apiTools,
		})
		if err != nil {
			return "", history, err
		}

		messages = append(messages, message.ToParam())

		var replyText strings.Builder
		var toolUses []anthropic.ToolUseBlock
		for _, block := range message.Content {
			switch block := block.AsAny().(type) {
			case anthropic.TextBlock:
				replyText.WriteString(block.Text)
			case anthropic.ToolUseBlock:
				toolUses = append(toolUses, block)
			}
		}

		if len(toolUses) == 0 {
			return replyText.String(), messages, nil
		}

		var results []anthropic.ContentBlockParamUnion
		for _, use := range toolUses {
			results = append(results, e.executeTool(ctx, registry, use))
		}
		messages = append(messages, anthropic.NewUserMessage(results...))
	}

	return "", history, ErrNoFinalMessage
}

func (e *Engine) executeTool(ctx context.Context, registry *ToolRegistry, use anthropic.ToolUseBlock) anthropic.ContentBlockParamUnion {
	tool, ok := registry.Get(use.Name)
	if !ok {
		e.logger.Warn().Str("tool", use.Name).Msg("model requested unknown tool")
		return anthropic.NewToolResultBlock(use.ID, "unknown tool: "+use.Name, true)
	}

	result, err := tool.Execute(ctx, use.Input)
	if err != nil {
		e.logger.Error().Err(err).Str("tool", use.Name).Msg("tool execution failed")
		return anthropic.NewToolResultBlock(use.ID, err.Error(), true)
	}
	e.logger.Debug().Str("tool", use.Name).Msg("tool executed")
	return anthropic.NewToolResultBlock(use.ID, result, false)
}
