package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitRequested(t *testing.T) {
	for _, msg := range []string{"q", "quit", "exit", "goodbye", " Q ", "QUIT", "Goodbye"} {
		assert.True(t, ExitRequested(msg), "expected %q to request exit", msg)
	}
	for _, msg := range []string{"", "hello", "quit please", "say goodbye to my debt"} {
		assert.False(t, ExitRequested(msg), "expected %q to not request exit", msg)
	}
}

func TestRunExitShortCircuitsWithoutModelCall(t *testing.T) {
	// A nil client would panic on any model call; the exit path must never
	// reach one.
	eng := NewEngine(nil)
	registry := NewToolRegistry()

	reply, history, err := eng.Run(context.Background(), registry, nil, "quit")
	require.NoError(t, err)
	assert.Equal(t, GoodbyeMessage, reply)
	require.Len(t, history, 2)
}

func TestNewEngineOptions(t *testing.T) {
	eng := NewEngine(nil, WithModel("claude-test"), WithMaxTokens(128), WithMaxTurns(3))
	assert.Equal(t, "claude-test", string(eng.model))
	assert.Equal(t, int64(128), eng.maxTokens)
	assert.Equal(t, 3, eng.maxTurns)
}
