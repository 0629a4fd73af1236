package store

import (
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationLifecycle(t *testing.T) {
	convs, err := NewConversations(time.Hour)
	require.NoError(t, err)
	defer convs.Close()

	conv := convs.Create()
	require.NotEmpty(t, conv.ID)

	got, ok := convs.Get(conv.ID)
	require.True(t, ok)
	assert.Empty(t, got.Messages)

	history := []anthropic.MessageParam{
		anthropic.NewUserMessage(anthropic.NewTextBlock("how much do I owe?")),
		anthropic.NewAssistantMessage(anthropic.NewTextBlock("Your total outstanding debt is $2,500.")),
	}
	convs.Append(conv.ID, history)

	got, ok = convs.Get(conv.ID)
	require.True(t, ok)
	assert.Len(t, got.Messages, 2)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))

	convs.Delete(conv.ID)
	_, ok = convs.Get(conv.ID)
	assert.False(t, ok)
}

func TestConversationsDistinctIDs(t *testing.T) {
	convs, err := NewConversations(time.Hour)
	require.NoError(t, err)
	defer convs.Close()

	a := convs.Create()
	b := convs.Create()
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAppendUnknownConversationIsNoop(t *testing.T) {
	convs, err := NewConversations(time.Hour)
	require.NoError(t, err)
	defer convs.Close()

	convs.Append("missing", []anthropic.MessageParam{
		anthropic.NewUserMessage(anthropic.NewTextBlock("hello")),
	})
	_, ok := convs.Get("missing")
	assert.False(t, ok)
}
