package store

import (
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"
)

// Conversation is one WebSocket session's chat history. The stateless /chat
// endpoint carries history in the request body; WebSocket sessions keep it
// server-side here instead.
type Conversation struct {
	ID        string
	Messages  []anthropic.MessageParam
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Conversations is a TTL-bounded in-memory conversation store. Idle sessions
// age out instead of growing the process without bound.
type Conversations struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewConversations builds a store whose entries expire ttl after their last
// update.
func NewConversations(ttl time.Duration) (*Conversations, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1e7,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create conversation cache: %w", err)
	}
	return &Conversations{cache: cache, ttl: ttl}, nil
}

// Create starts a new empty conversation and returns it.
func (c *Conversations) Create() *Conversation {
	now := time.Now()
	conv := &Conversation{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.cache.SetWithTTL(conv.ID, conv, 1, c.ttl)
	c.cache.Wait()
	return conv
}

// Get returns the conversation with the given id, or false if it expired or
// never existed.
func (c *Conversations) Get(id string) (*Conversation, bool) {
	v, ok := c.cache.Get(id)
	if !ok {
		return nil, false
	}
	conv, ok := v.(*Conversation)
	return conv, ok
}

// Append replaces the conversation's history and refreshes its TTL.
func (c *Conversations) Append(id string, messages []anthropic.MessageParam) {
	conv, ok := c.Get(id)
	if !ok {
		return
	}
	conv.Messages = messages
	conv.UpdatedAt = time.Now()
	c.cache.SetWithTTL(id, conv, int64(len(messages))+1, c.ttl)
	c.cache.Wait()
}

// Delete drops a conversation immediately.
func (c *Conversations) Delete(id string) {
	c.cache.Del(id)
}

// Close releases the underlying cache.
func (c *Conversations) Close() {
	c.cache.Close()
}
