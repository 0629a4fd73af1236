package server

import (
	"encoding/json"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
)

// ChatMessage is one turn of the client-side transcript.
type ChatMessage struct {
	Sender string `json:"sender"` // "user" or "bot"
	Text   string `json:"text"`
}

// ChatRequest is the POST /chat body. The client sends the full account
// snapshot and transcript with every request; the server holds no state
// between calls.
type ChatRequest struct {
	UserDetails  domain.UserDetails `json:"user_details"`
	Accounts     []json.RawMessage  `json:"accounts"`
	ChatMessages []ChatMessage      `json:"chatMessages"`
}

// ChatResponse is the successful POST /chat body.
type ChatResponse struct {
	Response string `json:"response"`
}

// ErrorResponse is the body of any non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ClientMessage is one inbound WebSocket frame.
type ClientMessage struct {
	Type           string             `json:"type"`
	ConversationID string             `json:"conversation_id,omitempty"`
	Content        string             `json:"content,omitempty"`
	UserDetails    domain.UserDetails `json:"user_details,omitempty"`
	Accounts       []json.RawMessage  `json:"accounts,omitempty"`
}

// ServerMessage is one outbound WebSocket frame.
type ServerMessage struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversation_id,omitempty"`
	Content        string `json:"content,omitempty"`
}
