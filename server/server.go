// Package server exposes the assistant over HTTP: a stateless POST /chat
// endpoint carrying the account snapshot and transcript in each request, and
// a WebSocket endpoint for clients that keep a server-side session.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/engine"
	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/store"
	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/tools"
)

// ChatEngine runs one conversation turn. Satisfied by *engine.Engine.
type ChatEngine interface {
	Run(ctx context.Context, registry *engine.ToolRegistry, history []anthropic.MessageParam, userMessage string) (string, []anthropic.MessageParam, error)
}

// Config configures the server.
type Config struct {
	// Advisor serves market data and advisory calls for every request.
	Advisor tools.MarketAdvisor

	// Engine runs conversation turns. Required.
	Engine ChatEngine

	// ConversationTTL bounds how long an idle WebSocket session's history
	// is kept. Defaults to 30 minutes.
	ConversationTTL time.Duration

	// Logger receives request logs. Defaults to a no-op logger.
	Logger zerolog.Logger
}

// Server handles chat requests.
type Server struct {
	advisor       tools.MarketAdvisor
	engine        ChatEngine
	conversations *store.Conversations
	upgrader      websocket.Upgrader
	logger        zerolog.Logger
	sessions      sync.Map // *websocket.Conn -> *session
}

type session struct {
	ConversationID string
	Registry       *engine.ToolRegistry
	History        []anthropic.MessageParam
}

// New creates a server.
func New(cfg Config) (*Server, error) {
	ttl := cfg.ConversationTTL
	if ttl == 0 {
		ttl = 30 * time.Minute
	}
	conversations, err := store.NewConversations(ttl)
	if err != nil {
		return nil, err
	}
	return &Server{
		advisor:       cfg.Advisor,
		engine:        cfg.Engine,
		conversations: conversations,
		logger:        cfg.Logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}, nil
}

// Handler returns the server's route mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/chat", s.handleChat)
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}

// Run serves on the given address until the context is cancelled, then shuts
// down cleanly, draining in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{Addr: addr, Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("finance assistant listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// Close releases the conversation store.
func (s *Server) Close() {
	s.conversations.Close()
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.ChatMessages) == 0 {
		s.writeError(w, http.StatusBadRequest, "chatMessages must not be empty")
		return
	}
	last := req.ChatMessages[len(req.ChatMessages)-1]
	if last.Sender != "user" {
		s.writeError(w, http.StatusBadRequest, "last chat message must come from the user")
		return
	}

	snap, err := store.NewSnapshot(req.Accounts)
	if err != nil {
		var unknown *store.UnknownAccountTypeError
		if errors.As(err, &unknown) {
			s.writeError(w, http.StatusBadRequest, unknown.Error())
			return
		}
		s.writeError(w, http.StatusBadRequest, "invalid accounts: "+err.Error())
		return
	}

	registry := engine.NewToolRegistry()
	registry.RegisterAll(tools.NewFinance(snap, req.UserDetails, s.advisor).All()...)

	history := transcriptHistory(req.ChatMessages[:len(req.ChatMessages)-1])
	reply, _, err := s.engine.Run(r.Context(), registry, history, last.Text)
	if err != nil {
		s.logger.Error().Err(err).Msg("chat turn failed")
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, ChatResponse{Response: reply})
}

// transcriptHistory converts the client transcript into model message params.
// The welcome message the client shows first is a bot turn; a conversation
// must open with a user turn, so leading bot messages are dropped.
func transcriptHistory(messages []ChatMessage) []anthropic.MessageParam {
	var history []anthropic.MessageParam
	for _, m := range messages {
		switch m.Sender {
		case "user":
			history = append(history, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Text)))
		case "bot":
			if len(history) == 0 {
				continue
			}
			history = append(history, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Text)))
		}
	}
	return history
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer func() {
		s.sessions.Delete(conn)
		conn.Close()
	}()

	var current *session

	for {
		_, msgBytes, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logger.Warn().Err(err).Msg("websocket read failed")
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(msgBytes, &msg); err != nil {
			s.sendError(conn, "invalid message format")
			continue
		}

		switch msg.Type {
		case "new_conversation":
			current = s.handleNewConversation(conn, msg)

		case "resume_conversation":
			current = s.handleResumeConversation(conn, msg)

		case "message":
			if current == nil {
				s.sendError(conn, "no active conversation, send new_conversation first")
				continue
			}
			s.handleSessionMessage(r.Context(), conn, current, msg.Content)

		default:
			s.sendError(conn, "unknown message type: "+msg.Type)
		}
	}
}

// sessionRegistry builds the per-session tool set from the snapshot the
// client sent when opening the conversation.
func (s *Server) sessionRegistry(user domain.UserDetails, accounts []json.RawMessage) (*engine.ToolRegistry, error) {
	snap, err := store.NewSnapshot(accounts)
	if err != nil {
		return nil, err
	}
	registry := engine.NewToolRegistry()
	registry.RegisterAll(tools.NewFinance(snap, user, s.advisor).All()...)
	return registry, nil
}

func (s *Server) handleNewConversation(conn *websocket.Conn, msg ClientMessage) *session {
	registry, err := s.sessionRegistry(msg.UserDetails, msg.Accounts)
	if err != nil {
		s.sendError(conn, err.Error())
		return nil
	}

	conv := s.conversations.Create()
	sess := &session{ConversationID: conv.ID, Registry: registry}
	s.sessions.Store(conn, sess)

	s.send(conn, ServerMessage{Type: "conversation_started", ConversationID: conv.ID})
	s.send(conn, ServerMessage{Type: "text", Content: engine.WelcomeMessage})
	s.logger.Info().Str("conversation_id", conv.ID).Msg("conversation started")
	return sess
}

func (s *Server) handleResumeConversation(conn *websocket.Conn, msg ClientMessage) *session {
	conv, ok := s.conversations.Get(msg.ConversationID)
	if !ok {
		s.sendError(conn, "conversation not found")
		return nil
	}

	registry, err := s.sessionRegistry(msg.UserDetails, msg.Accounts)
	if err != nil {
		s.sendError(conn, err.Error())
		return nil
	}

	sess := &session{
		ConversationID: conv.ID,
		Registry:       registry,
		History:        conv.Messages,
	}
	s.sessions.Store(conn, sess)

	s.send(conn, ServerMessage{Type: "conversation_resumed", ConversationID: conv.ID})
	s.logger.Info().Str("conversation_id", conv.ID).Msg("conversation resumed")
	return sess
}

func (s *Server) handleSessionMessage(ctx context.Context, conn *websocket.Conn, sess *session, content string) {
	if content == "" {
		return
	}

	reply, history, err := s.engine.Run(ctx, sess.Registry, sess.History, content)
	if err != nil {
		s.logger.Error().Err(err).Str("conversation_id", sess.ConversationID).Msg("chat turn failed")
		s.sendError(conn, err.Error())
		return
	}

	sess.History = history
	s.conversations.Append(sess.ConversationID, history)

	s.send(conn, ServerMessage{Type: "text", Content: reply})
	s.send(conn, ServerMessage{Type: "complete"})
}

func (s *Server) send(conn *websocket.Conn, msg ServerMessage) {
	if err := conn.WriteJSON(msg); err != nil {
		s.logger.Warn().Err(err).Msg("websocket send failed")
	}
}

func (s *Server) sendError(conn *websocket.Conn, content string) {
	s.send(conn, ServerMessage{Type: "error", Content: content})
}

func writeCORS(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn().Err(err).Msg("response encode failed")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, ErrorResponse{Error: message})
}
