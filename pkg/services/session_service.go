package services

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/trykin/spark/ent"
	"github.com/trykin/spark/ent/conversation"
	"github.com/trykin/spark/ent/message"
	"github.com/trykin/spark/pkg/database"
	"github.com/trykin/spark/pkg/models"
)

// SessionService manages conversation lifecycle: creation, token
// resolution with IP binding, history windows, and termination.
type SessionService struct {
	client  *ent.Client
	db      *sql.DB
	logger  *slog.Logger
	timeout time.Duration
}

// NewSessionService creates a new SessionService.
func NewSessionService(client *ent.Client, db *sql.DB, logger *slog.Logger, timeout time.Duration) *SessionService {
	return &SessionService{
		client:  client,
		db:      db,
		logger:  logger,
		timeout: timeout,
	}
}

// newSessionToken returns a URL-safe token with 256 bits of entropy.
func newSessionToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Create starts a new conversation bound to the caller's IP.
func (s *SessionService) Create(ctx context.Context, clientID, ipAddress, fingerprint string) (*ent.Conversation, error) {
	token, err := newSessionToken()
	if err != nil {
		return nil, err
	}

	builder := s.client.Conversation.Create().
		SetID(uuid.New().String()).
		SetClientID(clientID).
		SetSessionToken(token).
		SetIPAddress(ipAddress).
		SetExpiresAt(time.Now().UTC().Add(s.timeout))
	if fingerprint != "" {
		builder.SetVisitorFingerprint(fingerprint)
	}

	conv, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("Session created", "conversation_id", conv.ID, "client_id", clientID)
	return conv, nil
}

// Resolve looks up an active session by token, enforcing IP binding
// and expiry. A token that doesn't resolve — unknown, bound to a
// different IP, or expired — returns ErrNotFound; callers respond by
// silently starting a fresh session.
func (s *SessionService) Resolve(ctx context.Context, sessionToken, ipAddress string) (*ent.Conversation, error) {
	conv, err := s.client.Conversation.Query().
		Where(
			conversation.SessionToken(sessionToken),
			conversation.StateEQ(conversation.StateActive),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	if conv.IPAddress != ipAddress {
		s.logger.Warn("Session IP mismatch",
			"conversation_id", conv.ID,
			"expected", conv.IPAddress,
			"got", ipAddress)
		return nil, ErrNotFound
	}

	if time.Now().UTC().After(conv.ExpiresAt) {
		s.logger.Info("Session expired", "conversation_id", conv.ID)
		if err := s.End(ctx, conv.ID, string(conversation.StateExpired), string(conversation.OutcomeAbandoned)); err != nil {
			s.logger.Warn("Failed to mark session expired", "conversation_id", conv.ID, "error", err)
		}
		return nil, ErrNotFound
	}

	return conv, nil
}

// Get fetches a conversation by id.
func (s *SessionService) Get(ctx context.Context, id string) (*ent.Conversation, error) {
	conv, err := s.client.Conversation.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return conv, nil
}

// IncrementTurn atomically bumps the turn counter and refreshes the
// session expiry. Returns the new turn count.
func (s *SessionService) IncrementTurn(ctx context.Context, conversationID string) (int, error) {
	return database.IncrementTurn(ctx, s.db, conversationID, int(s.timeout.Seconds()))
}

// History returns the last `turns` conversational turns in
// chronological order. A turn is one user plus one assistant message,
// so up to 2*turns rows are returned.
func (s *SessionService) History(ctx context.Context, conversationID string, turns int) ([]models.ChatMessage, error) {
	rows, err := s.client.Message.Query().
		Where(message.ConversationID(conversationID)).
		Order(ent.Desc(message.FieldCreatedAt)).
		Limit(turns * 2).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}

	// Reverse into chronological order.
	out := make([]models.ChatMessage, len(rows))
	for i, m := range rows {
		out[len(rows)-1-i] = models.ChatMessage{
			Role:    string(m.Role),
			Content: m.Content,
		}
	}
	return out, nil
}

// Append stores one message on the conversation.
func (s *SessionService) Append(ctx context.Context, conversationID, role, content string) error {
	_, err := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetConversationID(conversationID).
		SetRole(message.Role(role)).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to store message: %w", err)
	}
	return nil
}

// End moves an active conversation to a terminal state. Ending an
// already-ended conversation is a no-op, so concurrent enders and
// retries are safe.
func (s *SessionService) End(ctx context.Context, conversationID, state, outcome string) error {
	n, err := s.client.Conversation.Update().
		Where(
			conversation.ID(conversationID),
			conversation.StateEQ(conversation.StateActive),
		).
		SetState(conversation.State(state)).
		SetOutcome(conversation.Outcome(outcome)).
		SetEndedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	if n > 0 {
		s.logger.Info("Session ended", "conversation_id", conversationID, "state", state, "outcome", outcome)
	}
	return nil
}

// ExpireStale ends every active conversation whose session window has
// lapsed. Resolve already expires sessions lazily on the next request;
// this catches visitors who never came back. Returns the number of
// conversations expired.
func (s *SessionService) ExpireStale(ctx context.Context) (int, error) {
	n, err := s.client.Conversation.Update().
		Where(
			conversation.StateEQ(conversation.StateActive),
			conversation.ExpiresAtLT(time.Now().UTC()),
		).
		SetState(conversation.StateExpired).
		SetOutcome(conversation.OutcomeAbandoned).
		SetEndedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire stale sessions: %w", err)
	}
	return n, nil
}

// BoundarySignals returns the conversation's boundary counter. Errors
// degrade to zero: the counter only widens classifier context, and a
// read failure must not block the turn.
func (s *SessionService) BoundarySignals(ctx context.Context, conversationID string) int {
	conv, err := s.client.Conversation.Query().
		Where(conversation.ID(conversationID)).
		Select(conversation.FieldBoundarySignalsFired).
		Only(ctx)
	if err != nil {
		s.logger.Warn("Boundary count fetch failed", "conversation_id", conversationID, "error", err)
		return 0
	}
	return conv.BoundarySignalsFired
}

// IncrementBoundarySignals atomically bumps the boundary counter.
func (s *SessionService) IncrementBoundarySignals(ctx context.Context, conversationID string) error {
	return database.IncrementBoundarySignals(ctx, s.db, conversationID)
}
