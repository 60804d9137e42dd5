// Package conversation persists query sessions and their turns.
package conversation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/offgrid-ops/commandcenter/ent"
	entconversation "github.com/offgrid-ops/commandcenter/ent/conversation"
	"github.com/offgrid-ops/commandcenter/ent/message"
	"github.com/offgrid-ops/commandcenter/pkg/services"
)

// Service manages conversations and messages.
type Service struct {
	client *ent.Client
	logger *slog.Logger
}

// NewService creates a new conversation Service
func NewService(client *ent.Client) *Service {
	return &Service{
		client: client,
		logger: slog.With("component", "conversation"),
	}
}

// titleMaxLen bounds inferred conversation titles.
const titleMaxLen = 80

// EnsureSession returns the conversation with the given ID, creating it
// when absent. An empty ID allocates a fresh session. Appending to a closed
// conversation reopens it.
func (s *Service) EnsureSession(ctx context.Context, sessionID string) (*ent.Conversation, error) {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	conv, err := s.client.Conversation.Get(ctx, sessionID)
	if err == nil {
		return conv, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up conversation: %w", err)
	}

	now := time.Now()
	conv, err = s.client.Conversation.Create().
		SetID(sessionID).
		SetStatus(entconversation.StatusActive).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		// Lost a race with a concurrent first message; the row exists now.
		if ent.IsConstraintError(err) {
			return s.client.Conversation.Get(ctx, sessionID)
		}
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	return conv, nil
}

// AppendRequest is one turn to persist.
type AppendRequest struct {
	SessionID string
	Role      message.Role
	Content   string

	// Assistant-turn metadata; ignored for user turns.
	AgentRole  string
	DurationMS int64
	Tokens     int
	CacheHit   *bool
	QueryType  string
}

// Append persists one message, refreshes the conversation's updated_at,
// and infers a title from the first user turn.
func (s *Service) Append(ctx context.Context, req AppendRequest) (*ent.Message, error) {
	if req.SessionID == "" {
		return nil, services.NewValidationError("session_id", "required")
	}
	if req.Content == "" {
		return nil, services.NewValidationError("content", "required")
	}

	conv, err := s.EnsureSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	create := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetConversationID(conv.ID).
		SetRole(req.Role).
		SetContent(req.Content).
		SetCreatedAt(time.Now())
	if req.AgentRole != "" {
		create = create.SetAgentRole(req.AgentRole)
	}
	if req.DurationMS > 0 {
		create = create.SetDurationMs(int(req.DurationMS))
	}
	if req.Tokens > 0 {
		create = create.SetTokens(req.Tokens)
	}
	if req.CacheHit != nil {
		create = create.SetCacheHit(*req.CacheHit)
	}
	if req.QueryType != "" {
		create = create.SetQueryType(req.QueryType)
	}

	msg, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}

	update := s.client.Conversation.UpdateOneID(conv.ID).
		SetUpdatedAt(time.Now()).
		SetStatus(entconversation.StatusActive)
	if conv.Title == nil && req.Role == message.RoleUser {
		update = update.SetTitle(inferTitle(req.Content))
	}
	if req.AgentRole != "" {
		update = update.SetAgentRole(req.AgentRole)
	}
	if _, err := update.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to touch conversation: %w", err)
	}

	return msg, nil
}

// inferTitle derives a conversation title from the first user message:
// first line, trimmed, truncated on a word boundary where possible.
func inferTitle(content string) string {
	title := strings.TrimSpace(content)
	if i := strings.IndexByte(title, '\n'); i >= 0 {
		title = strings.TrimSpace(title[:i])
	}
	if len(title) <= titleMaxLen {
		return title
	}
	cut := title[:titleMaxLen]
	if i := strings.LastIndexByte(cut, ' '); i > titleMaxLen/2 {
		cut = cut[:i]
	}
	return cut + "…"
}

// Recent returns the last n turns of a conversation in chronological order.
// A turn is one user message plus its assistant reply, so up to 2n messages
// come back. Unknown sessions return an empty slice.
func (s *Service) Recent(ctx context.Context, sessionID string, turns int) ([]*ent.Message, error) {
	if sessionID == "" || turns <= 0 {
		return nil, nil
	}

	msgs, err := s.client.Message.Query().
		Where(message.ConversationIDEQ(sessionID)).
		Order(
			ent.Desc(message.FieldCreatedAt),
			ent.Desc(message.FieldID),
		).
		Limit(turns * 2).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent messages: %w", err)
	}

	// Reverse into chronological order.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}

	return msgs, nil
}

// Summary is one conversation in a listing.
type Summary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	AgentRole    string    `json:"agent_role,omitempty"`
	Status       string    `json:"status"`
	MessageCount int       `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// List returns conversations ordered by recency of activity.
func (s *Service) List(ctx context.Context, limit int) ([]Summary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	convs, err := s.client.Conversation.Query().
		Order(ent.Desc(entconversation.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	summaries := make([]Summary, 0, len(convs))
	for _, c := range convs {
		count, err := s.client.Message.Query().
			Where(message.ConversationIDEQ(c.ID)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count messages: %w", err)
		}

		sum := Summary{
			ID:           c.ID,
			Status:       string(c.Status),
			MessageCount: count,
			CreatedAt:    c.CreatedAt,
			UpdatedAt:    c.UpdatedAt,
		}
		if c.Title != nil {
			sum.Title = *c.Title
		}
		if c.AgentRole != nil {
			sum.AgentRole = *c.AgentRole
		}
		summaries = append(summaries, sum)
	}

	return summaries, nil
}

// Get returns one conversation with all its messages in order.
func (s *Service) Get(ctx context.Context, sessionID string) (*ent.Conversation, []*ent.Message, error) {
	conv, err := s.client.Conversation.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, services.ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	msgs, err := s.client.Message.Query().
		Where(message.ConversationIDEQ(sessionID)).
		Order(
			ent.Asc(message.FieldCreatedAt),
			ent.Asc(message.FieldID),
		).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load messages: %w", err)
	}

	return conv, msgs, nil
}

// Close marks a conversation closed. Closing an already-closed conversation
// is a no-op.
func (s *Service) Close(ctx context.Context, sessionID string) error {
	err := s.client.Conversation.UpdateOneID(sessionID).
		SetStatus(entconversation.StatusClosed).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return services.ErrNotFound
		}
		return fmt.Errorf("failed to close conversation: %w", err)
	}
	return nil
}

// CloseIdle closes active conversations whose last activity predates the
// idle window. Returns the number of conversations closed.
func (s *Service) CloseIdle(ctx context.Context, idle time.Duration) (int, error) {
	cutoff := time.Now().Add(-idle)

	n, err := s.client.Conversation.Update().
		Where(
			entconversation.StatusEQ(entconversation.StatusActive),
			entconversation.UpdatedAtLT(cutoff),
		).
		SetStatus(entconversation.StatusClosed).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to close idle conversations: %w", err)
	}

	return n, nil
}
