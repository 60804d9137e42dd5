package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offgrid-ops/commandcenter/ent/message"
	"github.com/offgrid-ops/commandcenter/pkg/conversation"
	"github.com/offgrid-ops/commandcenter/pkg/services"
)

func TestEnsureSessionIdempotent(t *testing.T) {
	client := NewTestClient(t)
	svc := conversation.NewService(client.Client)
	ctx := context.Background()

	first, err := svc.EnsureSession(ctx, "")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	again, err := svc.EnsureSession(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	named, err := svc.EnsureSession(ctx, "11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", named.ID)
}

func TestAppendInfersTitleAndUpdatesConversation(t *testing.T) {
	client := NewTestClient(t)
	svc := conversation.NewService(client.Client)
	ctx := context.Background()

	conv, err := svc.EnsureSession(ctx, "")
	require.NoError(t, err)

	_, err = svc.Append(ctx, conversation.AppendRequest{
		SessionID: conv.ID,
		Role:      message.RoleUser,
		Content:   "what is the current battery state of charge?",
	})
	require.NoError(t, err)

	hit := false
	_, err = svc.Append(ctx, conversation.AppendRequest{
		SessionID:  conv.ID,
		Role:       message.RoleAssistant,
		Content:    "SOC is 82%.",
		AgentRole:  "StatusSpecialist",
		DurationMS: 420,
		Tokens:     1500,
		CacheHit:   &hit,
		QueryType:  "SYSTEM",
	})
	require.NoError(t, err)

	updated, msgs, err := svc.Get(ctx, conv.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.Title)
	assert.Equal(t, "what is the current battery state of charge?", *updated.Title)
	require.NotNil(t, updated.AgentRole)
	assert.Equal(t, "StatusSpecialist", *updated.AgentRole)
	assert.True(t, updated.UpdatedAt.After(conv.UpdatedAt) || updated.UpdatedAt.Equal(conv.UpdatedAt))

	// The last message is the most recent append.
	require.Len(t, msgs, 2)
	assert.Equal(t, "SOC is 82%.", msgs[1].Content)
	require.NotNil(t, msgs[1].AgentRole)
	assert.Equal(t, "StatusSpecialist", *msgs[1].AgentRole)
}

func TestRecentReturnsChronologicalWindow(t *testing.T) {
	client := NewTestClient(t)
	svc := conversation.NewService(client.Client)
	ctx := context.Background()

	conv, err := svc.EnsureSession(ctx, "")
	require.NoError(t, err)

	contents := []string{"q1", "a1", "q2", "a2", "q3", "a3"}
	for i, content := range contents {
		role := message.RoleUser
		if i%2 == 1 {
			role = message.RoleAssistant
		}
		_, err := svc.Append(ctx, conversation.AppendRequest{
			SessionID: conv.ID,
			Role:      role,
			Content:   content,
		})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond) // distinct created_at
	}

	// Two turns = four most recent messages, oldest first.
	msgs, err := svc.Recent(ctx, conv.ID, 2)
	require.NoError(t, err)
	require.Len(t, msgs, 4)
	assert.Equal(t, "q2", msgs[0].Content)
	assert.Equal(t, "a3", msgs[3].Content)
}

func TestListCountsMessages(t *testing.T) {
	client := NewTestClient(t)
	svc := conversation.NewService(client.Client)
	ctx := context.Background()

	conv, err := svc.EnsureSession(ctx, "")
	require.NoError(t, err)
	for _, content := range []string{"hello", "hi"} {
		_, err := svc.Append(ctx, conversation.AppendRequest{
			SessionID: conv.ID,
			Role:      message.RoleUser,
			Content:   content,
		})
		require.NoError(t, err)
	}

	summaries, err := svc.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, conv.ID, summaries[0].ID)
	assert.Equal(t, 2, summaries[0].MessageCount)
}

func TestCloseAndCloseIdle(t *testing.T) {
	client := NewTestClient(t)
	svc := conversation.NewService(client.Client)
	ctx := context.Background()

	conv, err := svc.EnsureSession(ctx, "")
	require.NoError(t, err)

	require.NoError(t, svc.Close(ctx, conv.ID))
	closed, _, err := svc.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, "closed", string(closed.Status))

	assert.ErrorIs(t, svc.Close(ctx, "22222222-2222-2222-2222-222222222222"), services.ErrNotFound)

	// A fresh active conversation is not idle yet.
	_, err = svc.EnsureSession(ctx, "")
	require.NoError(t, err)
	n, err := svc.CloseIdle(ctx, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, n)

	// With a zero idle window everything active closes.
	n, err = svc.CloseIdle(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
