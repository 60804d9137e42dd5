package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offgrid-ops/commandcenter/pkg/conversation"
	"github.com/offgrid-ops/commandcenter/pkg/services"
)

func TestRecordAndListExecutions(t *testing.T) {
	client := NewTestClient(t)
	svc := services.NewExecutionService(client.Client)
	conversations := conversation.NewService(client.Client)
	ctx := context.Background()

	conv, err := conversations.EnsureSession(ctx, "")
	require.NoError(t, err)

	_, err = svc.Record(ctx, services.ExecutionRecord{
		SessionID:  conv.ID,
		AgentRole:  "StatusSpecialist",
		QueryType:  "SYSTEM",
		TokensIn:   1500,
		CacheHit:   true,
		DurationMS: 820,
		ToolsUsed:  []string{"latest_sample"},
	})
	require.NoError(t, err)

	_, err = svc.Record(ctx, services.ExecutionRecord{
		SessionID:  conv.ID,
		AgentRole:  "Manager",
		QueryType:  "GENERAL",
		DurationMS: 40,
		Error:      "max_iterations",
	})
	require.NoError(t, err)

	all, err := svc.List(ctx, services.ListFilter{SessionID: conv.ID})
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Newest first.
	assert.Equal(t, "Manager", all[0].AgentRole)

	filtered, err := svc.List(ctx, services.ListFilter{SessionID: conv.ID, AgentRole: "StatusSpecialist"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, []string{"latest_sample"}, filtered[0].ToolsUsed)
	assert.True(t, filtered[0].CacheHit)
}

func TestRecordValidation(t *testing.T) {
	client := NewTestClient(t)
	svc := services.NewExecutionService(client.Client)

	_, err := svc.Record(context.Background(), services.ExecutionRecord{AgentRole: "Manager"})
	assert.True(t, services.IsValidationError(err))
}
