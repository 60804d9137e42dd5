package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offgrid-ops/commandcenter/pkg/config"
	"github.com/offgrid-ops/commandcenter/pkg/contextmgr"
	"github.com/offgrid-ops/commandcenter/pkg/llm"
)

func managerFixture(t *testing.T, client llm.Client, kb KBSearcher) *Manager {
	t.Helper()
	cfg := &config.Config{
		Agents: config.BuiltinAgents(),
		Query: config.QueryConfig{
			ManagerMaxIterations:    3,
			SpecialistMaxIterations: 5,
		},
	}
	deps := &Deps{KB: kb, KBThreshold: 0.3}
	classifier := contextmgr.NewClassifier(config.BuiltinClassifier())
	return NewManager(cfg, client, deps, classifier)
}

func TestManagerOffTopicAnswersWithoutLLM(t *testing.T) {
	// An empty script makes any LLM call fail the test.
	m := managerFixture(t, &fakeLLM{}, &fakeKB{})

	result, err := m.Route(context.Background(), &ExecutionContext{Query: "Who are you?"})
	require.NoError(t, err)
	assert.Equal(t, RoleManager, result.AgentRole)
	assert.Contains(t, result.Response, "operations assistant")
}

func TestManagerKBFastPath(t *testing.T) {
	kb := &fakeKB{chunks: []contextmgr.ScoredChunk{
		{Title: "SOC Policy", Folder: "Runbooks", ChunkText: "Minimum SOC threshold is 20%.", Similarity: 0.91},
		{Title: "Other", Folder: "Notes", ChunkText: "irrelevant", Similarity: 0.5},
	}}
	m := managerFixture(t, &fakeLLM{}, kb)
	execCtx := &ExecutionContext{Query: "What do the docs say about the minimum SOC threshold?"}

	result, err := m.Route(context.Background(), execCtx)
	require.NoError(t, err)
	assert.Equal(t, RoleManager, result.AgentRole)
	assert.Contains(t, result.Response, "Minimum SOC threshold is 20%.")
	assert.Contains(t, result.Response, "SOC Policy")
	assert.Equal(t, []string{"search_kb"}, execCtx.ToolsInvoked)
}

func TestManagerKBFastPathMissFallsThroughToRouter(t *testing.T) {
	client := &fakeLLM{responses: []fakeResponse{
		{text: "I don't have that in the knowledge base."},
	}}
	m := managerFixture(t, client, &fakeKB{})

	result, err := m.Route(context.Background(), &ExecutionContext{
		Query: "What do the docs say about hydro turbines?",
	})
	require.NoError(t, err)
	assert.Equal(t, RoleManager, result.AgentRole)
	assert.Equal(t, 1, client.calls)
	assert.NotEmpty(t, result.Response)
}

func TestManagerRoutesToSpecialistVerbatim(t *testing.T) {
	client := &fakeLLM{responses: []fakeResponse{
		{toolCalls: []llm.ToolCall{{ID: "r1", Name: "route_to_status_specialist", Arguments: `{}`}}},
		{text: "SOC is 82% and the battery is charging at 1.2 kW."},
	}}
	m := managerFixture(t, client, &fakeKB{})
	execCtx := &ExecutionContext{
		Query:     "what is the current battery status",
		QueryType: config.QueryTypeSystem,
	}

	result, err := m.Route(context.Background(), execCtx)
	require.NoError(t, err)
	assert.Equal(t, RoleStatusSpecialist, result.AgentRole)
	assert.Equal(t, "SOC is 82% and the battery is charging at 1.2 kW.", result.Response)
	assert.Equal(t, []string{"route_to_status_specialist"}, execCtx.ToolsInvoked)
}

func TestManagerFallbackAfterMaxIterations(t *testing.T) {
	searchLoop := fakeResponse{toolCalls: []llm.ToolCall{
		{ID: "s", Name: "search_kb", Arguments: `{"query":"anything"}`},
	}}
	client := &fakeLLM{responses: []fakeResponse{searchLoop, searchLoop, searchLoop}}
	m := managerFixture(t, client, &fakeKB{})

	result, err := m.Route(context.Background(), &ExecutionContext{Query: "tell me something"})
	assert.ErrorIs(t, err, ErrMaxIterations)
	require.NotNil(t, result)
	assert.Equal(t, RoleManager, result.AgentRole)
	assert.Contains(t, result.Response, "could not confidently answer")
}

func TestManagerDeadlineAborts(t *testing.T) {
	m := managerFixture(t, &fakeLLM{}, &fakeKB{})
	execCtx := &ExecutionContext{
		Query:    "what is the current battery status",
		Deadline: time.Now().Add(-time.Second),
	}

	_, err := m.Route(context.Background(), execCtx)
	assert.Error(t, err)
}
