package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offgrid-ops/commandcenter/pkg/contextmgr"
	"github.com/offgrid-ops/commandcenter/pkg/llm"
)

// fakeLLM replays scripted responses in order.
type fakeLLM struct {
	responses []fakeResponse
	calls     int
}

type fakeResponse struct {
	text      string
	toolCalls []llm.ToolCall
	err       error
}

func (f *fakeLLM) Generate(_ context.Context, _ []llm.Message, _ []llm.ToolSpec) (<-chan llm.Chunk, error) {
	if f.calls >= len(f.responses) {
		return nil, fmt.Errorf("unexpected call %d", f.calls)
	}
	resp := f.responses[f.calls]
	f.calls++

	ch := make(chan llm.Chunk, len(resp.toolCalls)+2)
	for _, call := range resp.toolCalls {
		ch <- llm.ToolCallChunk{Call: call}
	}
	if resp.text != "" {
		ch <- llm.TextChunk{Text: resp.text}
	}
	if resp.err != nil {
		ch <- llm.ErrorChunk{Err: resp.err}
	}
	close(ch)
	return ch, nil
}

func echoTool(name string) Tool {
	return Tool{
		Name:        name,
		Description: "echoes its input",
		Parameters: objectSchema(map[string]any{
			"value": map[string]any{"type": "string"},
		}, "value"),
		Handler: func(_ context.Context, _ *ExecutionContext, args json.RawMessage) (string, error) {
			var in struct {
				Value string `json:"value"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return "", err
			}
			return "echo: " + in.Value, nil
		},
	}
}

func TestRegistryExecute(t *testing.T) {
	failing := Tool{
		Name:        "broken",
		Description: "always fails",
		Parameters:  objectSchema(map[string]any{}),
		Handler: func(context.Context, *ExecutionContext, json.RawMessage) (string, error) {
			return "", fmt.Errorf("backend unavailable")
		},
	}
	registry := NewRegistry(echoTool("echo"), failing)
	execCtx := &ExecutionContext{}

	tests := []struct {
		name string
		call llm.ToolCall
		want string
	}{
		{
			name: "success passes result through",
			call: llm.ToolCall{ID: "1", Name: "echo", Arguments: `{"value":"hi"}`},
			want: "echo: hi",
		},
		{
			name: "handler error becomes failure text",
			call: llm.ToolCall{ID: "2", Name: "broken", Arguments: `{}`},
			want: "Tool broken failed: backend unavailable",
		},
		{
			name: "unknown tool is rejected",
			call: llm.ToolCall{ID: "3", Name: "missing", Arguments: `{}`},
			want: "Tool missing failed: unknown tool",
		},
		{
			name: "malformed arguments become failure text",
			call: llm.ToolCall{ID: "4", Name: "echo", Arguments: `{"value":`},
			want: "Tool echo failed: arguments are not valid JSON",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, registry.Execute(context.Background(), execCtx, tc.call))
		})
	}

	// Known tools are recorded even when they fail; unknown ones are not.
	assert.Equal(t, []string{"echo", "broken", "echo"}, execCtx.ToolsInvoked)
}

func TestRegistryDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewRegistry(echoTool("echo"), echoTool("echo"))
	})
}

func TestAgentRunFinalAnswer(t *testing.T) {
	client := &fakeLLM{responses: []fakeResponse{
		{text: "The battery is at 82%."},
	}}
	a := New("StatusSpecialist", "You answer status questions.", NewRegistry(), 5, client)

	answer, err := a.Run(context.Background(), &ExecutionContext{Query: "battery?"})
	require.NoError(t, err)
	assert.Equal(t, "The battery is at 82%.", answer)
}

func TestAgentRunToolLoop(t *testing.T) {
	client := &fakeLLM{responses: []fakeResponse{
		{toolCalls: []llm.ToolCall{{ID: "c1", Name: "echo", Arguments: `{"value":"soc"}`}}},
		{text: "Answer based on the tool result."},
	}}
	a := New("StatusSpecialist", "backstory", NewRegistry(echoTool("echo")), 5, client)
	execCtx := &ExecutionContext{Query: "battery?"}

	answer, err := a.Run(context.Background(), execCtx)
	require.NoError(t, err)
	assert.Equal(t, "Answer based on the tool result.", answer)
	assert.Equal(t, []string{"echo"}, execCtx.ToolsInvoked)
	assert.Equal(t, 2, client.calls)
}

func TestAgentRunMaxIterations(t *testing.T) {
	loop := fakeResponse{toolCalls: []llm.ToolCall{{ID: "c", Name: "echo", Arguments: `{"value":"x"}`}}}
	client := &fakeLLM{responses: []fakeResponse{loop, loop, loop}}
	a := New("StatusSpecialist", "backstory", NewRegistry(echoTool("echo")), 2, client)

	// The forced conclusion also emits a tool call, so the run gives up.
	_, err := a.Run(context.Background(), &ExecutionContext{Query: "battery?"})
	assert.ErrorIs(t, err, ErrMaxIterations)
}

func TestAgentForcedConclusionSucceeds(t *testing.T) {
	loop := fakeResponse{toolCalls: []llm.ToolCall{{ID: "c", Name: "echo", Arguments: `{"value":"x"}`}}}
	client := &fakeLLM{responses: []fakeResponse{loop, loop, {text: "Best effort answer."}}}
	a := New("StatusSpecialist", "backstory", NewRegistry(echoTool("echo")), 2, client)

	answer, err := a.Run(context.Background(), &ExecutionContext{Query: "battery?"})
	require.NoError(t, err)
	assert.Equal(t, "Best effort answer.", answer)
}

func TestHasContent(t *testing.T) {
	assert.False(t, hasContent(""))
	assert.False(t, hasContent("???!!!"))
	assert.False(t, hasContent("   "))
	assert.True(t, hasContent("soc?"))
	assert.True(t, hasContent("42"))
}

// fakeKB returns a fixed chunk list.
type fakeKB struct {
	chunks []contextmgr.ScoredChunk
	err    error
}

func (f *fakeKB) SearchChunks(context.Context, string, int, float64) ([]contextmgr.ScoredChunk, error) {
	return f.chunks, f.err
}
