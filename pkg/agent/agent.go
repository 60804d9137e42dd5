package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/offgrid-ops/commandcenter/pkg/llm"
	"github.com/offgrid-ops/commandcenter/pkg/services"
)

// ErrMaxIterations means an agent ran out of reasoning iterations without
// producing a final answer.
var ErrMaxIterations = errors.New("max iterations reached")

// Agent is one LLM-driven worker: a backstory, a toolset, and an
// iteration budget. The manager and every specialist share this loop.
type Agent struct {
	Role          string
	Backstory     string
	Tools         *Registry
	MaxIterations int

	llm    llm.Client
	logger *slog.Logger
}

// New creates an agent.
func New(role, backstory string, tools *Registry, maxIterations int, client llm.Client) *Agent {
	return &Agent{
		Role:          role,
		Backstory:     backstory,
		Tools:         tools,
		MaxIterations: maxIterations,
		llm:           client,
		logger:        slog.With("component", "agent", "role", role),
	}
}

// Run executes the tool-calling loop: call the model, execute any
// requested tools, feed results back, and stop at the first response
// without tool calls. Exceeding the iteration budget forces one final
// call without tools; if that also fails to conclude, ErrMaxIterations.
func (a *Agent) Run(ctx context.Context, execCtx *ExecutionContext) (string, error) {
	messages := a.buildMessages(execCtx)
	tools := a.Tools.Specs()

	for iteration := 1; iteration <= a.MaxIterations; iteration++ {
		if execCtx.DeadlineExceeded() {
			return "", services.ErrDeadline
		}

		text, toolCalls, err := a.generate(ctx, messages, tools)
		if err != nil {
			return "", err
		}

		// A response without tool calls is the final answer.
		if len(toolCalls) == 0 {
			if strings.TrimSpace(text) == "" {
				return "", fmt.Errorf("model returned an empty response")
			}
			return text, nil
		}

		a.logger.Debug("Executing tool calls", "iteration", iteration, "count", len(toolCalls))

		messages = append(messages, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   text,
			ToolCalls: toolCalls,
		})
		for _, call := range toolCalls {
			if execCtx.DeadlineExceeded() {
				return "", services.ErrDeadline
			}
			result := a.Tools.Execute(ctx, execCtx, call)
			messages = append(messages, llm.Message{
				Role:       llm.RoleTool,
				Content:    result,
				ToolCallID: call.ID,
			})
		}
	}

	return a.forceConclusion(ctx, execCtx, messages)
}

// forceConclusion makes one last call without tools so the model has to
// answer from what it already gathered.
func (a *Agent) forceConclusion(ctx context.Context, execCtx *ExecutionContext, messages []llm.Message) (string, error) {
	if execCtx.DeadlineExceeded() {
		return "", services.ErrDeadline
	}

	messages = append(messages, llm.Message{
		Role:    llm.RoleUser,
		Content: "Provide your final answer now using the information gathered so far. Do not request any more tools.",
	})

	text, toolCalls, err := a.generate(ctx, messages, nil)
	if err != nil {
		return "", err
	}
	if len(toolCalls) > 0 || strings.TrimSpace(text) == "" {
		return "", ErrMaxIterations
	}
	return text, nil
}

func (a *Agent) buildMessages(execCtx *ExecutionContext) []llm.Message {
	var system strings.Builder
	system.WriteString(a.Backstory)
	if execCtx.BundleText != "" {
		system.WriteString("\n\n")
		system.WriteString(execCtx.BundleText)
	}

	return []llm.Message{
		{Role: llm.RoleSystem, Content: system.String()},
		{Role: llm.RoleUser, Content: execCtx.Query},
	}
}

// generate drains one completion stream into text and tool calls.
func (a *Agent) generate(ctx context.Context, messages []llm.Message, tools []llm.ToolSpec) (string, []llm.ToolCall, error) {
	stream, err := a.llm.Generate(ctx, messages, tools)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", services.ErrUpstream, err)
	}

	var text strings.Builder
	var toolCalls []llm.ToolCall
	for chunk := range stream {
		switch c := chunk.(type) {
		case llm.TextChunk:
			text.WriteString(c.Text)
		case llm.ToolCallChunk:
			toolCalls = append(toolCalls, c.Call)
		case llm.ErrorChunk:
			if errors.Is(c.Err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return "", nil, services.ErrDeadline
			}
			return "", nil, fmt.Errorf("%w: %v", services.ErrUpstream, c.Err)
		case llm.UsageChunk:
			// Accounted by the orchestrator via bundle token estimates.
		}
	}

	return text.String(), toolCalls, nil
}
