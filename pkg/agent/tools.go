package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/offgrid-ops/commandcenter/pkg/llm"
)

// Handler executes one tool call with decoded arguments. Handlers return
// user-safe text or an error; errors never cross the agent boundary raw.
type Handler func(ctx context.Context, execCtx *ExecutionContext, args json.RawMessage) (string, error)

// Tool pairs an input schema with its handler.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any // JSON schema for the arguments object
	Handler     Handler
}

// Registry maps tool names to tools, preserving registration order for
// prompt stability.
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry creates a registry from tools. Duplicate names panic; the
// roster is assembled once at startup.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		if _, exists := r.tools[t.Name]; exists {
			panic(fmt.Sprintf("duplicate tool %q", t.Name))
		}
		r.tools[t.Name] = t
		r.order = append(r.order, t.Name)
	}
	return r
}

// Specs renders the registry for the LLM request.
func (r *Registry) Specs() []llm.ToolSpec {
	specs := make([]llm.ToolSpec, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		specs = append(specs, llm.ToolSpec{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		})
	}
	return specs
}

// Names lists the registered tool names in order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Execute runs one requested tool call and always returns text for the
// model: results pass through, failures become "Tool X failed: …", and
// unknown tools are rejected rather than ignored.
func (r *Registry) Execute(ctx context.Context, execCtx *ExecutionContext, call llm.ToolCall) string {
	tool, ok := r.tools[call.Name]
	if !ok {
		slog.Warn("Model requested unknown tool", "tool", call.Name)
		return fmt.Sprintf("Tool %s failed: unknown tool", call.Name)
	}

	execCtx.RecordTool(call.Name)

	args := json.RawMessage(call.Arguments)
	if len(args) == 0 {
		args = json.RawMessage("{}")
	} else if !json.Valid(args) {
		return fmt.Sprintf("Tool %s failed: arguments are not valid JSON", call.Name)
	}

	result, err := tool.Handler(ctx, execCtx, args)
	if err != nil {
		slog.Warn("Tool failed", "tool", call.Name, "error", err)
		return fmt.Sprintf("Tool %s failed: %v", call.Name, err)
	}
	return result
}

// objectSchema builds the JSON schema for a tool's argument object.
func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
