// Package llm provides the chat-completion client used by the agents.
package llm

import "context"

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is one turn in a completion request.
type Message struct {
	Role    string
	Content string

	// ToolCalls is set on assistant messages that requested tools.
	ToolCalls []ToolCall
	// ToolCallID is set on tool messages carrying a tool result.
	ToolCallID string
}

// ToolCall is one tool invocation requested by the model.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string // raw JSON
}

// ToolSpec describes one tool offered to the model.
type ToolSpec struct {
	Name        string
	Description string
	Parameters  map[string]any // JSON schema
}

// Chunk is one item in a generation stream.
type Chunk interface{ isChunk() }

// TextChunk carries response text.
type TextChunk struct {
	Text string
}

// ToolCallChunk carries one requested tool call.
type ToolCallChunk struct {
	Call ToolCall
}

// UsageChunk carries token accounting; emitted at most once, last before
// the channel closes.
type UsageChunk struct {
	PromptTokens     int
	CompletionTokens int
}

// ErrorChunk terminates a stream that failed mid-generation.
type ErrorChunk struct {
	Err error
}

func (TextChunk) isChunk()     {}
func (ToolCallChunk) isChunk() {}
func (UsageChunk) isChunk()    {}
func (ErrorChunk) isChunk()    {}

// Client generates completions. The returned channel is closed when the
// generation finishes; a failed generation ends with an ErrorChunk.
type Client interface {
	Generate(ctx context.Context, messages []Message, tools []ToolSpec) (<-chan Chunk, error)
}
