package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"

	"github.com/offgrid-ops/commandcenter/pkg/config"
)

// OpenAIClient implements Client against an OpenAI-compatible chat API.
// Each Generate performs one completion call and replays the result as
// chunks; transient failures retry with jittered exponential backoff.
type OpenAIClient struct {
	client      openai.Client
	model       string
	temperature float64
	timeout     time.Duration
	maxRetries  int
	logger      *slog.Logger
}

// NewOpenAIClient creates a client from configuration.
func NewOpenAIClient(cfg config.LLMConfig) *OpenAIClient {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIClient{
		client:      openai.NewClient(opts...),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     cfg.CallTimeout,
		maxRetries:  cfg.MaxRetries,
		logger:      slog.With("component", "llm", "model", cfg.Model),
	}
}

// Generate runs one completion and streams the result as chunks.
func (c *OpenAIClient) Generate(ctx context.Context, messages []Message, tools []ToolSpec) (<-chan Chunk, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("no messages to send")
	}

	params := openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(c.model),
		Messages:    toOpenAIMessages(messages),
		Temperature: openai.Float(c.temperature),
	}
	if len(tools) > 0 {
		params.Tools = toOpenAITools(tools)
	}

	chunks := make(chan Chunk, 16)
	go func() {
		defer close(chunks)

		var resp *openai.ChatCompletion
		operation := func() error {
			callCtx, cancel := context.WithTimeout(ctx, c.timeout)
			defer cancel()

			var err error
			resp, err = c.client.Chat.Completions.New(callCtx, params)
			return err
		}

		policy := backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.maxRetries)), ctx)
		if err := backoff.Retry(operation, policy); err != nil {
			chunks <- ErrorChunk{Err: fmt.Errorf("completion failed after retries: %w", err)}
			return
		}
		if len(resp.Choices) == 0 {
			chunks <- ErrorChunk{Err: fmt.Errorf("completion returned no choices")}
			return
		}

		msg := resp.Choices[0].Message
		for _, tc := range msg.ToolCalls {
			chunks <- ToolCallChunk{Call: ToolCall{
				ID:        tc.ID,
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			}}
		}
		if msg.Content != "" {
			chunks <- TextChunk{Text: msg.Content}
		}
		chunks <- UsageChunk{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
		}
	}()

	return chunks, nil
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case RoleAssistant:
			if len(m.ToolCalls) > 0 {
				assistant := openai.ChatCompletionAssistantMessageParam{}
				if m.Content != "" {
					assistant.Content.OfString = openai.String(m.Content)
				}
				for _, tc := range m.ToolCalls {
					assistant.ToolCalls = append(assistant.ToolCalls,
						openai.ChatCompletionMessageToolCallUnionParam{
							OfFunction: &openai.ChatCompletionMessageFunctionToolCallParam{
								ID: tc.ID,
								Function: openai.ChatCompletionMessageFunctionToolCallFunctionParam{
									Name:      tc.Name,
									Arguments: tc.Arguments,
								},
							},
						})
				}
				out = append(out, openai.ChatCompletionMessageParamUnion{OfAssistant: &assistant})
			} else {
				out = append(out, openai.AssistantMessage(m.Content))
			}
		case RoleTool:
			out = append(out, openai.ToolMessage(m.Content, m.ToolCallID))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}

func toOpenAITools(tools []ToolSpec) []openai.ChatCompletionToolUnionParam {
	out := make([]openai.ChatCompletionToolUnionParam, len(tools))
	for i, t := range tools {
		out[i] = openai.ChatCompletionFunctionTool(shared.FunctionDefinitionParam{
			Name:        t.Name,
			Description: openai.String(t.Description),
			Parameters:  shared.FunctionParameters(t.Parameters),
		})
	}
	return out
}
