package agent

import (
	"context"
	"encoding/json"
	"fmt"
)

// SearchKBTool builds the semantic KB search tool shared by every agent.
func SearchKBTool(deps *Deps) Tool {
	return Tool{
		Name:        "search_kb",
		Description: "Semantic search over the site's knowledge base (manuals, runbooks, notes). Returns the most similar chunks with titles and folders.",
		Parameters: objectSchema(map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "Natural-language search query.",
			},
			"top_k": map[string]any{
				"type":        "integer",
				"description": "Maximum chunks to return. Defaults to 5.",
			},
		}, "query"),
		Handler: func(ctx context.Context, _ *ExecutionContext, args json.RawMessage) (string, error) {
			var in struct {
				Query string `json:"query"`
				TopK  int    `json:"top_k"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return "", fmt.Errorf("invalid arguments: %v", err)
			}
			if in.Query == "" {
				return "", fmt.Errorf("query is required")
			}
			if in.TopK <= 0 || in.TopK > 20 {
				in.TopK = 5
			}

			chunks, err := deps.KB.SearchChunks(ctx, in.Query, in.TopK, deps.KBThreshold)
			if err != nil {
				return "", err
			}
			if len(chunks) == 0 {
				return "No knowledge base content matched that query.", nil
			}

			payload, err := json.Marshal(chunks)
			if err != nil {
				return "", err
			}
			return string(payload), nil
		},
	}
}
