package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/offgrid-ops/commandcenter/pkg/websearch"
)

// ResearchTools builds the web tools for the research specialist.
func ResearchTools(deps *Deps) []Tool {
	return []Tool{
		{
			Name:        "web_search",
			Description: "Search the web. Returns result titles, URLs and snippets; cite URLs when using them.",
			Parameters: objectSchema(map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "Search query.",
				},
				"top_k": map[string]any{
					"type":        "integer",
					"description": "Maximum results to return. Defaults to 5.",
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

				results, err := deps.Web.Search(ctx, in.Query, in.TopK)
				if err != nil {
					return "", err
				}
				if len(results) == 0 {
					return "No web results found for that query.", nil
				}

				payload, err := json.Marshal(results)
				if err != nil {
					return "", err
				}
				return string(payload), nil
			},
		},
		{
			Name:        "web_extract",
			Description: "Fetch a web page and return its readable article text.",
			Parameters: objectSchema(map[string]any{
				"url": map[string]any{
					"type":        "string",
					"description": "Page URL to extract.",
				},
			}, "url"),
			Handler: func(_ context.Context, _ *ExecutionContext, args json.RawMessage) (string, error) {
				var in struct {
					URL string `json:"url"`
				}
				if err := json.Unmarshal(args, &in); err != nil {
					return "", fmt.Errorf("invalid arguments: %v", err)
				}
				if in.URL == "" {
					return "", fmt.Errorf("url is required")
				}

				page, err := websearch.Extract(in.URL, deps.WebTimeout)
				if err != nil {
					return "", err
				}

				payload, err := json.Marshal(page)
				if err != nil {
					return "", err
				}
				return string(payload), nil
			},
		},
	}
}
