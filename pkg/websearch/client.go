// Package websearch provides web search and page-text extraction for the
// research specialist.
package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/offgrid-ops/commandcenter/pkg/config"
	"github.com/offgrid-ops/commandcenter/pkg/services"
)

// Result is one search hit.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Client queries a SearxNG-compatible search endpoint.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a search client. An empty base URL leaves web search
// disabled; Search then returns an upstream error the agent can relay.
func NewClient(cfg config.WebSearchConfig) *Client {
	timeout := cfg.CallTimeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// Search runs a query and returns up to topK results.
func (c *Client) Search(ctx context.Context, query string, topK int) ([]Result, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: web search is not configured", services.ErrUpstream)
	}
	if topK <= 0 || topK > 20 {
		topK = 5
	}

	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&count=%s",
		c.baseURL, url.QueryEscape(query), strconv.Itoa(topK))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: search request failed: %v", services.ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: search provider throttled", services.ErrRateLimited)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: search provider returned status %d", services.ErrUpstream, resp.StatusCode)
	}

	var payload struct {
		Results []struct {
			Title   string `json:"title"`
			URL     string `json:"url"`
			Content string `json:"content"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: search response malformed: %v", services.ErrUpstream, err)
	}

	results := make([]Result, 0, topK)
	for _, r := range payload.Results {
		results = append(results, Result{Title: r.Title, URL: r.URL, Snippet: r.Content})
		if len(results) == topK {
			break
		}
	}
	return results, nil
}
