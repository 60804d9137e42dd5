package websearch

import (
	"fmt"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"

	"github.com/offgrid-ops/commandcenter/pkg/services"
)

// extractMaxChars bounds extracted article text so a long page cannot
// flood an agent prompt.
const extractMaxChars = 20000

// Page is extracted article content.
type Page struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Text  string `json:"text"`
}

// Extract fetches a URL and returns its readable article text.
func Extract(pageURL string, timeout time.Duration) (*Page, error) {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	article, err := readability.FromURL(pageURL, timeout)
	if err != nil {
		return nil, fmt.Errorf("%w: extraction failed for %s: %v", services.ErrUpstream, pageURL, err)
	}

	text := strings.TrimSpace(article.TextContent)
	if len(text) > extractMaxChars {
		text = text[:extractMaxChars]
	}

	return &Page{
		Title: article.Title,
		URL:   pageURL,
		Text:  text,
	}, nil
}
