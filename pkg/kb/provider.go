package kb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrDocumentGone marks a document that disappeared upstream between
// listing and fetching. Sync counts it as failed with sync_error=not_found
// and does not retry it within the run.
var ErrDocumentGone = errors.New("document not found upstream")

// ProviderDocument is one entry from the provider listing.
type ProviderDocument struct {
	ExternalID string    `json:"id"`
	Title      string    `json:"title"`
	FolderPath string    `json:"folder_path"`
	MimeKind   string    `json:"mime_kind"` // doc, pdf, or sheet
	ModifiedAt time.Time `json:"modified_at"`
}

// DocumentProvider enumerates and fetches documents from the external
// store. Text extraction for the three mime kinds happens server-side; the
// provider returns plain text.
type DocumentProvider interface {
	List(ctx context.Context, rootFolderID string) ([]ProviderDocument, error)
	FetchText(ctx context.Context, externalID string) (string, error)
}

// HTTPProvider talks to the document-provider gateway.
type HTTPProvider struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPProvider creates a provider client.
func NewHTTPProvider(baseURL, token string) *HTTPProvider {
	return &HTTPProvider{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *HTTPProvider) List(ctx context.Context, rootFolderID string) ([]ProviderDocument, error) {
	endpoint := fmt.Sprintf("%s/folders/%s/documents", p.baseURL, url.PathEscape(rootFolderID))

	var listing struct {
		Documents []ProviderDocument `json:"documents"`
	}
	if err := p.getJSON(ctx, endpoint, &listing); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return listing.Documents, nil
}

func (p *HTTPProvider) FetchText(ctx context.Context, externalID string) (string, error) {
	endpoint := fmt.Sprintf("%s/documents/%s/text", p.baseURL, url.PathEscape(externalID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	p.authorize(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch document text: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", ErrDocumentGone
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read document text: %w", err)
	}

	return string(body), nil
}

func (p *HTTPProvider) getJSON(ctx context.Context, endpoint string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	p.authorize(req)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}

func (p *HTTPProvider) authorize(req *http.Request) {
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}
}
