package agent

import (
	"context"
	"time"

	"github.com/offgrid-ops/commandcenter/pkg/contextmgr"
	"github.com/offgrid-ops/commandcenter/pkg/telemetry"
	"github.com/offgrid-ops/commandcenter/pkg/websearch"
)

// KBSearcher is the slice of the knowledge base the search tool needs.
type KBSearcher interface {
	SearchChunks(ctx context.Context, query string, topK int, threshold float64) ([]contextmgr.ScoredChunk, error)
}

// WebSearcher is the slice of the search client the research tools need.
type WebSearcher interface {
	Search(ctx context.Context, query string, topK int) ([]websearch.Result, error)
}

// Deps bundles the backends tool handlers close over. Tool construction
// happens once at startup; handlers only read from here.
type Deps struct {
	Telemetry *telemetry.Service
	KB        KBSearcher
	Web       WebSearcher

	// StaleWindow is how old a sample may be before status answers carry
	// a staleness warning.
	StaleWindow time.Duration

	// KBThreshold is the default similarity floor for search_kb.
	KBThreshold float64

	// WebTimeout bounds page-text extraction.
	WebTimeout time.Duration
}
