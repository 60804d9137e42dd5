package kb

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/offgrid-ops/commandcenter/ent"
	"github.com/offgrid-ops/commandcenter/ent/document"
	"github.com/offgrid-ops/commandcenter/ent/synclog"
	"github.com/offgrid-ops/commandcenter/pkg/config"
	"github.com/offgrid-ops/commandcenter/pkg/contextmgr"
	"github.com/offgrid-ops/commandcenter/pkg/database"
)

// Service owns the knowledge base: sync, search, context files, stats.
type Service struct {
	db       *database.Client
	provider DocumentProvider
	embedder Embedder
	chunker  *Chunker
	cfg      config.KBConfig

	// version is bumped on every successful sync; cache keys embed it so a
	// sync invalidates previously cached bundles.
	version atomic.Uint64

	logger *slog.Logger
}

// NewService creates the knowledge-base service. The version counter
// resumes from the number of completed syncs so restarts do not resurrect
// stale cache entries.
func NewService(ctx context.Context, db *database.Client, provider DocumentProvider, embedder Embedder, cfg config.KBConfig) (*Service, error) {
	s := &Service{
		db:       db,
		provider: provider,
		embedder: embedder,
		chunker:  NewChunker(cfg.ChunkSize, cfg.ChunkOverlap),
		cfg:      cfg,
		logger:   slog.With("component", "kb"),
	}

	completed, err := db.SyncLog.Query().
		Where(synclog.StatusEQ(synclog.StatusCompleted)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sync history: %w", err)
	}
	s.version.Store(uint64(completed))

	return s, nil
}

// Version returns the monotone knowledge-base version.
func (s *Service) Version() uint64 {
	return s.version.Load()
}

// ContextDocuments returns the always-on context files, ordered stably.
func (s *Service) ContextDocuments(ctx context.Context) ([]contextmgr.ContextDocument, error) {
	docs, err := s.db.Document.Query().
		Where(
			document.IsContextFile(true),
			document.StatusEQ(document.StatusSynced),
		).
		Order(ent.Asc(document.FieldFolderPath), ent.Asc(document.FieldTitle)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load context files: %w", err)
	}

	out := make([]contextmgr.ContextDocument, len(docs))
	for i, d := range docs {
		out[i] = contextmgr.ContextDocument{
			Title:      d.Title,
			Text:       d.FullText,
			TokenCount: d.TokenCount,
		}
	}
	return out, nil
}

// Stats summarizes the knowledge base for the stats endpoint.
type Stats struct {
	Documents       int        `json:"documents"`
	Chunks          int        `json:"chunks"`
	ContextFiles    int        `json:"context_files"`
	TotalTokens     int        `json:"total_tokens"`
	LastSyncTime    *time.Time `json:"last_sync_time"`
	SuccessfulSyncs int        `json:"successful_syncs"`
	FailedSyncs     int        `json:"failed_syncs"`
}

// GetStats computes knowledge-base statistics.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	var err error
	if stats.Documents, err = s.db.Document.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}
	if stats.Chunks, err = s.db.Chunk.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count chunks: %w", err)
	}
	if stats.ContextFiles, err = s.db.Document.Query().
		Where(document.IsContextFile(true)).Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count context files: %w", err)
	}

	var totals []struct {
		Sum int `json:"sum"`
	}
	if err := s.db.Document.Query().
		Aggregate(ent.Sum(document.FieldTokenCount)).
		Scan(ctx, &totals); err != nil {
		return nil, fmt.Errorf("failed to sum token counts: %w", err)
	}
	if len(totals) > 0 {
		stats.TotalTokens = totals[0].Sum
	}

	if stats.SuccessfulSyncs, err = s.db.SyncLog.Query().
		Where(synclog.StatusEQ(synclog.StatusCompleted)).Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count syncs: %w", err)
	}
	if stats.FailedSyncs, err = s.db.SyncLog.Query().
		Where(synclog.StatusEQ(synclog.StatusFailed)).Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count failed syncs: %w", err)
	}

	last, err := s.db.SyncLog.Query().
		Where(synclog.StatusEQ(synclog.StatusCompleted)).
		Order(ent.Desc(synclog.FieldStartedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load last sync: %w", err)
	}
	if last != nil && last.CompletedAt != nil {
		stats.LastSyncTime = last.CompletedAt
	}

	return stats, nil
}

// DocumentSummary is one row in the document listing.
type DocumentSummary struct {
	ID            string     `json:"id"`
	ExternalID    string     `json:"external_id"`
	Title         string     `json:"title"`
	FolderPath    string     `json:"folder_path"`
	MimeKind      string     `json:"mime_kind"`
	IsContextFile bool       `json:"is_context_file"`
	TokenCount    int        `json:"token_count"`
	Status        string     `json:"status"`
	LastSyncedAt  *time.Time `json:"last_synced_at"`
	SyncError     string     `json:"sync_error,omitempty"`
}

// ListDocuments returns all synced documents ordered by folder and title.
func (s *Service) ListDocuments(ctx context.Context) ([]DocumentSummary, error) {
	docs, err := s.db.Document.Query().
		Order(ent.Asc(document.FieldFolderPath), ent.Asc(document.FieldTitle)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	out := make([]DocumentSummary, len(docs))
	for i, d := range docs {
		sum := DocumentSummary{
			ID:            d.ID,
			ExternalID:    d.ExternalID,
			Title:         d.Title,
			FolderPath:    d.FolderPath,
			MimeKind:      string(d.MimeKind),
			IsContextFile: d.IsContextFile,
			TokenCount:    d.TokenCount,
			Status:        string(d.Status),
			LastSyncedAt:  d.LastSyncedAt,
		}
		if d.SyncError != nil {
			sum.SyncError = *d.SyncError
		}
		out[i] = sum
	}
	return out, nil
}

// isContextPath reports whether a folder path passes through the
// configured context folder.
func (s *Service) isContextPath(folderPath string) bool {
	if s.cfg.ContextFolderName == "" {
		return false
	}
	for _, segment := range strings.Split(strings.Trim(folderPath, "/"), "/") {
		if segment == s.cfg.ContextFolderName {
			return true
		}
	}
	return false
}
