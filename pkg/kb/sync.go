package kb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"github.com/offgrid-ops/commandcenter/ent/document"
	"github.com/offgrid-ops/commandcenter/ent/synclog"
	"github.com/offgrid-ops/commandcenter/pkg/database"
)

// SyncMode selects how aggressively a sync reprocesses documents.
type SyncMode string

const (
	// SyncModeSmart skips documents whose upstream mtime predates the last
	// successful sync of that document.
	SyncModeSmart SyncMode = "smart"
	// SyncModeFull reprocesses every document regardless of mtime.
	SyncModeFull SyncMode = "full"
)

// Sync phases, in order of appearance in the progress stream.
const (
	PhaseListing    = "listing"
	PhaseFetching   = "fetching"
	PhaseChunking   = "chunking"
	PhaseEmbedding  = "embedding"
	PhaseFinalizing = "finalizing"
)

// Summary is the final accounting of one sync run.
// processed = updated + unchanged + failed.
type Summary struct {
	Processed int `json:"processed"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	Deleted   int `json:"deleted"`
	Failed    int `json:"failed"`
}

// ProgressEvent is one record in the sync progress stream. The final event
// always has Done=true and carries either a summary or an error.
type ProgressEvent struct {
	Processed    int      `json:"processed"`
	Total        int      `json:"total"`
	CurrentTitle string   `json:"current_title,omitempty"`
	Phase        string   `json:"phase,omitempty"`
	Done         bool     `json:"done,omitempty"`
	Summary      *Summary `json:"summary,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// Sync runs a synchronization pass against the document provider and
// returns a bounded stream of progress events. The stream always ends with
// a Done event. Cancelling ctx lets the worker finish the current document,
// write a failed log row, and stop.
func (s *Service) Sync(ctx context.Context, mode SyncMode, force bool) <-chan ProgressEvent {
	events := make(chan ProgressEvent, 16)
	go s.runSync(ctx, mode, force, events)
	return events
}

func (s *Service) runSync(ctx context.Context, mode SyncMode, force bool, events chan<- ProgressEvent) {
	defer close(events)

	emit := func(ev ProgressEvent) {
		select {
		case events <- ev:
		case <-ctx.Done():
		}
	}

	started := time.Now()
	log, err := s.db.SyncLog.Create().
		SetID(uuid.New().String()).
		SetStartedAt(started).
		SetStatus(synclog.StatusRunning).
		Save(ctx)
	if err != nil {
		emit(ProgressEvent{Done: true, Error: fmt.Sprintf("failed to start sync: %v", err)})
		return
	}

	summary, runErr := s.syncDocuments(ctx, mode, force, emit)

	status := synclog.StatusCompleted
	errMsg := ""
	if runErr != nil {
		status = synclog.StatusFailed
		errMsg = runErr.Error()
	}

	// The log row is finalized even when ctx is cancelled.
	finalCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.db.SyncLog.UpdateOneID(log.ID).
		SetStatus(status).
		SetCompletedAt(time.Now()).
		SetProcessed(summary.Processed).
		SetUpdated(summary.Updated).
		SetDeleted(summary.Deleted).
		SetFailed(summary.Failed)
	if errMsg != "" {
		update = update.SetErrorMessage(errMsg)
	}
	if _, err := update.Save(finalCtx); err != nil {
		s.logger.Error("Failed to finalize sync log", "error", err)
	}

	if runErr != nil {
		s.logger.Error("Sync failed", "error", runErr, "summary", summary)
		emit(ProgressEvent{Done: true, Summary: summary, Error: errMsg})
		return
	}

	s.version.Add(1)
	s.logger.Info("Sync completed",
		"processed", summary.Processed,
		"updated", summary.Updated,
		"unchanged", summary.Unchanged,
		"deleted", summary.Deleted,
		"failed", summary.Failed,
		"duration", time.Since(started),
		"kb_version", s.version.Load())

	emit(ProgressEvent{Processed: summary.Processed, Total: summary.Processed, Phase: PhaseFinalizing})
	emit(ProgressEvent{Done: true, Summary: summary})
}

func (s *Service) syncDocuments(ctx context.Context, mode SyncMode, force bool, emit func(ProgressEvent)) (*Summary, error) {
	summary := &Summary{}

	emit(ProgressEvent{Phase: PhaseListing})
	listing, err := s.provider.List(ctx, s.cfg.RootFolderID)
	if err != nil {
		return summary, fmt.Errorf("failed to list provider documents: %w", err)
	}
	total := len(listing)

	reprocessAll := force || mode == SyncModeFull

	seen := make([]string, 0, total)
	for _, doc := range listing {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("sync cancelled: %w", err)
		}
		seen = append(seen, doc.ExternalID)
		summary.Processed++

		if !reprocessAll && s.isUnchanged(ctx, doc) {
			summary.Unchanged++
			continue
		}

		if err := s.syncOne(ctx, doc, emit, summary.Processed, total); err != nil {
			summary.Failed++
			s.recordDocumentFailure(ctx, doc, err)
			continue
		}
		summary.Updated++
	}

	emit(ProgressEvent{Processed: summary.Processed, Total: total, Phase: PhaseFinalizing})

	deleted, err := s.deleteAbsent(ctx, seen)
	if err != nil {
		return summary, err
	}
	summary.Deleted = deleted

	return summary, nil
}

// isUnchanged reports whether the local copy is at least as new as the
// provider's. Lookup errors count as changed so the document gets
// refreshed.
func (s *Service) isUnchanged(ctx context.Context, doc ProviderDocument) bool {
	local, err := s.db.Document.Query().
		Where(document.ExternalIDEQ(doc.ExternalID)).
		Only(ctx)
	if err != nil {
		return false
	}
	return local.LastSyncedAt != nil &&
		local.Status == document.StatusSynced &&
		!doc.ModifiedAt.After(*local.LastSyncedAt)
}

// syncOne fetches, chunks, embeds, and atomically writes one document.
func (s *Service) syncOne(ctx context.Context, doc ProviderDocument, emit func(ProgressEvent), processed, total int) error {
	emit(ProgressEvent{Processed: processed, Total: total, CurrentTitle: doc.Title, Phase: PhaseFetching})
	text, err := s.provider.FetchText(ctx, doc.ExternalID)
	if err != nil {
		return err
	}

	emit(ProgressEvent{Processed: processed, Total: total, CurrentTitle: doc.Title, Phase: PhaseChunking})
	chunks := s.chunker.Split(text)

	emit(ProgressEvent{Processed: processed, Total: total, CurrentTitle: doc.Title, Phase: PhaseEmbedding})
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	vectors, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		return fmt.Errorf("embedding failed: %w", err)
	}
	if len(vectors) != len(chunks) {
		return fmt.Errorf("embedding count mismatch: %d chunks, %d vectors", len(chunks), len(vectors))
	}

	return s.writeDocument(ctx, doc, text, chunks, vectors)
}

// writeDocument replaces a document and its chunks in one transaction.
// Concurrent syncs of the same document serialize on an advisory lock
// keyed by external_id.
func (s *Service) writeDocument(ctx context.Context, doc ProviderDocument, text string, chunks []Chunk, vectors [][]float32) error {
	tx, err := s.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := database.AdvisoryLock(ctx, tx, doc.ExternalID); err != nil {
		return err
	}

	now := time.Now()
	tokenCount := 0
	for _, c := range chunks {
		tokenCount += c.TokenCount
	}

	var documentID string
	err = tx.QueryRowContext(ctx, `
		INSERT INTO documents (document_id, external_id, title, folder_path, mime_kind,
			full_text, is_context_file, token_count, status, last_synced_at, sync_error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'synced', $9, NULL, $9)
		ON CONFLICT (external_id) DO UPDATE SET
			title = EXCLUDED.title,
			folder_path = EXCLUDED.folder_path,
			mime_kind = EXCLUDED.mime_kind,
			full_text = EXCLUDED.full_text,
			is_context_file = EXCLUDED.is_context_file,
			token_count = EXCLUDED.token_count,
			status = 'synced',
			last_synced_at = EXCLUDED.last_synced_at,
			sync_error = NULL
		RETURNING document_id`,
		uuid.New().String(), doc.ExternalID, doc.Title, doc.FolderPath, doc.MimeKind,
		text, s.isContextPath(doc.FolderPath), tokenCount, now).
		Scan(&documentID)
	if err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM chunks WHERE document_id = $1`, documentID); err != nil {
		return fmt.Errorf("failed to delete old chunks: %w", err)
	}

	for i, c := range chunks {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO chunks (chunk_id, document_id, order_index, text, token_count, embedding)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New().String(), documentID, c.OrderIndex, c.Text, c.TokenCount, pgvector.NewVector(vectors[i])); err != nil {
			return fmt.Errorf("failed to insert chunk %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit document write: %w", err)
	}

	return nil
}

// recordDocumentFailure marks an existing local document failed without
// deleting it; documents that never synced leave no row behind.
func (s *Service) recordDocumentFailure(ctx context.Context, doc ProviderDocument, cause error) {
	reason := cause.Error()
	if errors.Is(cause, ErrDocumentGone) {
		reason = "not_found"
	}
	s.logger.Warn("Document sync failed", "external_id", doc.ExternalID, "title", doc.Title, "error", cause)

	err := s.db.Document.Update().
		Where(document.ExternalIDEQ(doc.ExternalID)).
		SetStatus(document.StatusFailed).
		SetSyncError(reason).
		Exec(ctx)
	if err != nil {
		s.logger.Error("Failed to record document failure", "external_id", doc.ExternalID, "error", err)
	}
}

// deleteAbsent removes local documents no longer present upstream. Chunk
// rows go with them via the cascading foreign key.
func (s *Service) deleteAbsent(ctx context.Context, seenExternalIDs []string) (int, error) {
	q := s.db.Document.Delete()
	if len(seenExternalIDs) > 0 {
		q = q.Where(document.ExternalIDNotIn(seenExternalIDs...))
	}
	deleted, err := q.Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete absent documents: %w", err)
	}
	return deleted, nil
}
