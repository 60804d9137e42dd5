package kb

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"

	"github.com/offgrid-ops/commandcenter/pkg/contextmgr"
)

// SearchChunks embeds the query and ranks chunks by cosine similarity.
// Results below the threshold are filtered; a negative threshold selects
// the configured default. An embedding failure degrades to an empty result
// set so callers can treat it as "no KB context".
func (s *Service) SearchChunks(ctx context.Context, query string, topK int, threshold float64) ([]contextmgr.ScoredChunk, error) {
	if query == "" || topK <= 0 {
		return nil, nil
	}
	if threshold < 0 {
		threshold = s.cfg.SimilarityThreshold
	}

	vectors, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		s.logger.Warn("Query embedding failed, returning no KB context", "error", err)
		return nil, nil
	}
	if len(vectors) == 0 {
		return nil, nil
	}

	// The HNSW index serves the <=> (cosine distance) ordering; similarity
	// is 1 - distance.
	rows, err := s.db.DB().QueryContext(ctx, `
		SELECT d.title, d.folder_path, c.text, 1 - (c.embedding <=> $1) AS similarity
		FROM chunks c
		JOIN documents d ON d.document_id = c.document_id
		WHERE 1 - (c.embedding <=> $1) >= $2
		ORDER BY c.embedding <=> $1
		LIMIT $3`,
		pgvector.NewVector(vectors[0]), threshold, topK)
	if err != nil {
		return nil, fmt.Errorf("failed to search chunks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []contextmgr.ScoredChunk
	for rows.Next() {
		var r contextmgr.ScoredChunk
		if err := rows.Scan(&r.Title, &r.Folder, &r.ChunkText, &r.Similarity); err != nil {
			return nil, fmt.Errorf("failed to scan search result: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate search results: %w", err)
	}

	return results, nil
}
