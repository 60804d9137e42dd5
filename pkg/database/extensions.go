package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect/sql"
)

// CreateVectorIndexes creates the approximate-nearest-neighbor index on
// chunk embeddings. HNSW with cosine distance matches the search query in
// pkg/kb (embedding <=> $1). Kept out of the Ent schema because Ent/Atlas
// cannot express vector index operator classes.
func CreateVectorIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_chunks_embedding_hnsw
		ON chunks USING hnsw (embedding vector_cosine_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create chunk embedding index: %w", err)
	}

	return nil
}

// EnableHypertables converts the telemetry tables to TimescaleDB
// hypertables. Best-effort: when the timescaledb extension is unavailable
// the plain timestamp indexes from the schema still back all reads, so a
// failure here is logged and ignored.
func EnableHypertables(ctx context.Context, driver *sql.Driver) {
	db := driver.DB()

	if _, err := db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS timescaledb`); err != nil {
		slog.Warn("TimescaleDB extension unavailable, telemetry tables stay plain", "error", err)
		return
	}

	for _, table := range []string{"solark_samples", "victron_samples"} {
		_, err := db.ExecContext(ctx,
			fmt.Sprintf(`SELECT create_hypertable('%s', 'timestamp', if_not_exists => TRUE, migrate_data => TRUE)`, table))
		if err != nil {
			slog.Warn("Failed to create hypertable", "table", table, "error", err)
		}
	}
}

// AdvisoryLock takes a transaction-scoped advisory lock keyed by the given
// string. Callers must run it inside a transaction; the lock releases on
// commit or rollback. Used to serialize concurrent syncs of one document.
func AdvisoryLock(ctx context.Context, tx *stdsql.Tx, key string) error {
	if _, err := tx.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		return fmt.Errorf("failed to take advisory lock for %q: %w", key, err)
	}
	return nil
}
