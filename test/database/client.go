// Package database provides integration-test helpers backed by a real
// PostgreSQL instance with the vector extension.
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/offgrid-ops/commandcenter/pkg/database"
	"github.com/offgrid-ops/commandcenter/test/util"
)

// NewTestClient creates a database client against an isolated test schema.
// In CI (CI_DATABASE_URL set) it connects to an external PostgreSQL service;
// locally it shares one pgvector testcontainer per package. Cleanup is
// registered on the test.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	err := database.CreateVectorIndexes(ctx, drv)
	require.NoError(t, err)

	return database.NewClientFromEnt(entClient, db)
}
