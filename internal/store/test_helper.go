package store

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/vntrieu/zhuyin-practice/internal/database"
)

// SetupTestDB creates a migrated test database connection pool with an empty words table.
// It expects TEST_DATABASE_URL or DATABASE_URL to be set and skips otherwise.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		t.Skip("DATABASE_URL or TEST_DATABASE_URL environment variable is required for tests")
	}

	ctx := context.Background()
	pool, err := database.Connect(ctx, databaseURL)
	require.NoError(t, err, "connect to test database")
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		require.NoError(t, err, "migrate test database")
	}

	if _, err := pool.Exec(ctx, "DELETE FROM words"); err != nil {
		t.Logf("warning: failed to cleanup test data: %v", err)
	}

	return pool
}
