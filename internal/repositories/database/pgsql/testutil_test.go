package pgsql

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/d0ggzi/currency-parser/internal/repositories/database/migrations"
	"github.com/d0ggzi/currency-parser/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB starts a PostgreSQL container, applies the embedded migrations and
// returns a pool plus a cleanup function that must be called after tests complete.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	t.Helper()

	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	err = database.RunMigrations(dsn, migrations.FS, migrations.Dir, slog.Default())
	require.NoError(t, err, "failed to apply migrations")

	pool, err := database.NewPgxPool(ctx, dsn, true)
	require.NoError(t, err, "failed to create pool")

	cleanup := func() {
		database.ClosePgxPool(pool)
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return pool, cleanup
}

// truncateAll empties every table between tests.
func truncateAll(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`TRUNCATE currency_values, countries, currencies RESTART IDENTITY CASCADE;`)
	require.NoError(t, err, "failed to truncate tables")
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
