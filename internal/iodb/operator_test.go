package iodb_test

import (
	"context"
	"os"
	"testing"

	"github.com/privacyui/pupdb/internal/iodb"
	"github.com/privacyui/pupdb/pkg/config"
	"github.com/privacyui/pupdb/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Note: These are integration tests that require PostgreSQL.
//
// Connection settings come from PUPDB_DATABASE_* environment
// variables on top of the built-in defaults
// (postgres/postgres@localhost:5432). The database name is always
// forced to "pupdb_test" for safety.
//
// Without a reachable PostgreSQL the tests skip themselves; use
// go test -short to skip them outright.

func testDatabaseConfig() *config.DatabaseConfig {
	cfg := config.New()
	dbCfg := cfg.Database

	if host := os.Getenv("PUPDB_DATABASE_HOST"); host != "" {
		dbCfg.Host = host
	}
	if user := os.Getenv("PUPDB_DATABASE_USER"); user != "" {
		dbCfg.User = user
	}
	if pass := os.Getenv("PUPDB_DATABASE_PASSWORD"); pass != "" {
		dbCfg.Password = pass
	}
	dbCfg.Database = "pupdb_test"

	return &dbCfg
}

func connectTestDB(t *testing.T) db.Operator {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	if err := op.Connect(context.Background(), testDatabaseConfig()); err != nil {
		t.Skipf("no test database available: %v", err)
	}
	t.Cleanup(func() { op.Close() })
	return op
}

func TestPgxOperatorConnect(t *testing.T) {
	op := connectTestDB(t)
	require.NotNil(t, op.Pool(), "Pool should be set after Connect")
}

func TestPgxOperatorTableLifecycle(t *testing.T) {
	ctx := context.Background()
	op := connectTestDB(t)

	_, err := op.Pool().Exec(ctx,
		`CREATE TABLE IF NOT EXISTS pupdb_probe (id INT PRIMARY KEY)`)
	require.NoError(t, err)

	exists, err := op.TableExists(ctx, "pupdb_probe")
	require.NoError(t, err)
	assert.True(t, exists, "created table should be visible")

	hasTables, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.True(t, hasTables)

	require.NoError(t, op.DropAllTables(ctx))

	exists, err = op.TableExists(ctx, "pupdb_probe")
	require.NoError(t, err)
	assert.False(t, exists, "dropped table should be gone")

	hasTables, err = op.HasTables(ctx)
	require.NoError(t, err)
	assert.False(t, hasTables)
}

func TestPgxOperatorNotConnected(t *testing.T) {
	op := iodb.NewPgxOperator()

	_, err := op.TableExists(context.Background(), "anything")
	assert.Error(t, err, "queries before Connect should fail")
	assert.Nil(t, op.Pool())
}
