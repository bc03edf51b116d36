// Package dbtest opens throwaway migrated databases for tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sitesense/db"
	"sitesense/db/migrations"
)

// Open returns storage backed by a fresh sqlite file under t.TempDir.
func Open(t *testing.T) *db.Storage {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	path := filepath.Join(t.TempDir(), "sitesense.db")
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_time_format=sqlite"

	conn, err := db.Connect(ctx, db.DriverSQLite, dsn, db.PoolOptions{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, migrations.Run(ctx, conn.DB, db.DriverSQLite, zap.NewNop()))
	return db.NewStorage(conn)
}
