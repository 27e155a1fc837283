package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore opens a store in a fresh temporary directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "test_blast_results.db"))
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })

	return store
}

func TestOpen_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reads.fa_blast_results.db")

	store, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, path, store.Path())
	assert.FileExists(t, path)
	assert.NoError(t, store.db.Ping())
}

func TestOpen_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "x.db")

	_, err := Open(context.Background(), path)
	assert.Error(t, err)
}

func TestOpen_Migrations(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	tables := []string{"results", "searches", "schema_migrations"}
	for _, table := range tables {
		var name string
		err := store.db.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}

	v, err := store.version(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestOpen_ResultsSchema(t *testing.T) {
	store := setupTestStore(t)

	rows, err := store.db.Query("PRAGMA table_info(results)")
	require.NoError(t, err)
	defer rows.Close()

	type column struct{ name, typ string }
	var cols []column
	for rows.Next() {
		var (
			cid       int
			name, typ string
			notNull   int
			dflt      any
			pk        int
		)
		require.NoError(t, rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk))
		cols = append(cols, column{name, typ})
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, []column{
		{"sequence_id", "TEXT"},
		{"description", "TEXT"},
		{"percent_id", "REAL"},
		{"e_value", "REAL"},
	}, cols)
}

func TestOpen_ReopenDoesNotReapplyMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.db")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		store, err := Open(ctx, path)
		require.NoError(t, err)
		var count int
		require.NoError(t, store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count))
		assert.Equal(t, 2, count)
		require.NoError(t, store.Close())
	}
}

func TestDSN_EscapesPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/out/reads.fa_blast_results.db", "file:/out/reads.fa_blast_results.db?_pragma=busy_timeout(5000)"},
		{"/out/what?.db", "file:/out/what%3F.db?_pragma=busy_timeout(5000)"},
		{"/out/x#1.db", "file:/out/x%231.db?_pragma=busy_timeout(5000)"},
		{"/out/a%20b.db", "file:/out/a%2520b.db?_pragma=busy_timeout(5000)"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, dsn(tt.path))
		})
	}
}
