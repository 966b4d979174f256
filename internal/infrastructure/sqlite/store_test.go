package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "blog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestMigrate_CreatesTables(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	for _, table := range []string{"authors", "posts"} {
		ok, err := s.TableExists(ctx, table)
		require.NoError(t, err)
		assert.False(t, ok, table)
	}

	require.NoError(t, s.Migrate(ctx))

	for _, table := range []string{"authors", "posts", "schema_migrations"} {
		ok, err := s.TableExists(ctx, table)
		require.NoError(t, err)
		assert.True(t, ok, table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	require.NoError(t, s.Migrate(ctx))
	require.NoError(t, s.Migrate(ctx))

	var n int
	require.NoError(t, s.DB().QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&n))
	assert.Equal(t, 2, n)
}

func TestIsUniqueViolation(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)
	require.NoError(t, s.Migrate(ctx))

	insert := `INSERT INTO authors (id, name, created_at, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`
	_, err := s.DB().ExecContext(ctx, insert, "a", "Jane")
	require.NoError(t, err)

	_, err = s.DB().ExecContext(ctx, insert, "b", "Jane")
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	_, err = s.DB().ExecContext(ctx, `INSERT INTO authors (id, created_at, updated_at) VALUES ('c', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`)
	require.Error(t, err)
	assert.False(t, IsUniqueViolation(err), "NOT NULL is not a uniqueness failure")
}
