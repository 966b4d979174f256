package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/author/model"
	"blog-backend/internal/domains/author/repository"
	"blog-backend/internal/infrastructure/sqlite"
	"blog-backend/internal/shared/rules"
)

func newRepo(t *testing.T, migrate bool) repository.RepositoryInterface {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "blog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	if migrate {
		require.NoError(t, store.Migrate(context.Background()))
	}
	return repository.NewSQLiteRepository(store.DB())
}

func ptr(s string) *string { return &s }

func TestSQLiteRepository_TableExists(t *testing.T) {
	ctx := context.Background()

	ok, err := newRepo(t, false).TableExists(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = newRepo(t, true).TableExists(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSQLiteRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, true)

	created, err := repo.Create(ctx, &model.Author{Name: "Ada Lovelace", PhoneNumber: ptr("5551234567")})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.Name)
	require.NotNil(t, got.PhoneNumber)
	assert.Equal(t, "5551234567", *got.PhoneNumber)

	byName, err := repo.FindByName(ctx, "Ada Lovelace")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
}

func TestSQLiteRepository_NullPhone(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, true)

	created, err := repo.Create(ctx, &model.Author{Name: "No Phone"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PhoneNumber)
}

func TestSQLiteRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, true)

	_, err := repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)

	_, err = repo.FindByName(ctx, "nobody")
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)

	_, err = repo.Update(ctx, &model.Author{ID: uuid.New(), Name: "ghost"})
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestSQLiteRepository_FindByNameIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, true)

	_, err := repo.Create(ctx, &model.Author{Name: "Jane"})
	require.NoError(t, err)

	_, err = repo.FindByName(ctx, "jane")
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestSQLiteRepository_DuplicateNameBackstop(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, true)

	_, err := repo.Create(ctx, &model.Author{Name: "Jane"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &model.Author{Name: "Jane"})
	assert.ErrorIs(t, err, rules.ErrUniqueness)
	assert.EqualError(t, err, model.MsgNameTaken)

	other, err := repo.Create(ctx, &model.Author{Name: "John"})
	require.NoError(t, err)

	other.Name = "Jane"
	_, err = repo.Update(ctx, other)
	assert.ErrorIs(t, err, rules.ErrUniqueness)
}

func TestSQLiteRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, true)

	created, err := repo.Create(ctx, &model.Author{Name: "Jane", PhoneNumber: ptr("5551234567")})
	require.NoError(t, err)

	created.Name = "Jane Doe"
	created.PhoneNumber = nil
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Nil(t, updated.PhoneNumber)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}
