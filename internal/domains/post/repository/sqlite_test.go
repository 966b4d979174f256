package repository_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/domains/post/repository"
	"blog-backend/internal/infrastructure/sqlite"
)

func newRepo(t *testing.T) repository.RepositoryInterface {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "blog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Migrate(context.Background()))
	return repository.NewSQLiteRepository(store.DB())
}

func TestSQLiteRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	ok, err := repo.TableExists(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	summary := "A short summary."
	created, err := repo.Create(ctx, &model.Post{
		Title:    "Top 10 Secrets",
		Content:  strings.Repeat("c", 300),
		Summary:  &summary,
		Category: model.CategoryFiction,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Top 10 Secrets", got.Title)
	assert.Len(t, got.Content, 300)
	require.NotNil(t, got.Summary)
	assert.Equal(t, summary, *got.Summary)
	assert.Equal(t, model.CategoryFiction, got.Category)

	got.Summary = nil
	got.Category = model.CategoryNonFiction
	updated, err := repo.Update(ctx, got)
	require.NoError(t, err)
	assert.Nil(t, updated.Summary)
	assert.Equal(t, model.CategoryNonFiction, updated.Category)
}

func TestSQLiteRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrPostNotFound)

	_, err = repo.Update(ctx, &model.Post{ID: uuid.New(), Title: "Top"})
	assert.ErrorIs(t, err, model.ErrPostNotFound)
}
