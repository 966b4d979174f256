package repository

import (
	"context"

	"blog-backend/internal/domains/author/model"

	"github.com/google/uuid"
)

const tableName = "authors"

// RepositoryInterface - author data access. It satisfies model.NameLookup so
// the name rule can consult storage.
type RepositoryInterface interface {
	Create(ctx context.Context, a *model.Author) (*model.Author, error)
	Update(ctx context.Context, a *model.Author) (*model.Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)
	FindByName(ctx context.Context, name string) (*model.Author, error)
	TableExists(ctx context.Context) (bool, error)
}
