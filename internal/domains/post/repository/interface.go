package repository

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/post/model"
)

const tableName = "posts"

// RepositoryInterface - post data access
type RepositoryInterface interface {
	Create(ctx context.Context, p *model.Post) (*model.Post, error)
	Update(ctx context.Context, p *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	TableExists(ctx context.Context) (bool, error)
}
