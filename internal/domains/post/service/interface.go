package service

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/post/model"
)

// ServiceInterface - post business logic
type ServiceInterface interface {
	Create(ctx context.Context, req *model.CreatePostRequest) (*model.Post, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdatePostRequest) (*model.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	ValidateBatch(ctx context.Context, reqs []model.CreatePostRequest) []error
}
