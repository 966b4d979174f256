package service

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/author/model"
)

// ServiceInterface - author business logic
type ServiceInterface interface {
	Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)
	// ValidateBatch validates requests without persisting them. The result
	// has one entry per request, nil when that request is acceptable.
	ValidateBatch(ctx context.Context, reqs []model.CreateAuthorRequest) ([]error, error)
}
