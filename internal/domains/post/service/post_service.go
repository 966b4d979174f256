package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/domains/post/repository"
	"blog-backend/internal/shared/rules"
)

type postService struct {
	repo repository.RepositoryInterface
}

// NewPostService refuses to build a service when the posts table is missing.
func NewPostService(ctx context.Context, repo repository.RepositoryInterface) (ServiceInterface, error) {
	ok, err := repo.TableExists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check posts table: %w", err)
	}
	if !ok {
		return nil, model.ErrSchemaNotReady
	}

	return &postService{repo: repo}, nil
}

func (s *postService) Create(ctx context.Context, req *model.CreatePostRequest) (*model.Post, error) {
	p, err := model.NewPost(req.Fields()...)
	if err != nil {
		logRejection(err, "create")
		return nil, err
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("post_id", created.ID.String()).
		Str("category", created.Category).
		Msg("Post created")
	return created, nil
}

func (s *postService) Update(ctx context.Context, id uuid.UUID, req *model.UpdatePostRequest) (*model.Post, error) {
	if id == uuid.Nil {
		return nil, model.ErrPostNotFound
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed, err := current.Apply(req.Fields()...)
	if err != nil {
		logRejection(err, "update")
		return nil, err
	}

	updated, err := s.repo.Update(ctx, changed)
	if err != nil {
		return nil, err
	}

	log.Info().Str("post_id", updated.ID.String()).Msg("Post updated")
	return updated, nil
}

func (s *postService) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	if id == uuid.Nil {
		return nil, model.ErrPostNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *postService) ValidateBatch(_ context.Context, reqs []model.CreatePostRequest) []error {
	results := make([]error, len(reqs))
	for i := range reqs {
		_, results[i] = model.NewPost(reqs[i].Fields()...)
	}
	return results
}

func logRejection(err error, op string) {
	if rules.IsValidation(err) {
		log.Debug().Err(err).Str("op", op).Str("code", rules.ToErrorCode(err)).Msg("Post rejected")
	}
}
