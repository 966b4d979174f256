package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/author/model"
	"blog-backend/internal/domains/author/repository"
	"blog-backend/internal/shared/rules"
)

type authorService struct {
	repo repository.RepositoryInterface
}

// NewAuthorService checks that the authors table exists before handing out
// a service, so the name rule never runs against a missing schema.
func NewAuthorService(ctx context.Context, repo repository.RepositoryInterface) (ServiceInterface, error) {
	ok, err := repo.TableExists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check authors table: %w", err)
	}
	if !ok {
		return nil, model.ErrSchemaNotReady
	}

	return &authorService{repo: repo}, nil
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	a, err := model.NewAuthor(ctx, s.repo, req.Fields()...)
	if err != nil {
		logRejection(err, "create")
		return nil, err
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, err
	}

	log.Info().Str("author_id", created.ID.String()).Msg("Author created")
	return created, nil
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.Author, error) {
	if id == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed, err := current.Apply(ctx, s.repo, req.Fields()...)
	if err != nil {
		logRejection(err, "update")
		return nil, err
	}

	updated, err := s.repo.Update(ctx, changed)
	if err != nil {
		return nil, err
	}

	log.Info().Str("author_id", updated.ID.String()).Msg("Author updated")
	return updated, nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	if id == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) ValidateBatch(ctx context.Context, reqs []model.CreateAuthorRequest) ([]error, error) {
	names := newBatchNames(s.repo)
	results := make([]error, len(reqs))

	for i := range reqs {
		a, err := model.NewAuthor(ctx, names, reqs[i].Fields()...)
		if err != nil {
			if !rules.IsValidation(err) {
				return nil, err
			}
			results[i] = err
			continue
		}
		names.claim(a.Name)
	}

	return results, nil
}

func logRejection(err error, op string) {
	if rules.IsValidation(err) {
		log.Debug().Err(err).Str("op", op).Str("code", rules.ToErrorCode(err)).Msg("Author rejected")
	}
}
