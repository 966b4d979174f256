package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/infrastructure/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const postColumns = `id, title, content, summary, category, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, p *model.Post) (*model.Post, error) {
	query := `
        INSERT INTO posts (title, content, summary, category)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + postColumns

	created, err := scanPost(r.pool.QueryRow(ctx, query, p.Title, p.Content, p.Summary, p.Category))
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *model.Post) (*model.Post, error) {
	query := `
        UPDATE posts
        SET title = $2, content = $3, summary = $4, category = $5, updated_at = NOW()
        WHERE id = $1
        RETURNING ` + postColumns

	updated, err := scanPost(r.pool.QueryRow(ctx, query, p.ID, p.Title, p.Content, p.Summary, p.Category))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	p, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) TableExists(ctx context.Context) (bool, error) {
	return database.TableExists(ctx, r.pool, tableName)
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var p model.Post
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.Summary,
		&p.Category,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
