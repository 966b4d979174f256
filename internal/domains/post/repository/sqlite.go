package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/infrastructure/sqlite"
)

type sqliteRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteRepository creates a post repository on the embedded store.
func NewSQLiteRepository(db *sql.DB) RepositoryInterface {
	return &sqliteRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *sqliteRepository) Create(ctx context.Context, p *model.Post) (*model.Post, error) {
	created := *p
	created.ID = uuid.New()
	created.CreatedAt = r.now()
	created.UpdatedAt = created.CreatedAt

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO posts (id, title, content, summary, category, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		created.ID.String(), created.Title, created.Content, sqlite.NullString(created.Summary), created.Category,
		created.CreatedAt, created.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return &created, nil
}

func (r *sqliteRepository) Update(ctx context.Context, p *model.Post) (*model.Post, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE posts SET title = ?, content = ?, summary = ?, category = ?, updated_at = ?
		WHERE id = ?`,
		p.Title, p.Content, sqlite.NullString(p.Summary), p.Category, r.now(), p.ID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	if n == 0 {
		return nil, model.ErrPostNotFound
	}

	return r.GetByID(ctx, p.ID)
}

func (r *sqliteRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var (
		p       model.Post
		rawID   string
		summary sql.NullString
	)

	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, content, summary, category, created_at, updated_at
		FROM posts WHERE id = ?`, id.String(),
	).Scan(&rawID, &p.Title, &p.Content, &summary, &p.Category, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	if p.ID, err = uuid.Parse(rawID); err != nil {
		return nil, fmt.Errorf("invalid post id %q: %w", rawID, err)
	}
	if summary.Valid {
		p.Summary = &summary.String
	}
	return &p, nil
}

func (r *sqliteRepository) TableExists(ctx context.Context) (bool, error) {
	return sqlite.TableExists(ctx, r.db, tableName)
}
