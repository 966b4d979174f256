package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/author/model"
	"blog-backend/internal/infrastructure/sqlite"
)

type sqliteRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteRepository creates an author repository on the embedded store.
// IDs and timestamps are assigned here since SQLite has no defaults for them.
func NewSQLiteRepository(db *sql.DB) RepositoryInterface {
	return &sqliteRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *sqliteRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	created := *a
	created.ID = uuid.New()
	created.CreatedAt = r.now()
	created.UpdatedAt = created.CreatedAt

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO authors (id, name, phone_number, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		created.ID.String(), created.Name, sqlite.NullString(created.PhoneNumber), created.CreatedAt, created.UpdatedAt,
	)
	if err != nil {
		if sqlite.IsUniqueViolation(err) {
			return nil, model.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *sqliteRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	updated := *a
	updated.UpdatedAt = r.now()

	res, err := r.db.ExecContext(ctx, `
		UPDATE authors SET name = ?, phone_number = ?, updated_at = ?
		WHERE id = ?`,
		updated.Name, sqlite.NullString(updated.PhoneNumber), updated.UpdatedAt, updated.ID.String(),
	)
	if err != nil {
		if sqlite.IsUniqueViolation(err) {
			return nil, model.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	if n == 0 {
		return nil, model.ErrAuthorNotFound
	}

	return r.GetByID(ctx, updated.ID)
}

func (r *sqliteRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	a, err := r.scanOne(ctx, `WHERE id = ?`, id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}
	return a, nil
}

func (r *sqliteRepository) FindByName(ctx context.Context, name string) (*model.Author, error) {
	a, err := r.scanOne(ctx, `WHERE name = ?`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to find author by name: %w", err)
	}
	return a, nil
}

func (r *sqliteRepository) TableExists(ctx context.Context) (bool, error) {
	return sqlite.TableExists(ctx, r.db, tableName)
}

// scanOne returns model.ErrAuthorNotFound (wrapped by callers) when no row
// matches.
func (r *sqliteRepository) scanOne(ctx context.Context, where string, args ...any) (*model.Author, error) {
	var (
		a     model.Author
		id    string
		phone sql.NullString
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, phone_number, created_at, updated_at FROM authors `+where, args...,
	).Scan(&id, &a.Name, &phone, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrAuthorNotFound
	}
	if err != nil {
		return nil, err
	}

	if a.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid author id %q: %w", id, err)
	}
	if phone.Valid {
		a.PhoneNumber = &phone.String
	}
	return &a, nil
}
