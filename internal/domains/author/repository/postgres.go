package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-service/internal/domains/author/model"
	"library-service/internal/shared"
)

// postgresRepository implements Repository on a pgx connection pool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (name, date_of_birth)
        VALUES ($1, $2)
        RETURNING id, name, date_of_birth
    `

	var created model.Author
	var dob *time.Time
	err := r.pool.QueryRow(ctx, query, a.Name, a.DateOfBirth.TimePtr()).Scan(
		&created.ID,
		&created.Name,
		&dob,
	)

	if err != nil {
		// Unique constraint on name is the backstop for the service-level
		// uniqueness check (a concurrent create can slip past it).
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, model.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	created.DateOfBirth = shared.DatePtr(dob)
	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	query := `
        SELECT id, name, date_of_birth
        FROM authors
        WHERE id = $1
    `

	var a model.Author
	var dob *time.Time
	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &dob)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	a.DateOfBirth = shared.DatePtr(dob)
	return &a, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Author, error) {
	query := `
        SELECT id, name, date_of_birth
        FROM authors
        ORDER BY name ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := make([]model.Author, 0)
	for rows.Next() {
		var a model.Author
		var dob *time.Time
		if err := rows.Scan(&a.ID, &a.Name, &dob); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		a.DateOfBirth = shared.DatePtr(dob)
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}

// ExistsByName performs a case-sensitive exact match; "Smith" and "SMITH"
// are distinct authors.
func (r *postgresRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE name = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check author name: %w", err)
	}
	return exists, nil
}
