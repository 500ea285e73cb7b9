package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-service/internal/domains/book/model"
	"library-service/internal/shared"
	"library-service/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const bookColumns = `
        b.id, b.title, b.genre, b.published_date, b.is_archived, b.author_id,
        a.id, a.name, a.date_of_birth
`

func scanBook(row pgx.Row) (*model.Book, error) {
	var b model.Book
	var published, dob *time.Time
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Genre,
		&published,
		&b.IsArchived,
		&b.AuthorID,
		&b.Author.ID,
		&b.Author.Name,
		&dob,
	)
	if err != nil {
		return nil, err
	}
	b.PublishedDate = shared.DatePtr(published)
	b.Author.DateOfBirth = shared.DatePtr(dob)
	return &b, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        INSERT INTO books (title, genre, published_date, author_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `

	var id int64
	err := r.pool.QueryRow(ctx, query, b.Title, b.Genre, b.PublishedDate.TimePtr(), b.AuthorID).Scan(&id)
	if err != nil {
		// FK backstop: the service checks author existence first, but the
		// author can be deleted between the check and the insert.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, model.ErrAuthorMissing
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	// Re-read with the author joined so the response carries the relation.
	return r.GetByID(ctx, id)
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	query := `
        SELECT ` + bookColumns + `
        FROM books b
        JOIN authors a ON a.id = b.author_id
        WHERE b.id = $1
    `

	b, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}
	return b, nil
}

// List returns books with their authors, optionally filtered by a
// case-insensitive substring match on the author name.
//
// Ordering: published_date DESC with NULLS LAST (stated explicitly; the
// engine default for DESC would put nulls first), title ASC as the tie
// breaker.
func (r *postgresRepository) List(ctx context.Context, filter model.Filter) ([]model.Book, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT ` + bookColumns + `
        FROM books b
        JOIN authors a ON a.id = b.author_id
    `)

	args := []interface{}{}
	if filter.AuthorName != "" {
		queryBuilder.WriteString(" WHERE a.name ILIKE $1")
		args = append(args, "%"+escapeWildcards(filter.AuthorName)+"%")
	}

	queryBuilder.WriteString(" ORDER BY b.published_date DESC NULLS LAST, b.title ASC")

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	// Initialized (not nil) so an empty result marshals as [] and cached
	// payloads stay byte-identical to direct ones.
	books := make([]model.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) ArchiveOlderThan(ctx context.Context, cutoff shared.Date) (int64, error) {
	query := `
        UPDATE books
        SET is_archived = TRUE
        WHERE published_date IS NOT NULL
          AND published_date <= $1
          AND is_archived = FALSE
    `

	// One unit of work per run: the bulk update either commits as a whole
	// or rolls back; no partial archive is ever visible.
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		tag, err := tx.Exec(ctx, query, cutoff.Time)
		if err != nil {
			return 0, fmt.Errorf("failed to archive books: %w", err)
		}
		return tag.RowsAffected(), nil
	})
}

// escapeWildcards keeps user input from injecting ILIKE wildcards.
func escapeWildcards(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
