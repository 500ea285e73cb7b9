package database

import (
	"context"
	"fmt"
)

// schemaStatements create the two tables and their indexes. Deleting an
// author cascades to its books via the foreign key, not via application
// code. Statements are idempotent so EnsureSchema can run at every start.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS authors (
		id            BIGSERIAL PRIMARY KEY,
		name          VARCHAR(255) NOT NULL UNIQUE,
		date_of_birth DATE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_authors_name ON authors (name)`,
	`CREATE TABLE IF NOT EXISTS books (
		id             BIGSERIAL PRIMARY KEY,
		title          VARCHAR(255) NOT NULL,
		genre          VARCHAR(100),
		published_date DATE,
		is_archived    BOOLEAN NOT NULL DEFAULT FALSE,
		author_id      BIGINT NOT NULL REFERENCES authors(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_books_title ON books (title)`,
	`CREATE INDEX IF NOT EXISTS idx_books_genre ON books (genre)`,
	`CREATE INDEX IF NOT EXISTS idx_books_is_archived ON books (is_archived)`,
	`CREATE INDEX IF NOT EXISTS idx_books_author_id ON books (author_id)`,
}

// EnsureSchema creates the tables when they do not exist yet. Intended for
// development and local testing; production deployments run migrations
// out of band.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
