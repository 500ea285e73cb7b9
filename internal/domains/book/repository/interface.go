package repository

import (
	"context"

	"library-service/internal/domains/book/model"
	"library-service/internal/shared"
)

// Repository is the book data-access contract. Create and the getters
// return records with the author relation eagerly loaded.
type Repository interface {
	Create(ctx context.Context, b *model.Book) (*model.Book, error)
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	List(ctx context.Context, filter model.Filter) ([]model.Book, error)

	// ArchiveOlderThan flips is_archived on every unarchived book whose
	// published_date is non-null and on or before cutoff, in a single
	// bulk statement inside one transaction. Returns rows affected.
	ArchiveOlderThan(ctx context.Context, cutoff shared.Date) (int64, error)
}
