package service

import (
	"context"

	"library-service/internal/domains/book/model"
)

type Service interface {
	Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error)
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	List(ctx context.Context, filter model.Filter) ([]model.Book, error)

	// ArchiveOlderThan bulk-archives books published more than years*365
	// days ago and returns the number of rows changed. Idempotent.
	ArchiveOlderThan(ctx context.Context, years int) (int64, error)
}
