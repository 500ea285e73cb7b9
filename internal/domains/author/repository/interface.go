package repository

import (
	"context"

	"library-service/internal/domains/author/model"
)

// Repository is the author data-access contract.
type Repository interface {
	Create(ctx context.Context, a *model.Author) (*model.Author, error)
	GetByID(ctx context.Context, id int64) (*model.Author, error)
	List(ctx context.Context) ([]model.Author, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
