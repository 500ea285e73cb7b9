package service

import (
	"context"

	"library-service/internal/domains/author/model"
)

type Service interface {
	Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error)
	GetByID(ctx context.Context, id int64) (*model.Author, error)
	List(ctx context.Context) ([]model.Author, error)
}
