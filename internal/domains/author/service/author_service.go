package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"library-service/internal/domains/author/model"
	"library-service/internal/domains/author/repository"
)

type authorService struct {
	repo repository.Repository
}

func NewAuthorService(repo repository.Repository) Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, model.ErrInvalidName
	}
	// The limit counts characters, not bytes; VARCHAR(255) does the same.
	if utf8.RuneCountInString(name) > model.MaxNameLength {
		return nil, fmt.Errorf("%w: name exceeds %d characters", model.ErrInvalidName, model.MaxNameLength)
	}

	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check name uniqueness: %w", err)
	}
	if exists {
		return nil, model.ErrDuplicateName
	}

	created, err := s.repo.Create(ctx, &model.Author{
		Name:        name,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	if id <= 0 {
		return nil, model.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) List(ctx context.Context) ([]model.Author, error) {
	return s.repo.List(ctx)
}
