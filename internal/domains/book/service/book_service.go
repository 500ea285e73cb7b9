package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	authorrepo "library-service/internal/domains/author/repository"
	"library-service/internal/domains/book/model"
	"library-service/internal/domains/book/repository"
	"library-service/pkg/cache"
)

// CacheNamespace groups every cached book listing so a single
// invalidation clears them all.
const CacheNamespace = "books"

type bookService struct {
	repo    repository.Repository
	authors authorrepo.Repository

	cache       cache.Cache
	cachePrefix string
	cacheTTL    time.Duration
}

// NewBookService wires the book domain. cache may be nil, in which case
// listings are always computed against the store.
func NewBookService(
	repo repository.Repository,
	authors authorrepo.Repository,
	c cache.Cache,
	cachePrefix string,
	cacheTTL time.Duration,
) Service {
	return &bookService{
		repo:        repo,
		authors:     authors,
		cache:       c,
		cachePrefix: cachePrefix,
		cacheTTL:    cacheTTL,
	}
}

func (s *bookService) Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, model.ErrInvalidTitle
	}
	// The limit counts characters, not bytes; VARCHAR(255) does the same.
	if utf8.RuneCountInString(title) > model.MaxTitleLength {
		return nil, fmt.Errorf("%w: title exceeds %d characters", model.ErrInvalidTitle, model.MaxTitleLength)
	}

	exists, err := s.authors.ExistsByID(ctx, req.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check author existence: %w", err)
	}
	if !exists {
		return nil, model.ErrAuthorMissing
	}

	created, err := s.repo.Create(ctx, &model.Book{
		Title:         title,
		AuthorID:      req.AuthorID,
		Genre:         req.Genre,
		PublishedDate: req.PublishedDate,
	})
	if err != nil {
		return nil, err
	}

	// The write has committed; clear cached listings so the next read
	// sees the new book. Best-effort relative to the primary store: a
	// failed or uninitialized cache must never fail the create.
	if s.cache != nil {
		_ = s.cache.InvalidateNamespace(ctx, cache.Namespace(s.cachePrefix, CacheNamespace))
	}

	return created, nil
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	if id <= 0 {
		return nil, model.ErrBookNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// List serves the listing read-through: cached result within the TTL
// window, otherwise one store query whose result is cached under a key
// derived from the normalized filter.
func (s *bookService) List(ctx context.Context, filter model.Filter) ([]model.Book, error) {
	filter = filter.Normalize()

	key := cache.Key(s.cachePrefix, CacheNamespace, filter.CacheParams())
	return cache.GetOrCompute(ctx, s.cache, key, s.cacheTTL, func() ([]model.Book, error) {
		return s.repo.List(ctx, filter)
	})
}

func (s *bookService) ArchiveOlderThan(ctx context.Context, years int) (int64, error) {
	if years <= 0 {
		return 0, model.ErrInvalidYears
	}

	cutoff := model.ArchiveCutoff(time.Now(), years)
	return s.repo.ArchiveOlderThan(ctx, cutoff)
}
