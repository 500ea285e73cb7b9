package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	authormodel "library-service/internal/domains/author/model"
	"library-service/internal/shared"
)

const (
	MaxTitleLength = 255
	MaxGenreLength = 100
)

// Book is the persistence model with the author relation eagerly loaded.
type Book struct {
	ID            int64              `json:"id"`
	Title         string             `json:"title"`
	AuthorID      int64              `json:"author_id"`
	Genre         *string            `json:"genre"`
	PublishedDate *shared.Date       `json:"published_date"`
	IsArchived    bool               `json:"is_archived"`
	Author        authormodel.Author `json:"author"`
}

type CreateBookRequest struct {
	Title         string       `json:"title"`
	AuthorID      int64        `json:"author_id"`
	Genre         *string      `json:"genre"`
	PublishedDate *shared.Date `json:"published_date"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, MaxTitleLength)),
		validation.Field(&r.AuthorID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Genre, validation.RuneLength(0, MaxGenreLength)),
	)
}

// Filter holds the book listing parameters.
type Filter struct {
	AuthorName string
}

// Normalize trims the author-name filter; an empty-after-trim value is
// treated as absent.
func (f Filter) Normalize() Filter {
	f.AuthorName = strings.TrimSpace(f.AuthorName)
	return f
}

// CacheParams exposes the full normalized parameter set for cache key
// derivation. The value is lowercased because the match itself is
// case-insensitive, so "Smith" and "smith" name the same result.
func (f Filter) CacheParams() map[string]string {
	return map[string]string{
		"author_name": strings.ToLower(f.AuthorName),
	}
}
