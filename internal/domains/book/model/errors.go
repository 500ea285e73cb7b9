package model

import "errors"

var (
	ErrBookNotFound  = errors.New("book not found")
	ErrAuthorMissing = errors.New("author not found")
	ErrInvalidTitle  = errors.New("book title must not be empty")
	ErrInvalidYears  = errors.New("archive years must be positive")
)
