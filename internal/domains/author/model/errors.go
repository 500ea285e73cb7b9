package model

import "errors"

var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrDuplicateName  = errors.New("author with this name already exists")
	ErrInvalidName    = errors.New("author name must not be empty")
)
