package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-service/internal/shared"
)

const MaxNameLength = 255

// Author is the persistence model. It doubles as the response shape:
// the API returns records as-is.
type Author struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	DateOfBirth *shared.Date `json:"date_of_birth"`
}

type CreateAuthorRequest struct {
	Name        string       `json:"name"`
	DateOfBirth *shared.Date `json:"date_of_birth"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.RuneLength(1, MaxNameLength)),
	)
}
