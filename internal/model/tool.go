package model

import (
	"time"

	"github.com/google/uuid"
)

type Tool struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	ContactEmail string    `json:"contactEmail"`
	UserID       uuid.UUID `json:"userId"`
	CreatedAt    time.Time `json:"created_at"`

	Owner *UserSummary `json:"user,omitempty"`
}

type CreateToolRequest struct {
	Name         string  `json:"name" validate:"required,notblank"`
	Description  *string `json:"description,omitempty"`
	ContactEmail string  `json:"contactEmail" validate:"required,email"`
}
