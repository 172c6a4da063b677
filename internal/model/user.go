package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"fullname"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Profession   *string   `json:"profession,omitempty"`
	ProfilePhoto *string   `json:"profile_photo,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserSummary is the display view embedded in groups and messages.
type UserSummary struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"fullname"`
	Email        string    `json:"email"`
	Role         string    `json:"role,omitempty"`
	ProfilePhoto *string   `json:"profile_photo,omitempty"`
}

type UpdateProfileRequest struct {
	FullName     *string `json:"fullname,omitempty"`
	Profession   *string `json:"profession,omitempty"`
	ProfilePhoto *string `json:"profile_photo,omitempty"`
}
