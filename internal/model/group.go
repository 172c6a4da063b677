package model

import (
	"time"

	"github.com/google/uuid"
)

type Group struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Profession  string    `json:"profession"`
	CreatorID   uuid.UUID `json:"creator_id"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateGroupRequest struct {
	Name        string `json:"name" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
	Profession  string `json:"profession" validate:"required,notblank"`
}

// GroupSummary is the directory listing view: the group plus its
// creator resolved to display fields.
type GroupSummary struct {
	Group
	Creator UserSummary `json:"creator"`
}

// GroupDetail is the full view returned by GET /{id}, with members and
// the job-alert list resolved.
type GroupDetail struct {
	Group
	Creator   UserSummary   `json:"creator"`
	Members   []UserSummary `json:"members"`
	JobAlerts []Job         `json:"jobAlerts"`
}
