package model

import (
	"time"

	"github.com/google/uuid"
)

// Job is owned by the wider job-board service; groups only reference it
// by id and read display fields for alert messages.
type Job struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location"`
	Salary      *string   `json:"salary,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
