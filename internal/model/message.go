package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Message kinds. Membership notices historically carried no flag at all
// and were recognised by their content text; the kind column makes the
// category explicit while the content strings stay unchanged for old
// clients that still pattern-match on them.
const (
	KindUser        = "user"
	KindSystemJoin  = "system_join"
	KindSystemLeave = "system_leave"
	KindJobAlert    = "job_alert"
)

type Message struct {
	ID         uuid.UUID    `json:"id"`
	GroupID    uuid.UUID    `json:"group_id"`
	SenderID   uuid.UUID    `json:"sender_id"`
	Content    string       `json:"content"`
	Kind       string       `json:"kind"`
	IsJobAlert bool         `json:"isJobAlert"`
	JobID      *uuid.UUID   `json:"jobId,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	Sender     *UserSummary `json:"sender,omitempty"`
	Job        *Job         `json:"job,omitempty"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

type AddJobAlertRequest struct {
	JobID string `json:"jobId"`
}

// SystemJoinContent renders the membership notice for a user joining.
// The wording is load-bearing: older clients detect system messages by
// matching on it.
func SystemJoinContent(fullname string) string {
	return fmt.Sprintf("%s has joined the group", fullname)
}

// SystemLeaveContent renders the membership notice for a user leaving.
func SystemLeaveContent(fullname string) string {
	return fmt.Sprintf("%s has left the group", fullname)
}

// JobAlertContent renders the chat line for a shared job.
func JobAlertContent(title, location string) string {
	return fmt.Sprintf("New job opportunity: %s at %s", title, location)
}
