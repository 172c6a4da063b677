package rest

import (
	"context"
	"fmt"
	"time"

	"github.com/AayushiWani/TY-Miniproject/internal/model"
	"github.com/AayushiWani/TY-Miniproject/util"
	"github.com/google/uuid"
)

// InsertMessageRepo persists msg and returns it with the id and the
// database-assigned creation timestamp filled in. The timestamp is the
// sole ordering key for a group's history.
func (api *API) InsertMessageRepo(ctx context.Context, msg model.Message) (model.Message, error) {
	msg.ID = util.GenerateUUID()
	if msg.Kind == "" {
		msg.Kind = model.KindUser
	}

	query := `
        INSERT INTO messages (id, group_id, sender_id, content, kind, is_job_alert, job_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
        RETURNING created_at
    `
	err := api.Deps.DB.Pool().QueryRow(ctx, query,
		msg.ID, msg.GroupID, msg.SenderID, msg.Content, msg.Kind, msg.IsJobAlert, msg.JobID,
	).Scan(&msg.CreatedAt)
	if err != nil {
		return model.Message{}, fmt.Errorf("inserting message: %w", err)
	}

	return msg, nil
}

// ListGroupMessagesRepo returns the group's full history in ascending
// creation order, with sender display fields and, for job alerts, the
// referenced job resolved.
func (api *API) ListGroupMessagesRepo(ctx context.Context, groupID uuid.UUID) ([]model.Message, error) {
	query := `
        SELECT m.id, m.group_id, m.sender_id, m.content, m.kind, m.is_job_alert, m.job_id, m.created_at,
               u.id, u.fullname, u.email, u.profile_photo,
               j.id, j.title, j.description, j.location, j.salary, j.created_at
        FROM messages m
        JOIN users u ON u.id = m.sender_id
        LEFT JOIN jobs j ON j.id = m.job_id
        WHERE m.group_id = $1
        ORDER BY m.created_at ASC
    `

	rows, err := api.Deps.DB.Pool().Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	messages := []model.Message{}

	for rows.Next() {
		var msg model.Message
		var sender model.UserSummary

		var jobID *uuid.UUID
		var jobTitle, jobDescription, jobLocation *string
		var jobSalary *string
		var jobCreatedAt *time.Time

		err := rows.Scan(
			&msg.ID, &msg.GroupID, &msg.SenderID, &msg.Content, &msg.Kind, &msg.IsJobAlert, &msg.JobID, &msg.CreatedAt,
			&sender.ID, &sender.FullName, &sender.Email, &sender.ProfilePhoto,
			&jobID, &jobTitle, &jobDescription, &jobLocation, &jobSalary, &jobCreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning messages: %w", err)
		}

		msg.Sender = &sender
		if jobID != nil {
			msg.Job = &model.Job{
				ID:          *jobID,
				Title:       *jobTitle,
				Description: *jobDescription,
				Location:    *jobLocation,
				Salary:      jobSalary,
				CreatedAt:   *jobCreatedAt,
			}
		}

		messages = append(messages, msg)
	}

	return messages, rows.Err()
}
