package rest

import (
	"context"

	"github.com/AayushiWani/TY-Miniproject/internal/model"
	"github.com/google/uuid"
)

// GetJobByID resolves a job reference. Jobs are written by the main
// job-board service; this service only reads them for alert messages.
func (api *API) GetJobByID(ctx context.Context, jobID uuid.UUID) (model.Job, error) {
	query := `
        SELECT id, title, description, location, salary, created_at
        FROM jobs
        WHERE id = $1
    `

	var job model.Job
	err := api.Deps.DB.Pool().QueryRow(ctx, query, jobID).Scan(
		&job.ID, &job.Title, &job.Description, &job.Location, &job.Salary, &job.CreatedAt,
	)
	return job, err
}
