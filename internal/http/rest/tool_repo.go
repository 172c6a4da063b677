package rest

import (
	"context"
	"fmt"

	"github.com/AayushiWani/TY-Miniproject/internal/model"
	"github.com/google/uuid"
)

func (api *API) CreateToolRepo(ctx context.Context, tool model.Tool) (model.Tool, error) {
	query := `
        INSERT INTO tools (id, name, description, contact_email, user_id, created_at)
        VALUES ($1, $2, $3, $4, $5, NOW())
        RETURNING created_at
    `
	err := api.Deps.DB.Pool().QueryRow(ctx, query,
		tool.ID, tool.Name, tool.Description, tool.ContactEmail, tool.UserID,
	).Scan(&tool.CreatedAt)
	if err != nil {
		return model.Tool{}, err
	}
	return tool, nil
}

func (api *API) GetToolRepo(ctx context.Context, toolID uuid.UUID) (model.Tool, error) {
	query := `
        SELECT id, name, description, contact_email, user_id, created_at
        FROM tools
        WHERE id = $1
    `

	var tool model.Tool
	err := api.Deps.DB.Pool().QueryRow(ctx, query, toolID).Scan(
		&tool.ID, &tool.Name, &tool.Description, &tool.ContactEmail, &tool.UserID, &tool.CreatedAt,
	)
	return tool, err
}

func (api *API) ListToolsRepo(ctx context.Context) ([]model.Tool, error) {
	query := `
        SELECT t.id, t.name, t.description, t.contact_email, t.user_id, t.created_at,
               u.id, u.fullname, u.email
        FROM tools t
        JOIN users u ON u.id = t.user_id
        ORDER BY t.created_at DESC
    `

	rows, err := api.Deps.DB.Pool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying tools: %w", err)
	}
	defer rows.Close()

	tools := []model.Tool{}
	for rows.Next() {
		var tool model.Tool
		var owner model.UserSummary
		err := rows.Scan(
			&tool.ID, &tool.Name, &tool.Description, &tool.ContactEmail, &tool.UserID, &tool.CreatedAt,
			&owner.ID, &owner.FullName, &owner.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning tools: %w", err)
		}
		tool.Owner = &owner
		tools = append(tools, tool)
	}

	return tools, rows.Err()
}

func (api *API) DeleteToolRepo(ctx context.Context, toolID uuid.UUID) error {
	_, err := api.Deps.DB.Pool().Exec(ctx, `DELETE FROM tools WHERE id = $1`, toolID)
	return err
}
