package rest

import (
	"context"
	"errors"

	"github.com/AayushiWani/TY-Miniproject/internal/model"
	"github.com/AayushiWani/TY-Miniproject/util"
	"github.com/AayushiWani/TY-Miniproject/util/values"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

func (api *API) CreateToolHelper(ctx context.Context, userID uuid.UUID, req model.CreateToolRequest) (model.Tool, string, string, error) {
	if err := util.ValidateStruct(req); err != nil {
		return model.Tool{}, values.BadRequestBody, "Name and email are required.", err
	}

	newTool := model.Tool{
		ID:           util.GenerateUUID(),
		Name:         req.Name,
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
		UserID:       userID,
	}

	tool, err := api.CreateToolRepo(ctx, newTool)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.Tool{}, values.Conflict, "A tool with this name already exists.", nil
		}
		return model.Tool{}, values.Error, "Server error.", err
	}

	return tool, values.Created, "Tool request created.", nil
}
