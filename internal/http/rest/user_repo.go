package rest

import (
	"context"

	"github.com/AayushiWani/TY-Miniproject/internal/model"
	"github.com/google/uuid"
)

func (api *API) GetUserByID(ctx context.Context, userID uuid.UUID) (model.User, error) {
	query := `
        SELECT id, fullname, email, role, profession, profile_photo, created_at, updated_at
        FROM users
        WHERE id = $1
    `

	var user model.User
	err := api.Deps.DB.Pool().QueryRow(ctx, query, userID).Scan(
		&user.ID, &user.FullName, &user.Email, &user.Role,
		&user.Profession, &user.ProfilePhoto, &user.CreatedAt, &user.UpdatedAt,
	)
	return user, err
}

func (api *API) UpdateUserRepo(ctx context.Context, userID uuid.UUID, req model.UpdateProfileRequest) (model.User, error) {
	query := `
        UPDATE users
        SET fullname = COALESCE($2, fullname),
            profession = COALESCE($3, profession),
            profile_photo = COALESCE($4, profile_photo),
            updated_at = NOW()
        WHERE id = $1
        RETURNING id, fullname, email, role, profession, profile_photo, created_at, updated_at
    `

	var user model.User
	err := api.Deps.DB.Pool().QueryRow(ctx, query,
		userID, req.FullName, req.Profession, req.ProfilePhoto,
	).Scan(
		&user.ID, &user.FullName, &user.Email, &user.Role,
		&user.Profession, &user.ProfilePhoto, &user.CreatedAt, &user.UpdatedAt,
	)
	return user, err
}
