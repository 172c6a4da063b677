package rest

import (
	"errors"
	"net/http"

	"github.com/AayushiWani/TY-Miniproject/internal/model"
	"github.com/AayushiWani/TY-Miniproject/util"
	"github.com/AayushiWani/TY-Miniproject/util/tracing"
	"github.com/AayushiWani/TY-Miniproject/util/values"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
)

func (api *API) UserRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)

		r.Method(http.MethodGet, "/me", Handler(api.GetProfile))
		r.Method(http.MethodPut, "/me", Handler(api.UpdateProfile))
	})

	return mux
}

func (api *API) GetProfile(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	user, err := api.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return respondWithError(nil, "User not found", values.NotFound, &tc)
		}
		return respondWithError(err, "Server error", values.Error, &tc)
	}

	return &ServerResponse{
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		User:       user,
	}
}

func (api *API) UpdateProfile(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	var req model.UpdateProfileRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	user, err := api.UpdateUserRepo(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return respondWithError(nil, "User not found", values.NotFound, &tc)
		}
		return respondWithError(err, "Server error", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Profile updated successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		User:       user,
	}
}
