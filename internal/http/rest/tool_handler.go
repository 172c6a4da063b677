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

func (api *API) ToolRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/", Handler(api.GetAllToolsHandler))

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)

		r.Method(http.MethodPost, "/", Handler(api.CreateToolHandler))
		r.Method(http.MethodDelete, "/{toolID}", Handler(api.DeleteToolHandler))
	})

	return mux
}

func (api *API) CreateToolHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.CreateToolRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	tool, status, message, err := api.CreateToolHelper(r.Context(), userID, req)
	if err != nil || status != values.Created {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Tool:       tool,
	}
}

func (api *API) GetAllToolsHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	tools, err := api.ListToolsRepo(r.Context())
	if err != nil {
		return respondWithError(err, "Server error.", values.Error, &tc)
	}

	return &ServerResponse{
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Tools:      tools,
	}
}

func (api *API) DeleteToolHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	toolID, err := util.StringToUUID(chi.URLParam(r, "toolID"))
	if err != nil {
		return respondWithError(nil, "Tool not found.", values.NotFound, &tc)
	}

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	tool, err := api.GetToolRepo(r.Context(), toolID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return respondWithError(nil, "Tool not found.", values.NotFound, &tc)
		}
		return respondWithError(err, "Server error.", values.Error, &tc)
	}

	if tool.UserID != userID {
		return respondWithError(nil, "Not authorized to delete this tool.", values.NotAllowed, &tc)
	}

	if err := api.DeleteToolRepo(r.Context(), toolID); err != nil {
		return respondWithError(err, "Server error.", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Tool deleted successfully.",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}
