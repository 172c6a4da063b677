package rest

import (
	"net/http"

	"github.com/AayushiWani/TY-Miniproject/internal/model"
	"github.com/AayushiWani/TY-Miniproject/util"
	"github.com/AayushiWani/TY-Miniproject/util/tracing"
	"github.com/AayushiWani/TY-Miniproject/util/values"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (api *API) GroupRoutes() chi.Router {
	mux := chi.NewRouter()

	// Group directory is public; everything else needs a session.
	mux.Method(http.MethodGet, "/all", Handler(api.GetAllGroupsHandler))

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)

		r.Method(http.MethodPost, "/create", Handler(api.CreateGroupHandler))
		r.Method(http.MethodGet, "/{groupID}", Handler(api.GetGroupByIDHandler))
		r.Method(http.MethodPost, "/{groupID}/join", Handler(api.JoinGroupHandler))
		r.Method(http.MethodPost, "/{groupID}/leave", Handler(api.LeaveGroupHandler))
		r.Method(http.MethodGet, "/{groupID}/messages", Handler(api.GetGroupMessagesHandler))
		r.Method(http.MethodPost, "/{groupID}/messages", Handler(api.SendMessageHandler))
		r.Method(http.MethodPost, "/{groupID}/job-alert", Handler(api.AddJobAlertHandler))
	})

	return mux
}

// groupIDParam parses the {groupID} path segment. Unparseable ids are
// treated the same as absent groups.
func groupIDParam(r *http.Request) (uuid.UUID, bool) {
	id, err := util.StringToUUID(chi.URLParam(r, "groupID"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (api *API) CreateGroupHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.CreateGroupRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	group, status, message, err := api.CreateGroupHelper(r.Context(), userID, req)
	if err != nil || status != values.Created {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Group:      group,
	}
}

func (api *API) GetAllGroupsHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	profession := r.URL.Query().Get("profession")
	groups, status, message, err := api.ListGroupsHelper(r.Context(), profession)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Status:     status,
		StatusCode: util.StatusCode(status),
		Groups:     groups,
	}
}

func (api *API) GetGroupByIDHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	groupID, ok := groupIDParam(r)
	if !ok {
		return respondWithError(nil, "Group not found", values.NotFound, &tc)
	}

	group, status, message, err := api.GetGroupHelper(r.Context(), groupID)
	if err != nil || status != values.Success {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Status:     status,
		StatusCode: util.StatusCode(status),
		Group:      group,
	}
}

func (api *API) JoinGroupHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	groupID, ok := groupIDParam(r)
	if !ok {
		return respondWithError(nil, "Group not found", values.NotFound, &tc)
	}

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	status, message, err := api.JoinGroupHelper(r.Context(), groupID, userID)
	if err != nil || status != values.Success {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func (api *API) LeaveGroupHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	groupID, ok := groupIDParam(r)
	if !ok {
		return respondWithError(nil, "Group not found", values.NotFound, &tc)
	}

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	status, message, err := api.LeaveGroupHelper(r.Context(), groupID, userID)
	if err != nil || status != values.Success {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func (api *API) GetGroupMessagesHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	groupID, ok := groupIDParam(r)
	if !ok {
		return respondWithError(nil, "Group not found", values.NotFound, &tc)
	}

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	messages, status, message, err := api.GetMessagesHelper(r.Context(), groupID, userID)
	if err != nil || status != values.Success {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Status:     status,
		StatusCode: util.StatusCode(status),
		Messages:   messages,
	}
}

func (api *API) SendMessageHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	groupID, ok := groupIDParam(r)
	if !ok {
		return respondWithError(nil, "Group not found", values.NotFound, &tc)
	}

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	var req model.SendMessageRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	created, status, message, err := api.SendMessageHelper(r.Context(), groupID, userID, req.Content)
	if err != nil || status != values.Created {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       created,
	}
}

func (api *API) AddJobAlertHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	groupID, ok := groupIDParam(r)
	if !ok {
		return respondWithError(nil, "Group not found", values.NotFound, &tc)
	}

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	var req model.AddJobAlertRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	created, status, message, err := api.AddJobAlertHelper(r.Context(), groupID, userID, req.JobID)
	if err != nil || status != values.Created {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       created,
	}
}
