package rest

import (
	"context"
	"errors"

	"github.com/AayushiWani/TY-Miniproject/internal/model"
	"github.com/AayushiWani/TY-Miniproject/util"
	"github.com/AayushiWani/TY-Miniproject/util/values"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func (api *API) CreateGroupHelper(ctx context.Context, userID uuid.UUID, req model.CreateGroupRequest) (model.GroupDetail, string, string, error) {
	if err := util.ValidateStruct(req); err != nil {
		return model.GroupDetail{}, values.BadRequestBody, "Name, description and profession are required", err
	}

	creator, err := api.GetUserByID(ctx, userID)
	if err != nil {
		return model.GroupDetail{}, values.Error, "Server error", err
	}

	newGroup := model.Group{
		ID:          util.GenerateUUID(),
		Name:        req.Name,
		Description: req.Description,
		Profession:  req.Profession,
		CreatorID:   userID,
	}

	group, err := api.CreateGroupRepo(ctx, newGroup)
	if err != nil {
		// Unique violation on the name constraint (Postgres error code "23505")
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "groups_name_key" {
			return model.GroupDetail{}, values.Conflict, "A group with this name already exists", nil
		}
		return model.GroupDetail{}, values.Error, "Server error", err
	}

	// The 201 body is the same shape as GET /{id}: the creator is the
	// sole member at this point.
	summary := *userSummary(creator)
	detail := model.GroupDetail{
		Group:     group,
		Creator:   summary,
		Members:   []model.UserSummary{summary},
		JobAlerts: []model.Job{},
	}

	return detail, values.Created, "Group created successfully", nil
}

func (api *API) ListGroupsHelper(ctx context.Context, profession string) ([]model.GroupSummary, string, string, error) {
	groups, err := api.ListGroupsRepo(ctx, profession)
	if err != nil {
		return nil, values.Error, "Server error", err
	}
	return groups, values.Success, "Groups returned successfully", nil
}

func (api *API) GetGroupHelper(ctx context.Context, groupID uuid.UUID) (model.GroupDetail, string, string, error) {
	group, err := api.GetGroupRepo(ctx, groupID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.GroupDetail{}, values.NotFound, "Group not found", nil
		}
		return model.GroupDetail{}, values.Error, "Server error", err
	}
	return group, values.Success, "Group returned successfully", nil
}

func (api *API) JoinGroupHelper(ctx context.Context, groupID, userID uuid.UUID) (string, string, error) {
	exists, err := api.GroupExistsRepo(ctx, groupID)
	if err != nil {
		return values.Error, "Server error", err
	}
	if !exists {
		return values.NotFound, "Group not found", nil
	}

	// The insert is add-if-absent, so two racing joins collapse to one
	// membership row instead of a double insert.
	added, err := api.AddGroupMemberRepo(ctx, groupID, userID)
	if err != nil {
		return values.Error, "Server error", err
	}
	if !added {
		return values.Conflict, "You are already a member of this group", nil
	}

	user, err := api.GetUserByID(ctx, userID)
	if err != nil {
		return values.Error, "Server error", err
	}

	systemMsg := model.Message{
		GroupID:  groupID,
		SenderID: userID,
		Content:  model.SystemJoinContent(user.FullName),
		Kind:     model.KindSystemJoin,
	}
	if _, err := api.InsertMessageRepo(ctx, systemMsg); err != nil {
		return values.Error, "Server error", err
	}

	return values.Success, "Successfully joined the group", nil
}

func (api *API) LeaveGroupHelper(ctx context.Context, groupID, userID uuid.UUID) (string, string, error) {
	exists, err := api.GroupExistsRepo(ctx, groupID)
	if err != nil {
		return values.Error, "Server error", err
	}
	if !exists {
		return values.NotFound, "Group not found", nil
	}

	removed, err := api.RemoveGroupMemberRepo(ctx, groupID, userID)
	if err != nil {
		return values.Error, "Server error", err
	}
	if !removed {
		return values.Conflict, "You are not a member of this group", nil
	}

	user, err := api.GetUserByID(ctx, userID)
	if err != nil {
		return values.Error, "Server error", err
	}

	systemMsg := model.Message{
		GroupID:  groupID,
		SenderID: userID,
		Content:  model.SystemLeaveContent(user.FullName),
		Kind:     model.KindSystemLeave,
	}
	if _, err := api.InsertMessageRepo(ctx, systemMsg); err != nil {
		return values.Error, "Server error", err
	}

	return values.Success, "Successfully left the group", nil
}

func (api *API) GetMessagesHelper(ctx context.Context, groupID, userID uuid.UUID) ([]model.Message, string, string, error) {
	exists, err := api.GroupExistsRepo(ctx, groupID)
	if err != nil {
		return nil, values.Error, "Server error", err
	}
	if !exists {
		return nil, values.NotFound, "Group not found", nil
	}

	member, err := api.IsGroupMemberRepo(ctx, groupID, userID)
	if err != nil {
		return nil, values.Error, "Server error", err
	}
	if !member {
		return nil, values.NotAllowed, "You must be a member to view messages", nil
	}

	messages, err := api.ListGroupMessagesRepo(ctx, groupID)
	if err != nil {
		return nil, values.Error, "Server error", err
	}
	return messages, values.Success, "Messages returned successfully", nil
}

func (api *API) SendMessageHelper(ctx context.Context, groupID, userID uuid.UUID, content string) (model.Message, string, string, error) {
	if !util.NotBlank(content) {
		return model.Message{}, values.BadRequestBody, "Message content is required", nil
	}

	exists, err := api.GroupExistsRepo(ctx, groupID)
	if err != nil {
		return model.Message{}, values.Error, "Server error", err
	}
	if !exists {
		return model.Message{}, values.NotFound, "Group not found", nil
	}

	member, err := api.IsGroupMemberRepo(ctx, groupID, userID)
	if err != nil {
		return model.Message{}, values.Error, "Server error", err
	}
	if !member {
		return model.Message{}, values.NotAllowed, "You must be a member to send messages", nil
	}

	msg := model.Message{
		GroupID:  groupID,
		SenderID: userID,
		Content:  content,
		Kind:     model.KindUser,
	}
	created, err := api.InsertMessageRepo(ctx, msg)
	if err != nil {
		return model.Message{}, values.Error, "Server error", err
	}

	sender, err := api.GetUserByID(ctx, userID)
	if err != nil {
		return model.Message{}, values.Error, "Server error", err
	}
	created.Sender = userSummary(sender)

	return created, values.Created, "Message sent successfully", nil
}

func (api *API) AddJobAlertHelper(ctx context.Context, groupID, userID uuid.UUID, jobIDStr string) (model.Message, string, string, error) {
	if !util.NotBlank(jobIDStr) {
		return model.Message{}, values.BadRequestBody, "Job ID is required", nil
	}
	jobID, err := util.StringToUUID(jobIDStr)
	if err != nil {
		return model.Message{}, values.NotFound, "Job not found", nil
	}

	exists, err := api.GroupExistsRepo(ctx, groupID)
	if err != nil {
		return model.Message{}, values.Error, "Server error", err
	}
	if !exists {
		return model.Message{}, values.NotFound, "Group not found", nil
	}

	job, err := api.GetJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Message{}, values.NotFound, "Job not found", nil
		}
		return model.Message{}, values.Error, "Server error", err
	}

	member, err := api.IsGroupMemberRepo(ctx, groupID, userID)
	if err != nil {
		return model.Message{}, values.Error, "Server error", err
	}
	if !member {
		return model.Message{}, values.NotAllowed, "You must be a member to send job alerts", nil
	}

	// Adding the same job twice keeps one alert-list entry but still
	// produces a fresh chat message each time.
	if _, err := api.AddGroupJobAlertRepo(ctx, groupID, jobID); err != nil {
		return model.Message{}, values.Error, "Server error", err
	}

	msg := model.Message{
		GroupID:    groupID,
		SenderID:   userID,
		Content:    model.JobAlertContent(job.Title, job.Location),
		Kind:       model.KindJobAlert,
		IsJobAlert: true,
		JobID:      &jobID,
	}
	created, err := api.InsertMessageRepo(ctx, msg)
	if err != nil {
		return model.Message{}, values.Error, "Server error", err
	}

	sender, err := api.GetUserByID(ctx, userID)
	if err != nil {
		return model.Message{}, values.Error, "Server error", err
	}
	created.Sender = userSummary(sender)
	created.Job = &job

	return created, values.Created, "Job alert sent successfully", nil
}

func userSummary(u model.User) *model.UserSummary {
	return &model.UserSummary{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		Role:         u.Role,
		ProfilePhoto: u.ProfilePhoto,
	}
}
