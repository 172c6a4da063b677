package rest

import (
	"context"
	"fmt"
	"time"

	"github.com/AayushiWani/TY-Miniproject/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (api *API) CreateGroupRepo(ctx context.Context, group model.Group) (model.Group, error) {
	var createdGroup model.Group

	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		group.CreatedAt = time.Now()
		group.UpdatedAt = time.Now()

		query := `
            INSERT INTO groups (id, name, description, profession, creator_id, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
            RETURNING id, name, description, profession, creator_id, created_at, updated_at
        `
		err := tx.QueryRow(ctx, query,
			group.ID, group.Name, group.Description, group.Profession,
			group.CreatorID, group.CreatedAt, group.UpdatedAt,
		).Scan(
			&createdGroup.ID, &createdGroup.Name, &createdGroup.Description, &createdGroup.Profession,
			&createdGroup.CreatorID, &createdGroup.CreatedAt, &createdGroup.UpdatedAt,
		)
		if err != nil {
			return err
		}

		// Creator is the first member
		_, err = tx.Exec(ctx, `
            INSERT INTO group_members (group_id, user_id, joined_at)
            VALUES ($1, $2, NOW())
        `, createdGroup.ID, createdGroup.CreatorID)
		return err
	})

	if err != nil {
		return model.Group{}, err
	}

	createdGroup.MemberCount = 1
	return createdGroup, nil
}

func (api *API) ListGroupsRepo(ctx context.Context, profession string) ([]model.GroupSummary, error) {
	query := `
        SELECT g.id, g.name, g.description, g.profession, g.creator_id, g.created_at, g.updated_at,
               u.id, u.fullname, u.email, u.profile_photo,
               (SELECT COUNT(*) FROM group_members gm WHERE gm.group_id = g.id) AS member_count
        FROM groups g
        JOIN users u ON u.id = g.creator_id
        WHERE ($1 = '' OR g.profession = $1)
        ORDER BY g.created_at DESC
    `

	rows, err := api.Deps.DB.Pool().Query(ctx, query, profession)
	if err != nil {
		return nil, fmt.Errorf("querying groups: %w", err)
	}
	defer rows.Close()

	groups := []model.GroupSummary{}

	for rows.Next() {
		var group model.GroupSummary
		err := rows.Scan(
			&group.ID, &group.Name, &group.Description, &group.Profession,
			&group.CreatorID, &group.CreatedAt, &group.UpdatedAt,
			&group.Creator.ID, &group.Creator.FullName, &group.Creator.Email, &group.Creator.ProfilePhoto,
			&group.MemberCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning groups: %w", err)
		}

		groups = append(groups, group)
	}

	return groups, rows.Err()
}

func (api *API) GetGroupRepo(ctx context.Context, groupID uuid.UUID) (model.GroupDetail, error) {
	query := `
        SELECT g.id, g.name, g.description, g.profession, g.creator_id, g.created_at, g.updated_at,
               u.id, u.fullname, u.email, u.profile_photo
        FROM groups g
        JOIN users u ON u.id = g.creator_id
        WHERE g.id = $1
    `

	var group model.GroupDetail
	err := api.Deps.DB.Pool().QueryRow(ctx, query, groupID).Scan(
		&group.ID, &group.Name, &group.Description, &group.Profession,
		&group.CreatorID, &group.CreatedAt, &group.UpdatedAt,
		&group.Creator.ID, &group.Creator.FullName, &group.Creator.Email, &group.Creator.ProfilePhoto,
	)
	if err != nil {
		return model.GroupDetail{}, err
	}

	group.Members, err = api.ListGroupMembersRepo(ctx, groupID)
	if err != nil {
		return model.GroupDetail{}, err
	}
	group.MemberCount = len(group.Members)

	group.JobAlerts, err = api.ListGroupJobAlertsRepo(ctx, groupID)
	if err != nil {
		return model.GroupDetail{}, err
	}

	return group, nil
}

func (api *API) GroupExistsRepo(ctx context.Context, groupID uuid.UUID) (bool, error) {
	var exists bool
	err := api.Deps.DB.Pool().QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM groups WHERE id = $1)`, groupID,
	).Scan(&exists)
	return exists, err
}

func (api *API) IsGroupMemberRepo(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	var member bool
	err := api.Deps.DB.Pool().QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM group_members WHERE group_id = $1 AND user_id = $2)`,
		groupID, userID,
	).Scan(&member)
	return member, err
}

// AddGroupMemberRepo inserts the membership row if absent. The reported
// bool is whether this call actually added the row, which makes the
// membership check and the mutation a single atomic step.
func (api *API) AddGroupMemberRepo(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	tag, err := api.Deps.DB.Pool().Exec(ctx, `
        INSERT INTO group_members (group_id, user_id, joined_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (group_id, user_id) DO NOTHING
    `, groupID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (api *API) RemoveGroupMemberRepo(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	tag, err := api.Deps.DB.Pool().Exec(ctx, `
        DELETE FROM group_members WHERE group_id = $1 AND user_id = $2
    `, groupID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (api *API) ListGroupMembersRepo(ctx context.Context, groupID uuid.UUID) ([]model.UserSummary, error) {
	query := `
        SELECT u.id, u.fullname, u.email, u.role, u.profile_photo
        FROM group_members gm
        JOIN users u ON u.id = gm.user_id
        WHERE gm.group_id = $1
        ORDER BY gm.joined_at
    `

	rows, err := api.Deps.DB.Pool().Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("querying group members: %w", err)
	}
	defer rows.Close()

	members := []model.UserSummary{}
	for rows.Next() {
		var member model.UserSummary
		if err := rows.Scan(&member.ID, &member.FullName, &member.Email, &member.Role, &member.ProfilePhoto); err != nil {
			return nil, fmt.Errorf("scanning group members: %w", err)
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

// AddGroupJobAlertRepo appends jobID to the group's alert list, as a
// no-op when it is already present.
func (api *API) AddGroupJobAlertRepo(ctx context.Context, groupID, jobID uuid.UUID) (bool, error) {
	tag, err := api.Deps.DB.Pool().Exec(ctx, `
        INSERT INTO group_job_alerts (group_id, job_id, created_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (group_id, job_id) DO NOTHING
    `, groupID, jobID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (api *API) ListGroupJobAlertsRepo(ctx context.Context, groupID uuid.UUID) ([]model.Job, error) {
	query := `
        SELECT j.id, j.title, j.description, j.location, j.salary, j.created_at
        FROM group_job_alerts ga
        JOIN jobs j ON j.id = ga.job_id
        WHERE ga.group_id = $1
        ORDER BY ga.created_at
    `

	rows, err := api.Deps.DB.Pool().Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("querying job alerts: %w", err)
	}
	defer rows.Close()

	jobs := []model.Job{}
	for rows.Next() {
		var job model.Job
		if err := rows.Scan(&job.ID, &job.Title, &job.Description, &job.Location, &job.Salary, &job.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning job alerts: %w", err)
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}
