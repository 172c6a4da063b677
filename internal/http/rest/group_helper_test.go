package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AayushiWani/TY-Miniproject/config"
	"github.com/AayushiWani/TY-Miniproject/internal/db"
	deps "github.com/AayushiWani/TY-Miniproject/internal/debs"
	"github.com/AayushiWani/TY-Miniproject/internal/model"
	"github.com/AayushiWani/TY-Miniproject/util"
	"github.com/AayushiWani/TY-Miniproject/util/tracing"
	"github.com/AayushiWani/TY-Miniproject/util/values"
	"github.com/google/uuid"
)

// newDBTestAPI wires an API against a live Postgres. Set
// TEST_DATABASE_DSN to run these tests; they are skipped otherwise.
func newDBTestAPI(t *testing.T) *API {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("set TEST_DATABASE_DSN to run database-backed tests")
	}

	database, err := db.New(dsn)
	if err != nil {
		t.Fatalf("connecting to test database: %v", err)
	}
	t.Cleanup(database.Close)

	applySchema(t, database)

	return &API{
		Config: &config.Config{JwtSecret: "test-secret", JwtExpires: "24h"},
		Deps:   &deps.Dependencies{DB: database},
	}
}

func applySchema(t *testing.T, database *db.DB) {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join("..", "..", "db", "schema.sql"))
	if err != nil {
		t.Fatalf("reading schema: %v", err)
	}

	for _, stmt := range strings.Split(string(raw), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := database.Pool().Exec(context.Background(), stmt); err != nil {
			t.Fatalf("applying schema: %v", err)
		}
	}
}

func insertTestUser(t *testing.T, api *API, fullname string) model.User {
	t.Helper()

	id := util.GenerateUUID()
	_, err := api.Deps.DB.Pool().Exec(context.Background(),
		`INSERT INTO users (id, fullname, email) VALUES ($1, $2, $3)`,
		id, fullname, fmt.Sprintf("%s@example.com", id),
	)
	if err != nil {
		t.Fatalf("inserting test user: %v", err)
	}

	user, err := api.GetUserByID(context.Background(), id)
	if err != nil {
		t.Fatalf("reading back test user: %v", err)
	}
	return user
}

func insertTestJob(t *testing.T, api *API, title, location string) model.Job {
	t.Helper()

	id := util.GenerateUUID()
	_, err := api.Deps.DB.Pool().Exec(context.Background(),
		`INSERT INTO jobs (id, title, location) VALUES ($1, $2, $3)`,
		id, title, location,
	)
	if err != nil {
		t.Fatalf("inserting test job: %v", err)
	}

	job, err := api.GetJobByID(context.Background(), id)
	if err != nil {
		t.Fatalf("reading back test job: %v", err)
	}
	return job
}

func createTestGroup(t *testing.T, api *API, creator model.User) model.GroupDetail {
	t.Helper()

	req := model.CreateGroupRequest{
		Name:        "group-" + uuid.New().String(),
		Description: "test group",
		Profession:  "plumber",
	}
	detail, status, message, err := api.CreateGroupHelper(context.Background(), creator.ID, req)
	if err != nil || status != values.Created {
		t.Fatalf("creating group: status=%q message=%q err=%v", status, message, err)
	}
	return detail
}

func TestCreateGroupCreatorIsSoleMember(t *testing.T) {
	api := newDBTestAPI(t)
	ctx := context.Background()

	creator := insertTestUser(t, api, "Asha Kale")
	detail := createTestGroup(t, api, creator)

	if detail.MemberCount != 1 {
		t.Errorf("MemberCount = %d; want 1", detail.MemberCount)
	}
	if len(detail.Members) != 1 || detail.Members[0].ID != creator.ID {
		t.Errorf("Members = %+v; want exactly the creator", detail.Members)
	}
	if detail.Creator.ID != creator.ID {
		t.Errorf("Creator.ID = %v; want %v", detail.Creator.ID, creator.ID)
	}

	// Read-back must agree: the creator appears exactly once.
	fetched, status, _, err := api.GetGroupHelper(ctx, detail.ID)
	if err != nil || status != values.Success {
		t.Fatalf("fetching group: status=%q err=%v", status, err)
	}
	var creatorRows int
	for _, m := range fetched.Members {
		if m.ID == creator.ID {
			creatorRows++
		}
	}
	if creatorRows != 1 {
		t.Errorf("creator appears %d times in members; want 1", creatorRows)
	}
}

func TestCreateGroupDuplicateName(t *testing.T) {
	api := newDBTestAPI(t)
	ctx := context.Background()

	creator := insertTestUser(t, api, "Asha Kale")
	req := model.CreateGroupRequest{
		Name:        "group-" + uuid.New().String(),
		Description: "test group",
		Profession:  "plumber",
	}

	if _, status, _, err := api.CreateGroupHelper(ctx, creator.ID, req); err != nil || status != values.Created {
		t.Fatalf("first create: status=%q err=%v", status, err)
	}

	_, status, message, err := api.CreateGroupHelper(ctx, creator.ID, req)
	if err != nil {
		t.Fatalf("duplicate create returned error: %v", err)
	}
	if status != values.Conflict {
		t.Errorf("status = %q; want %q", status, values.Conflict)
	}
	if message != "A group with this name already exists" {
		t.Errorf("message = %q", message)
	}
}

func TestCreateGroupConflictEnvelope(t *testing.T) {
	api := newDBTestAPI(t)

	creator := insertTestUser(t, api, "Asha Kale")
	group := createTestGroup(t, api, creator)

	body := fmt.Sprintf(`{"name":%q,"description":"dup","profession":"plumber"}`, group.Name)
	r := httptest.NewRequest(http.MethodPost, "/api/v1/groups/create", strings.NewReader(body))
	ctx := context.WithValue(r.Context(), values.ContextTracingKey, tracing.Context{RequestID: "test"})
	ctx = context.WithValue(ctx, "user_id", creator.ID.String())
	r = r.WithContext(ctx)

	w := httptest.NewRecorder()
	Handler(api.CreateGroupHandler).ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want %d", w.Code, http.StatusBadRequest)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshalling body: %v", err)
	}
	if success, _ := resp["success"].(bool); success {
		t.Error("success = true; want false")
	}
	if _, hasGroup := resp["group"]; hasGroup {
		t.Errorf("failure body carries a group entity: %s", w.Body.String())
	}
	if resp["message"] != "A group with this name already exists" {
		t.Errorf("message = %v", resp["message"])
	}
}

func TestJoinGroupIsIdempotent(t *testing.T) {
	api := newDBTestAPI(t)
	ctx := context.Background()

	creator := insertTestUser(t, api, "Asha Kale")
	member := insertTestUser(t, api, "Ravi Patil")
	group := createTestGroup(t, api, creator)

	status, message, err := api.JoinGroupHelper(ctx, group.ID, member.ID)
	if err != nil || status != values.Success {
		t.Fatalf("first join: status=%q message=%q err=%v", status, message, err)
	}

	status, message, err = api.JoinGroupHelper(ctx, group.ID, member.ID)
	if err != nil {
		t.Fatalf("second join returned error: %v", err)
	}
	if status != values.Conflict || message != "You are already a member of this group" {
		t.Errorf("second join: status=%q message=%q", status, message)
	}

	fetched, _, _, err := api.GetGroupHelper(ctx, group.ID)
	if err != nil {
		t.Fatalf("fetching group: %v", err)
	}
	if len(fetched.Members) != 2 {
		t.Errorf("members = %d; want 2", len(fetched.Members))
	}

	// Exactly one join notice despite the repeat attempt.
	messages, _, _, err := api.GetMessagesHelper(ctx, group.ID, creator.ID)
	if err != nil {
		t.Fatalf("fetching messages: %v", err)
	}
	var joinNotices int
	for _, m := range messages {
		if m.Kind == model.KindSystemJoin && m.Content == model.SystemJoinContent(member.FullName) {
			joinNotices++
		}
	}
	if joinNotices != 1 {
		t.Errorf("join notices = %d; want 1", joinNotices)
	}
}

func TestLeaveGroupRequiresMembership(t *testing.T) {
	api := newDBTestAPI(t)
	ctx := context.Background()

	creator := insertTestUser(t, api, "Asha Kale")
	member := insertTestUser(t, api, "Ravi Patil")
	outsider := insertTestUser(t, api, "Sunil More")
	group := createTestGroup(t, api, creator)

	status, message, err := api.LeaveGroupHelper(ctx, group.ID, outsider.ID)
	if err != nil {
		t.Fatalf("outsider leave returned error: %v", err)
	}
	if status != values.Conflict || message != "You are not a member of this group" {
		t.Errorf("outsider leave: status=%q message=%q", status, message)
	}

	if status, _, err := api.JoinGroupHelper(ctx, group.ID, member.ID); err != nil || status != values.Success {
		t.Fatalf("join: status=%q err=%v", status, err)
	}
	if status, _, err := api.LeaveGroupHelper(ctx, group.ID, member.ID); err != nil || status != values.Success {
		t.Fatalf("leave: status=%q err=%v", status, err)
	}

	// Second leave is a no-op conflict, membership unchanged.
	status, message, err = api.LeaveGroupHelper(ctx, group.ID, member.ID)
	if err != nil {
		t.Fatalf("second leave returned error: %v", err)
	}
	if status != values.Conflict || message != "You are not a member of this group" {
		t.Errorf("second leave: status=%q message=%q", status, message)
	}

	fetched, _, _, err := api.GetGroupHelper(ctx, group.ID)
	if err != nil {
		t.Fatalf("fetching group: %v", err)
	}
	if len(fetched.Members) != 1 || fetched.Members[0].ID != creator.ID {
		t.Errorf("members = %+v; want only the creator", fetched.Members)
	}

	messages, _, _, err := api.GetMessagesHelper(ctx, group.ID, creator.ID)
	if err != nil {
		t.Fatalf("fetching messages: %v", err)
	}
	var leaveNotices int
	for _, m := range messages {
		if m.Kind == model.KindSystemLeave && m.Content == model.SystemLeaveContent(member.FullName) {
			leaveNotices++
		}
	}
	if leaveNotices != 1 {
		t.Errorf("leave notices = %d; want 1", leaveNotices)
	}
}

func TestSendMessageRequiresMembership(t *testing.T) {
	api := newDBTestAPI(t)
	ctx := context.Background()

	creator := insertTestUser(t, api, "Asha Kale")
	outsider := insertTestUser(t, api, "Sunil More")
	group := createTestGroup(t, api, creator)

	_, status, message, err := api.SendMessageHelper(ctx, group.ID, outsider.ID, "hello")
	if err != nil {
		t.Fatalf("outsider send returned error: %v", err)
	}
	if status != values.NotAllowed || message != "You must be a member to send messages" {
		t.Errorf("outsider send: status=%q message=%q", status, message)
	}

	if _, status, _, err := api.GetMessagesHelper(ctx, group.ID, outsider.ID); err != nil || status != values.NotAllowed {
		t.Errorf("outsider history: status=%q err=%v; want %q", status, err, values.NotAllowed)
	}

	// The rejected send must leave no trace in the history.
	messages, _, _, err := api.GetMessagesHelper(ctx, group.ID, creator.ID)
	if err != nil {
		t.Fatalf("fetching messages: %v", err)
	}
	if len(messages) != 0 {
		t.Errorf("messages = %d; want 0", len(messages))
	}
}

func TestMessagesAscendingOrder(t *testing.T) {
	api := newDBTestAPI(t)
	ctx := context.Background()

	creator := insertTestUser(t, api, "Asha Kale")
	group := createTestGroup(t, api, creator)

	contents := []string{"first", "second", "third"}
	for _, content := range contents {
		if _, status, _, err := api.SendMessageHelper(ctx, group.ID, creator.ID, content); err != nil || status != values.Created {
			t.Fatalf("sending %q: status=%q err=%v", content, status, err)
		}
	}

	messages, status, _, err := api.GetMessagesHelper(ctx, group.ID, creator.ID)
	if err != nil || status != values.Success {
		t.Fatalf("fetching messages: status=%q err=%v", status, err)
	}
	if len(messages) != len(contents) {
		t.Fatalf("messages = %d; want %d", len(messages), len(contents))
	}

	for i, msg := range messages {
		if msg.Content != contents[i] {
			t.Errorf("messages[%d].Content = %q; want %q", i, msg.Content, contents[i])
		}
		if i > 0 && msg.CreatedAt.Before(messages[i-1].CreatedAt) {
			t.Errorf("messages[%d] created before messages[%d]", i, i-1)
		}
		if msg.Sender == nil || msg.Sender.ID != creator.ID {
			t.Errorf("messages[%d].Sender = %+v; want creator", i, msg.Sender)
		}
	}
}

func TestJobAlertListIdempotent(t *testing.T) {
	api := newDBTestAPI(t)
	ctx := context.Background()

	creator := insertTestUser(t, api, "Asha Kale")
	outsider := insertTestUser(t, api, "Sunil More")
	group := createTestGroup(t, api, creator)
	job := insertTestJob(t, api, "Plumber", "Pune")

	for i := 0; i < 2; i++ {
		created, status, message, err := api.AddJobAlertHelper(ctx, group.ID, creator.ID, job.ID.String())
		if err != nil || status != values.Created {
			t.Fatalf("alert %d: status=%q message=%q err=%v", i, status, message, err)
		}
		if !created.IsJobAlert || created.Kind != model.KindJobAlert {
			t.Errorf("alert %d: kind=%q isJobAlert=%v", i, created.Kind, created.IsJobAlert)
		}
		if created.Job == nil || created.Job.ID != job.ID {
			t.Errorf("alert %d: job not resolved: %+v", i, created.Job)
		}
	}

	// One alert-list entry, but a fresh chat message per call.
	fetched, _, _, err := api.GetGroupHelper(ctx, group.ID)
	if err != nil {
		t.Fatalf("fetching group: %v", err)
	}
	if len(fetched.JobAlerts) != 1 {
		t.Errorf("jobAlerts = %d; want 1", len(fetched.JobAlerts))
	}

	messages, _, _, err := api.GetMessagesHelper(ctx, group.ID, creator.ID)
	if err != nil {
		t.Fatalf("fetching messages: %v", err)
	}
	var alertMessages int
	for _, m := range messages {
		if m.Kind == model.KindJobAlert {
			alertMessages++
		}
	}
	if alertMessages != 2 {
		t.Errorf("alert messages = %d; want 2", alertMessages)
	}

	if _, status, _, err := api.AddJobAlertHelper(ctx, group.ID, outsider.ID, job.ID.String()); err != nil || status != values.NotAllowed {
		t.Errorf("outsider alert: status=%q err=%v; want %q", status, err, values.NotAllowed)
	}

	if _, status, message, err := api.AddJobAlertHelper(ctx, group.ID, creator.ID, uuid.New().String()); err != nil || status != values.NotFound || message != "Job not found" {
		t.Errorf("unknown job: status=%q message=%q err=%v", status, message, err)
	}
}
