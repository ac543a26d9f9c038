package service

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/mmynk/overtime/internal/auth"
	"github.com/mmynk/overtime/internal/storage/sqlite"
	pb "github.com/mmynk/overtime/pkg/proto"
	"github.com/mmynk/overtime/pkg/proto/protoconnect"
)

type testServer struct {
	url  string
	auth protoconnect.AuthServiceClient
}

// client bundles the authenticated clients of one registered user.
type client struct {
	token    string
	auth     protoconnect.AuthServiceClient
	overtime protoconnect.OvertimeServiceClient
	groups   protoconnect.GroupServiceClient
	settings protoconnect.SettingsServiceClient
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "service.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	mux := http.NewServeMux()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	RegisterHandlers(mux, store, auth.NewJWTManager("test-secret", time.Hour), logger)

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testServer{
		url:  server.URL,
		auth: protoconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
	}
}

func bearer(token string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			req.Header().Set("Authorization", "Bearer "+token)
			return next(ctx, req)
		}
	}
}

func (s *testServer) register(t *testing.T, email string) *client {
	t.Helper()

	resp, err := s.auth.Register(context.Background(), connect.NewRequest(&pb.RegisterRequest{
		Email:       email,
		DisplayName: "Tester",
		Password:    "password123",
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	opt := connect.WithInterceptors(bearer(resp.Msg.Token))
	return &client{
		token:    resp.Msg.Token,
		auth:     protoconnect.NewAuthServiceClient(http.DefaultClient, s.url, opt),
		overtime: protoconnect.NewOvertimeServiceClient(http.DefaultClient, s.url, opt),
		groups:   protoconnect.NewGroupServiceClient(http.DefaultClient, s.url, opt),
		settings: protoconnect.NewSettingsServiceClient(http.DefaultClient, s.url, opt),
	}
}

func wantCode(t *testing.T, err error, code connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", code)
	}
	if got := connect.CodeOf(err); got != code {
		t.Fatalf("expected code %v, got %v (%v)", code, got, err)
	}
}

func createRecord(t *testing.T, c *client, fields *pb.RecordFields) *pb.Record {
	t.Helper()
	resp, err := c.overtime.CreateRecord(context.Background(), connect.NewRequest(&pb.CreateRecordRequest{Record: fields}))
	if err != nil {
		t.Fatalf("CreateRecord failed: %v", err)
	}
	return resp.Msg.Record
}

func listIDs(t *testing.T, c *client) []string {
	t.Helper()
	resp, err := c.overtime.ListRecords(context.Background(), connect.NewRequest(&pb.ListRecordsRequest{}))
	if err != nil {
		t.Fatalf("ListRecords failed: %v", err)
	}
	ids := make([]string, len(resp.Msg.Records))
	for i, r := range resp.Msg.Records {
		ids[i] = r.Id
	}
	return ids
}

func TestRegisterAndLogin(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()
	s.register(t, "erin@example.com")

	_, err := s.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
		Email: "Erin@example.com", DisplayName: "Erin", Password: "password123",
	}))
	wantCode(t, err, connect.CodeAlreadyExists)

	_, err = s.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
		Email: "frank@example.com", DisplayName: "Frank", Password: "short",
	}))
	wantCode(t, err, connect.CodeInvalidArgument)

	resp, err := s.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: "erin@example.com", Password: "password123"}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Msg.Token == "" || resp.Msg.User.Email != "erin@example.com" {
		t.Errorf("unexpected login response: %+v", resp.Msg)
	}
	if !resp.Msg.ExpiresAt.AsTime().After(time.Now()) {
		t.Errorf("expected expiry in the future, got %v", resp.Msg.ExpiresAt.AsTime())
	}

	_, err = s.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: "erin@example.com", Password: "wrong-password"}))
	wantCode(t, err, connect.CodeUnauthenticated)

	_, err = s.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: "ghost@example.com", Password: "password123"}))
	wantCode(t, err, connect.CodeUnauthenticated)
}

func TestProtectedServicesRequireToken(t *testing.T) {
	s := setupTestServer(t)

	anon := protoconnect.NewOvertimeServiceClient(http.DefaultClient, s.url)
	_, err := anon.ListRecords(context.Background(), connect.NewRequest(&pb.ListRecordsRequest{}))
	wantCode(t, err, connect.CodeUnauthenticated)

	forged := protoconnect.NewGroupServiceClient(http.DefaultClient, s.url, connect.WithInterceptors(bearer("not-a-token")))
	_, err = forged.ListGroups(context.Background(), connect.NewRequest(&pb.ListGroupsRequest{}))
	wantCode(t, err, connect.CodeUnauthenticated)
}

func TestCalculatePay(t *testing.T) {
	s := setupTestServer(t)
	c := s.register(t, "calc@example.com")
	ctx := context.Background()

	resp, err := c.overtime.CalculatePay(ctx, connect.NewRequest(&pb.CalculatePayRequest{Salary: 5000, EndHour: 20, Minutes: 30}))
	if err != nil {
		t.Fatalf("CalculatePay failed: %v", err)
	}
	if resp.Msg.Pay != 42 || resp.Msg.OvertimeHours != 1.5 {
		t.Errorf("expected pay 42 at 1.5h, got %+v", resp.Msg)
	}

	_, err = c.overtime.CalculatePay(ctx, connect.NewRequest(&pb.CalculatePayRequest{Salary: 5000, EndHour: 18}))
	wantCode(t, err, connect.CodeInvalidArgument)
}

func TestCreateRecord_IgnoresClientPay(t *testing.T) {
	s := setupTestServer(t)
	c := s.register(t, "pay@example.com")

	body := `{"record":{"date":"2024-06-01","salary":5000,"end_hour":20,"minutes":30,"calculated_pay":999999}}`
	req, err := http.NewRequest(http.MethodPost, s.url+protoconnect.OvertimeServiceCreateRecordProcedure, bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	httpResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(httpResp.Body)
		t.Fatalf("expected 200, got %d: %s", httpResp.StatusCode, raw)
	}

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		t.Fatal(err)
	}
	var out pb.CreateRecordResponse
	if err := protojson.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Record.CalculatedPay != 42 {
		t.Errorf("expected server-computed pay 42, got %d", out.Record.CalculatedPay)
	}
}

func TestRecordLifecycle(t *testing.T) {
	s := setupTestServer(t)
	c := s.register(t, "life@example.com")
	other := s.register(t, "other@example.com")
	ctx := context.Background()

	groupResp, err := c.groups.CreateGroup(ctx, connect.NewRequest(&pb.CreateGroupRequest{Name: "June"}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	june := groupResp.Msg.Group

	a := createRecord(t, c, &pb.RecordFields{GroupId: june.Id, Date: "2024-06-01", Salary: 5000, EndHour: 20, Minutes: 30})
	b := createRecord(t, c, &pb.RecordFields{GroupId: june.Id, Date: "2024-06-02", Salary: 5000, EndHour: 21})
	loose := createRecord(t, c, &pb.RecordFields{Date: "2024-06-03", Salary: 5000, EndHour: 22})

	if a.GroupName != "June" || a.SortOrder != 0 || b.SortOrder != 1 {
		t.Errorf("unexpected records: %+v %+v", a, b)
	}

	t.Run("list orders ungrouped first", func(t *testing.T) {
		got := listIDs(t, c)
		want := []string{loose.Id, a.Id, b.Id}
		if strings.Join(got, ",") != strings.Join(want, ",") {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("total pay", func(t *testing.T) {
		resp, err := c.overtime.ListRecords(ctx, connect.NewRequest(&pb.ListRecordsRequest{}))
		if err != nil {
			t.Fatal(err)
		}
		if resp.Msg.TotalPay != 42+56+91 {
			t.Errorf("expected total 189, got %d", resp.Msg.TotalPay)
		}
	})

	t.Run("move within group", func(t *testing.T) {
		_, err := c.overtime.MoveRecord(ctx, connect.NewRequest(&pb.MoveRecordRequest{RecordId: b.Id, GroupId: june.Id, Index: 0}))
		if err != nil {
			t.Fatalf("MoveRecord failed: %v", err)
		}
		got := listIDs(t, c)
		want := []string{loose.Id, b.Id, a.Id}
		if strings.Join(got, ",") != strings.Join(want, ",") {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("update recomputes pay", func(t *testing.T) {
		resp, err := c.overtime.UpdateRecord(ctx, connect.NewRequest(&pb.UpdateRecordRequest{
			RecordId:     loose.Id,
			Record: &pb.RecordFields{Date: "2024-06-03", Salary: 5000, EndHour: 19, Minutes: 30},
		}))
		if err != nil {
			t.Fatalf("UpdateRecord failed: %v", err)
		}
		if resp.Msg.Record.CalculatedPay != 14 {
			t.Errorf("expected pay 14, got %d", resp.Msg.Record.CalculatedPay)
		}
	})

	t.Run("validation errors", func(t *testing.T) {
		_, err := c.overtime.CreateRecord(ctx, connect.NewRequest(&pb.CreateRecordRequest{
			Record: &pb.RecordFields{Date: "2024-06-04", Salary: 5000, EndHour: 20, Minutes: 75},
		}))
		wantCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("other users see nothing", func(t *testing.T) {
		if got := listIDs(t, other); len(got) != 0 {
			t.Errorf("expected no records, got %v", got)
		}
		_, err := other.overtime.DeleteRecord(ctx, connect.NewRequest(&pb.DeleteRecordRequest{RecordId: a.Id}))
		wantCode(t, err, connect.CodeNotFound)

		_, err = other.overtime.CreateRecord(ctx, connect.NewRequest(&pb.CreateRecordRequest{
			Record: &pb.RecordFields{GroupId: june.Id, Date: "2024-06-05", Salary: 5000, EndHour: 20},
		}))
		wantCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("delete group ungroups records", func(t *testing.T) {
		_, err := c.groups.DeleteGroup(ctx, connect.NewRequest(&pb.DeleteGroupRequest{GroupId: june.Id}))
		if err != nil {
			t.Fatalf("DeleteGroup failed: %v", err)
		}

		resp, err := c.overtime.ListRecords(ctx, connect.NewRequest(&pb.ListRecordsRequest{}))
		if err != nil {
			t.Fatal(err)
		}
		if len(resp.Msg.Records) != 3 {
			t.Fatalf("expected 3 records to survive, got %d", len(resp.Msg.Records))
		}
		for i, r := range resp.Msg.Records {
			if r.GroupId != "" || r.SortOrder != int32(i) {
				t.Errorf("record %d: expected ungrouped at %d, got group %q order %d", i, i, r.GroupId, r.SortOrder)
			}
		}
	})

	t.Run("delete record", func(t *testing.T) {
		_, err := c.overtime.DeleteRecord(ctx, connect.NewRequest(&pb.DeleteRecordRequest{RecordId: a.Id}))
		if err != nil {
			t.Fatalf("DeleteRecord failed: %v", err)
		}
		_, err = c.overtime.DeleteRecord(ctx, connect.NewRequest(&pb.DeleteRecordRequest{RecordId: a.Id}))
		wantCode(t, err, connect.CodeNotFound)
	})
}

func TestGroupManagement(t *testing.T) {
	s := setupTestServer(t)
	c := s.register(t, "groups@example.com")
	ctx := context.Background()

	var ids []string
	for _, name := range []string{"One", "Two", "Three"} {
		resp, err := c.groups.CreateGroup(ctx, connect.NewRequest(&pb.CreateGroupRequest{Name: name}))
		if err != nil {
			t.Fatalf("CreateGroup(%s) failed: %v", name, err)
		}
		ids = append(ids, resp.Msg.Group.Id)
	}

	_, err := c.groups.CreateGroup(ctx, connect.NewRequest(&pb.CreateGroupRequest{Name: "  "}))
	wantCode(t, err, connect.CodeInvalidArgument)

	if _, err := c.groups.MoveGroup(ctx, connect.NewRequest(&pb.MoveGroupRequest{GroupId: ids[0], Index: 2})); err != nil {
		t.Fatalf("MoveGroup failed: %v", err)
	}

	name := "Renamed"
	collapsed := true
	upd, err := c.groups.UpdateGroup(ctx, connect.NewRequest(&pb.UpdateGroupRequest{GroupId: ids[1], Name: &name, Collapsed: &collapsed}))
	if err != nil {
		t.Fatalf("UpdateGroup failed: %v", err)
	}
	if upd.Msg.Group.Name != "Renamed" || !upd.Msg.Group.Collapsed {
		t.Errorf("unexpected group after update: %+v", upd.Msg.Group)
	}

	list, err := c.groups.ListGroups(ctx, connect.NewRequest(&pb.ListGroupsRequest{}))
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	var got []string
	for i, g := range list.Msg.Groups {
		if g.SortOrder != int32(i) {
			t.Errorf("group %s: expected sort order %d, got %d", g.Name, i, g.SortOrder)
		}
		got = append(got, g.Name)
	}
	if strings.Join(got, ",") != "Renamed,Three,One" {
		t.Errorf("unexpected order: %v", got)
	}

	_, err = c.groups.DeleteGroup(ctx, connect.NewRequest(&pb.DeleteGroupRequest{GroupId: "missing"}))
	wantCode(t, err, connect.CodeNotFound)
}

func TestImportExportCSV(t *testing.T) {
	s := setupTestServer(t)
	c := s.register(t, "csv@example.com")
	ctx := context.Background()

	content := "Date,Salary,End Hour,Minutes,Group\n" +
		"2024-07-01,5000,20,30,July\n" +
		"2024-07-02,5000,21,0,July\n" +
		"2024-07-03,5000,25,70,\n" +
		"2024-07-04,5000,22,0,\n"

	resp, err := c.overtime.ImportCSV(ctx, connect.NewRequest(&pb.ImportCSVRequest{Content: content}))
	if err != nil {
		t.Fatalf("ImportCSV failed: %v", err)
	}
	if resp.Msg.Imported != 3 || len(resp.Msg.Errors) != 1 || resp.Msg.Errors[0].Row != 4 {
		t.Errorf("unexpected import result: %+v", resp.Msg)
	}

	_, err = c.overtime.ImportCSV(ctx, connect.NewRequest(&pb.ImportCSVRequest{Content: ""}))
	wantCode(t, err, connect.CodeInvalidArgument)

	export, err := c.overtime.ExportCSV(ctx, connect.NewRequest(&pb.ExportCSVRequest{}))
	if err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	want := "Date,Salary,End Hour,Minutes,Calculated Pay,Group\n" +
		"2024-07-04,5000,22,0,91,\n" +
		"2024-07-01,5000,20,30,42,July\n" +
		"2024-07-02,5000,21,0,56,July\n"
	if export.Msg.Content != want {
		t.Errorf("unexpected export:\n%s\nwant:\n%s", export.Msg.Content, want)
	}
	if !strings.HasSuffix(export.Msg.Filename, ".csv") {
		t.Errorf("unexpected filename %q", export.Msg.Filename)
	}

	xlsx, err := c.overtime.ExportXLSX(ctx, connect.NewRequest(&pb.ExportXLSXRequest{}))
	if err != nil {
		t.Fatalf("ExportXLSX failed: %v", err)
	}
	// XLSX files are zip archives.
	if !bytes.HasPrefix(xlsx.Msg.Content, []byte("PK")) {
		t.Errorf("expected a zip payload, got %d bytes", len(xlsx.Msg.Content))
	}
}

func TestSettings(t *testing.T) {
	s := setupTestServer(t)
	c := s.register(t, "settings@example.com")
	ctx := context.Background()

	got, err := c.settings.GetSettings(ctx, connect.NewRequest(&pb.GetSettingsRequest{}))
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got.Msg.Settings.MonthlySalary != 0 {
		t.Errorf("expected default salary 0, got %v", got.Msg.Settings.MonthlySalary)
	}

	_, err = c.settings.UpdateSettings(ctx, connect.NewRequest(&pb.UpdateSettingsRequest{
		Settings: &pb.Settings{MonthlySalary: 5400, UngroupedCollapsed: true},
	}))
	if err != nil {
		t.Fatalf("UpdateSettings failed: %v", err)
	}

	got, err = c.settings.GetSettings(ctx, connect.NewRequest(&pb.GetSettingsRequest{}))
	if err != nil {
		t.Fatal(err)
	}
	if got.Msg.Settings.MonthlySalary != 5400 || !got.Msg.Settings.UngroupedCollapsed {
		t.Errorf("settings not persisted: %+v", got.Msg.Settings)
	}

	_, err = c.settings.UpdateSettings(ctx, connect.NewRequest(&pb.UpdateSettingsRequest{
		Settings: &pb.Settings{MonthlySalary: -1},
	}))
	wantCode(t, err, connect.CodeInvalidArgument)
}

func TestSettings_MissingPayload(t *testing.T) {
	s := setupTestServer(t)
	c := s.register(t, "nosettings@example.com")

	_, err := c.settings.UpdateSettings(context.Background(), connect.NewRequest(&pb.UpdateSettingsRequest{}))
	wantCode(t, err, connect.CodeInvalidArgument)
}

func TestCreateRecord_EndHourBounds(t *testing.T) {
	s := setupTestServer(t)
	c := s.register(t, "bounds@example.com")
	ctx := context.Background()

	late := createRecord(t, c, &pb.RecordFields{Date: "2024-06-01", Salary: 2400, EndHour: 47, Minutes: 59})
	if late.CalculatedPay != 477 {
		t.Errorf("expected pay 477, got %d", late.CalculatedPay)
	}

	_, err := c.overtime.CreateRecord(ctx, connect.NewRequest(&pb.CreateRecordRequest{
		Record: &pb.RecordFields{Date: "2024-06-01", Salary: 5000, EndHour: 48},
	}))
	wantCode(t, err, connect.CodeInvalidArgument)

	_, err = c.overtime.CalculatePay(ctx, connect.NewRequest(&pb.CalculatePayRequest{Salary: 5000, EndHour: math.MaxInt32}))
	wantCode(t, err, connect.CodeInvalidArgument)

	_, err = c.overtime.CreateRecord(ctx, connect.NewRequest(&pb.CreateRecordRequest{}))
	wantCode(t, err, connect.CodeInvalidArgument)
}

func TestImportCSV_RejectedRowCreatesNoGroup(t *testing.T) {
	s := setupTestServer(t)
	c := s.register(t, "ghost@example.com")
	ctx := context.Background()

	resp, err := c.overtime.ImportCSV(ctx, connect.NewRequest(&pb.ImportCSVRequest{
		Content: "date,salary,end_hour,minutes,group\n05/01/2024,5000,20,0,Ghost\n",
	}))
	if err != nil {
		t.Fatalf("ImportCSV failed: %v", err)
	}
	if resp.Msg.Imported != 0 || len(resp.Msg.Errors) != 1 {
		t.Errorf("unexpected import result: %+v", resp.Msg)
	}

	groups, err := c.groups.ListGroups(ctx, connect.NewRequest(&pb.ListGroupsRequest{}))
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(groups.Msg.Groups) != 0 {
		t.Errorf("expected no groups, got %d", len(groups.Msg.Groups))
	}
}

func TestProfile(t *testing.T) {
	s := setupTestServer(t)
	c := s.register(t, "grace@example.com")
	ctx := context.Background()

	got, err := c.auth.GetProfile(ctx, connect.NewRequest(&pb.GetProfileRequest{}))
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if got.Msg.User.Email != "grace@example.com" || got.Msg.User.DisplayName != "Tester" {
		t.Errorf("unexpected profile: %+v", got.Msg.User)
	}
	if got.Msg.User.CreatedAt.AsTime().IsZero() {
		t.Error("expected a creation time")
	}

	upd, err := c.auth.UpdateProfile(ctx, connect.NewRequest(&pb.UpdateProfileRequest{DisplayName: "Grace"}))
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if upd.Msg.User.DisplayName != "Grace" {
		t.Errorf("expected display name Grace, got %q", upd.Msg.User.DisplayName)
	}

	_, err = c.auth.UpdateProfile(ctx, connect.NewRequest(&pb.UpdateProfileRequest{DisplayName: " "}))
	wantCode(t, err, connect.CodeInvalidArgument)

	_, err = s.auth.GetProfile(ctx, connect.NewRequest(&pb.GetProfileRequest{}))
	wantCode(t, err, connect.CodeUnauthenticated)
}

func TestChangePassword(t *testing.T) {
	s := setupTestServer(t)
	c := s.register(t, "heidi@example.com")
	ctx := context.Background()

	_, err := c.auth.ChangePassword(ctx, connect.NewRequest(&pb.ChangePasswordRequest{
		CurrentPassword: "wrong-password", NewPassword: "new-password",
	}))
	wantCode(t, err, connect.CodePermissionDenied)

	_, err = c.auth.ChangePassword(ctx, connect.NewRequest(&pb.ChangePasswordRequest{
		CurrentPassword: "password123", NewPassword: "short",
	}))
	wantCode(t, err, connect.CodeInvalidArgument)

	_, err = s.auth.ChangePassword(ctx, connect.NewRequest(&pb.ChangePasswordRequest{
		CurrentPassword: "password123", NewPassword: "new-password",
	}))
	wantCode(t, err, connect.CodeUnauthenticated)

	if _, err := c.auth.ChangePassword(ctx, connect.NewRequest(&pb.ChangePasswordRequest{
		CurrentPassword: "password123", NewPassword: "new-password",
	})); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}

	_, err = s.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: "heidi@example.com", Password: "password123"}))
	wantCode(t, err, connect.CodeUnauthenticated)

	if _, err := s.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: "heidi@example.com", Password: "new-password"})); err != nil {
		t.Fatalf("Login with new password failed: %v", err)
	}
}
