package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dvrst/weekender/internal/backup"
	"github.com/dvrst/weekender/internal/model"
	"github.com/dvrst/weekender/internal/planner"
	"github.com/dvrst/weekender/internal/weather"
)

func testServer(t *testing.T) (*Server, *planner.Planner) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := planner.New(model.DefaultState(), nil, "http://localhost:8080", logger)
	srv := New(p, weather.NewService(weather.Config{}), backup.Config{}, logger)
	return srv, p
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestHealth(t *testing.T) {
	srv, _ := testServer(t)
	rec := doJSON(t, srv.Router(), "GET", "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestSignupLoginFlow(t *testing.T) {
	srv, p := testServer(t)
	router := srv.Router()

	rec := doJSON(t, router, "POST", "/api/threads", map[string]string{"username": "Alex", "password": "pw123"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup status = %d: %s", rec.Code, rec.Body)
	}
	resp := decode[map[string]any](t, rec)
	if resp["threadId"] != "alex" {
		t.Errorf("threadId = %v, want normalized username", resp["threadId"])
	}

	// Duplicate signup is a conflict.
	rec = doJSON(t, router, "POST", "/api/threads", map[string]string{"username": "alex", "password": "x"})
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate signup status = %d, want 409", rec.Code)
	}

	// Probe reports the lock.
	rec = doJSON(t, router, "GET", "/api/threads/alex", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("probe status = %d", rec.Code)
	}
	probe := decode[map[string]any](t, rec)
	if probe["hasPassword"] != true || probe["owner"] != "Alex" {
		t.Errorf("probe = %v", probe)
	}

	// Wrong password is rejected, right one unlocks.
	rec = doJSON(t, router, "POST", "/api/threads/alex/login", map[string]string{"password": "nope"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad login status = %d, want 401", rec.Code)
	}
	rec = doJSON(t, router, "POST", "/api/threads/alex/login", map[string]string{"password": "pw123"})
	if rec.Code != http.StatusOK {
		t.Errorf("login status = %d: %s", rec.Code, rec.Body)
	}
	if !p.IsThreadAuthenticated("alex") {
		t.Error("thread not authenticated after login")
	}
}

func TestPasswordlessSignupKeepsOwner(t *testing.T) {
	srv, p := testServer(t)
	router := srv.Router()

	rec := doJSON(t, router, "POST", "/api/threads", map[string]string{"username": "Alex"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup status = %d: %s", rec.Code, rec.Body)
	}
	resp := decode[map[string]any](t, rec)
	if resp["hasPassword"] != false {
		t.Errorf("hasPassword = %v, want false", resp["hasPassword"])
	}

	// The display-cased owner name survives even without a password.
	rec = doJSON(t, router, "GET", "/api/threads/alex", nil)
	probe := decode[map[string]any](t, rec)
	if probe["owner"] != "Alex" {
		t.Errorf("owner = %v, want Alex", probe["owner"])
	}
	if probe["hasPassword"] != false {
		t.Errorf("probe hasPassword = %v, want false", probe["hasPassword"])
	}

	// Open threads unlock with an empty password.
	rec = doJSON(t, router, "POST", "/api/threads/alex/login", map[string]string{"password": ""})
	if rec.Code != http.StatusOK {
		t.Errorf("open login status = %d: %s", rec.Code, rec.Body)
	}
	if p.ThreadOwner("alex") != "Alex" {
		t.Errorf("ThreadOwner = %q, want Alex", p.ThreadOwner("alex"))
	}
}

func TestThreadGateOnScheduleRoutes(t *testing.T) {
	srv, p := testServer(t)
	router := srv.Router()

	// Unknown thread.
	rec := doJSON(t, router, "GET", "/api/threads/ghost/plan", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown thread status = %d, want 404", rec.Code)
	}

	// Existing but locked thread.
	p.CreateThread("sam")
	p.Logout()
	rec = doJSON(t, router, "GET", "/api/threads/sam/plan", nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("locked thread status = %d, want 403", rec.Code)
	}
}

func TestScheduleFlow(t *testing.T) {
	srv, _ := testServer(t)
	router := srv.Router()

	doJSON(t, router, "POST", "/api/threads", map[string]string{"username": "alex", "password": "pw"})

	add := map[string]any{"activity": map[string]string{"id": "1", "name": "Brunch", "icon": "🥞"}}
	rec := doJSON(t, router, "POST", "/api/threads/alex/schedule/saturday/activities", add)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add status = %d: %s", rec.Code, rec.Body)
	}
	placed := decode[model.ScheduledActivity](t, rec)
	if placed.ScheduledID == "" {
		t.Fatal("no scheduled id assigned")
	}

	// Duplicate add is a 200, not a new placement.
	rec = doJSON(t, router, "POST", "/api/threads/alex/schedule/saturday/activities", add)
	if rec.Code != http.StatusOK {
		t.Errorf("duplicate add status = %d, want 200", rec.Code)
	}

	// Invalid day.
	rec = doJSON(t, router, "POST", "/api/threads/alex/schedule/monday/activities", add)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid day status = %d, want 400", rec.Code)
	}

	// Mood.
	rec = doJSON(t, router, "PUT",
		fmt.Sprintf("/api/threads/alex/schedule/saturday/activities/%s/mood", placed.ScheduledID),
		map[string]string{"mood": "happy"})
	if rec.Code != http.StatusOK {
		t.Errorf("mood status = %d: %s", rec.Code, rec.Body)
	}

	// Reorder with a foreign entry is declined.
	rec = doJSON(t, router, "PUT", "/api/threads/alex/schedule/saturday/order",
		map[string]any{"activities": []map[string]string{{"id": "9", "scheduledId": "intruder"}}})
	if rec.Code != http.StatusConflict {
		t.Errorf("bad reorder status = %d, want 409", rec.Code)
	}

	// Snapshot reflects everything and names the gated thread.
	rec = doJSON(t, router, "GET", "/api/threads/alex/plan", nil)
	snap := decode[struct {
		model.ThreadSnapshot
		ThreadID string `json:"threadId"`
	}](t, rec)
	if len(snap.Schedule.Saturday) != 1 || snap.Schedule.Saturday[0].Mood != model.MoodHappy {
		t.Errorf("saturday = %+v", snap.Schedule.Saturday)
	}
	if snap.ThreadID != "alex" {
		t.Errorf("threadId = %q, want alex", snap.ThreadID)
	}

	// Remove, then remove again.
	path := fmt.Sprintf("/api/threads/alex/schedule/saturday/activities/%s", placed.ScheduledID)
	if rec = doJSON(t, router, "DELETE", path, nil); rec.Code != http.StatusNoContent {
		t.Errorf("remove status = %d, want 204", rec.Code)
	}
	if rec = doJSON(t, router, "DELETE", path, nil); rec.Code != http.StatusNotFound {
		t.Errorf("second remove status = %d, want 404", rec.Code)
	}
}

func TestCatalogCascadeOverHTTP(t *testing.T) {
	srv, _ := testServer(t)
	router := srv.Router()

	doJSON(t, router, "POST", "/api/threads", map[string]string{"username": "alex", "password": "pw"})

	rec := doJSON(t, router, "POST", "/api/threads/alex/activities",
		map[string]string{"name": "Stargazing", "icon": "🔭", "category": "outdoor"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body)
	}
	created := decode[model.Activity](t, rec)

	add := map[string]any{"activity": created}
	doJSON(t, router, "POST", "/api/threads/alex/schedule/saturday/activities", add)
	doJSON(t, router, "POST", "/api/threads/alex/schedule/sunday/activities", add)

	rec = doJSON(t, router, "DELETE", "/api/threads/alex/activities/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d: %s", rec.Code, rec.Body)
	}
	resp := decode[map[string]any](t, rec)
	if resp["scheduledRemoved"] != float64(2) {
		t.Errorf("scheduledRemoved = %v, want 2", resp["scheduledRemoved"])
	}
}

func TestShareRoundTrip(t *testing.T) {
	srv, _ := testServer(t)
	router := srv.Router()

	doJSON(t, router, "POST", "/api/threads", map[string]string{"username": "Alex", "password": "pw"})
	doJSON(t, router, "POST", "/api/threads/alex/schedule/saturday/activities",
		map[string]any{"activity": map[string]string{"id": "1", "name": "Brunch"}})

	rec := doJSON(t, router, "POST", "/api/threads/alex/share", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("share status = %d: %s", rec.Code, rec.Body)
	}
	resp := decode[map[string]string](t, rec)
	url := resp["url"]
	if url == "" {
		t.Fatal("no share url")
	}

	// Fetch it on the public route, no auth.
	shareID := url[len("http://localhost:8080/shared/"):]
	rec = doJSON(t, router, "GET", "/shared/"+shareID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("shared fetch status = %d", rec.Code)
	}
	plan := decode[model.SharedPlan](t, rec)
	if plan.UserName != "Alex" || plan.TotalActivities != 1 {
		t.Errorf("plan = userName %q, total %d", plan.UserName, plan.TotalActivities)
	}

	rec = doJSON(t, router, "GET", "/shared/unknown", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown share status = %d, want 404", rec.Code)
	}
}

func TestSettingsRoutes(t *testing.T) {
	srv, p := testServer(t)
	router := srv.Router()

	doJSON(t, router, "POST", "/api/threads", map[string]string{"username": "alex", "password": "pw"})

	rec := doJSON(t, router, "PUT", "/api/threads/alex/settings/theme", map[string]string{"theme": "lazy"})
	if rec.Code != http.StatusOK {
		t.Errorf("theme status = %d: %s", rec.Code, rec.Body)
	}
	rec = doJSON(t, router, "PUT", "/api/threads/alex/settings/theme", map[string]string{"theme": "metal"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad theme status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, router, "PUT", "/api/threads/alex/settings/length", map[string]string{"length": "extended"})
	if rec.Code != http.StatusOK {
		t.Errorf("length status = %d: %s", rec.Code, rec.Body)
	}

	snap := p.Snapshot()
	if snap.CurrentTheme != model.ThemeLazy || snap.WeekendLength != model.LengthExtended {
		t.Errorf("snapshot = theme %q, length %q", snap.CurrentTheme, snap.WeekendLength)
	}
	if len(snap.AvailableDays) != 4 {
		t.Errorf("AvailableDays = %v, want four days", snap.AvailableDays)
	}
}

func TestLogoutRoute(t *testing.T) {
	srv, p := testServer(t)
	router := srv.Router()

	doJSON(t, router, "POST", "/api/threads", map[string]string{"username": "alex", "password": "pw"})
	rec := doJSON(t, router, "POST", "/api/threads/alex/logout", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout status = %d", rec.Code)
	}
	if p.CurrentThreadID() != "" {
		t.Errorf("current thread = %q after logout", p.CurrentThreadID())
	}

	// Everything behind the gate is locked again.
	rec = doJSON(t, router, "GET", "/api/threads/alex/plan", nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("post-logout plan status = %d, want 403", rec.Code)
	}
}

func TestDeleteThreadRoute(t *testing.T) {
	srv, p := testServer(t)
	router := srv.Router()

	doJSON(t, router, "POST", "/api/threads", map[string]string{"username": "alex", "password": "pw"})

	rec := doJSON(t, router, "DELETE", "/api/threads/alex", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d: %s", rec.Code, rec.Body)
	}
	if p.ExistsThread("alex") {
		t.Error("thread still exists after delete")
	}

	rec = doJSON(t, router, "DELETE", "/api/threads/alex", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}

func TestHolidaysRoute(t *testing.T) {
	srv, _ := testServer(t)
	rec := doJSON(t, srv.Router(), "GET", "/api/holidays?limit=3", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestBackupRoutesWhenUnconfigured(t *testing.T) {
	srv, _ := testServer(t)
	router := srv.Router()

	rec := doJSON(t, router, "GET", "/api/backup/status", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decode[map[string]any](t, rec)
	if resp["state"] != "disabled" {
		t.Errorf("state = %v, want disabled", resp["state"])
	}

	rec = doJSON(t, router, "POST", "/api/backup/run", nil)
	if rec.Code != http.StatusConflict {
		t.Errorf("run status = %d, want 409", rec.Code)
	}

	rec = doJSON(t, router, "POST", "/api/backup/restore", map[string]string{"key": "snapshots/x"})
	if rec.Code != http.StatusConflict {
		t.Errorf("restore status = %d, want 409", rec.Code)
	}
}
