package http_server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aviodesk/charterops/internal/base"
	"github.com/aviodesk/charterops/internal/database"
	"github.com/aviodesk/charterops/internal/interfaces"
	c "github.com/aviodesk/charterops/internal/interfaces/config"
	"github.com/labstack/echo/v4"
)

type testConfigManager struct {
	config *c.Config
}

func (m *testConfigManager) Config() *c.Config { return m.config }

func (m *testConfigManager) SaveConfig() error { return nil }

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	logger := base.NewLogger()
	conf := c.DefaultConfig()
	conf.Database.Database = filepath.Join(t.TempDir(), "test.db")
	conf.General.BcryptCost = 4
	if result := conf.CheckValid(logger); result.IsFail() {
		t.Fatalf("default config invalid: %v", result.Error())
	}

	shutdownCallback, operations, err := database.ConnectDatabase(logger, conf, false)
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	t.Cleanup(func() {
		_ = shutdownCallback.Invoke(context.Background())
	})

	content := interfaces.NewApplicationContent(&testConfigManager{conf}, base.NewCleaner(logger), logger, operations)
	e, err := BuildServer(content)
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}
	return e
}

func getPage(e *echo.Echo, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func postForm(e *echo.Echo, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateAndListFlight(t *testing.T) {
	e := newTestServer(t)

	rec := postForm(e, "/add_flight", url.Values{
		"flight_number":  {"CO123"},
		"departure_time": {"2025-04-01 14:30"},
		"origin":         {"JFK"},
		"destination":    {"LAX"},
		"aircraft":       {"N12345"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 after create, got %d", rec.Code)
	}
	if location := rec.Header().Get(echo.HeaderLocation); location != "/flights" {
		t.Errorf("expected redirect to /flights, got %q", location)
	}

	rec = getPage(e, "/flights")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 listing flights, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, field := range []string{"CO123", "2025-04-01 14:30", "JFK", "LAX", "N12345"} {
		if !strings.Contains(body, field) {
			t.Errorf("flight listing missing %q", field)
		}
	}
}

func TestCreateFlightMissingFieldFailsRequest(t *testing.T) {
	e := newTestServer(t)

	rec := postForm(e, "/add_flight", url.Values{
		"departure_time": {"2025-04-01 14:30"},
		"origin":         {"JFK"},
		"destination":    {"LAX"},
		"aircraft":       {"N12345"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on missing flight_number, got %d", rec.Code)
	}

	rec = getPage(e, "/flights")
	if strings.Contains(rec.Body.String(), "N12345") {
		t.Error("rejected flight must not be persisted")
	}
}

func TestCreateAndListMaintenanceTask(t *testing.T) {
	e := newTestServer(t)

	rec := postForm(e, "/add_maintenance", url.Values{
		"aircraft":    {"N12345"},
		"description": {"A-check inspection"},
		"due_date":    {"2025-04-15"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 after create, got %d", rec.Code)
	}

	rec = getPage(e, "/maintenance")
	if !strings.Contains(rec.Body.String(), "A-check inspection") {
		t.Error("maintenance listing missing the created task")
	}
}

func TestCreateCrewMemberDerivesStatus(t *testing.T) {
	e := newTestServer(t)

	rec := postForm(e, "/add_crew", url.Values{
		"name":        {"Pat Kirk"},
		"total_hours": {"120.5"},
		"last_flight": {"2025-03-28"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 after create, got %d", rec.Code)
	}

	rec = postForm(e, "/add_crew", url.Values{
		"name":        {"Sam Low"},
		"total_hours": {"100"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 after create, got %d", rec.Code)
	}

	rec = getPage(e, "/crew")
	body := rec.Body.String()
	if !strings.Contains(body, "Needs Rest") {
		t.Error("crew listing missing derived Needs Rest status")
	}
	if !strings.Contains(body, "Sam Low") || !strings.Contains(body, "OK") {
		t.Error("crew listing missing boundary member with OK status")
	}
}

func TestRegisterLoginAndSession(t *testing.T) {
	e := newTestServer(t)

	rec := postForm(e, "/register", url.Values{
		"username": {"alice"},
		"email":    {"a@x.com"},
		"password": {"secret123"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 after register, got %d", rec.Code)
	}

	rec = postForm(e, "/login", url.Values{
		"username": {"alice"},
		"password": {"wrong"},
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 on wrong password, got %d", rec.Code)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("failed login must not establish a session")
	}

	rec = postForm(e, "/login", url.Values{
		"username": {"alice"},
		"password": {"secret123"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 after login, got %d", rec.Code)
	}
	var session *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "charterops_session" && cookie.Value != "" {
			session = cookie
		}
	}
	if session == nil {
		t.Fatal("login did not set the session cookie")
	}

	rec = getPage(e, "/protected", session)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on protected page with session, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "alice") {
		t.Error("protected page missing the authenticated username")
	}

	rec = getPage(e, "/", session)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on landing page with session, got %d", rec.Code)
	}
}

func TestDuplicateRegistrationIsGeneric(t *testing.T) {
	e := newTestServer(t)

	rec := postForm(e, "/register", url.Values{
		"username": {"alice"},
		"email":    {"a@x.com"},
		"password": {"secret123"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 after register, got %d", rec.Code)
	}

	tests := []struct {
		name string
		form url.Values
	}{
		{"same username", url.Values{"username": {"alice"}, "email": {"b@x.com"}, "password": {"pw"}}},
		{"same email", url.Values{"username": {"bob"}, "email": {"a@x.com"}, "password": {"pw"}}},
	}
	for _, test := range tests {
		rec := postForm(e, "/register", test.form)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", test.name, rec.Code)
			continue
		}
		body := rec.Body.String()
		if !strings.Contains(body, "Username or email already exists") {
			t.Errorf("%s: expected the generic conflict message", test.name)
		}
		if strings.Contains(body, "field username") || strings.Contains(body, "field email") {
			t.Errorf("%s: conflict message must not name the colliding field", test.name)
		}
	}
}

func TestProtectedRoutesRedirectAnonymous(t *testing.T) {
	e := newTestServer(t)

	for _, path := range []string{"/", "/protected"} {
		rec := getPage(e, path)
		if rec.Code != http.StatusSeeOther {
			t.Errorf("GET %s anonymous: expected 303, got %d", path, rec.Code)
			continue
		}
		if location := rec.Header().Get(echo.HeaderLocation); location != "/login" {
			t.Errorf("GET %s anonymous: expected redirect to /login, got %q", path, location)
		}
	}
}

func TestLogoutClearsSession(t *testing.T) {
	e := newTestServer(t)

	postForm(e, "/register", url.Values{
		"username": {"alice"},
		"email":    {"a@x.com"},
		"password": {"secret123"},
	})
	rec := postForm(e, "/login", url.Values{
		"username": {"alice"},
		"password": {"secret123"},
	})
	var session *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "charterops_session" {
			session = cookie
		}
	}
	if session == nil {
		t.Fatal("login did not set the session cookie")
	}

	rec = getPage(e, "/logout", session)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 after logout, got %d", rec.Code)
	}
	var cleared bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "charterops_session" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("logout did not expire the session cookie")
	}
}
