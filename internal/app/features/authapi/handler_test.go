package authapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/harvalefoods/harvalehub/internal/app/features/authapi"
	errorsfeature "github.com/harvalefoods/harvalehub/internal/app/features/errors"
	credentialstore "github.com/harvalefoods/harvalehub/internal/app/store/credentials"
	"github.com/harvalefoods/harvalehub/internal/app/system/auth"
	"github.com/harvalefoods/harvalehub/internal/domain/models"
)

func newAuthServer(t *testing.T) (http.Handler, credentialstore.Store) {
	t.Helper()

	creds, err := credentialstore.NewFile(filepath.Join(t.TempDir(), "admin.json"))
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	if err := auth.InitSessionStore("test-session-key-must-be-32-chars-long", "", false, zap.NewNop()); err != nil {
		t.Fatalf("InitSessionStore failed: %v", err)
	}

	h := authapi.NewHandler(creds, errorsfeature.NewErrorLogger(zap.NewNop()), zap.NewNop())
	r := chi.NewRouter()
	r.Use(auth.LoadSession)
	r.Mount("/api/auth", authapi.Routes(h))
	return r, creds
}

func do(t *testing.T, srv http.Handler, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestLogin_DefaultCredentials(t *testing.T) {
	srv, _ := newAuthServer(t)

	rec := do(t, srv, "POST", "/api/auth", `{"username":"admin","password":"admin123"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionName {
			found = true
		}
	}
	if !found {
		t.Error("login did not set a session cookie")
	}
}

func TestLogin_WrongCredentials(t *testing.T) {
	srv, _ := newAuthServer(t)

	for _, body := range []string{
		`{"username":"admin","password":"wrong"}`,
		`{"username":"root","password":"admin123"}`,
		`{"username":"","password":""}`,
	} {
		rec := do(t, srv, "POST", "/api/auth", body, nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("login %s: got %d, want 401", body, rec.Code)
		}
		var resp map[string]string
		json.Unmarshal(rec.Body.Bytes(), &resp)
		if resp["error"] != "Invalid credentials" {
			t.Errorf("error: got %q, want generic message", resp["error"])
		}
	}
}

func TestSessionProbe(t *testing.T) {
	srv, _ := newAuthServer(t)

	rec := do(t, srv, "GET", "/api/auth", "", nil)
	var probe map[string]bool
	json.Unmarshal(rec.Body.Bytes(), &probe)
	if probe["authenticated"] {
		t.Error("probe without session reports authenticated")
	}

	login := do(t, srv, "POST", "/api/auth", `{"username":"admin","password":"admin123"}`, nil)
	rec = do(t, srv, "GET", "/api/auth", "", login.Result().Cookies())
	json.Unmarshal(rec.Body.Bytes(), &probe)
	if !probe["authenticated"] {
		t.Error("probe with session reports unauthenticated")
	}
}

func TestLogout_EndsSession(t *testing.T) {
	srv, _ := newAuthServer(t)

	login := do(t, srv, "POST", "/api/auth", `{"username":"admin","password":"admin123"}`, nil)
	logout := do(t, srv, "DELETE", "/api/auth", "", login.Result().Cookies())
	if logout.Code != http.StatusOK {
		t.Fatalf("logout: got %d, want 200", logout.Code)
	}

	rec := do(t, srv, "GET", "/api/auth", "", logout.Result().Cookies())
	var probe map[string]bool
	json.Unmarshal(rec.Body.Bytes(), &probe)
	if probe["authenticated"] {
		t.Error("session still live after logout")
	}
}

func TestChangePassword(t *testing.T) {
	srv, creds := newAuthServer(t)

	login := do(t, srv, "POST", "/api/auth", `{"username":"admin","password":"admin123"}`, nil)
	cookies := login.Result().Cookies()

	// Requires a session.
	rec := do(t, srv, "POST", "/api/auth/change-password", `{"currentPassword":"admin123","newPassword":"fresh-pass"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("without session: got %d, want 401", rec.Code)
	}

	// Validation failures.
	cases := []struct {
		body string
		want int
	}{
		{`{"currentPassword":"","newPassword":"fresh-pass"}`, http.StatusBadRequest},
		{`{"currentPassword":"admin123","newPassword":""}`, http.StatusBadRequest},
		{`{"currentPassword":"admin123","newPassword":"tiny"}`, http.StatusBadRequest},
		{`{"currentPassword":"admin123","newPassword":"admin123"}`, http.StatusBadRequest},
		{`{"currentPassword":"not-the-password","newPassword":"fresh-pass"}`, http.StatusForbidden},
	}
	for _, tc := range cases {
		rec := do(t, srv, "POST", "/api/auth/change-password", tc.body, cookies)
		if rec.Code != tc.want {
			t.Errorf("change-password %s: got %d, want %d", tc.body, rec.Code, tc.want)
		}
	}

	// Success path persists the new password.
	rec = do(t, srv, "POST", "/api/auth/change-password", `{"currentPassword":"admin123","newPassword":"fresh-pass"}`, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("change-password: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	stored, err := creds.Get(context.Background())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	want := models.AdminCredentials{Username: "admin", Password: "fresh-pass"}
	if stored != want {
		t.Errorf("stored credentials: got %+v, want %+v", stored, want)
	}

	// Old password no longer opens a session; new one does.
	if rec := do(t, srv, "POST", "/api/auth", `{"username":"admin","password":"admin123"}`, nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("old password login: got %d, want 401", rec.Code)
	}
	if rec := do(t, srv, "POST", "/api/auth", `{"username":"admin","password":"fresh-pass"}`, nil); rec.Code != http.StatusOK {
		t.Errorf("new password login: got %d, want 200", rec.Code)
	}
}
