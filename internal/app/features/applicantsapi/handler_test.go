package applicantsapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/harvalefoods/harvalehub/internal/app/features/applicantsapi"
	errorsfeature "github.com/harvalefoods/harvalehub/internal/app/features/errors"
	applicantstore "github.com/harvalefoods/harvalehub/internal/app/store/applicants"
	"github.com/harvalefoods/harvalehub/internal/app/system/auth"
	"github.com/harvalefoods/harvalehub/internal/app/system/photostore"
	"github.com/harvalefoods/harvalehub/internal/domain/models"
	"github.com/harvalefoods/harvalehub/internal/testutil"
)

// newTestServer wires the real file store and local photo store behind
// the full route table, middleware included.
func newTestServer(t *testing.T) (http.Handler, applicantstore.Store, *photostore.Local) {
	t.Helper()
	dir := t.TempDir()

	photos, err := photostore.NewLocal(filepath.Join(dir, "uploads"), "/uploads", zap.NewNop())
	if err != nil {
		t.Fatalf("NewLocal failed: %v", err)
	}
	store, err := applicantstore.NewFile(filepath.Join(dir, "applicants.json"), photos, zap.NewNop())
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}

	if err := auth.InitSessionStore("test-session-key-must-be-32-chars-long", "", false, zap.NewNop()); err != nil {
		t.Fatalf("InitSessionStore failed: %v", err)
	}

	h := applicantsapi.NewHandler(store, photos, errorsfeature.NewErrorLogger(zap.NewNop()), zap.NewNop())
	r := chi.NewRouter()
	r.Use(auth.LoadSession)
	r.Mount("/api/applicants", applicantsapi.Routes(h))
	return r, store, photos
}

// adminCookies signs in and returns the session cookies to attach to
// admin requests.
func adminCookies(t *testing.T) []*http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	if _, err := auth.SignIn(rec, httptest.NewRequest("POST", "/api/auth", nil)); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	return rec.Result().Cookies()
}

func doJSON(t *testing.T, srv http.Handler, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
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

func createBody(overrides map[string]any) string {
	m := map[string]any{
		"fullName":       "Amina Odhiambo",
		"phoneNumber":    "+254 712345678",
		"passportNumber": "ab12345",
		"gender":         "Female",
		"photograph":     testutil.TinyPNGDataURL,
		"age":            28,
	}
	for k, v := range overrides {
		m[k] = v
	}
	raw, _ := json.Marshal(m)
	return string(raw)
}

func TestList_PublicAndEmpty(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(t, srv, "GET", "/api/applicants", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	var got []models.Applicant
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("body is not a JSON array: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("fresh store: got %d applicants, want 0", len(got))
	}
}

func TestMutations_RequireSession(t *testing.T) {
	srv, _, _ := newTestServer(t)

	cases := []struct{ method, path string }{
		{"POST", "/api/applicants"},
		{"PATCH", "/api/applicants/some-id"},
		{"DELETE", "/api/applicants/some-id"},
	}
	for _, tc := range cases {
		rec := doJSON(t, srv, tc.method, tc.path, `{}`, nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without session: got %d, want 401", tc.method, tc.path, rec.Code)
		}
	}
}

func TestCreate_PersistsPhotoAndRecord(t *testing.T) {
	srv, _, photos := newTestServer(t)
	cookies := adminCookies(t)

	rec := doJSON(t, srv, "POST", "/api/applicants", createBody(nil), cookies)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}

	var a models.Applicant
	if err := json.Unmarshal(rec.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode created applicant: %v", err)
	}
	if a.ID == "" {
		t.Error("created applicant has no id")
	}
	if a.Status != models.StatusPending {
		t.Errorf("status: got %q, want pending", a.Status)
	}
	if a.PassportNumber != "AB12345" {
		t.Errorf("passport not normalized: got %q", a.PassportNumber)
	}
	if !strings.HasPrefix(a.Photograph, "/uploads/") {
		t.Fatalf("photograph not moved to photo store: %q", a.Photograph)
	}
	if _, err := photos.FullPath(strings.TrimPrefix(a.Photograph, "/uploads/")); err != nil {
		t.Errorf("stored photo missing: %v", err)
	}

	// And the public list now shows it.
	listRec := doJSON(t, srv, "GET", "/api/applicants", "", nil)
	var all []models.Applicant
	json.Unmarshal(listRec.Body.Bytes(), &all)
	if len(all) != 1 || all[0].ID != a.ID {
		t.Errorf("list after create: got %+v", all)
	}
}

func TestCreate_ValidationFailures(t *testing.T) {
	srv, _, _ := newTestServer(t)
	cookies := adminCookies(t)

	cases := []struct {
		name     string
		override map[string]any
		wantMsg  string
	}{
		{"short name", map[string]any{"fullName": "Al"}, "Name must be at least 3 characters"},
		{"letters in phone", map[string]any{"phoneNumber": "71234abcd"}, "Phone number can only contain digits"},
		{"short phone", map[string]any{"phoneNumber": "123"}, "Phone number is too short (min 4 digits)"},
		{"long phone", map[string]any{"phoneNumber": "1234567890123456"}, "Phone number is too long (max 15 digits)"},
		{"bad passport chars", map[string]any{"passportNumber": "AB_12!45"}, "Passport number can only contain letters, digits, and hyphens"},
		{"short passport", map[string]any{"passportNumber": "AB12"}, "Passport number is too short (min 5 characters)"},
		{"underage", map[string]any{"age": 17}, "Applicant must be at least 18 years old"},
		{"overage", map[string]any{"age": 101}, "Please enter a valid age (max 100)"},
		{"age as words", map[string]any{"age": "twenty"}, "Please enter a valid age"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, srv, "POST", "/api/applicants", createBody(tc.override), cookies)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status: got %d, want 400", rec.Code)
			}
			var body map[string]string
			json.Unmarshal(rec.Body.Bytes(), &body)
			if !strings.Contains(body["error"], tc.wantMsg) {
				t.Errorf("error: got %q, want to contain %q", body["error"], tc.wantMsg)
			}
		})
	}
}

func TestCreate_InvalidStatusDefaultsToPending(t *testing.T) {
	srv, _, _ := newTestServer(t)
	cookies := adminCookies(t)

	rec := doJSON(t, srv, "POST", "/api/applicants", createBody(map[string]any{"status": "hired"}), cookies)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201", rec.Code)
	}
	var a models.Applicant
	json.Unmarshal(rec.Body.Bytes(), &a)
	if a.Status != models.StatusPending {
		t.Errorf("status: got %q, want pending", a.Status)
	}
}

func TestUpdateStatus(t *testing.T) {
	srv, store, _ := newTestServer(t)
	cookies := adminCookies(t)

	a, err := store.Create(context.Background(), testutil.NewApplicantInput("Brian Mwangi"))
	if err != nil {
		t.Fatalf("seed applicant: %v", err)
	}

	rec := doJSON(t, srv, "PATCH", "/api/applicants/"+a.ID, `{"status":"approved"}`, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var updated models.Applicant
	json.Unmarshal(rec.Body.Bytes(), &updated)
	if updated.Status != models.StatusApproved {
		t.Errorf("status: got %q, want approved", updated.Status)
	}

	rec = doJSON(t, srv, "PATCH", "/api/applicants/"+a.ID, `{"status":"archived"}`, cookies)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid status: got %d, want 400", rec.Code)
	}

	rec = doJSON(t, srv, "PATCH", "/api/applicants/no-such-id", `{"status":"approved"}`, cookies)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing id: got %d, want 404", rec.Code)
	}
}

func TestDelete_RemovesRecordAndPhoto(t *testing.T) {
	srv, _, photos := newTestServer(t)
	cookies := adminCookies(t)

	createRec := doJSON(t, srv, "POST", "/api/applicants", createBody(nil), cookies)
	var a models.Applicant
	json.Unmarshal(createRec.Body.Bytes(), &a)
	photoName := strings.TrimPrefix(a.Photograph, "/uploads/")

	rec := doJSON(t, srv, "DELETE", "/api/applicants/"+a.ID, "", cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	listRec := doJSON(t, srv, "GET", "/api/applicants", "", nil)
	var all []models.Applicant
	json.Unmarshal(listRec.Body.Bytes(), &all)
	if len(all) != 0 {
		t.Errorf("list after delete: got %d applicants, want 0", len(all))
	}
	if _, err := photos.FullPath(photoName); err == nil {
		t.Error("photo still present after delete")
	}

	rec = doJSON(t, srv, "DELETE", "/api/applicants/"+a.ID, "", cookies)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: got %d, want 404", rec.Code)
	}
}

// brokenStore fails every read, standing in for an unreachable backend.
type brokenStore struct{}

func (brokenStore) ListAll(context.Context) ([]models.Applicant, error) {
	return nil, errors.New("backend down")
}
func (brokenStore) Create(context.Context, models.NewApplicant) (models.Applicant, error) {
	return models.Applicant{}, errors.New("backend down")
}
func (brokenStore) UpdateStatus(context.Context, string, string) (models.Applicant, error) {
	return models.Applicant{}, errors.New("backend down")
}
func (brokenStore) Delete(context.Context, string) (models.Applicant, error) {
	return models.Applicant{}, errors.New("backend down")
}

func TestList_DegradesToEmptyOnStorageFailure(t *testing.T) {
	photos, err := photostore.NewLocal(t.TempDir(), "/uploads", zap.NewNop())
	if err != nil {
		t.Fatalf("NewLocal failed: %v", err)
	}
	h := applicantsapi.NewHandler(brokenStore{}, photos, errorsfeature.NewErrorLogger(zap.NewNop()), zap.NewNop())

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest("GET", "/api/applicants", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("body: got %q, want []", rec.Body.String())
	}
}
