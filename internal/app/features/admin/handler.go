// Package admin serves the dashboard pages behind the session gate: the
// login form and the applicant management screen. The screen's buttons
// talk to the JSON APIs; these handlers only render the pages.
package admin

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	applicantstore "github.com/harvalefoods/harvalehub/internal/app/store/applicants"
	"github.com/harvalefoods/harvalehub/internal/app/system/timeouts"
	"github.com/harvalefoods/harvalehub/internal/app/system/viewdata"
	"github.com/harvalefoods/harvalehub/internal/domain/models"
)

type Handler struct {
	Store applicantstore.Store
	Log   *zap.Logger
}

func NewHandler(store applicantstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// ServeLogin renders the admin login form.
// GET /admin/login
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
		ReturnURL string
	}{
		BaseVM:    viewdata.NewBaseVM(r, "Admin sign in"),
		ReturnURL: r.URL.Query().Get("return"),
	}
	templates.Render(w, r, "admin_login", data)
}

// ServeDashboard renders the applicant management screen.
// GET /admin
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	applicants, err := h.Store.ListAll(ctx)
	if err != nil {
		h.Log.Error("dashboard: listing applicants failed", zap.Error(err))
		applicants = []models.Applicant{}
	}

	data := struct {
		viewdata.BaseVM
		Applicants []models.Applicant
		Statuses   []string
	}{
		BaseVM:     viewdata.NewBaseVM(r, "Applicant dashboard"),
		Applicants: applicants,
		Statuses:   models.ApplicantStatuses,
	}
	templates.Render(w, r, "admin_dashboard", data)
}
