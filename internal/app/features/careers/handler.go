// Package careers serves the public application status board. Applicants
// look up their name on the board to see where their application stands;
// the page also refreshes itself from the applicants API.
package careers

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

// ServeCareers renders the status board. A storage failure degrades to
// an empty board rather than an error page; the client-side refresh
// picks the data up once the backend recovers.
// GET /careers
func (h *Handler) ServeCareers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	applicants, err := h.Store.ListAll(ctx)
	if err != nil {
		h.Log.Error("careers board: listing applicants failed", zap.Error(err))
		applicants = []models.Applicant{}
	}

	data := struct {
		viewdata.BaseVM
		Applicants []models.Applicant
	}{
		BaseVM:     viewdata.NewBaseVM(r, "Careers"),
		Applicants: applicants,
	}
	templates.Render(w, r, "careers", data)
}
