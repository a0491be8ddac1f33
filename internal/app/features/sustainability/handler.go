// Package sustainability serves the sustainability commitments page and
// the per-pillar detail pages.
package sustainability

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	errorsfeature "github.com/harvalefoods/harvalehub/internal/app/features/errors"
	"github.com/harvalefoods/harvalehub/internal/app/sitecontent"
	"github.com/harvalefoods/harvalehub/internal/app/system/viewdata"
)

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeSustainability renders the pillar overview.
// GET /sustainability
func (h *Handler) ServeSustainability(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
		Pillars []sitecontent.Pillar
	}{
		BaseVM:  viewdata.NewBaseVM(r, "Sustainability"),
		Pillars: sitecontent.Pillars,
	}

	templates.Render(w, r, "sustainability", data)
}

// ServePillar renders one commitment in full.
// GET /sustainability/{slug}
func (h *Handler) ServePillar(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	pillar, ok := sitecontent.FindPillar(slug)
	if !ok {
		errorsfeature.RenderNotFound(w, r)
		return
	}

	data := struct {
		viewdata.BaseVM
		Pillar sitecontent.Pillar
	}{
		BaseVM: viewdata.NewBaseVM(r, pillar.Title),
		Pillar: pillar,
	}

	templates.Render(w, r, "sustainability_pillar", data)
}
