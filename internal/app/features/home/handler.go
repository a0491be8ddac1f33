// Package home serves the landing page.
package home

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/harvalefoods/harvalehub/internal/app/sitecontent"
	"github.com/harvalefoods/harvalehub/internal/app/system/viewdata"
)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
		News []sitecontent.NewsItem
	}{
		BaseVM: viewdata.NewBaseVM(r, "Good food, grown well"),
		News:   sitecontent.News,
	}

	templates.Render(w, r, "home", data)
}
