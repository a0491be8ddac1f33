// internal/app/features/home/routes.go
package home

import (
	"github.com/go-chi/chi/v5"

	errorsfeature "github.com/harvalefoods/harvalehub/internal/app/features/errors"
)

// Routes serves the landing page. This router is mounted at "/", so
// unmatched paths land here and get the rendered not-found page.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeRoot)
	r.NotFound(errorsfeature.RenderNotFound)
	return r
}
