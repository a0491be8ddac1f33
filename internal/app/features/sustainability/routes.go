// internal/app/features/sustainability/routes.go
package sustainability

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeSustainability)
	r.Get("/{slug}", h.ServePillar)
	return r
}
