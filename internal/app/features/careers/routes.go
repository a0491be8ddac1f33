// internal/app/features/careers/routes.go
package careers

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeCareers)
	return r
}
