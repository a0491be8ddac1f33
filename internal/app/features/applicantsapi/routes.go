// internal/app/features/applicantsapi/routes.go
package applicantsapi

import (
	"github.com/go-chi/chi/v5"
	"github.com/harvalefoods/harvalehub/internal/app/system/auth"
)

// Routes mounts the applicants API. Reading is public (the careers page
// polls it); every mutation sits behind the admin session gate.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin)
		r.Post("/", h.Create)
		r.Patch("/{id}", h.UpdateStatus)
		r.Delete("/{id}", h.Delete)
	})
	return r
}
