// internal/app/features/admin/routes.go
package admin

import (
	"github.com/go-chi/chi/v5"
	"github.com/harvalefoods/harvalehub/internal/app/system/auth"
)

// Routes mounts the admin pages. The login form stays public; everything
// else requires a session.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/login", h.ServeLogin)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin)
		r.Get("/", h.ServeDashboard)
	})
	return r
}
