// internal/app/features/authapi/routes.go
package authapi

import (
	"github.com/go-chi/chi/v5"
	"github.com/harvalefoods/harvalehub/internal/app/system/auth"
)

// Routes mounts the auth API. Only the password change requires an
// existing session; login, logout, and the probe are open.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Login)
	r.Delete("/", h.Logout)
	r.Get("/", h.Check)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin)
		r.Post("/change-password", h.ChangePassword)
	})
	return r
}
