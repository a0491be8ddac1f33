// internal/app/features/uploads/routes.go
package uploads

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{filename}", h.ServeFile)
	return r
}
