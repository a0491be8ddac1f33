// Package uploads serves locally stored applicant photographs. Filenames
// are unique per upload and never reused, so responses are marked
// immutable and browsers cache them for a year.
package uploads

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/harvalefoods/harvalehub/internal/app/system/photostore"
)

// Handler serves photo files from the local uploads directory. When the
// S3 backend is active, photo references are absolute S3 URLs and this
// route only serves files left over from local operation.
type Handler struct {
	Photos *photostore.Local
	Log    *zap.Logger
}

func NewHandler(photos *photostore.Local, logger *zap.Logger) *Handler {
	return &Handler{Photos: photos, Log: logger}
}

// ServeFile streams one stored photo.
// GET /uploads/{filename}
func (h *Handler) ServeFile(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	path, err := h.Photos.FullPath(filename)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", photostore.ContentType(filename))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	http.ServeFile(w, r, path)
}
