// Package applicantsapi is the JSON API for applicant records: the
// public read used by the careers status board and the admin-only
// create/update/delete operations behind the session gate.
package applicantsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	errorsfeature "github.com/harvalefoods/harvalehub/internal/app/features/errors"
	applicantstore "github.com/harvalefoods/harvalehub/internal/app/store/applicants"
	"github.com/harvalefoods/harvalehub/internal/app/system/inputval"
	"github.com/harvalefoods/harvalehub/internal/app/system/photostore"
	"github.com/harvalefoods/harvalehub/internal/app/system/timeouts"
	"github.com/harvalefoods/harvalehub/internal/domain/models"
)

// Handler holds dependencies for the applicants API.
type Handler struct {
	Store  applicantstore.Store
	Photos photostore.Store
	ErrLog *errorsfeature.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(store applicantstore.Store, photos photostore.Store, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  store,
		Photos: photos,
		ErrLog: errLog,
		Log:    logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /api/applicants – public list                                           |
*─────────────────────────────────────────────────────────────────────────────*/

// List returns every applicant, newest first. The public status board
// polls this, so a broken backend degrades to an empty list rather than
// an error page.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	applicants, err := h.Store.ListAll(ctx)
	if err != nil {
		h.Log.Error("listing applicants failed; serving empty list", zap.Error(err))
		applicants = []models.Applicant{}
	}
	errorsfeature.WriteJSON(w, http.StatusOK, applicants)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /api/applicants – admin create                                         |
*─────────────────────────────────────────────────────────────────────────────*/

// createRequest is the admin form payload. Age arrives as either a JSON
// number or a string depending on the client; both are accepted and
// validated the same way.
type createRequest struct {
	FullName       string `json:"fullName"`
	PhoneNumber    string `json:"phoneNumber"`
	PassportNumber string `json:"passportNumber"`
	Gender         string `json:"gender"`
	Photograph     string `json:"photograph"`
	Age            any    `json:"age"`
	Status         string `json:"status"`
}

func (req createRequest) ageString() string {
	if req.Age == nil {
		return ""
	}
	if s, ok := req.Age.(string); ok {
		return s
	}
	if f, ok := req.Age.(float64); ok && f == float64(int(f)) {
		return fmt.Sprintf("%d", int(f))
	}
	return fmt.Sprint(req.Age)
}

// Create validates a submission, persists its photograph, and stores the
// new applicant. Returns 201 with the stored record.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.JSON(w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	in, err := inputval.Applicant(inputval.ApplicantInput{
		FullName:       req.FullName,
		PhoneNumber:    req.PhoneNumber,
		PassportNumber: req.PassportNumber,
		Gender:         req.Gender,
		Photograph:     req.Photograph,
		Age:            req.ageString(),
		Status:         req.Status,
	})
	if err != nil {
		h.ErrLog.JSON(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	// Photographs arrive embedded as data URIs; move the bytes out to
	// the photo store so the record holds only a reference.
	if photostore.IsEmbedded(in.Photograph) {
		ref, err := h.Photos.Save(ctx, in.Photograph)
		if err != nil {
			if errors.Is(err, photostore.ErrInvalidImage) {
				h.ErrLog.JSON(w, r, http.StatusBadRequest, "Photograph must be a valid image", err)
				return
			}
			h.ErrLog.JSON(w, r, http.StatusInternalServerError, "Failed to save photograph", err)
			return
		}
		in.Photograph = ref
	}

	a, err := h.Store.Create(ctx, in)
	if err != nil {
		// The record never landed; don't leave its photo behind.
		if delErr := h.Photos.Delete(ctx, in.Photograph); delErr != nil {
			h.Log.Warn("orphaned photo cleanup failed", zap.Error(delErr))
		}
		h.ErrLog.JSON(w, r, http.StatusInternalServerError, "Failed to create applicant", err)
		return
	}
	errorsfeature.WriteJSON(w, http.StatusCreated, a)
}

/*─────────────────────────────────────────────────────────────────────────────*
| PATCH /api/applicants/{id} – admin status update                            |
*─────────────────────────────────────────────────────────────────────────────*/

// UpdateStatus changes one applicant's status. Unknown statuses are a
// 400; unknown ids a 404. Returns the updated record.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.JSON(w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	a, err := h.Store.UpdateStatus(ctx, id, req.Status)
	switch {
	case errors.Is(err, applicantstore.ErrInvalidStatus):
		h.ErrLog.JSON(w, r, http.StatusBadRequest, "Status must be pending, approved, or rejected", err)
		return
	case errors.Is(err, applicantstore.ErrNotFound):
		h.ErrLog.JSON(w, r, http.StatusNotFound, "Applicant not found", err)
		return
	case err != nil:
		h.ErrLog.JSON(w, r, http.StatusInternalServerError, "Failed to update applicant", err)
		return
	}
	errorsfeature.WriteJSON(w, http.StatusOK, a)
}

/*─────────────────────────────────────────────────────────────────────────────*
| DELETE /api/applicants/{id} – admin delete                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// Delete removes one applicant and then its stored photograph. Photo
// removal is best-effort: the record deletion has already happened, so a
// blob-store failure is logged, not surfaced.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	a, err := h.Store.Delete(ctx, id)
	switch {
	case errors.Is(err, applicantstore.ErrNotFound):
		h.ErrLog.JSON(w, r, http.StatusNotFound, "Applicant not found", err)
		return
	case err != nil:
		h.ErrLog.JSON(w, r, http.StatusInternalServerError, "Failed to delete applicant", err)
		return
	}

	if err := h.Photos.Delete(ctx, a.Photograph); err != nil {
		h.Log.Warn("deleting applicant photo failed",
			zap.String("applicant_id", a.ID), zap.Error(err))
	}

	errorsfeature.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
