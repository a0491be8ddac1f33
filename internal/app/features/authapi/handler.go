// Package authapi is the JSON login surface for the admin dashboard:
// sign in, sign out, a session probe the dashboard calls on load, and
// password change. One shared credential pair guards the whole admin
// area, so there is no user management here.
package authapi

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	errorsfeature "github.com/harvalefoods/harvalehub/internal/app/features/errors"
	credentialstore "github.com/harvalefoods/harvalehub/internal/app/store/credentials"
	"github.com/harvalefoods/harvalehub/internal/app/system/auth"
	"github.com/harvalefoods/harvalehub/internal/app/system/timeouts"
	"github.com/harvalefoods/harvalehub/internal/domain/models"
)

// MinPasswordLen is the floor for a replacement admin password.
const MinPasswordLen = 6

// Handler holds dependencies for the auth API.
type Handler struct {
	Creds  credentialstore.Store
	ErrLog *errorsfeature.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(creds credentialstore.Store, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Creds:  creds,
		ErrLog: errLog,
		Log:    logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /api/auth – sign in                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

// Login checks the submitted pair against the stored credentials and
// opens an admin session. Wrong pairs get one generic message; the
// response never says which half was wrong.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.JSON(w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	creds, err := h.Creds.Get(ctx)
	if err != nil {
		h.ErrLog.JSON(w, r, http.StatusInternalServerError, "Login unavailable", err)
		return
	}
	if req.Username != creds.Username || req.Password != creds.Password {
		h.ErrLog.JSON(w, r, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	token, err := auth.SignIn(w, r)
	if err != nil {
		h.ErrLog.JSON(w, r, http.StatusInternalServerError, "Failed to start session", err)
		return
	}
	h.Log.Info("admin signed in", zap.String("session_token", token))
	errorsfeature.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

/*─────────────────────────────────────────────────────────────────────────────*
| DELETE /api/auth – sign out                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// Logout clears the admin session. Signing out while signed out is fine.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := auth.SignOut(w, r); err != nil {
		h.ErrLog.JSON(w, r, http.StatusInternalServerError, "Failed to end session", err)
		return
	}
	errorsfeature.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /api/auth – session probe                                               |
*─────────────────────────────────────────────────────────────────────────────*/

// Check reports whether the caller holds a live admin session. The
// dashboard uses this on load to decide between content and login form.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	_, authenticated := auth.Current(r)
	errorsfeature.WriteJSON(w, http.StatusOK, map[string]bool{"authenticated": authenticated})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /api/auth/change-password – admin only                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// ChangePassword replaces the admin password after re-checking the
// current one. The username stays as it is.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.JSON(w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	switch {
	case req.CurrentPassword == "" || req.NewPassword == "":
		h.ErrLog.JSON(w, r, http.StatusBadRequest, "Current and new password are required", nil)
		return
	case len(req.NewPassword) < MinPasswordLen:
		h.ErrLog.JSON(w, r, http.StatusBadRequest, "New password must be at least 6 characters", nil)
		return
	case req.NewPassword == req.CurrentPassword:
		h.ErrLog.JSON(w, r, http.StatusBadRequest, "New password must be different from the current one", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	creds, err := h.Creds.Get(ctx)
	if err != nil {
		h.ErrLog.JSON(w, r, http.StatusInternalServerError, "Password change unavailable", err)
		return
	}
	if req.CurrentPassword != creds.Password {
		h.ErrLog.JSON(w, r, http.StatusForbidden, "Current password is incorrect", nil)
		return
	}

	err = h.Creds.Set(ctx, models.AdminCredentials{
		Username: creds.Username,
		Password: req.NewPassword,
	})
	if err != nil {
		h.ErrLog.JSON(w, r, http.StatusInternalServerError, "Failed to change password", err)
		return
	}
	h.Log.Info("admin password changed")
	errorsfeature.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
