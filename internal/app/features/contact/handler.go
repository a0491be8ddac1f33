// Package contact serves the contact page and takes inquiry form
// submissions. Submissions are sanitized and logged for the sales inbox
// exporter; nothing is stored.
package contact

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/harvalefoods/harvalehub/internal/app/sitecontent"
	"github.com/harvalefoods/harvalehub/internal/app/system/viewdata"
)

// sanitizer strips all markup from free-text fields. Inquiries end up in
// emails and dashboards that render HTML, so tags are dropped at the door.
var sanitizer = bluemonday.StrictPolicy()

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

type contactPageData struct {
	viewdata.BaseVM
	Offices   []sitecontent.Office
	Submitted bool
	FormError string
}

// ServeContact renders the contact page with office locations.
// GET /contact
func (h *Handler) ServeContact(w http.ResponseWriter, r *http.Request) {
	data := contactPageData{
		BaseVM:  viewdata.NewBaseVM(r, "Contact"),
		Offices: sitecontent.Offices,
	}
	templates.Render(w, r, "contact", data)
}

// inquiry is a cleaned contact form submission.
type inquiry struct {
	Name    string
	Email   string
	Message string
}

// cleanInquiry sanitizes and validates the posted form fields.
func cleanInquiry(r *http.Request) (inquiry, error) {
	in := inquiry{
		Name:    strings.TrimSpace(sanitizer.Sanitize(r.FormValue("name"))),
		Email:   strings.TrimSpace(sanitizer.Sanitize(r.FormValue("email"))),
		Message: strings.TrimSpace(sanitizer.Sanitize(r.FormValue("message"))),
	}
	if in.Name == "" || in.Email == "" || in.Message == "" {
		return inquiry{}, errors.New("Please fill in your name, email, and message")
	}
	if !strings.Contains(in.Email, "@") {
		return inquiry{}, errors.New("Please enter a valid email address")
	}
	return in, nil
}

// SubmitContact accepts an inquiry form post.
// POST /contact
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	data := contactPageData{
		BaseVM:  viewdata.NewBaseVM(r, "Contact"),
		Offices: sitecontent.Offices,
	}

	in, err := cleanInquiry(r)
	if err != nil {
		data.FormError = err.Error()
		w.WriteHeader(http.StatusBadRequest)
		templates.Render(w, r, "contact", data)
		return
	}

	h.Log.Info("contact inquiry received",
		zap.String("name", in.Name),
		zap.String("email", in.Email),
		zap.Int("message_len", len(in.Message)))

	data.Submitted = true
	templates.Render(w, r, "contact", data)
}
