// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/harvalefoods/harvalehub/internal/app/system/viewdata"
)

type errorPageData struct {
	viewdata.BaseVM
	Message string
	BackURL string
}

// RenderNotFound shows a friendly "page not found" page.
func RenderNotFound(w http.ResponseWriter, r *http.Request) {
	data := errorPageData{
		BaseVM:  viewdata.NewBaseVM(r, "Page not found"),
		Message: "We couldn't find that page.",
		BackURL: "/",
	}
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_page", data)
}

// RenderServerError shows a friendly "something went wrong" page.
func RenderServerError(w http.ResponseWriter, r *http.Request) {
	data := errorPageData{
		BaseVM:  viewdata.NewBaseVM(r, "Something went wrong"),
		Message: "Something went wrong on our side. Please try again shortly.",
		BackURL: "/",
	}
	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_page", data)
}
