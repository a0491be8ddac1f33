// Package about serves the company story and leadership page.
package about

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/harvalefoods/harvalehub/internal/app/sitecontent"
	"github.com/harvalefoods/harvalehub/internal/app/system/viewdata"
)

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

func (h *Handler) ServeAbout(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
		Leaders []sitecontent.Leader
		Brands  []sitecontent.Brand
	}{
		BaseVM:  viewdata.NewBaseVM(r, "About Us"),
		Leaders: sitecontent.Leaders,
		Brands:  sitecontent.Brands,
	}

	templates.Render(w, r, "about", data)
}
