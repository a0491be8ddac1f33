// Package news serves the press release listing.
package news

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

func (h *Handler) ServeNews(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
		News []sitecontent.NewsItem
	}{
		BaseVM: viewdata.NewBaseVM(r, "News"),
		News:   sitecontent.News,
	}

	templates.Render(w, r, "news", data)
}
