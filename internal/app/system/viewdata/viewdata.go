// Package viewdata holds the view model shared by every rendered page.
package viewdata

import (
	"net/http"
	"time"

	"github.com/harvalefoods/harvalehub/internal/app/sitecontent"
	"github.com/harvalefoods/harvalehub/internal/app/system/auth"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName    string
	Title       string
	CurrentPath string
	Nav         []sitecontent.NavLink
	IsAdmin     bool
	Year        int
}

// NewBaseVM creates a populated BaseVM for a page.
func NewBaseVM(r *http.Request, title string) BaseVM {
	_, isAdmin := auth.Current(r)
	return BaseVM{
		SiteName:    sitecontent.SiteName,
		Title:       title,
		CurrentPath: r.URL.Path,
		Nav:         sitecontent.Navigation,
		IsAdmin:     isAdmin,
		Year:        time.Now().Year(),
	}
}
