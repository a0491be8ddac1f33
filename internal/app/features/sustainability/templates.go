// internal/app/features/sustainability/templates.go
package sustainability

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "sustainability",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
