// Package view renders the HTML pages.  Templates are embedded in the
// binary; each page is parsed together with the shared layout.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/flash"
	"github.com/iliyamo/fyyur/internal/model"
)

//go:embed templates
var templateFS embed.FS

// Page is the value every template receives.
type Page struct {
	Title  string
	Flash  []flash.Message
	Errors map[string]string
	Data   any
}

// Renderer implements echo.Renderer.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page under templates/pages and templates/forms.
// Pages are addressed by path without extension, e.g. "pages/venues".
func New() (*Renderer, error) {
	layout, err := template.New("layout").Funcs(Funcs()).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, dir := range []string{"pages", "forms"} {
		files, err := fs.Glob(templateFS, "templates/"+dir+"/*.html")
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			t, err := template.Must(layout.Clone()).ParseFS(templateFS, f)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", f, err)
			}
			r.pages[dir+"/"+strings.TrimSuffix(path.Base(f), ".html")] = t
		}
	}
	return r, nil
}

// Render writes page name wrapped in the layout.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// Funcs returns the template helpers.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"datetime": FormatDateTime,
		"join":     strings.Join,
		"contains": contains,
		"states":   func() []string { return model.States },
		"genres":   func() []string { return model.Genres },
		"field":    func(errs map[string]string, name string) string { return errs[name] },
	}
}

// FormatDateTime renders t for display.  "full" gives
// "Tuesday April, 1, 2035 at 8:00PM", anything else the medium form
// "Tue 04, 01, 2035 8:00PM".
func FormatDateTime(t time.Time, format string) string {
	if t.IsZero() {
		return ""
	}
	if format == "full" {
		return t.Format("Monday January, 2, 2006 at 3:04PM")
	}
	return t.Format("Mon 01, 02, 2006 3:04PM")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
