// Package view renders the HTML pages with html/template.  Templates are
// embedded in the binary and parsed once at start-up; a page that fails to
// parse stops the server before it accepts traffic.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-web/internal/model"
)

//go:embed templates
var files embed.FS

// layouts maps each page to the layout that wraps it.
var layouts = map[string]string{
	"home":            "public",
	"terms":           "public",
	"blog":            "public",
	"blog_post":       "public",
	"testimonials":    "public",
	"login":           "public",
	"forgot_password": "public",
	"verify_otp":      "public",
	"error":           "public",
	"measure":         "bare",
	"dashboard":       "shell",
	"settings":        "shell",
	"promo":           "shell",
	"admin_dashboard": "shell",
}

// Renderer implements echo.Renderer.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page together with the layouts.
func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"rupiah":   Rupiah,
		"number":   Number,
		"date":     Date,
		"discount": Discount,
		"initials": Initials,
		"expired": func(p model.Promo) bool {
			return p.Expired(time.Now())
		},
		"year": func() int { return time.Now().Year() },
		"stars": func(n int) []struct{} {
			if n < 0 {
				n = 0
			}
			return make([]struct{}, n)
		},
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(layouts))}
	for page := range layouts {
		t, err := template.New(page).Funcs(funcs).ParseFS(files,
			"templates/layouts/*.html",
			"templates/pages/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

// MustNew is New for start-up code.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Render executes page name inside its layout.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, layouts[name], data)
}
