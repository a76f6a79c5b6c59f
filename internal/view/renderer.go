package view

import (
	"embed"
	"html/template"
	"io"
	"io/fs"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates with the storefront helper
// functions registered. Parsing happens once at startup; a broken template
// is a programming error, so this panics.
func NewRenderer() *Renderer {
	tmpl := template.New("storefront").Funcs(template.FuncMap{
		"price": FormatPrice,
		"stock": StockLabel,
	})
	return &Renderer{
		templates: template.Must(tmpl.ParseFS(templateFS, "templates/*.html")),
	}
}

// Render satisfies echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// RenderPage writes the storefront page for the given model. Handlers and
// tests both go through this single entry point.
func (r *Renderer) RenderPage(w io.Writer, page *Page) error {
	return r.templates.ExecuteTemplate(w, "page", page)
}

// StaticFS exposes the embedded static assets rooted at the static/ dir.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("view: embedded static assets missing: " + err.Error())
	}
	return sub
}
