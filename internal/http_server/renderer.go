package http_server

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer hands listed records to html/template pages. The pages are
// presentation glue only, all behavior lives in the services.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: templates}, nil
}

func (renderer *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return renderer.templates.ExecuteTemplate(w, name, data)
}
