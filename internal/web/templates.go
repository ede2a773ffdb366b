package web

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

var siteTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type viewData struct {
	Title       string
	Description string
	Content     template.HTML
}

func renderView(w io.Writer, name string, data any) error {
	return siteTemplates.ExecuteTemplate(w, name, data)
}
