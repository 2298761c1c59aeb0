// Package web holds the HTML templates of the catalog.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses every embedded template. Pages are addressed by their
// define name (index, car_list, car_detail, car_form, car_delete, error).
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.tmpl")
}
