// Package web holds the page templates and static assets and renders view
// pages into HTML.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/kalambet/folio/internal/view"
)

//go:embed templates/*.html static/*
var content embed.FS

// ResumePDF is the path of the bundled sample PDF inside Static().
const ResumePDF = "resume.pdf"

// Static returns the bundled static assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Renderer executes the page templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"levelClass": func(width int) string { return fmt.Sprintf("w-%d", width) },
	}).ParseFS(content, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Resume writes the full resume page.
func (r *Renderer) Resume(w io.Writer, pg view.Page) error {
	return r.tmpl.ExecuteTemplate(w, "resume.html", pg)
}
