package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates
var templatesFS embed.FS

// pages lists every renderable page. Each page is parsed together with the
// boilerplate layout so a broken template fails at startup, not per request.
var pages = []string{
	"home",
	"error",
	"campgrounds/index",
	"campgrounds/show",
	"campgrounds/new",
	"campgrounds/edit",
}

var funcs = template.FuncMap{
	"price": func(p float64) string { return fmt.Sprintf("%.2f", p) },
}

// Renderer renders HTML pages from the embedded template set.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses all embedded templates.
func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = t
	}
	return &Renderer{templates: templates}, nil
}

// Render writes the page to the response with the given status. The page is
// rendered to a buffer first so a template fault cannot leave a half-written
// body behind a 200 header.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	t, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("unknown page: %s", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
