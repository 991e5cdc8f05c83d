package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageNames lists every page template that participates in the shared layout.
var pageNames = []string{
	"login.html",
	"owner_setup.html",
	"dashboard.html",
	"new.html",
	"created.html",
	"view.html",
}

// templateSet holds one pre-parsed template per page. Each page is parsed
// together with the shared layout so that a broken template fails at startup
// instead of on the first request.
type templateSet struct {
	pages map[string]*template.Template
}

func mustParseTemplates() *templateSet {
	set := &templateSet{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			panic(fmt.Sprintf("parse template %s: %v", name, err))
		}
		set.pages[name] = t
	}
	return set
}

// render executes the named page into a buffer first so that a template
// error produces a clean 500 instead of a half-written response body.
func (s *templateSet) render(w http.ResponseWriter, status int, name string, data any) error {
	t, ok := s.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
