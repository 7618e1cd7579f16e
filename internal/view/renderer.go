package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Masterminds/sprig/v3"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
)

const (
	pageTemplate = "index.html.tmpl"
	mediaHTML    = "text/html"
	mediaCSS     = "text/css"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer executes the page template. Safe for concurrent use.
type Renderer struct {
	tmpl     *template.Template
	minifier *minify.M
}

type RendererOption func(*Renderer)

// WithMinify enables HTML and inline CSS minification of the output
func WithMinify() RendererOption {
	return func(r *Renderer) {
		m := minify.New()
		m.AddFunc(mediaHTML, html.Minify)
		m.AddFunc(mediaCSS, css.Minify)
		r.minifier = m
	}
}

func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	tmpl, err := template.New(pageTemplate).
		Funcs(sprig.FuncMap()).
		ParseFS(templateFS, "templates/"+pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	r := &Renderer{tmpl: tmpl}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Render buffers the template output, so a failed execution writes nothing
func (r *Renderer) Render(w io.Writer, page *Page) error {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, page); err != nil {
		return fmt.Errorf("failed to execute page template: %w", err)
	}

	if r.minifier == nil {
		_, err := buf.WriteTo(w)
		return err
	}
	if err := r.minifier.Minify(mediaHTML, w, &buf); err != nil {
		return fmt.Errorf("failed to minify page: %w", err)
	}
	return nil
}
