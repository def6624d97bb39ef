// Package document renders a warning record as the fixed single-page
// print document: header, parties, body paragraph, quoted description,
// signature blocks and the conditional witness grid.
package document

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/mcotrim/advertencia/pkg/record"
	"github.com/mcotrim/advertencia/pkg/render"
	rendertemplate "github.com/mcotrim/advertencia/pkg/render/template"
	"github.com/mcotrim/advertencia/pkg/render/template/pongo"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces the print document view.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the document renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(pongo.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("document renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}
	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "document"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render binds the record into the document layout. The result is a
// self-contained HTML page (inline stylesheet) so it can be rasterized
// without serving assets.
func (r *Renderer) Render(_ context.Context, rec record.WarningRecord, opts render.Options) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("document renderer: template renderer is nil")
	}

	stylesheet := opts.Stylesheet
	if stylesheet == "" {
		stylesheet = defaultStylesheet()
	}

	data := buildContext(rec, opts).templateData(stylesheet)
	result, err := r.templates.RenderTemplate("templates/document.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("document renderer: render template: %w", err)
	}
	return []byte(result), nil
}
