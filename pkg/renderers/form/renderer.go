// Package form renders the editable warning form: text inputs, masked
// fiscal-ID inputs, date and time pickers, the bounded description area,
// the three-level severity selector and the dynamic witness list.
package form

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

// Renderer produces the editable form view.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the form renderer applying any provided options.
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
			return nil, fmt.Errorf("form renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}
	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "form"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render binds the record into the editable form. The page is
// self-contained: the stylesheet and the keystroke mask script are
// inlined, so no asset route is required to use the output.
func (r *Renderer) Render(_ context.Context, rec record.WarningRecord, opts render.Options) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("form renderer: template renderer is nil")
	}

	stylesheet := opts.Stylesheet
	if stylesheet == "" {
		stylesheet = defaultStylesheet()
	}

	witnesses := make([]map[string]any, 0, len(rec.Witnesses))
	for _, w := range rec.Witnesses {
		witnesses = append(witnesses, map[string]any{"id": w.ID, "name": w.Name})
	}

	severities := make([]string, 0, len(record.Severities()))
	for _, s := range record.Severities() {
		severities = append(severities, string(s))
	}

	data := map[string]any{
		"company":         rec.Company,
		"company_cnpj":    rec.CompanyCNPJ,
		"employee":        rec.Employee,
		"employee_cpf":    rec.EmployeeCPF,
		"role":            rec.Role,
		"severity":        string(rec.Severity),
		"severities":      severities,
		"manager":         rec.Manager,
		"manager_role":    rec.ManagerRole,
		"date":            rec.Date,
		"time":            rec.Time,
		"description":     rec.Description,
		"description_max": record.MaxDescriptionLen,
		"witnesses":       witnesses,
		"can_add_witness": len(rec.Witnesses) < record.MaxWitnesses,
		"errors":          opts.Errors,
		"stylesheet":      stylesheet,
		"mask_script":     maskScript(),
	}

	result, err := r.templates.RenderTemplate("templates/form.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("form renderer: render template: %w", err)
	}
	return []byte(result), nil
}
