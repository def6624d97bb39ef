// Package advertencia re-exports the building blocks for generating
// disciplinary-warning documents: the record reducer, the HTML renderers
// and the PDF exporter. Callers embedding the generator only need this
// package; everything here delegates to the pkg/ subpackages.
package advertencia

import (
	"context"

	"github.com/mcotrim/advertencia/pkg/export"
	"github.com/mcotrim/advertencia/pkg/record"
	"github.com/mcotrim/advertencia/pkg/render"
	"github.com/mcotrim/advertencia/pkg/renderers/document"
	"github.com/mcotrim/advertencia/pkg/renderers/form"
)

// WarningRecord aliases the draft record exported via the root package for
// convenience.
type WarningRecord = record.WarningRecord

// Action is a reducer action; Apply evolves a record without mutating it.
type Action = record.Action

// Options carries per-render overrides such as validation errors.
type Options = render.Options

// Result is a finished PDF export.
type Result = export.Result

// NewRecord returns a record with fresh defaults.
var NewRecord = record.New

// Apply runs the pure reducer.
var Apply = record.Apply

// NewRegistry returns a renderer registry with the built-in form and
// document renderers registered.
func NewRegistry() (*render.Registry, error) {
	reg := render.NewRegistry()

	formView, err := form.New()
	if err != nil {
		return nil, err
	}
	docView, err := document.New()
	if err != nil {
		return nil, err
	}

	reg.MustRegister(formView)
	reg.MustRegister(docView)
	return reg, nil
}

// RenderDocument renders the printable document view for rec.
func RenderDocument(ctx context.Context, rec record.WarningRecord, opts render.Options) ([]byte, error) {
	docView, err := document.New()
	if err != nil {
		return nil, err
	}
	return docView.Render(ctx, rec, opts)
}

// ExportPDF renders rec and produces the single-page A4 PDF with the
// default capture pipeline. Pass export options to swap backends.
func ExportPDF(ctx context.Context, rec record.WarningRecord, options ...export.Option) (export.Result, error) {
	exporter, err := export.New(options...)
	if err != nil {
		return export.Result{}, err
	}
	return exporter.Export(ctx, rec, render.Options{})
}
