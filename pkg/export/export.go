// Package export turns the rendered document view into a one-page PDF:
// the HTML is rasterized in a headless browser and the capture is embedded
// into an A4 page, preserving the capture's aspect ratio.
//
// Rasterization and PDF assembly are independent capability interfaces so
// either can be swapped for a different backend without touching the form
// or rendering logic.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/mcotrim/advertencia/pkg/record"
	"github.com/mcotrim/advertencia/pkg/render"
	"github.com/mcotrim/advertencia/pkg/renderers/document"
)

// Rasterizer captures an HTML document as a compressed raster image.
type Rasterizer interface {
	Capture(ctx context.Context, html []byte, opts CaptureOptions) ([]byte, error)
}

// Assembler packages a raster image into a single-page PDF.
type Assembler interface {
	Assemble(image []byte, page PageSize) ([]byte, error)
}

// Notifier observes an export in progress, typically to drive a transient
// progress indicator. Done always runs, on success and on failure.
type Notifier interface {
	Start()
	Done()
}

// NopNotifier ignores all notifications.
type NopNotifier struct{}

func (NopNotifier) Start() {}
func (NopNotifier) Done()  {}

// FallbackFilename is used when the employee name is blank.
const FallbackFilename = "advertencia"

// Result is a finished export.
type Result struct {
	Filename string
	PDF      []byte
}

// WriteFile saves the PDF under dir using the derived filename and returns
// the full path.
func (r Result) WriteFile(dir string) (string, error) {
	path := filepath.Join(dir, r.Filename)
	if err := os.WriteFile(path, r.PDF, 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	return path, nil
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithRenderer overrides the document renderer.
func WithRenderer(r render.Renderer) Option {
	return func(e *Exporter) {
		if r != nil {
			e.renderer = r
		}
	}
}

// WithRasterizer overrides the capture backend.
func WithRasterizer(r Rasterizer) Option {
	return func(e *Exporter) {
		if r != nil {
			e.rasterizer = r
		}
	}
}

// WithAssembler overrides the PDF backend.
func WithAssembler(a Assembler) Option {
	return func(e *Exporter) {
		if a != nil {
			e.assembler = a
		}
	}
}

// WithNotifier registers a progress observer.
func WithNotifier(n Notifier) Option {
	return func(e *Exporter) {
		if n != nil {
			e.notifier = n
		}
	}
}

// WithLogger injects a logger; the default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Exporter) {
		if log != nil {
			e.log = log
		}
	}
}

// WithCaptureOptions overrides the fixed capture geometry.
func WithCaptureOptions(opts CaptureOptions) Option {
	return func(e *Exporter) {
		e.capture = opts.withDefaults()
	}
}

// WithPageSize overrides the output page format.
func WithPageSize(page PageSize) Option {
	return func(e *Exporter) {
		if page.WidthMM > 0 && page.HeightMM > 0 {
			e.page = page
		}
	}
}

// Exporter orchestrates render → capture → assemble. Failures are logged
// and returned; nothing is retried and no partial output is produced.
type Exporter struct {
	renderer   render.Renderer
	rasterizer Rasterizer
	assembler  Assembler
	notifier   Notifier
	log        *zap.Logger
	capture    CaptureOptions
	page       PageSize
}

// New constructs an Exporter with the built-in document renderer, the
// headless-Chrome rasterizer and the fpdf assembler.
func New(options ...Option) (*Exporter, error) {
	e := &Exporter{
		rasterizer: NewChromeRasterizer(),
		assembler:  FPDFAssembler{},
		notifier:   NopNotifier{},
		log:        zap.NewNop(),
		capture:    DefaultCaptureOptions(),
		page:       A4,
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	if e.renderer == nil {
		renderer, err := document.New()
		if err != nil {
			return nil, fmt.Errorf("export: construct document renderer: %w", err)
		}
		e.renderer = renderer
	}
	return e, nil
}

// Export produces the PDF for rec. There is no concurrent-invocation
// guard: each call drives its own notifier pair, and Done is guaranteed on
// every exit path.
func (e *Exporter) Export(ctx context.Context, rec record.WarningRecord, opts render.Options) (Result, error) {
	e.notifier.Start()
	defer e.notifier.Done()

	html, err := e.renderer.Render(ctx, rec, opts)
	if err != nil {
		e.log.Error("document render failed", zap.Error(err))
		return Result{}, fmt.Errorf("export: render document: %w", err)
	}

	img, err := e.rasterizer.Capture(ctx, html, e.capture)
	if err != nil {
		e.log.Error("document capture failed", zap.Error(err))
		return Result{}, fmt.Errorf("export: capture document: %w", err)
	}

	pdf, err := e.assembler.Assemble(img, e.page)
	if err != nil {
		e.log.Error("pdf assembly failed", zap.Error(err))
		return Result{}, fmt.Errorf("export: assemble pdf: %w", err)
	}

	name := Filename(rec.Employee)
	e.log.Info("document exported",
		zap.String("filename", name),
		zap.Int("pdf_bytes", len(pdf)))
	return Result{Filename: name, PDF: pdf}, nil
}

// Filename derives the output name from the employee name: lower-cased,
// whitespace collapsed to dashes, with a generic fallback when blank.
func Filename(employee string) string {
	parts := strings.Fields(strings.ToLower(employee))
	if len(parts) == 0 {
		return FallbackFilename + ".pdf"
	}
	return strings.Join(parts, "-") + ".pdf"
}
