// Package server exposes the warning form over HTTP: the editable form,
// the processing/result stages, the print document view and the PDF
// download.
package server

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"

	"github.com/mcotrim/advertencia/internal/config"
	"github.com/mcotrim/advertencia/pkg/export"
	"github.com/mcotrim/advertencia/pkg/render"
	"github.com/mcotrim/advertencia/pkg/render/template/pongo"
	"github.com/mcotrim/advertencia/pkg/renderers/document"
	"github.com/mcotrim/advertencia/pkg/renderers/form"
)

// Option overrides a Server collaborator, mainly for tests.
type Option func(*Server)

// WithExporter injects a pre-built exporter.
func WithExporter(e *export.Exporter) Option {
	return func(s *Server) {
		if e != nil {
			s.exporter = e
		}
	}
}

// Server wires the renderers, the session store and the exporter into a
// fiber application. The views are resolved by name through a renderer
// registry, so an embedding caller can swap either view by registering a
// replacement before routing starts.
type Server struct {
	app      *fiber.App
	store    *store
	views    *render.Registry
	pages    *pongo.Engine
	exporter *export.Exporter
	log      *zap.Logger
	addr     string
}

// New constructs the application from cfg.
func New(cfg config.Config, log *zap.Logger, options ...Option) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}

	formView, err := form.New()
	if err != nil {
		return nil, fmt.Errorf("server: construct form renderer: %w", err)
	}
	docView, err := document.New()
	if err != nil {
		return nil, fmt.Errorf("server: construct document renderer: %w", err)
	}
	pages, err := pongo.New(pongo.WithFS(pageTemplates))
	if err != nil {
		return nil, fmt.Errorf("server: construct page templates: %w", err)
	}

	views := render.NewRegistry()
	if err := views.Register(formView); err != nil {
		return nil, fmt.Errorf("server: register form renderer: %w", err)
	}
	if err := views.Register(docView); err != nil {
		return nil, fmt.Errorf("server: register document renderer: %w", err)
	}

	s := &Server{
		store: newStore(cfg.Server.SubmitDelay.Std()),
		views: views,
		pages: pages,
		log:   log,
		addr:  cfg.Server.Addr,
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}

	if s.exporter == nil {
		exporter, err := export.New(
			export.WithRenderer(docView),
			export.WithLogger(log),
			export.WithCaptureOptions(export.CaptureOptions{
				ViewportWidth: cfg.Export.ViewportWidth,
				Scale:         cfg.Export.Scale,
				Quality:       cfg.Export.Quality,
			}),
			export.WithRasterizer(export.NewChromeRasterizer(export.WithChromeBin(cfg.Export.ChromeBin))),
		)
		if err != nil {
			return nil, fmt.Errorf("server: construct exporter: %w", err)
		}
		s.exporter = exporter
	}

	app := fiber.New(fiber.Config{
		AppName:               "Gerador de Advertência",
		DisableStartupMessage: true,
	})
	app.Use(logger.New())

	app.Get("/", s.handleHome)
	app.Post("/submit", s.handleSubmit)
	app.Post("/witness/add", s.handleWitnessAdd)
	app.Post("/witness/remove", s.handleWitnessRemove)
	app.Post("/reset", s.handleReset)
	app.Get("/document", s.handleDocument)
	app.Post("/export", s.handleExport)
	app.Use("/assets", filesystem.New(filesystem.Config{
		Root: http.FS(form.AssetsFS()),
	}))

	s.app = app
	return s, nil
}

// App exposes the fiber application, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving HTTP on the configured address.
func (s *Server) Listen() error {
	s.log.Info("server listening", zap.String("addr", s.addr))
	return s.app.Listen(s.addr)
}
