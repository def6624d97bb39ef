package server

import (
	"embed"

	"github.com/gofiber/fiber/v2"

	"github.com/mcotrim/advertencia/pkg/record"
)

// Stage chrome around the two renderer views: the processing spinner, the
// result toolbar framing the document preview, and the export error
// notice.
//
//go:embed templates/*.tmpl
var pageTemplates embed.FS

func (s *Server) renderPage(c *fiber.Ctx, name string, data map[string]any) error {
	out, err := s.pages.RenderTemplate("templates/"+name, data)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "erro ao renderizar a página")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(out)
}

func (s *Server) renderProcessing(c *fiber.Ctx) error {
	return s.renderPage(c, "processing", nil)
}

func (s *Server) renderResult(c *fiber.Ctx, rec record.WarningRecord) error {
	return s.renderPage(c, "result", map[string]any{
		"employee": rec.Employee,
	})
}

func (s *Server) renderExportError(c *fiber.Ctx) error {
	return s.renderPage(c, "export_error", nil)
}
