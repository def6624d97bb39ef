package server

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/mcotrim/advertencia/pkg/record"
	"github.com/mcotrim/advertencia/pkg/render"
	"github.com/mcotrim/advertencia/pkg/session"
)

// scalarFields are the form controls mapped straight to SetField actions.
var scalarFields = []string{
	record.FieldCompany,
	record.FieldCompanyCNPJ,
	record.FieldEmployee,
	record.FieldEmployeeCPF,
	record.FieldRole,
	record.FieldSeverity,
	record.FieldManager,
	record.FieldManagerRole,
	record.FieldDate,
	record.FieldTime,
	record.FieldDescription,
}

// applyForm replays the posted form into the session's reducer: one
// SetField per present scalar control, one UpdateWitness per witness row.
// Absent controls are left untouched so partial posts never wipe state.
func (s *Server) applyForm(c *fiber.Ctx, sess *session.Session) {
	args := c.Request().PostArgs()

	for _, name := range scalarFields {
		if args.Has(name) {
			sess.Dispatch(record.SetField{Name: name, Value: c.FormValue(name)})
		}
	}

	rec, _ := sess.Snapshot()
	for _, w := range rec.Witnesses {
		key := "witness_" + w.ID
		if args.Has(key) {
			sess.Dispatch(record.UpdateWitness{ID: w.ID, Name: c.FormValue(key)})
		}
	}
}

// renderView resolves a renderer from the registry by name and sends its
// output with the renderer's content type.
func (s *Server) renderView(c *fiber.Ctx, name string, rec record.WarningRecord, opts render.Options) error {
	view, err := s.views.Get(name)
	if err != nil {
		s.log.Error("view lookup failed",
			zap.String("view", name),
			zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "erro ao renderizar a página")
	}

	out, err := view.Render(c.UserContext(), rec, opts)
	if err != nil {
		s.log.Error("view render failed",
			zap.String("view", name),
			zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "erro ao renderizar a página")
	}
	c.Set(fiber.HeaderContentType, view.ContentType())
	return c.Send(out)
}

func (s *Server) handleHome(c *fiber.Ctx) error {
	sess := s.store.get(c)
	rec, stage := sess.Snapshot()

	switch stage {
	case session.StageProcessing:
		return s.renderProcessing(c)
	case session.StageResult:
		return s.renderResult(c, rec)
	default:
		return s.renderView(c, "form", rec, render.Options{})
	}
}

func (s *Server) handleSubmit(c *fiber.Ctx) error {
	sess := s.store.get(c)
	s.applyForm(c, sess)

	rec, _ := sess.Snapshot()
	if errs := rec.Validate(); errs != nil {
		c.Status(fiber.StatusUnprocessableEntity)
		return s.renderView(c, "form", rec, render.Options{Errors: errs})
	}

	if err := sess.Submit(); err != nil {
		// Already submitted elsewhere; fall through to the current stage.
		s.log.Warn("submit ignored", zap.Error(err))
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (s *Server) handleWitnessAdd(c *fiber.Ctx) error {
	sess := s.store.get(c)
	s.applyForm(c, sess)
	sess.Dispatch(record.AddWitness{})
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (s *Server) handleWitnessRemove(c *fiber.Ctx) error {
	sess := s.store.get(c)
	s.applyForm(c, sess)
	if id := c.FormValue("remove_witness"); id != "" {
		sess.Dispatch(record.RemoveWitness{ID: id})
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (s *Server) handleReset(c *fiber.Ctx) error {
	sess := s.store.get(c)
	sess.Dispatch(record.Reset{})
	return c.Redirect("/", fiber.StatusSeeOther)
}

// handleDocument serves the print view. It is only reachable once the
// session produced a result; earlier stages bounce back to the form.
func (s *Server) handleDocument(c *fiber.Ctx) error {
	sess := s.store.get(c)
	rec, stage := sess.Snapshot()
	if stage != session.StageResult {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return s.renderView(c, "document", rec, render.Options{})
}

func (s *Server) handleExport(c *fiber.Ctx) error {
	sess := s.store.get(c)
	rec, stage := sess.Snapshot()
	if stage != session.StageResult {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	res, err := s.exporter.Export(c.UserContext(), rec, render.Options{})
	if err != nil {
		s.log.Error("export failed", zap.Error(err))
		c.Status(fiber.StatusBadGateway)
		return s.renderExportError(c)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Filename+`"`)
	return c.Send(res.PDF)
}
