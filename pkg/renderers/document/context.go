package document

import (
	"strings"

	"github.com/mcotrim/advertencia/pkg/record"
	"github.com/mcotrim/advertencia/pkg/render"
)

// Context is the template-facing projection of a warning record. All user
// free text is sanitized before it reaches the template; witness rows with
// blank names are dropped here, never in the template.
type Context struct {
	Heading       string
	Company       string
	CompanyCNPJ   string
	Employee      string
	EmployeeCPF   string
	Role          string
	SeverityLower string
	OccurrenceOn  string
	OccurrenceAt  string
	Description   string
	ClosingDate   string
	Manager       string
	ManagerRole   string
	Witnesses     []string
}

func buildContext(rec record.WarningRecord, opts render.Options) Context {
	ctx := Context{
		Heading:       "ADVERTÊNCIA DISCIPLINAR (" + strings.ToUpper(string(rec.Severity)) + ")",
		Company:       rec.Company,
		CompanyCNPJ:   rec.CompanyCNPJ,
		Employee:      rec.Employee,
		EmployeeCPF:   rec.EmployeeCPF,
		Role:          rec.Role,
		SeverityLower: strings.ToLower(string(rec.Severity)),
		OccurrenceOn:  render.LongDateISO(rec.Date),
		OccurrenceAt:  rec.Time,
		Description:   render.SanitizeText(rec.Description),
		ClosingDate:   render.LongDate(opts.At()),
		Manager:       rec.Manager,
		ManagerRole:   rec.ManagerRole,
	}
	for _, w := range rec.VisibleWitnesses() {
		ctx.Witnesses = append(ctx.Witnesses, w.Name)
	}
	return ctx
}

func (c Context) templateData(stylesheet string) map[string]any {
	return map[string]any{
		"heading":        c.Heading,
		"company":        c.Company,
		"company_cnpj":   c.CompanyCNPJ,
		"employee":       c.Employee,
		"employee_cpf":   c.EmployeeCPF,
		"role":           c.Role,
		"severity_lower": c.SeverityLower,
		"occurrence_on":  c.OccurrenceOn,
		"occurrence_at":  c.OccurrenceAt,
		"description":    c.Description,
		"closing_date":   c.ClosingDate,
		"manager":        c.Manager,
		"manager_role":   c.ManagerRole,
		"witnesses":      c.Witnesses,
		"stylesheet":     stylesheet,
	}
}
