// Package record defines the disciplinary-warning record and the pure
// action reducer that evolves it. The record is a value type: every
// transition returns a fresh copy and never mutates its input.
package record

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Severity is one of the three fixed warning levels.
type Severity string

const (
	SeverityLeve     Severity = "Leve"
	SeverityModerada Severity = "Moderada"
	SeverityGrave    Severity = "Grave"
)

// Severities lists the selectable levels in display order.
func Severities() []Severity {
	return []Severity{SeverityLeve, SeverityModerada, SeverityGrave}
}

// Valid reports whether s is one of the three fixed levels.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLeve, SeverityModerada, SeverityGrave:
		return true
	}
	return false
}

// MaxWitnesses bounds the witness list. The document layout renders
// witnesses in a two-column grid, so the cap stays at two.
const MaxWitnesses = 2

// MaxDescriptionLen bounds the free-text occurrence description, in runes.
const MaxDescriptionLen = 600

// Witness is an entry in the record's witness list. The ID is an opaque
// generated identifier; nothing depends on its value beyond uniqueness.
type Witness struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// NewWitness returns an empty-named witness with a fresh identifier.
func NewWitness() Witness {
	return Witness{ID: uuid.NewString()}
}

// WarningRecord holds the full draft of a disciplinary warning.
type WarningRecord struct {
	Company     string    `yaml:"company"`
	CompanyCNPJ string    `yaml:"company_cnpj"`
	Employee    string    `yaml:"employee"`
	EmployeeCPF string    `yaml:"employee_cpf"`
	Role        string    `yaml:"role"`
	Severity    Severity  `yaml:"severity"`
	Manager     string    `yaml:"manager"`
	ManagerRole string    `yaml:"manager_role"`
	Date        string    `yaml:"date"` // YYYY-MM-DD
	Time        string    `yaml:"time"` // HH:MM
	Description string    `yaml:"description"`
	Witnesses   []Witness `yaml:"witnesses"`
}

// New returns a record with fresh defaults: today's date, the current
// time, severity Leve and a single empty witness row.
func New(now time.Time) WarningRecord {
	return WarningRecord{
		Severity:  SeverityLeve,
		Date:      now.Format("2006-01-02"),
		Time:      now.Format("15:04"),
		Witnesses: []Witness{NewWitness()},
	}
}

// VisibleWitnesses returns the witnesses that should appear on the
// rendered document: those whose trimmed name is non-blank. Blank rows
// stay in the editable list but never reach the document.
func (r WarningRecord) VisibleWitnesses() []Witness {
	var out []Witness
	for _, w := range r.Witnesses {
		if strings.TrimSpace(w.Name) != "" {
			out = append(out, w)
		}
	}
	return out
}

// Validate checks the required fields (everything except witness names)
// and returns messages keyed by field name. An empty map means the record
// is ready for submission.
func (r WarningRecord) Validate() map[string][]string {
	errs := map[string][]string{}
	require := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			errs[field] = append(errs[field], "campo obrigatório")
		}
	}
	require(FieldCompany, r.Company)
	require(FieldCompanyCNPJ, r.CompanyCNPJ)
	require(FieldEmployee, r.Employee)
	require(FieldEmployeeCPF, r.EmployeeCPF)
	require(FieldRole, r.Role)
	require(FieldManager, r.Manager)
	require(FieldManagerRole, r.ManagerRole)
	require(FieldDate, r.Date)
	require(FieldTime, r.Time)
	require(FieldDescription, r.Description)
	if !r.Severity.Valid() {
		errs[FieldSeverity] = append(errs[FieldSeverity], "gravidade inválida")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// clone returns a deep copy; the witness slice is never shared.
func (r WarningRecord) clone() WarningRecord {
	out := r
	out.Witnesses = make([]Witness, len(r.Witnesses))
	copy(out.Witnesses, r.Witnesses)
	return out
}
