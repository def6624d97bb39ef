package record

import (
	"time"
	"unicode/utf8"

	"github.com/mcotrim/advertencia/pkg/mask"
)

// Field names accepted by SetField. Unknown names are ignored.
const (
	FieldCompany     = "company"
	FieldCompanyCNPJ = "company_cnpj"
	FieldEmployee    = "employee"
	FieldEmployeeCPF = "employee_cpf"
	FieldRole        = "role"
	FieldSeverity    = "severity"
	FieldManager     = "manager"
	FieldManagerRole = "manager_role"
	FieldDate        = "date"
	FieldTime        = "time"
	FieldDescription = "description"
)

// Action is a state transition applied by Apply. Concrete actions carry
// their own payload; there is no shared mutable state.
type Action interface {
	isAction()
}

// SetField stores a single scalar field. The two fiscal-ID fields are
// masked before storing; the description is truncated to its bound;
// everything else is stored verbatim.
type SetField struct {
	Name  string
	Value string
}

// UpdateWitness replaces the name of the witness with the matching ID.
// Unknown IDs are a no-op.
type UpdateWitness struct {
	ID   string
	Name string
}

// AddWitness appends a fresh empty witness; no-op once the list holds
// MaxWitnesses entries.
type AddWitness struct{}

// RemoveWitness deletes the witness with the matching ID, preserving the
// order of the remaining entries. The list may become empty.
type RemoveWitness struct {
	ID string
}

// Reset replaces the whole record with fresh defaults computed at Now.
type Reset struct {
	Now time.Time
}

func (SetField) isAction()      {}
func (UpdateWitness) isAction() {}
func (AddWitness) isAction()    {}
func (RemoveWitness) isAction() {}
func (Reset) isAction()         {}

// Apply returns the record produced by act. The input record is never
// mutated; callers always receive a fresh value.
func Apply(rec WarningRecord, act Action) WarningRecord {
	switch a := act.(type) {
	case SetField:
		return applySetField(rec.clone(), a)
	case UpdateWitness:
		out := rec.clone()
		for i := range out.Witnesses {
			if out.Witnesses[i].ID == a.ID {
				out.Witnesses[i].Name = a.Name
				break
			}
		}
		return out
	case AddWitness:
		out := rec.clone()
		if len(out.Witnesses) >= MaxWitnesses {
			return out
		}
		out.Witnesses = append(out.Witnesses, NewWitness())
		return out
	case RemoveWitness:
		out := rec.clone()
		kept := out.Witnesses[:0]
		for _, w := range out.Witnesses {
			if w.ID != a.ID {
				kept = append(kept, w)
			}
		}
		out.Witnesses = kept
		return out
	case Reset:
		now := a.Now
		if now.IsZero() {
			now = time.Now()
		}
		return New(now)
	}
	return rec.clone()
}

func applySetField(out WarningRecord, a SetField) WarningRecord {
	switch a.Name {
	case FieldCompany:
		out.Company = a.Value
	case FieldCompanyCNPJ:
		out.CompanyCNPJ = mask.CNPJ(a.Value)
	case FieldEmployee:
		out.Employee = a.Value
	case FieldEmployeeCPF:
		out.EmployeeCPF = mask.CPF(a.Value)
	case FieldRole:
		out.Role = a.Value
	case FieldSeverity:
		if s := Severity(a.Value); s.Valid() {
			out.Severity = s
		}
	case FieldManager:
		out.Manager = a.Value
	case FieldManagerRole:
		out.ManagerRole = a.Value
	case FieldDate:
		out.Date = a.Value
	case FieldTime:
		out.Time = a.Value
	case FieldDescription:
		out.Description = truncateRunes(a.Value, MaxDescriptionLen)
	}
	return out
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
