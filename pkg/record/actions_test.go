package record

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestApplySetFieldMasksFiscalIDs(t *testing.T) {
	rec := New(testNow)

	rec = Apply(rec, SetField{Name: FieldEmployeeCPF, Value: "12345678901"})
	if rec.EmployeeCPF != "123.456.789-01" {
		t.Fatalf("expected masked CPF, got %q", rec.EmployeeCPF)
	}

	rec = Apply(rec, SetField{Name: FieldCompanyCNPJ, Value: "12345678000199"})
	if rec.CompanyCNPJ != "12.345.678/0001-99" {
		t.Fatalf("expected masked CNPJ, got %q", rec.CompanyCNPJ)
	}
}

func TestApplySetFieldStoresVerbatim(t *testing.T) {
	rec := Apply(New(testNow), SetField{Name: FieldCompany, Value: "  Acme  Ltda "})
	if rec.Company != "  Acme  Ltda " {
		t.Fatalf("expected verbatim storage, got %q", rec.Company)
	}
}

func TestApplySetFieldIgnoresUnknownNames(t *testing.T) {
	before := New(testNow)
	after := Apply(before, SetField{Name: "bogus", Value: "x"})
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("unknown field should be a no-op (-want +got):\n%s", diff)
	}
}

func TestApplySetFieldRejectsInvalidSeverity(t *testing.T) {
	rec := Apply(New(testNow), SetField{Name: FieldSeverity, Value: "Gravíssima"})
	if rec.Severity != SeverityLeve {
		t.Fatalf("invalid severity should keep the default, got %q", rec.Severity)
	}
	rec = Apply(rec, SetField{Name: FieldSeverity, Value: "Grave"})
	if rec.Severity != SeverityGrave {
		t.Fatalf("expected Grave, got %q", rec.Severity)
	}
}

func TestApplyTruncatesDescription(t *testing.T) {
	long := strings.Repeat("é", MaxDescriptionLen+50)
	rec := Apply(New(testNow), SetField{Name: FieldDescription, Value: long})
	if got := len([]rune(rec.Description)); got != MaxDescriptionLen {
		t.Fatalf("expected %d runes, got %d", MaxDescriptionLen, got)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	before := New(testNow)
	want := before.Company
	_ = Apply(before, SetField{Name: FieldCompany, Value: "Acme"})
	if before.Company != want {
		t.Fatal("Apply mutated its input record")
	}
}

func TestAddWitnessCapsAtTwo(t *testing.T) {
	rec := New(testNow)
	rec = Apply(rec, AddWitness{})
	if len(rec.Witnesses) != 2 {
		t.Fatalf("expected 2 witnesses, got %d", len(rec.Witnesses))
	}
	rec = Apply(rec, AddWitness{})
	if len(rec.Witnesses) != 2 {
		t.Fatalf("third add must be a no-op, got %d witnesses", len(rec.Witnesses))
	}
}

func TestAddThenRemoveRestoresList(t *testing.T) {
	rec := New(testNow)
	before := rec.clone()

	rec = Apply(rec, AddWitness{})
	added := rec.Witnesses[len(rec.Witnesses)-1].ID
	rec = Apply(rec, RemoveWitness{ID: added})

	if diff := cmp.Diff(before.Witnesses, rec.Witnesses); diff != "" {
		t.Fatalf("witness list not restored (-want +got):\n%s", diff)
	}
}

func TestRemoveWitnessPreservesOrder(t *testing.T) {
	rec := New(testNow)
	rec.Witnesses = []Witness{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}
	rec = Apply(rec, RemoveWitness{ID: "a"})
	if len(rec.Witnesses) != 1 || rec.Witnesses[0].ID != "b" {
		t.Fatalf("expected only witness b, got %v", rec.Witnesses)
	}
	rec = Apply(rec, RemoveWitness{ID: "b"})
	if len(rec.Witnesses) != 0 {
		t.Fatalf("list may become empty, got %v", rec.Witnesses)
	}
}

func TestRemoveWitnessUnknownIDIsNoop(t *testing.T) {
	before := New(testNow)
	after := Apply(before, RemoveWitness{ID: "missing"})
	if diff := cmp.Diff(before.Witnesses, after.Witnesses); diff != "" {
		t.Fatalf("unknown ID should be a no-op (-want +got):\n%s", diff)
	}
}

func TestUpdateWitnessReplacesMatchingName(t *testing.T) {
	rec := New(testNow)
	id := rec.Witnesses[0].ID
	rec = Apply(rec, UpdateWitness{ID: id, Name: "Ana Souza"})
	if rec.Witnesses[0].Name != "Ana Souza" {
		t.Fatalf("expected updated name, got %q", rec.Witnesses[0].Name)
	}

	before := rec.clone()
	rec = Apply(rec, UpdateWitness{ID: "missing", Name: "x"})
	if diff := cmp.Diff(before.Witnesses, rec.Witnesses); diff != "" {
		t.Fatalf("unknown ID should be a no-op (-want +got):\n%s", diff)
	}
}

func TestResetRecomputesDefaults(t *testing.T) {
	rec := New(testNow)
	rec = Apply(rec, SetField{Name: FieldCompany, Value: "Acme"})
	rec = Apply(rec, AddWitness{})

	later := time.Date(2026, time.August, 24, 9, 0, 0, 0, time.Local)
	rec = Apply(rec, Reset{Now: later})

	if rec.Company != "" {
		t.Fatalf("expected cleared company, got %q", rec.Company)
	}
	if rec.Severity != SeverityLeve {
		t.Fatalf("expected default severity Leve, got %q", rec.Severity)
	}
	if rec.Date != "2026-08-24" {
		t.Fatalf("expected recomputed date, got %q", rec.Date)
	}
	if len(rec.Witnesses) != 1 || rec.Witnesses[0].Name != "" {
		t.Fatalf("expected one empty witness, got %v", rec.Witnesses)
	}
}
