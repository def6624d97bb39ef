package advertencia

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/mcotrim/advertencia/pkg/record"
)

func TestNewRegistryHasBothViews(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	if diff := cmp.Diff([]string{"document", "form"}, reg.List()); diff != "" {
		t.Fatalf("unexpected renderer list (-want +got):\n%s", diff)
	}
}

func TestRenderDocumentThroughFacade(t *testing.T) {
	rec := Apply(NewRecord(time.Date(2026, time.March, 12, 14, 30, 0, 0, time.UTC)), record.SetField{
		Name:  record.FieldEmployee,
		Value: "João Pereira",
	})
	rec = Apply(rec, record.SetField{Name: record.FieldSeverity, Value: "Grave"})

	out, err := RenderDocument(context.Background(), rec, Options{})
	if err != nil {
		t.Fatalf("RenderDocument failed: %v", err)
	}
	html := string(out)
	for _, want := range []string{"ADVERTÊNCIA DISCIPLINAR (GRAVE)", "João Pereira"} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in document, got:\n%s", want, html)
		}
	}
}
