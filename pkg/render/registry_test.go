package render

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mcotrim/advertencia/pkg/record"
)

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/html; charset=utf-8" }
func (s stubRenderer) Render(context.Context, record.WarningRecord, Options) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(stubRenderer{name: "document"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := reg.Register(stubRenderer{name: "document"}); err == nil {
		t.Fatal("expected duplicate registration error")
	}

	r, err := reg.Get("document")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if r.Name() != "document" {
		t.Fatalf("expected document renderer, got %q", r.Name())
	}

	if _, err := reg.Get("missing"); err == nil {
		t.Fatal("expected error for unknown renderer")
	}
}

func TestRegistryList(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(stubRenderer{name: "form"})
	reg.MustRegister(stubRenderer{name: "document"})

	if diff := cmp.Diff([]string{"document", "form"}, reg.List()); diff != "" {
		t.Fatalf("unexpected renderer list (-want +got):\n%s", diff)
	}
	if !reg.Has("form") || reg.Has("missing") {
		t.Fatal("Has reported the wrong membership")
	}
}
