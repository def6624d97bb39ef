package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mcotrim/advertencia/pkg/record"
	"github.com/mcotrim/advertencia/pkg/render"
)

type fakeRasterizer struct {
	img      []byte
	err      error
	gotHTML  []byte
	gotOpts  CaptureOptions
	captured int
}

func (f *fakeRasterizer) Capture(_ context.Context, html []byte, opts CaptureOptions) ([]byte, error) {
	f.captured++
	f.gotHTML = html
	f.gotOpts = opts
	return f.img, f.err
}

type fakeAssembler struct {
	pdf     []byte
	err     error
	gotImg  []byte
	gotPage PageSize
}

func (f *fakeAssembler) Assemble(image []byte, page PageSize) ([]byte, error) {
	f.gotImg = image
	f.gotPage = page
	return f.pdf, f.err
}

type countingNotifier struct {
	starts int
	dones  int
}

func (n *countingNotifier) Start() { n.starts++ }
func (n *countingNotifier) Done()  { n.dones++ }

func exportRecord() record.WarningRecord {
	rec := record.New(time.Date(2026, time.March, 12, 14, 30, 0, 0, time.Local))
	rec.Employee = "João Pereira"
	return rec
}

func newTestExporter(t *testing.T, raster *fakeRasterizer, asm *fakeAssembler, notifier Notifier) *Exporter {
	t.Helper()
	opts := []Option{WithRasterizer(raster), WithAssembler(asm)}
	if notifier != nil {
		opts = append(opts, WithNotifier(notifier))
	}
	e, err := New(opts...)
	if err != nil {
		t.Fatalf("exporter construction failed: %v", err)
	}
	return e
}

func TestExportHappyPath(t *testing.T) {
	raster := &fakeRasterizer{img: []byte("jpeg-bytes")}
	asm := &fakeAssembler{pdf: []byte("%PDF-1.4 fake")}
	notifier := &countingNotifier{}
	e := newTestExporter(t, raster, asm, notifier)

	res, err := e.Export(context.Background(), exportRecord(), render.Options{})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	if res.Filename != "joão-pereira.pdf" {
		t.Fatalf("expected filename from employee name, got %q", res.Filename)
	}
	if string(res.PDF) != "%PDF-1.4 fake" {
		t.Fatalf("unexpected pdf bytes: %q", res.PDF)
	}
	if len(raster.gotHTML) == 0 {
		t.Fatal("rasterizer never received rendered HTML")
	}
	if string(asm.gotImg) != "jpeg-bytes" {
		t.Fatal("assembler did not receive the capture")
	}
	if asm.gotPage != A4 {
		t.Fatalf("expected A4 page, got %+v", asm.gotPage)
	}
	if notifier.starts != 1 || notifier.dones != 1 {
		t.Fatalf("expected one Start/Done pair, got %d/%d", notifier.starts, notifier.dones)
	}
}

func TestExportUsesFixedCaptureGeometry(t *testing.T) {
	raster := &fakeRasterizer{img: []byte("img")}
	asm := &fakeAssembler{pdf: []byte("pdf")}
	e := newTestExporter(t, raster, asm, nil)

	if _, err := e.Export(context.Background(), exportRecord(), render.Options{}); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if raster.gotOpts.ViewportWidth != 794 || raster.gotOpts.Scale != 2 || raster.gotOpts.Quality != 95 {
		t.Fatalf("unexpected capture geometry: %+v", raster.gotOpts)
	}
}

func TestExportCaptureFailureRunsCleanup(t *testing.T) {
	raster := &fakeRasterizer{err: errors.New("browser crashed")}
	asm := &fakeAssembler{}
	notifier := &countingNotifier{}
	e := newTestExporter(t, raster, asm, notifier)

	_, err := e.Export(context.Background(), exportRecord(), render.Options{})
	if err == nil {
		t.Fatal("expected capture error")
	}
	if notifier.dones != 1 {
		t.Fatalf("Done must run on failure, got %d", notifier.dones)
	}
	if asm.gotImg != nil {
		t.Fatal("assembler must not run after a capture failure")
	}
}

func TestExportAssemblyFailure(t *testing.T) {
	raster := &fakeRasterizer{img: []byte("img")}
	asm := &fakeAssembler{err: errors.New("bad image")}
	notifier := &countingNotifier{}
	e := newTestExporter(t, raster, asm, notifier)

	res, err := e.Export(context.Background(), exportRecord(), render.Options{})
	if err == nil {
		t.Fatal("expected assembly error")
	}
	if res.PDF != nil {
		t.Fatal("no partial output may be produced on failure")
	}
	if notifier.dones != 1 {
		t.Fatalf("Done must run on failure, got %d", notifier.dones)
	}
}

func TestFilename(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"João Pereira", "joão-pereira.pdf"},
		{"  Ana   Souza  ", "ana-souza.pdf"},
		{"", "advertencia.pdf"},
		{"   ", "advertencia.pdf"},
		{"MARIA DE LOURDES", "maria-de-lourdes.pdf"},
	}
	for _, tc := range cases {
		if got := Filename(tc.input); got != tc.want {
			t.Fatalf("Filename(%q): expected %q, got %q", tc.input, tc.want, got)
		}
	}
}

func TestResultWriteFile(t *testing.T) {
	dir := t.TempDir()
	res := Result{Filename: "ana-souza.pdf", PDF: []byte("%PDF")}

	path, err := res.WriteFile(dir)
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if filepath.Base(path) != "ana-souza.pdf" {
		t.Fatalf("unexpected path %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if string(data) != "%PDF" {
		t.Fatalf("unexpected contents %q", data)
	}
}
