// Package render defines the seam between the warning record and its
// visual projections. Renderers turn a record into bytes (HTML today); the
// registry lets callers pick a view by name without importing it.
package render

import (
	"context"
	"time"

	"github.com/mcotrim/advertencia/pkg/record"
)

// Renderer converts a WarningRecord into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, rec record.WarningRecord, opts Options) ([]byte, error)
}

// Options carries per-request data renderers may use without touching the
// record itself.
type Options struct {
	// Now anchors the closing-line date on the document view. Zero means
	// time.Now at render time.
	Now time.Time
	// Errors surfaces server-side validation feedback keyed by field name;
	// the form view maps these into inline chrome.
	Errors map[string][]string
	// Stylesheet replaces the embedded stylesheet when non-empty.
	Stylesheet string
}

// At returns the effective clock value for the render.
func (o Options) At() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}
