package export

// PageSize is a physical page in millimetres, portrait orientation.
type PageSize struct {
	WidthMM  float64
	HeightMM float64
}

// A4 is the only page format the document layout targets.
var A4 = PageSize{WidthMM: 210, HeightMM: 297}

// CaptureOptions fixes the raster geometry. The viewport width matches the
// A4 width at 96dpi; the scale factor doubles the pixel density so the
// embedded image stays sharp at print size.
type CaptureOptions struct {
	// ViewportWidth is the CSS pixel width of the capture viewport.
	ViewportWidth int
	// Scale is the device scale factor applied to the capture.
	Scale float64
	// Quality is the JPEG quality (0-100).
	Quality int
}

// DefaultCaptureOptions returns the fixed capture geometry.
func DefaultCaptureOptions() CaptureOptions {
	return CaptureOptions{
		ViewportWidth: 794,
		Scale:         2,
		Quality:       95,
	}
}

func (o CaptureOptions) withDefaults() CaptureOptions {
	def := DefaultCaptureOptions()
	if o.ViewportWidth <= 0 {
		o.ViewportWidth = def.ViewportWidth
	}
	if o.Scale <= 0 {
		o.Scale = def.Scale
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = def.Quality
	}
	return o
}
