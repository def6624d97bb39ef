package export

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

// ChromeRasterizer captures document HTML with a headless Chrome page.
// Each capture launches, uses and closes its own browser; exports are rare
// enough that process reuse is not worth the lifecycle management.
type ChromeRasterizer struct {
	bin string
}

// ChromeOption configures the rasterizer.
type ChromeOption func(*ChromeRasterizer)

// WithChromeBin points the launcher at a specific Chrome/Chromium binary
// instead of resolving one from PATH.
func WithChromeBin(bin string) ChromeOption {
	return func(r *ChromeRasterizer) {
		r.bin = bin
	}
}

// NewChromeRasterizer constructs the headless-Chrome capture backend.
func NewChromeRasterizer(options ...ChromeOption) *ChromeRasterizer {
	r := &ChromeRasterizer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

var _ Rasterizer = (*ChromeRasterizer)(nil)

// Capture renders html in a fresh headless page and returns a full-page
// JPEG at the configured viewport width and scale factor. The white
// background comes from the document stylesheet plus the opaque JPEG
// encoding, regardless of any transparency in the page.
func (r *ChromeRasterizer) Capture(ctx context.Context, html []byte, opts CaptureOptions) ([]byte, error) {
	opts = opts.withDefaults()

	launch := launcher.New().Headless(true)
	if r.bin != "" {
		launch = launch.Bin(r.bin)
	}
	controlURL, err := launch.Launch()
	if err != nil {
		return nil, fmt.Errorf("export: launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("export: connect browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("export: create page: %w", err)
	}

	if err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             opts.ViewportWidth,
		Height:            1,
		DeviceScaleFactor: opts.Scale,
		Mobile:            false,
	}).Call(page); err != nil {
		return nil, fmt.Errorf("export: set viewport: %w", err)
	}

	if err := page.SetDocumentContent(string(html)); err != nil {
		return nil, fmt.Errorf("export: set document content: %w", err)
	}
	// Fonts and layout settle quickly for a static document; a short
	// stability window avoids capturing mid-layout.
	if err := page.WaitStable(300 * time.Millisecond); err != nil {
		return nil, fmt.Errorf("export: wait for layout: %w", err)
	}

	img, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format:  proto.PageCaptureScreenshotFormatJpeg,
		Quality: gson.Int(opts.Quality),
	})
	if err != nil {
		return nil, fmt.Errorf("export: capture screenshot: %w", err)
	}
	return img, nil
}
