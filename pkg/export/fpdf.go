package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// FPDFAssembler builds the one-page PDF with go-pdf/fpdf. The capture is
// placed at the page's full width; its height follows from the capture's
// aspect ratio, so a document that rasterized taller than one page simply
// scales with its width and never spills onto a second page.
type FPDFAssembler struct{}

var _ Assembler = FPDFAssembler{}

// Assemble embeds the JPEG capture into a portrait page of the given size.
func (FPDFAssembler) Assemble(image []byte, page PageSize) ([]byte, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("export: empty capture image")
	}
	if page.WidthMM <= 0 || page.HeightMM <= 0 {
		page = A4
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: page.WidthMM, Ht: page.HeightMM},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	imgOpts := fpdf.ImageOptions{ImageType: "JPEG"}
	info := pdf.RegisterImageOptionsReader("document", imgOpts, bytes.NewReader(image))
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("export: register capture image: %w", err)
	}

	height := page.WidthMM * info.Height() / info.Width()
	pdf.ImageOptions("document", 0, 0, page.WidthMM, height, false, imgOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
