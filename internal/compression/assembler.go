package compression

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	domain "github.com/EdwardCranko/PDF-Squeeze/internal/domain/compression"
)

// PDFAssembler builds the output document with gofpdf, one image-backed page
// per processed source page. A fresh assembler starts with zero pages and
// serves exactly one run.
type PDFAssembler struct {
	pdf   *gofpdf.Fpdf
	pages int
}

// NewPDFAssembler creates an empty output document.
func NewPDFAssembler() *PDFAssembler {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: 595.28, Ht: 841.89},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	return &PDFAssembler{pdf: pdf}
}

// AppendPage adds a page sized exactly to the viewport, landscape when the
// viewport is wider than tall, with the JPEG covering the full page bounds.
func (a *PDFAssembler) AppendPage(viewport domain.Viewport, image []byte) error {
	if viewport.Width <= 0 || viewport.Height <= 0 {
		return domain.NewResourceError("append page", fmt.Errorf("invalid viewport %dx%d", viewport.Width, viewport.Height))
	}
	if len(image) == 0 {
		return domain.NewResourceError("append page", fmt.Errorf("empty image for page %d", a.pages+1))
	}

	w := float64(viewport.Width)
	h := float64(viewport.Height)

	// gofpdf takes the size in portrait form and swaps the axes itself for
	// landscape pages.
	orientation := "P"
	size := gofpdf.SizeType{Wd: w, Ht: h}
	if viewport.Landscape() {
		orientation = "L"
		size = gofpdf.SizeType{Wd: h, Ht: w}
	}

	a.pdf.AddPageFormat(orientation, size)
	a.pages++

	name := fmt.Sprintf("page-%d", a.pages)
	opts := gofpdf.ImageOptions{ImageType: "JPG"}
	a.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(image))
	a.pdf.ImageOptions(name, 0, 0, w, h, false, opts, 0, "")

	if a.pdf.Err() {
		return domain.NewResourceError("append page", a.pdf.Error())
	}
	return nil
}

// PageCount returns the number of pages appended so far.
func (a *PDFAssembler) PageCount() int {
	return a.pages
}

// Finalize renders the assembled document into a byte buffer.
func (a *PDFAssembler) Finalize() ([]byte, error) {
	var buf bytes.Buffer
	if err := a.pdf.Output(&buf); err != nil {
		return nil, domain.NewResourceError("finalize document", err)
	}
	return buf.Bytes(), nil
}
