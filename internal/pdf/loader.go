// Package pdf implements the document loading and page rasterization side of
// the pipeline on top of go-fitz (MuPDF).
package pdf

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/gen2brain/go-fitz"

	domain "github.com/EdwardCranko/PDF-Squeeze/internal/domain/compression"
)

// FitzLoader opens PDF byte buffers with MuPDF.
type FitzLoader struct {
	logger *slog.Logger
}

// NewLoader creates a new document loader.
func NewLoader(logger *slog.Logger) *FitzLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &FitzLoader{logger: logger}
}

// Open parses the byte buffer into a document. Corrupt or unsupported input
// yields a LoadError.
func (l *FitzLoader) Open(ctx context.Context, data []byte) (domain.Document, error) {
	if ctx.Err() != nil {
		return nil, domain.ErrCancelled
	}

	fz, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, domain.NewLoadError("open document", err)
	}

	l.logger.Debug("document opened", "pages", fz.NumPage())
	return &Document{fz: fz}, nil
}

// Document wraps an open fitz document. Close releases the underlying MuPDF
// resources and must be called exactly once per run.
type Document struct {
	fz *fitz.Document
}

// PageCount returns the number of pages, or 0 for a closed document.
func (d *Document) PageCount() int {
	if d.fz == nil {
		return 0
	}
	return d.fz.NumPage()
}

// Page returns the 1-indexed page handle with its native scale-1 dimensions.
func (d *Document) Page(index int) (domain.Page, error) {
	if d.fz == nil {
		return nil, domain.NewLoadError("get page", errors.New("document is closed"))
	}
	if index < 1 || index > d.fz.NumPage() {
		return nil, domain.NewLoadError("get page",
			fmt.Errorf("page %d out of range 1..%d", index, d.fz.NumPage()))
	}

	bounds, err := d.fz.Bound(index - 1)
	if err != nil {
		return nil, domain.NewLoadError("get page", fmt.Errorf("page %d: %w", index, err))
	}

	return &page{
		doc:    d,
		index:  index - 1,
		width:  float64(bounds.Dx()),
		height: float64(bounds.Dy()),
	}, nil
}

// Close releases the document. Safe to call more than once; only the first
// call reaches MuPDF.
func (d *Document) Close() error {
	if d.fz == nil {
		return nil
	}
	err := d.fz.Close()
	d.fz = nil
	return err
}

// page is one lazily rendered page of a Document. The document owns it; once
// released it no longer holds a reference back to the document.
type page struct {
	doc    *Document
	index  int
	width  float64
	height float64
}

func (p *page) Size() (float64, float64) {
	return p.width, p.height
}

func (p *page) Release() {
	p.doc = nil
}

// Surface holds one rasterized page. Release drops the pixel storage itself
// so the allocation is reclaimable immediately, not whenever the last
// outstanding reference dies.
type Surface struct {
	img image.Image
}

// NewSurface wraps a rendered image.
func NewSurface(img image.Image) *Surface {
	return &Surface{img: img}
}

func (s *Surface) Image() image.Image {
	return s.img
}

// Release zeroes the surface. The concrete pixel buffer is detached as well
// as the handle, so even a leaked Surface value pins no pixel data.
func (s *Surface) Release() {
	switch img := s.img.(type) {
	case *image.RGBA:
		img.Pix = nil
		img.Rect = image.Rectangle{}
	case *image.NRGBA:
		img.Pix = nil
		img.Rect = image.Rectangle{}
	}
	s.img = nil
}
