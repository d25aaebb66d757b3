package pdf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/disintegration/imaging"

	domain "github.com/EdwardCranko/PDF-Squeeze/internal/domain/compression"
)

// nativeDPI is the resolution at which a PDF point maps 1:1 onto a pixel.
const nativeDPI = 72.0

// FitzRasterizer renders pages of a FitzLoader document into pixel surfaces.
type FitzRasterizer struct {
	logger *slog.Logger
}

// NewRasterizer creates a new page rasterizer.
func NewRasterizer(logger *slog.Logger) *FitzRasterizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &FitzRasterizer{logger: logger}
}

// Render draws the page into a surface sized exactly to the viewport.
// Cancellation is observed before and after the draw; a cancelled render
// frees whatever it allocated and returns ErrCancelled without handing a
// partial surface downstream.
func (r *FitzRasterizer) Render(ctx context.Context, pg domain.Page, viewport domain.Viewport) (domain.Surface, error) {
	if ctx.Err() != nil {
		return nil, domain.ErrCancelled
	}

	p, ok := pg.(*page)
	if !ok {
		return nil, domain.NewRenderError(0, errors.New("page does not belong to this rasterizer"))
	}
	if p.doc == nil || p.doc.fz == nil {
		return nil, domain.NewRenderError(p.index+1, errors.New("page released or document closed"))
	}
	if viewport.Width < 1 || viewport.Height < 1 {
		return nil, domain.NewRenderError(p.index+1,
			fmt.Errorf("degenerate viewport %dx%d", viewport.Width, viewport.Height))
	}

	dpi := nativeDPI * float64(viewport.Width) / p.width
	img, err := p.doc.fz.ImageDPI(p.index, dpi)
	if err != nil {
		return nil, domain.NewRenderError(p.index+1, err)
	}

	if ctx.Err() != nil {
		// Drop the freshly drawn pixels before reporting cancellation.
		NewSurface(img).Release()
		return nil, domain.ErrCancelled
	}

	// DPI rounding inside MuPDF can drift a pixel off the requested
	// viewport; resample to the exact size so page and image dimensions
	// stay equal by construction.
	if img.Bounds().Dx() != viewport.Width || img.Bounds().Dy() != viewport.Height {
		r.logger.Debug("normalizing rendered page",
			"have_w", img.Bounds().Dx(), "have_h", img.Bounds().Dy(),
			"want_w", viewport.Width, "want_h", viewport.Height)
		resized := imaging.Resize(img, viewport.Width, viewport.Height, imaging.Lanczos)
		NewSurface(img).Release()
		return NewSurface(resized), nil
	}

	return NewSurface(img), nil
}
