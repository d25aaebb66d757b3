package compression

import (
	"math"

	domain "github.com/EdwardCranko/PDF-Squeeze/internal/domain/compression"
)

// EffectiveScale returns the scale actually used for a page of the given
// native dimensions. The requested scale is honored as long as neither axis
// would exceed MaxDimension; otherwise the scale is capped so the larger
// constraint wins. Oversized pages are silently scaled down rather than
// rejected, so a single page can never demand more memory than a
// MaxDimension x MaxDimension surface.
func EffectiveScale(width, height, requested float64) float64 {
	if width <= 0 || height <= 0 {
		return requested
	}
	if width*requested <= domain.MaxDimension && height*requested <= domain.MaxDimension {
		return requested
	}
	return math.Min(domain.MaxDimension/width, domain.MaxDimension/height)
}

// ViewportFor computes the pixel viewport for a page after scale capping.
func ViewportFor(width, height, requested float64) domain.Viewport {
	scale := EffectiveScale(width, height, requested)
	return domain.Viewport{
		Width:  int(math.Round(width * scale)),
		Height: int(math.Round(height * scale)),
	}
}
