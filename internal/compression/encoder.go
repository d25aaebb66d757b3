package compression

import (
	"bytes"
	"errors"
	"image/jpeg"
	"math"

	domain "github.com/EdwardCranko/PDF-Squeeze/internal/domain/compression"
)

// JPEGEncoder compresses render surfaces into JPEG bytes.
type JPEGEncoder struct{}

// NewJPEGEncoder creates a new JPEG encoder.
func NewJPEGEncoder() *JPEGEncoder {
	return &JPEGEncoder{}
}

// Encode compresses the surface at the given quality in (0,1]. Out-of-range
// quality values are clamped. A released or empty surface is an encode error.
func (e *JPEGEncoder) Encode(surface domain.Surface, quality float64) ([]byte, error) {
	if surface == nil || surface.Image() == nil {
		return nil, domain.NewEncodeError(0, errors.New("surface has no pixel data"))
	}

	var buf bytes.Buffer
	opts := &jpeg.Options{Quality: jpegQuality(quality)}
	if err := jpeg.Encode(&buf, surface.Image(), opts); err != nil {
		return nil, domain.NewEncodeError(0, err)
	}
	return buf.Bytes(), nil
}

// jpegQuality maps a (0,1] quality fraction to the encoder's 1-100 range.
func jpegQuality(quality float64) int {
	q := int(math.Round(quality * 100))
	if q < 1 {
		q = 1
	}
	if q > 100 {
		q = 100
	}
	return q
}
