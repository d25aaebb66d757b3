package compression

import (
	"context"
	"image"
)

// Loader opens a source document from an in-memory byte buffer.
// Implementations are constructed up front and injected; nothing is obtained
// from global state at call time.
type Loader interface {
	Open(ctx context.Context, data []byte) (Document, error)
}

// Document is an open source document. It owns its pages and must be closed
// exactly once at the end of a run, success or failure.
type Document interface {
	PageCount() int

	// Page returns the 1-indexed page handle. Out-of-range indexes and
	// undecodable pages yield a LoadError.
	Page(index int) (Page, error)

	Close() error
}

// Page is a lazily materialized page of a Document. It must be released once
// its raster image has been captured and not retained beyond that point.
type Page interface {
	// Size returns the native scale-1 dimensions of the page.
	Size() (width, height float64)

	// Release marks the page as no longer needed to its document.
	Release()
}

// Surface is a pixel buffer holding one rasterized page. At most one Surface
// per run is live at any time. Release must actively drop the backing pixel
// storage, not merely the handle.
type Surface interface {
	Image() image.Image
	Release()
}

// Rasterizer renders one page's vector content into a Surface sized to the
// viewport. A cancelled render releases anything it allocated and returns
// ErrCancelled; no partial surface is ever handed downstream.
type Rasterizer interface {
	Render(ctx context.Context, page Page, viewport Viewport) (Surface, error)
}

// Encoder compresses a Surface into lossy image bytes at a quality in (0,1].
type Encoder interface {
	Encode(surface Surface, quality float64) ([]byte, error)
}

// Assembler builds the output document one image-backed page at a time.
// One Assembler serves exactly one run.
type Assembler interface {
	// AppendPage adds a page whose dimensions equal the viewport and whose
	// orientation is landscape iff the viewport is wider than tall. The
	// image covers the full page bounds.
	AppendPage(viewport Viewport, image []byte) error

	PageCount() int

	Finalize() ([]byte, error)
}

// Service is the file-level compression surface consumed by transports.
type Service interface {
	CompressBytes(ctx context.Context, data []byte, opts Options) ([]byte, error)
	CompressFile(ctx context.Context, inputPath, outputDir string, opts Options) (*FileResult, error)
}
