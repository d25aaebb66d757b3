package compression

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"

	domain "github.com/EdwardCranko/PDF-Squeeze/internal/domain/compression"
)

const (
	// Every pauseInterval-th page the run pauses briefly so deferred memory
	// reclamation can catch up. This is a backpressure valve, not a
	// correctness requirement.
	pauseInterval = 3
	pauseDuration = 100 * time.Millisecond
)

// Compressor drives the page-by-page transcode pipeline: open the source,
// rasterize each page at a capped scale, encode it lossily, append it to the
// output document, and reclaim every per-page resource before the next page
// begins. Pages are processed strictly sequentially, so at most one render
// surface is live per run.
type Compressor struct {
	loader       domain.Loader
	rasterizer   domain.Rasterizer
	encoder      domain.Encoder
	newAssembler func() domain.Assembler
	logger       *slog.Logger

	pauseEvery int
	pauseFor   time.Duration
}

// NewCompressor creates a compressor from its injected collaborators.
func NewCompressor(
	loader domain.Loader,
	rasterizer domain.Rasterizer,
	encoder domain.Encoder,
	newAssembler func() domain.Assembler,
	logger *slog.Logger,
) *Compressor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Compressor{
		loader:       loader,
		rasterizer:   rasterizer,
		encoder:      encoder,
		newAssembler: newAssembler,
		logger:       logger,
		pauseEvery:   pauseInterval,
		pauseFor:     pauseDuration,
	}
}

// Compress transcodes the source document into a smaller, image-backed one.
// Any failure aborts the whole run with no partial output; the source
// document is closed before the error reaches the caller. Cancellation via
// ctx yields ErrCancelled.
func (c *Compressor) Compress(ctx context.Context, data []byte, opts domain.Options) ([]byte, error) {
	opts = opts.Normalized()
	progress := newReporter(opts.OnProgress)

	if len(data) == 0 {
		return nil, domain.NewLoadError("read source", errors.New("empty input buffer"))
	}
	progress.emit(progressBytesReady)

	if ctx.Err() != nil {
		return nil, domain.ErrCancelled
	}

	doc, err := c.loader.Open(ctx, data)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			c.logger.Warn("closing source document", "error", cerr)
		}
	}()

	total := doc.PageCount()
	if total < 1 {
		return nil, domain.NewLoadError("open document", errors.New("document has no pages"))
	}
	progress.emit(progressLoaded)

	c.logger.Debug("source document opened",
		"pages", total, "quality", opts.Quality, "scale", opts.Scale)

	out := c.newAssembler()

	for i := 1; i <= total; i++ {
		if ctx.Err() != nil {
			return nil, domain.ErrCancelled
		}

		if err := c.processPage(ctx, doc, out, i, opts); err != nil {
			return nil, err
		}
		progress.emit(pageProgress(i, total))

		if i%c.pauseEvery == 0 && i < total {
			if err := c.pause(ctx); err != nil {
				return nil, err
			}
		}
	}

	if ctx.Err() != nil {
		return nil, domain.ErrCancelled
	}

	result, err := out.Finalize()
	if err != nil {
		return nil, err
	}

	c.logger.Debug("document assembled", "pages", out.PageCount(), "bytes", len(result))
	return result, nil
}

// processPage runs one page through rasterize, encode and append. Its page
// handle and surface are reclaimed on every exit path, exactly once, before
// the next page starts.
func (c *Compressor) processPage(ctx context.Context, doc domain.Document, out domain.Assembler, index int, opts domain.Options) error {
	page, err := doc.Page(index)
	if err != nil {
		return err
	}

	var surface domain.Surface
	defer func() {
		reclaim(page, surface)
	}()

	width, height := page.Size()
	viewport := ViewportFor(width, height, opts.Scale)

	surface, err = c.rasterizer.Render(ctx, page, viewport)
	if err != nil {
		return err
	}

	image, err := c.encoder.Encode(surface, opts.Quality)
	if err != nil {
		var enc *domain.EncodeError
		if errors.As(err, &enc) && enc.Page == 0 {
			enc.Page = index
		}
		return err
	}

	return out.AppendPage(viewport, image)
}

// reclaim releases all transient per-page resources: the surface's pixel
// storage first, then the page handle back to its document. Safe against nil
// members so a page that failed mid-flight is still cleaned up.
func reclaim(page domain.Page, surface domain.Surface) {
	if surface != nil {
		surface.Release()
	}
	if page != nil {
		page.Release()
	}
}

// pause is the cooperative backpressure step between page groups. It nudges
// the collector and waits out the pause window unless the run is cancelled.
func (c *Compressor) pause(ctx context.Context) error {
	runtime.GC()
	select {
	case <-ctx.Done():
		return domain.ErrCancelled
	case <-time.After(c.pauseFor):
		return nil
	}
}
