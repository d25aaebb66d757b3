package compression

// MaxDimension caps either axis of a rasterized page in pixels. Oversized
// source pages are scaled down so a single render surface can never exceed
// the area of a MaxDimension x MaxDimension canvas.
const MaxDimension = 2000

const (
	DefaultQuality = 0.7
	DefaultScale   = 1.5
)

// Viewport is the target pixel size at which one page is rasterized.
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Landscape reports whether the viewport is wider than tall.
func (v Viewport) Landscape() bool {
	return v.Width > v.Height
}

// Options holds the settings for one compression run. A run never mutates
// its Options; nothing in here is shared across runs.
type Options struct {
	// Quality is the lossy image quality in (0,1]. Lower is smaller and
	// blurrier. Out-of-range values are clamped by Normalized.
	Quality float64 `json:"quality"`

	// Scale is the requested rasterization density relative to the page's
	// native size. The scale policy may cap it per page.
	Scale float64 `json:"scale"`

	// PostOptimize runs a structural optimization pass over the assembled
	// document before it is returned.
	PostOptimize bool `json:"post_optimize"`

	// OnProgress, when set, receives percentages 0-100 in non-decreasing
	// order, ending at 100 on success.
	OnProgress func(percent int) `json:"-"`
}

// DefaultOptions returns the default compression settings.
func DefaultOptions() Options {
	return Options{
		Quality: DefaultQuality,
		Scale:   DefaultScale,
	}
}

// Normalized returns a copy of o with out-of-range values clamped into the
// recognized ranges. Non-positive quality or scale falls back to the default;
// quality above 1 clamps to 1.
func (o Options) Normalized() Options {
	if o.Quality <= 0 {
		o.Quality = DefaultQuality
	}
	if o.Quality > 1 {
		o.Quality = 1
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	return o
}

// FileResult is the outcome of compressing a single file.
type FileResult struct {
	FileID             string  `json:"file_id"`
	OriginalFilename   string  `json:"original_filename"`
	CompressedFilename string  `json:"compressed_filename"`
	OriginalSize       int64   `json:"original_size"`
	CompressedSize     int64   `json:"compressed_size"`
	CompressionRatio   float64 `json:"compression_ratio"`
	CompressedPath     string  `json:"compressed_path"`
	Status             string  `json:"status"`
	Error              string  `json:"error,omitempty"`
}

// Ratio computes the percentage of space saved from the recorded sizes.
func (r *FileResult) Ratio() float64 {
	if r.OriginalSize <= 0 {
		return 0
	}
	return float64(r.OriginalSize-r.CompressedSize) / float64(r.OriginalSize) * 100
}

// BatchResult aggregates the results of compressing several files.
type BatchResult struct {
	Success                 bool         `json:"success"`
	Results                 []FileResult `json:"results"`
	TotalFiles              int          `json:"total_files"`
	TotalOriginalSize       int64        `json:"total_original_size"`
	TotalCompressedSize     int64        `json:"total_compressed_size"`
	OverallCompressionRatio float64      `json:"overall_compression_ratio"`
	Error                   string       `json:"error,omitempty"`
}
