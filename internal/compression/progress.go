package compression

import "math"

// Progress milestones. 5 marks the source bytes being in hand, 10 the opened
// document with a known page count; the remaining 90 points are spread evenly
// across the pages.
const (
	progressBytesReady = 5
	progressLoaded     = 10
)

// reporter delivers percentages to an optional caller-supplied callback.
// The emitted sequence is non-decreasing; late or repeated milestones are
// coalesced rather than reported out of order.
type reporter struct {
	fn   func(int)
	last int
}

func newReporter(fn func(int)) *reporter {
	return &reporter{fn: fn}
}

func (r *reporter) emit(percent int) {
	if r.fn == nil {
		return
	}
	if percent < r.last {
		return
	}
	r.last = percent
	r.fn(percent)
}

// pageProgress maps completion of page i of n onto the 10..100 range.
func pageProgress(i, n int) int {
	return progressLoaded + int(math.Round(float64(i)/float64(n)*90))
}
