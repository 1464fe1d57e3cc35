package dtw

import (
	"math"

	"github.com/gopherclust/ccore/point"
)

// AsMetric adapts DTW into a point.Metric: each Point is treated as a
// numeric time series (its slice elements are samples in order, not
// independent coordinates), so the resulting distance is invariant to
// local stretching/compression of the time axis between a and b —
// unlike Euclidean/Manhattan/Chebyshev it tolerates misaligned phase
// between two otherwise-similar series. point.Dataset.Validate still
// requires every series in a dataset to share one length, but DTW
// itself has no such requirement; this adapter works unmodified if a
// caller builds a Dataset by padding rather than validating.
// opts.ReturnPath is forced to false regardless of the value passed
// in — callers comparing many pairs during clustering never need the
// alignment path, only the distance, and path reconstruction requires
// FullMatrix storage that the hot clustering loops (kmeans, kmedoids,
// cure, rock, ...) shouldn't pay for.
//
// A malformed opts (caught by Options.Validate) or an empty sequence
// makes the returned Metric report +Inf rather than panic, since
// point.Metric has no error return.
func AsMetric(opts Options) point.Metric {
	opts.ReturnPath = false
	return func(a, b point.Point) float64 {
		dist, _, err := DTW([]float64(a), []float64(b), &opts)
		if err != nil {
			return math.Inf(1)
		}
		return dist
	}
}
