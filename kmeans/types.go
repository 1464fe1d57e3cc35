package kmeans

import "github.com/gopherclust/ccore/point"

// Options configures k-means clustering.
type Options struct {
	// Metric computes point-to-center distance for both assignment and
	// the center-movement convergence test. Defaults to
	// point.EuclideanSquared.
	Metric point.Metric
	// Tolerance is the convergence threshold: iteration stops once the
	// largest center movement (under Metric) falls below it.
	Tolerance float64
}

// DefaultOptions returns Options with Euclidean-squared distance and
// Tolerance=0.025.
func DefaultOptions() Options {
	return Options{
		Metric:    point.EuclideanSquared,
		Tolerance: 0.025,
	}
}
