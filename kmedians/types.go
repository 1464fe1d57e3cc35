package kmedians

import "github.com/gopherclust/ccore/point"

// Options configures k-medians clustering.
type Options struct {
	// Metric computes point-to-median distance for both assignment and
	// the median-movement convergence test. Defaults to
	// point.EuclideanSquared.
	Metric point.Metric
	// Tolerance is the convergence threshold: iteration stops once the
	// largest median movement (under Metric) falls below it, or once
	// the stall detector trips (see stallLimit).
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

// stallLimit is the number of consecutive near-identical changes
// (within stallEpsilon) that trips the stall detector, ending
// iteration even if Tolerance has not been reached.
const stallLimit = 10

// stallEpsilon is how close two consecutive changes must be to count
// as "near-identical" for the stall detector.
const stallEpsilon = 0.000001
