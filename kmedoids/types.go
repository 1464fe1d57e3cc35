package kmedoids

import "github.com/gopherclust/ccore/point"

// Options configures a KMedoids run.
type Options struct {
	// Metric measures dissimilarity between two points. Unlike
	// k-means and k-medians, k-medoids never needs a well-defined
	// mean, so Metric may be any dissimilarity, not just a Euclidean
	// variant — Manhattan and Chebyshev are common choices.
	Metric point.Metric

	// Tolerance is the minimum total-cost improvement (sum of
	// in-cluster member-to-medoid dissimilarities) below which the
	// swap loop stops.
	Tolerance float64
}

// DefaultOptions returns the package's baseline configuration.
func DefaultOptions() Options {
	return Options{
		Metric:    point.EuclideanSquared,
		Tolerance: 0.025,
	}
}
