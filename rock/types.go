package rock

// Options configures a ROCK run.
type Options struct {
	// Radius is the connectivity radius: two points are linked when
	// their Euclidean distance is strictly less than Radius.
	Radius float64
	// ClusterNumber is the number of clusters to stop at; merging
	// also stops early if no remaining pair of clusters has any
	// links between them.
	ClusterNumber int
	// Threshold controls the size-normalization exponent used by the
	// goodness measure: degree = 1 + 2*(1-Threshold)/(1+Threshold).
	// Must be in (0, 1].
	Threshold float64
}

// DefaultOptions returns Options with Threshold=0.5 — callers are
// expected to set Radius and ClusterNumber explicitly.
func DefaultOptions() Options {
	return Options{
		Radius:        1.0,
		ClusterNumber: 1,
		Threshold:     0.5,
	}
}
