package hierarchical

// Options configures a Hierarchical run.
type Options struct {
	// ClusterNumber is the number of clusters to stop at.
	ClusterNumber int
}

// DefaultOptions returns Options with a single cluster — callers are
// expected to set ClusterNumber explicitly.
func DefaultOptions() Options {
	return Options{ClusterNumber: 1}
}
