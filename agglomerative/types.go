package agglomerative

// Linkage selects the inter-cluster distance rule used to choose
// which pair of clusters to merge at each step.
type Linkage int

const (
	// SingleLink merges the pair minimizing the minimum pairwise
	// distance between their members.
	SingleLink Linkage = iota
	// CompleteLink merges the pair minimizing the maximum pairwise
	// distance between their members.
	CompleteLink
	// AverageLink merges the pair minimizing the sum of pairwise
	// distances divided by the combined member count.
	AverageLink
	// CentroidLink merges the pair whose centroids are closest,
	// recomputing the merged centroid as the mean of all member
	// points.
	CentroidLink
)

// Options configures an Agglomerative run.
type Options struct {
	// ClusterNumber is the number of clusters to stop at.
	ClusterNumber int
	// Link selects the merge rule.
	Link Linkage
}

// DefaultOptions returns Options with a single cluster and
// SingleLink — callers are expected to set ClusterNumber explicitly.
func DefaultOptions() Options {
	return Options{
		ClusterNumber: 1,
		Link:          SingleLink,
	}
}
