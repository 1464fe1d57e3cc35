package cure

import "github.com/gopherclust/ccore/point"

// Options configures CURE clustering.
type Options struct {
	// ClusterNumber is the target number of clusters k.
	ClusterNumber int
	// RepresentativePoints is the number of representative points r
	// selected per cluster; clusters smaller than r keep all their
	// points as representatives.
	RepresentativePoints int
	// Compression is the shrinkage factor alpha in [0, 1]: each
	// representative is relocated to rep + alpha*(mean - rep). alpha=0
	// leaves representatives unshrunk; alpha=1 collapses them onto the
	// mean.
	Compression float64
}

// DefaultOptions returns Options with RepresentativePoints=5 and
// Compression=0.5; ClusterNumber must still be set.
func DefaultOptions() Options {
	return Options{
		RepresentativePoints: 5,
		Compression:          0.5,
	}
}

// cluster is one live CURE cluster, addressed throughout by its stable
// integer handle rather than by pointer, so the kd-tree, the sorted
// queue, and other clusters' cached "closest" fields never hold a
// reference that outlives a merge.
type cluster struct {
	handle int
	points []int // indices into the owning CURE's dataset
	mean   point.Point
	rep    []point.Point

	closest         int // handle of nearest live cluster, -1 if none
	distanceClosest float64
}
