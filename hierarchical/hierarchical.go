package hierarchical

import (
	"github.com/gopherclust/ccore/agglomerative"
	"github.com/gopherclust/ccore/point"
)

// Hierarchical holds a dataset and its current clustering state. The
// zero value is not usable; construct with New.
type Hierarchical struct {
	inner *agglomerative.Agglomerative
}

// New validates opts against ds and builds the initial singleton
// clustering.
func New(ds point.Dataset, opts Options) (*Hierarchical, error) {
	inner, err := agglomerative.New(ds, agglomerative.Options{
		ClusterNumber: opts.ClusterNumber,
		Link:          agglomerative.CentroidLink,
	})
	if err != nil {
		return nil, ErrInvalidParameter
	}
	return &Hierarchical{inner: inner}, nil
}

// Process repeatedly merges the pair of clusters with the closest
// centroids, recomputing the merged centroid as the mean of all
// member points, until ClusterNumber clusters remain.
func (h *Hierarchical) Process() [][]int {
	return h.inner.Process()
}
