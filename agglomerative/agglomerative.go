package agglomerative

import (
	"math"

	"github.com/gopherclust/ccore/point"
)

// Agglomerative holds a dataset and its current clustering state. The
// zero value is not usable; construct with New.
type Agglomerative struct {
	dataset  point.Dataset
	opts     Options
	clusters [][]int
	centers  []point.Point
}

// New validates opts against ds and builds the initial singleton
// clustering (one cluster per point).
func New(ds point.Dataset, opts Options) (*Agglomerative, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if opts.ClusterNumber <= 0 || opts.ClusterNumber > len(ds) {
		return nil, ErrInvalidParameter
	}
	switch opts.Link {
	case SingleLink, CompleteLink, AverageLink, CentroidLink:
	default:
		return nil, ErrInvalidParameter
	}

	clusters := make([][]int, len(ds))
	centers := make([]point.Point, len(ds))
	for i := range ds {
		clusters[i] = []int{i}
		centers[i] = ds[i].Clone()
	}

	return &Agglomerative{dataset: ds, opts: opts, clusters: clusters, centers: centers}, nil
}

// Process repeatedly merges the closest pair of clusters, by the
// configured Linkage, until ClusterNumber clusters remain.
func (a *Agglomerative) Process() [][]int {
	for len(a.clusters) > a.opts.ClusterNumber {
		var i1, i2 int
		switch a.opts.Link {
		case SingleLink:
			i1, i2 = a.closestBySingleLink()
		case CompleteLink:
			i1, i2 = a.closestByCompleteLink()
		case AverageLink:
			i1, i2 = a.closestByAverageLink()
		case CentroidLink:
			i1, i2 = a.closestByCentroidLink()
		}
		a.merge(i1, i2)
	}
	return a.clusters
}

// merge folds cluster i2 into cluster i1, recomputes i1's centroid,
// and removes i2 from both the cluster and center lists.
func (a *Agglomerative) merge(i1, i2 int) {
	a.clusters[i1] = append(a.clusters[i1], a.clusters[i2]...)
	a.centers[i1] = calculateCenter(a.dataset, a.clusters[i1])

	a.clusters = append(a.clusters[:i2], a.clusters[i2+1:]...)
	a.centers = append(a.centers[:i2], a.centers[i2+1:]...)
}

func calculateCenter(ds point.Dataset, idx []int) point.Point {
	center := make(point.Point, ds.Dim())
	for _, i := range idx {
		for d, v := range ds[i] {
			center[d] += v
		}
	}
	for d := range center {
		center[d] /= float64(len(idx))
	}
	return center
}

func (a *Agglomerative) closestBySingleLink() (int, int) {
	best1, best2 := 0, 1
	bestDist := math.MaxFloat64

	for c1 := 0; c1 < len(a.clusters); c1++ {
		for c2 := c1 + 1; c2 < len(a.clusters); c2++ {
			candidate := math.MaxFloat64
			for _, o1 := range a.clusters[c1] {
				for _, o2 := range a.clusters[c2] {
					if d := point.EuclideanSquared(a.dataset[o1], a.dataset[o2]); d < candidate {
						candidate = d
					}
				}
			}
			if candidate < bestDist {
				bestDist, best1, best2 = candidate, c1, c2
			}
		}
	}
	return best1, best2
}

func (a *Agglomerative) closestByCompleteLink() (int, int) {
	best1, best2 := 0, 1
	bestDist := math.MaxFloat64

	for c1 := 0; c1 < len(a.clusters); c1++ {
		for c2 := c1 + 1; c2 < len(a.clusters); c2++ {
			candidate := 0.0
			for _, o1 := range a.clusters[c1] {
				for _, o2 := range a.clusters[c2] {
					if d := point.EuclideanSquared(a.dataset[o1], a.dataset[o2]); d > candidate {
						candidate = d
					}
				}
			}
			if candidate < bestDist {
				bestDist, best1, best2 = candidate, c1, c2
			}
		}
	}
	return best1, best2
}

func (a *Agglomerative) closestByAverageLink() (int, int) {
	best1, best2 := 0, 1
	bestDist := math.MaxFloat64

	for c1 := 0; c1 < len(a.clusters); c1++ {
		for c2 := c1 + 1; c2 < len(a.clusters); c2++ {
			candidate := 0.0
			for _, o1 := range a.clusters[c1] {
				for _, o2 := range a.clusters[c2] {
					candidate += point.EuclideanSquared(a.dataset[o1], a.dataset[o2])
				}
			}
			candidate /= float64(len(a.clusters[c1]) + len(a.clusters[c2]))

			if candidate < bestDist {
				bestDist, best1, best2 = candidate, c1, c2
			}
		}
	}
	return best1, best2
}

func (a *Agglomerative) closestByCentroidLink() (int, int) {
	best1, best2 := 0, 1
	bestDist := math.MaxFloat64

	for c1 := 0; c1 < len(a.centers); c1++ {
		for c2 := c1 + 1; c2 < len(a.centers); c2++ {
			if d := point.EuclideanSquared(a.centers[c1], a.centers[c2]); d < bestDist {
				bestDist, best1, best2 = d, c1, c2
			}
		}
	}
	return best1, best2
}
