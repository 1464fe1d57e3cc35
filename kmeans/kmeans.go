package kmeans

import (
	"math"

	"github.com/gopherclust/ccore/point"
)

// KMeans holds a dataset and its current centers. The zero value is
// not usable; construct with New.
type KMeans struct {
	dataset point.Dataset
	centers []point.Point
	opts    Options
}

// New builds a KMeans instance seeded with initialCenters, cloned so
// the caller's slice is never mutated.
func New(ds point.Dataset, initialCenters []point.Point, opts Options) (*KMeans, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if len(initialCenters) == 0 {
		return nil, ErrInvalidParameter
	}
	for _, c := range initialCenters {
		if c.Dim() != ds.Dim() {
			return nil, ErrInvalidParameter
		}
	}
	if opts.Metric == nil {
		opts.Metric = point.EuclideanSquared
	}
	if opts.Tolerance <= 0 {
		return nil, ErrInvalidParameter
	}

	centers := make([]point.Point, len(initialCenters))
	for i, c := range initialCenters {
		centers[i] = c.Clone()
	}

	return &KMeans{dataset: ds, centers: centers, opts: opts}, nil
}

// Process iterates assignment and center update until the largest
// center movement falls below opts.Tolerance, dropping any cluster
// that receives no points (and its paired center) before each update.
// It returns the final clusters (as point-index sets) and the
// corresponding final centers, index-aligned.
func (k *KMeans) Process() ([][]int, []point.Point) {
	change := math.MaxFloat64
	var clusters [][]int

	for change > k.opts.Tolerance {
		clusters = assign(k.dataset, k.centers, k.opts.Metric)
		clusters, k.centers = dropEmpty(clusters, k.centers)
		change = k.updateCenters(clusters)
	}

	return clusters, k.centers
}

// assign places every point in ds into the cluster of its nearest
// center under metric.
func assign(ds point.Dataset, centers []point.Point, metric point.Metric) [][]int {
	clusters := make([][]int, len(centers))
	for i, p := range ds {
		best := 0
		bestDist := metric(centers[0], p)
		for c := 1; c < len(centers); c++ {
			if d := metric(centers[c], p); d < bestDist {
				bestDist = d
				best = c
			}
		}
		clusters[best] = append(clusters[best], i)
	}
	return clusters
}

// dropEmpty removes every cluster with no members, together with its
// paired center, preserving the remaining index alignment.
func dropEmpty(clusters [][]int, centers []point.Point) ([][]int, []point.Point) {
	outClusters := clusters[:0]
	outCenters := centers[:0]
	for i, c := range clusters {
		if len(c) == 0 {
			continue
		}
		outClusters = append(outClusters, c)
		outCenters = append(outCenters, centers[i])
	}
	return outClusters, outCenters
}

// updateCenters recomputes each center as its cluster's centroid and
// returns the largest center movement observed, under opts.Metric.
func (k *KMeans) updateCenters(clusters [][]int) float64 {
	maxChange := 0.0
	for i, idx := range clusters {
		newCenter := k.dataset.Centroid(idx)
		if d := k.opts.Metric(k.centers[i], newCenter); d > maxChange {
			maxChange = d
		}
		k.centers[i] = newCenter
	}
	return maxChange
}
