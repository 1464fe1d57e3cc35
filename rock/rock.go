package rock

import (
	"math"

	"github.com/gopherclust/ccore/point"
)

// Rock holds a dataset, its precomputed adjacency matrix, and the
// current clustering state. The zero value is not usable; construct
// with New.
type Rock struct {
	dataset    point.Dataset
	opts       Options
	adjacency  [][]bool
	degreeNorm float64
	clusters   [][]int
}

// New validates opts against ds, precomputes the radius-connectivity
// adjacency matrix, and builds the initial singleton clustering.
func New(ds point.Dataset, opts Options) (*Rock, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if opts.Radius <= 0 {
		return nil, ErrInvalidParameter
	}
	if opts.ClusterNumber <= 0 || opts.ClusterNumber > len(ds) {
		return nil, ErrInvalidParameter
	}
	if opts.Threshold <= 0 || opts.Threshold > 1 {
		return nil, ErrInvalidParameter
	}

	n := len(ds)
	radiusSq := opts.Radius * opts.Radius

	adjacency := make([][]bool, n)
	for i := range adjacency {
		adjacency[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if point.EuclideanSquared(ds[i], ds[j]) < radiusSq {
				adjacency[i][j] = true
				adjacency[j][i] = true
			}
		}
	}

	clusters := make([][]int, n)
	for i := range ds {
		clusters[i] = []int{i}
	}

	degreeNorm := 1.0 + 2.0*((1.0-opts.Threshold)/(1.0+opts.Threshold))

	return &Rock{
		dataset:    ds,
		opts:       opts,
		adjacency:  adjacency,
		degreeNorm: degreeNorm,
		clusters:   clusters,
	}, nil
}

// Process repeatedly merges the pair of clusters maximizing the
// goodness measure until ClusterNumber clusters remain, or until no
// remaining pair has any links between them.
func (r *Rock) Process() [][]int {
	for len(r.clusters) > r.opts.ClusterNumber {
		if !r.mergeOnce() {
			break
		}
	}
	return r.clusters
}

func (r *Rock) mergeOnce() bool {
	best1, best2 := -1, -1
	bestGoodness := 0.0

	for i := 0; i < len(r.clusters); i++ {
		for j := i + 1; j < len(r.clusters); j++ {
			if g := r.goodness(i, j); g > bestGoodness {
				bestGoodness = g
				best1, best2 = i, j
			}
		}
	}

	if best1 == best2 {
		return false
	}

	r.clusters[best1] = append(r.clusters[best1], r.clusters[best2]...)
	r.clusters = append(r.clusters[:best2], r.clusters[best2+1:]...)
	return true
}

func (r *Rock) links(i, j int) int {
	count := 0
	for _, a := range r.clusters[i] {
		for _, b := range r.clusters[j] {
			if r.adjacency[a][b] {
				count++
			}
		}
	}
	return count
}

func (r *Rock) goodness(i, j int) float64 {
	links := float64(r.links(i, j))
	size1 := float64(len(r.clusters[i]))
	size2 := float64(len(r.clusters[j]))

	denom := math.Pow(size1+size2, r.degreeNorm) - math.Pow(size1, r.degreeNorm) - math.Pow(size2, r.degreeNorm)
	return links / denom
}
