package kmedians

import (
	"math"
	"sort"

	"github.com/gopherclust/ccore/point"
)

// KMedians holds a dataset and its current medians. The zero value is
// not usable; construct with New.
type KMedians struct {
	dataset point.Dataset
	medians []point.Point
	opts    Options
}

// New builds a KMedians instance seeded with initialMedians, cloned so
// the caller's slice is never mutated.
func New(ds point.Dataset, initialMedians []point.Point, opts Options) (*KMedians, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if len(initialMedians) == 0 {
		return nil, ErrInvalidParameter
	}
	for _, m := range initialMedians {
		if m.Dim() != ds.Dim() {
			return nil, ErrInvalidParameter
		}
	}
	if opts.Metric == nil {
		opts.Metric = point.EuclideanSquared
	}
	if opts.Tolerance <= 0 {
		return nil, ErrInvalidParameter
	}

	medians := make([]point.Point, len(initialMedians))
	for i, m := range initialMedians {
		medians[i] = m.Clone()
	}

	return &KMedians{dataset: ds, medians: medians, opts: opts}, nil
}

// Process iterates assignment and per-dimension median update until
// the largest median movement falls below opts.Tolerance or the stall
// detector trips after stallLimit consecutive near-identical changes,
// dropping any cluster that receives no points (and its paired median)
// before each update. It returns the final clusters (as point-index
// sets) and the corresponding final medians, index-aligned.
func (k *KMedians) Process() ([][]int, []point.Point) {
	change := math.MaxFloat64
	prevChange := 0.0
	repeats := 0
	var clusters [][]int

	for change > k.opts.Tolerance && repeats < stallLimit {
		clusters = assign(k.dataset, k.medians, k.opts.Metric)
		clusters, k.medians = dropEmpty(clusters, k.medians)
		change = k.updateMedians(clusters)

		if math.Abs(change-prevChange) < stallEpsilon {
			repeats++
		} else {
			repeats = 0
		}
		prevChange = change
	}

	return clusters, k.medians
}

func assign(ds point.Dataset, medians []point.Point, metric point.Metric) [][]int {
	clusters := make([][]int, len(medians))
	for i, p := range ds {
		best := 0
		bestDist := metric(medians[0], p)
		for c := 1; c < len(medians); c++ {
			if d := metric(medians[c], p); d < bestDist {
				bestDist = d
				best = c
			}
		}
		clusters[best] = append(clusters[best], i)
	}
	return clusters
}

func dropEmpty(clusters [][]int, medians []point.Point) ([][]int, []point.Point) {
	outClusters := clusters[:0]
	outMedians := medians[:0]
	for i, c := range clusters {
		if len(c) == 0 {
			continue
		}
		outClusters = append(outClusters, c)
		outMedians = append(outMedians, medians[i])
	}
	return outClusters, outMedians
}

// updateMedians recomputes each median dimension-by-dimension: the
// cluster's members are sorted independently along each dimension, and
// the middle value (or the mean of the two middle values for an even
// cluster size) becomes that dimension's new median. Returns the
// largest median movement observed, under opts.Metric.
func (k *KMedians) updateMedians(clusters [][]int) float64 {
	dim := k.dataset.Dim()
	maxChange := 0.0

	for c, idx := range clusters {
		newMedian := make(point.Point, dim)
		ordered := append([]int{}, idx...)

		for d := 0; d < dim; d++ {
			sort.Slice(ordered, func(i, j int) bool {
				return k.dataset[ordered[i]][d] < k.dataset[ordered[j]][d]
			})

			n := len(ordered)
			mid := n / 2
			if n%2 == 1 {
				newMedian[d] = k.dataset[ordered[mid]][d]
			} else {
				newMedian[d] = (k.dataset[ordered[mid-1]][d] + k.dataset[ordered[mid]][d]) / 2
			}
		}

		if d := k.opts.Metric(k.medians[c], newMedian); d > maxChange {
			maxChange = d
		}
		k.medians[c] = newMedian
	}

	return maxChange
}
