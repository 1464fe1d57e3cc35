package kmedoids

import (
	"math"

	"github.com/gopherclust/ccore/point"
)

// KMedoids holds a dataset and the dataset indices of its current
// medoids. The zero value is not usable; construct with New.
type KMedoids struct {
	dataset   point.Dataset
	medoidIdx []int
	opts      Options
}

// New builds a KMedoids instance seeded with initialMedoidIndices,
// which must be distinct, in-range indices into ds.
func New(ds point.Dataset, initialMedoidIndices []int, opts Options) (*KMedoids, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if len(initialMedoidIndices) == 0 {
		return nil, ErrInvalidParameter
	}
	seen := make(map[int]bool, len(initialMedoidIndices))
	for _, idx := range initialMedoidIndices {
		if idx < 0 || idx >= len(ds) || seen[idx] {
			return nil, ErrInvalidParameter
		}
		seen[idx] = true
	}
	if opts.Metric == nil {
		opts.Metric = point.EuclideanSquared
	}
	if opts.Tolerance <= 0 {
		return nil, ErrInvalidParameter
	}

	medoidIdx := append([]int{}, initialMedoidIndices...)
	return &KMedoids{dataset: ds, medoidIdx: medoidIdx, opts: opts}, nil
}

// Process iterates assignment and medoid replacement until the total
// intra-cluster dissimilarity stops improving by more than
// opts.Tolerance, dropping any cluster that receives no points (and
// its paired medoid) before each replacement step. It returns the
// final clusters (as point-index sets) and the corresponding final
// medoid indices into the original dataset, index-aligned.
func (k *KMedoids) Process() ([][]int, []int) {
	change := math.MaxFloat64
	var clusters [][]int

	for change > k.opts.Tolerance {
		clusters = assign(k.dataset, k.medoidIdx, k.opts.Metric)
		clusters, k.medoidIdx = dropEmpty(clusters, k.medoidIdx)
		change = k.updateMedoids(clusters)
	}

	return clusters, k.medoidIdx
}

func assign(ds point.Dataset, medoidIdx []int, metric point.Metric) [][]int {
	clusters := make([][]int, len(medoidIdx))
	for i, p := range ds {
		best := 0
		bestDist := metric(ds[medoidIdx[0]], p)
		for c := 1; c < len(medoidIdx); c++ {
			if d := metric(ds[medoidIdx[c]], p); d < bestDist {
				bestDist = d
				best = c
			}
		}
		clusters[best] = append(clusters[best], i)
	}
	return clusters
}

func dropEmpty(clusters [][]int, medoidIdx []int) ([][]int, []int) {
	outClusters := clusters[:0]
	outMedoids := medoidIdx[:0]
	for i, c := range clusters {
		if len(c) == 0 {
			continue
		}
		outClusters = append(outClusters, c)
		outMedoids = append(outMedoids, medoidIdx[i])
	}
	return outClusters, outMedoids
}

// updateMedoids replaces each cluster's medoid with whichever member
// minimizes the total dissimilarity to every other member of the same
// cluster, and returns the total drop in summed intra-cluster
// dissimilarity across all clusters (always >= 0, since the current
// medoid is itself a candidate).
func (k *KMedoids) updateMedoids(clusters [][]int) float64 {
	totalChange := 0.0

	for c, idx := range clusters {
		oldCost := k.costOf(idx, k.medoidIdx[c])

		bestIdx := k.medoidIdx[c]
		bestCost := oldCost
		for _, candidate := range idx {
			if cost := k.costOf(idx, candidate); cost < bestCost {
				bestCost = cost
				bestIdx = candidate
			}
		}

		totalChange += oldCost - bestCost
		k.medoidIdx[c] = bestIdx
	}

	return totalChange
}

// costOf sums the dissimilarity from every member index in idx to the
// dataset point at medoid.
func (k *KMedoids) costOf(idx []int, medoid int) float64 {
	sum := 0.0
	center := k.dataset[medoid]
	for _, i := range idx {
		sum += k.opts.Metric(center, k.dataset[i])
	}
	return sum
}
