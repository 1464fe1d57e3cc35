package xmeans

import (
	"math"

	"github.com/gopherclust/ccore/point"
)

// XMeans holds a dataset and its current clustering state. The zero
// value is not usable; construct with New.
type XMeans struct {
	dataset point.Dataset
	opts    Options
	centers []point.Point
}

// New validates opts against ds and seeds the initial center set,
// cloned so the caller's slice is never mutated.
func New(ds point.Dataset, initialCenters []point.Point, opts Options) (*XMeans, error) {
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
	if opts.MaximumClusters < len(initialCenters) {
		return nil, ErrInvalidParameter
	}
	if opts.Tolerance <= 0 {
		return nil, ErrInvalidParameter
	}
	switch opts.Criterion {
	case BIC, MNDL:
	default:
		return nil, ErrUnknownSplittingCriterion
	}

	centers := make([]point.Point, len(initialCenters))
	for i, c := range initialCenters {
		centers[i] = c.Clone()
	}

	return &XMeans{dataset: ds, opts: opts, centers: centers}, nil
}

// Process alternates global k-means refinement with a
// structure-improvement phase that attempts to split each cluster in
// two, keeping a split only when it improves the configured
// splitting criterion, until no cluster improves by splitting or the
// cluster count reaches opts.MaximumClusters. It returns the final
// clusters (as point-index sets) and the corresponding final
// centers, index-aligned.
func (x *XMeans) Process() ([][]int, []point.Point) {
	clusters := x.runKMeans(x.dataset.Indices(), x.centers)

	for len(x.centers) < x.opts.MaximumClusters {
		grew := false

		var nextCenters []point.Point
		for c, idx := range clusters {
			remaining := len(clusters) - c - 1
			budget := x.opts.MaximumClusters - len(nextCenters) - remaining

			children, improved := x.tryImprove(idx, x.centers[c])
			if improved && len(children) <= budget {
				nextCenters = append(nextCenters, children...)
				grew = true
			} else {
				nextCenters = append(nextCenters, x.centers[c])
			}
		}

		if !grew {
			break
		}

		x.centers = nextCenters
		clusters = x.runKMeans(x.dataset.Indices(), x.centers)
	}

	return clusters, x.centers
}

// tryImprove attempts to split the cluster at idx (currently
// represented by a single center) into two children via a local
// 2-means run, and reports whether the split improves the configured
// criterion over keeping idx as one cluster.
func (x *XMeans) tryImprove(idx []int, center point.Point) ([]point.Point, bool) {
	if len(idx) < 2 {
		return nil, false
	}

	seeds := splitSeeds(x.dataset, idx, center)
	childClusters := x.runKMeans(idx, seeds)

	var childCenters []point.Point
	for _, c := range childClusters {
		childCenters = append(childCenters, x.dataset.Centroid(c))
	}
	if len(childCenters) < 2 {
		return nil, false
	}

	parentScore := x.score([][]int{idx}, []point.Point{center})
	childScore := x.score(childClusters, childCenters)

	switch x.opts.Criterion {
	case MNDL:
		return childCenters, childScore < parentScore
	default:
		return childCenters, childScore > parentScore
	}
}

// splitSeeds derives two child seeds from the cluster's extent: the
// dimension of greatest spread is identified, and the seeds are
// placed a quarter of that spread to either side of the center along
// that dimension.
func splitSeeds(ds point.Dataset, idx []int, center point.Point) []point.Point {
	dim := center.Dim()
	mins := make([]float64, dim)
	maxs := make([]float64, dim)
	copy(mins, ds[idx[0]])
	copy(maxs, ds[idx[0]])

	for _, i := range idx {
		for d := 0; d < dim; d++ {
			v := ds[i][d]
			if v < mins[d] {
				mins[d] = v
			}
			if v > maxs[d] {
				maxs[d] = v
			}
		}
	}

	bestDim := 0
	bestSpread := 0.0
	for d := 0; d < dim; d++ {
		if spread := maxs[d] - mins[d]; spread > bestSpread {
			bestSpread = spread
			bestDim = d
		}
	}

	offset := bestSpread / 4
	seed1 := center.Clone()
	seed2 := center.Clone()
	seed1[bestDim] += offset
	seed2[bestDim] -= offset

	return []point.Point{seed1, seed2}
}

// runKMeans runs Lloyd's algorithm restricted to the dataset indices
// in idx, seeded with centers, to opts.Tolerance convergence. Unlike
// package kmeans, empty clusters are never dropped here: a center
// losing all its points would silently shrink the candidate model's
// cluster count, which both the global refinement pass and the local
// 2-means split trial rely on staying fixed.
func (x *XMeans) runKMeans(idx []int, centers []point.Point) [][]int {
	current := make([]point.Point, len(centers))
	for i, c := range centers {
		current[i] = c.Clone()
	}

	change := math.MaxFloat64
	var clusters [][]int

	for change > x.opts.Tolerance {
		clusters = make([][]int, len(current))
		for _, i := range idx {
			p := x.dataset[i]
			best := 0
			bestDist := point.EuclideanSquared(current[0], p)
			for c := 1; c < len(current); c++ {
				if d := point.EuclideanSquared(current[c], p); d < bestDist {
					bestDist = d
					best = c
				}
			}
			clusters[best] = append(clusters[best], i)
		}

		change = 0
		for c, members := range clusters {
			if len(members) == 0 {
				continue
			}
			newCenter := x.dataset.Centroid(members)
			if d := point.EuclideanSquared(current[c], newCenter); d > change {
				change = d
			}
			current[c] = newCenter
		}
	}

	return clusters
}

// score evaluates the configured splitting criterion for a candidate
// model consisting of the given clusters and centers, all drawn from
// the same parent point set.
func (x *XMeans) score(clusters [][]int, centers []point.Point) float64 {
	if x.opts.Criterion == MNDL {
		return mndlScore(x.dataset, clusters, centers)
	}
	return bicScore(x.dataset, clusters, centers)
}

// bicScore computes the Bayesian Information Criterion for a
// spherical-Gaussian mixture model with K components sharing one
// pooled variance estimate, following Pelleg & Moore's X-means BIC
// formula. Higher is better.
func bicScore(ds point.Dataset, clusters [][]int, centers []point.Point) float64 {
	dim := float64(ds.Dim())
	k := len(centers)

	var total int
	var sumSquared float64
	for c, members := range clusters {
		total += len(members)
		for _, i := range members {
			sumSquared += point.EuclideanSquared(centers[c], ds[i])
		}
	}
	r := float64(total)

	variance := 0.0
	if total > k {
		variance = sumSquared / float64(total-k)
	}
	if variance <= 0 {
		variance = 1e-10
	}

	logLikelihood := 0.0
	for _, members := range clusters {
		rj := float64(len(members))
		if rj == 0 {
			continue
		}
		ll := -rj/2*math.Log(2*math.Pi) -
			rj*dim/2*math.Log(variance) -
			(rj-float64(k))/2 +
			rj*math.Log(rj) -
			rj*math.Log(r)
		logLikelihood += ll
	}

	freeParams := float64((k-1) + int(dim)*k + 1)
	return logLikelihood - freeParams/2*math.Log(r)
}

// mndlScore computes an approximate minimum-noiseless-description-
// length score: the summed cost of encoding each cluster's points
// under its own per-cluster Gaussian, plus a per-cluster model-
// complexity term. Lower is better.
func mndlScore(ds point.Dataset, clusters [][]int, centers []point.Point) float64 {
	dim := float64(ds.Dim())

	total := 0.0
	for c, members := range clusters {
		rj := len(members)
		if rj == 0 {
			continue
		}

		sumSquared := 0.0
		for _, i := range members {
			sumSquared += point.EuclideanSquared(centers[c], ds[i])
		}
		variance := sumSquared / float64(rj)
		if variance <= 0 {
			variance = 1e-10
		}

		rjF := float64(rj)
		total += rjF*dim/2*math.Log(variance) + rjF/2*math.Log(2*math.Pi) + (dim+1)/2*math.Log(rjF)
	}

	return total
}
