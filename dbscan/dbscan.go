package dbscan

import "github.com/gopherclust/ccore/point"

// DBSCAN holds a dataset's precomputed symmetric neighbor lists. The
// zero value is not usable; construct with New.
type DBSCAN struct {
	dataset   point.Dataset
	opts      Options
	neighbors [][]int // neighbors[i] = indices j != i with dist(i,j) <= Epsilon
}

// New precomputes the neighbor list of every point in ds, comparing
// squared distances against Epsilon^2 to avoid a square root per pair.
func New(ds point.Dataset, opts Options) (*DBSCAN, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if opts.Epsilon <= 0 || opts.MinNeighbors < 1 {
		return nil, ErrInvalidParameter
	}

	n := len(ds)
	epsilonSq := opts.Epsilon * opts.Epsilon
	neighbors := make([][]int, n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if point.EuclideanSquared(ds[i], ds[j]) <= epsilonSq {
				neighbors[i] = append(neighbors[i], j)
				neighbors[j] = append(neighbors[j], i)
			}
		}
	}

	return &DBSCAN{dataset: ds, opts: opts, neighbors: neighbors}, nil
}

// Process expands a cluster from every unvisited core point by walking
// a growing seed list — each seed's own neighbors are folded in when
// the seed is itself a core point — and collects every point never
// claimed by a cluster into noise. Every point ends up in exactly one
// of the returned clusters or in noise.
func (d *DBSCAN) Process() (clusters [][]int, noise []int) {
	n := len(d.dataset)
	visited := make([]bool, n)
	belongs := make([]bool, n)

	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		visited[i] = true

		var allocated []int
		if len(d.neighbors[i]) >= d.opts.MinNeighbors {
			allocated = append(allocated, i)
			belongs[i] = true

			seeds := append([]int{}, d.neighbors[i]...)
			for k := 0; k < len(seeds); k++ {
				q := seeds[k]

				if !visited[q] {
					visited[q] = true
					if len(d.neighbors[q]) >= d.opts.MinNeighbors {
						for _, cand := range d.neighbors[q] {
							if !containsInt(seeds, cand) {
								seeds = append(seeds, cand)
							}
						}
					}
				}

				if !belongs[q] {
					allocated = append(allocated, q)
					belongs[q] = true
				}
			}
		}

		if len(allocated) > 0 {
			clusters = append(clusters, allocated)
		} else {
			noise = append(noise, i)
		}
	}

	// A point marked as noise stays claimable by a later cluster; drop
	// every point that was claimed afterwards from the noise list.
	unclaimed := noise[:0]
	for _, idx := range noise {
		if !belongs[idx] {
			unclaimed = append(unclaimed, idx)
		}
	}

	return clusters, unclaimed
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
