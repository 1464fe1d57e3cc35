package cure

import (
	"math"
	"sort"

	"github.com/gopherclust/ccore/kdtree"
	"github.com/gopherclust/ccore/point"
)

// CURE holds the live cluster set, the kd-tree indexing every live
// representative point, and a distance_closest-sorted queue of cluster
// handles. The zero value is not usable; construct with New.
type CURE struct {
	dataset point.Dataset
	opts    Options

	byHandle   map[int]*cluster
	order      []int // handles, ascending by distanceClosest
	tree       *kdtree.Tree
	nextHandle int
}

// New builds a CURE instance with one singleton cluster per point in
// ds, each cluster's closest neighbor found by an initial all-pairs
// scan.
func New(ds point.Dataset, opts Options) (*CURE, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if opts.ClusterNumber < 1 || opts.ClusterNumber > len(ds) {
		return nil, ErrInvalidParameter
	}
	if opts.RepresentativePoints < 1 {
		return nil, ErrInvalidParameter
	}
	if opts.Compression < 0 || opts.Compression > 1 {
		return nil, ErrInvalidParameter
	}

	c := &CURE{
		dataset:  ds,
		opts:     opts,
		byHandle: make(map[int]*cluster, len(ds)),
		tree:     kdtree.New(ds.Dim()),
	}

	handles := make([]int, 0, len(ds))
	for i, p := range ds {
		cl := &cluster{
			handle: c.newHandle(),
			points: []int{i},
			mean:   p.Clone(),
			rep:    []point.Point{p.Clone()},
		}
		c.byHandle[cl.handle] = cl
		handles = append(handles, cl.handle)
		if _, err := c.tree.Insert(p, cl.handle); err != nil {
			return nil, err
		}
	}

	for _, h := range handles {
		cl := c.byHandle[h]
		cl.closest, cl.distanceClosest = c.nearestOf(cl, handles)
	}

	c.order = append(c.order, handles...)
	sort.Slice(c.order, func(i, j int) bool {
		return c.byHandle[c.order[i]].distanceClosest < c.byHandle[c.order[j]].distanceClosest
	})

	return c, nil
}

func (c *CURE) newHandle() int {
	h := c.nextHandle
	c.nextHandle++
	return h
}

// nearestOf scans candidates for the one minimizing clusterDistance to
// cl, skipping cl itself.
func (c *CURE) nearestOf(cl *cluster, candidates []int) (int, float64) {
	best := -1
	bestDist := math.MaxFloat64
	for _, h := range candidates {
		if h == cl.handle {
			continue
		}
		d := clusterDistance(cl, c.byHandle[h])
		if d < bestDist {
			bestDist = d
			best = h
		}
	}
	return best, bestDist
}

// clusterDistance is the minimum pairwise Euclidean distance between
// two clusters' representative point sets.
func clusterDistance(a, b *cluster) float64 {
	best := math.MaxFloat64
	for _, p1 := range a.rep {
		for _, p2 := range b.rep {
			if d := point.Euclidean(p1, p2); d < best {
				best = d
			}
		}
	}
	return best
}

// Process merges the two closest clusters repeatedly until
// opts.ClusterNumber remain, and returns each final cluster's point
// indices (sorted ascending within each cluster).
func (c *CURE) Process() [][]int {
	for len(c.order) > c.opts.ClusterNumber {
		aHandle := c.order[0]
		a := c.byHandle[aHandle]
		bHandle := a.closest
		b := c.byHandle[bHandle]

		c.removeFromOrder(aHandle)
		c.removeFromOrder(bHandle)
		c.removeRepresentatives(a)
		c.removeRepresentatives(b)

		merged := c.mergeClusters(a, b)
		delete(c.byHandle, aHandle)
		delete(c.byHandle, bHandle)
		c.byHandle[merged.handle] = merged
		c.insertRepresentatives(merged)

		relocated := c.resolveClosestAndRelocate(merged, aHandle, bHandle)

		c.insertSorted(merged.handle)
		for _, h := range relocated {
			c.removeFromOrder(h)
			c.insertSorted(h)
		}
	}

	return c.extractClusters()
}

// mergeClusters builds the merged cluster's point set, size-weighted
// mean, and shrunk representative set. closest/distanceClosest are
// left unset; resolveClosestAndRelocate fills them in along with the
// single scan over remaining clusters.
func (c *CURE) mergeClusters(a, b *cluster) *cluster {
	merged := &cluster{
		handle:          c.newHandle(),
		points:          append(append([]int{}, a.points...), b.points...),
		closest:         -1,
		distanceClosest: math.MaxFloat64,
	}

	dim := c.dataset.Dim()
	mean := make(point.Point, dim)
	na, nb := float64(len(a.points)), float64(len(b.points))
	for d := 0; d < dim; d++ {
		mean[d] = (na*a.mean[d] + nb*b.mean[d]) / (na + nb)
	}
	merged.mean = mean
	merged.rep = c.selectRepresentatives(merged)

	return merged
}

// selectRepresentatives runs farthest-point selection over merged's
// member points: the first pick maximizes distance to the mean, every
// subsequent pick maximizes its minimum distance to the
// already-selected representative set. Selection is by point index, so
// a point can never be chosen twice even under coordinate collisions.
// Each chosen point is then shrunk toward the mean by opts.Compression.
func (c *CURE) selectRepresentatives(merged *cluster) []point.Point {
	numRep := c.opts.RepresentativePoints
	if numRep > len(merged.points) {
		numRep = len(merged.points)
	}

	chosen := make([]int, 0, numRep)
	chosenSet := make(map[int]bool, numRep)

	for len(chosen) < numRep {
		bestPoint := -1
		bestMinDist := -1.0

		for _, idx := range merged.points {
			if chosenSet[idx] {
				continue
			}
			p := c.dataset[idx]

			var minDist float64
			if len(chosen) == 0 {
				minDist = point.Euclidean(p, merged.mean)
			} else {
				minDist = math.MaxFloat64
				for _, chosenIdx := range chosen {
					if d := point.Euclidean(p, c.dataset[chosenIdx]); d < minDist {
						minDist = d
					}
				}
			}

			if minDist > bestMinDist {
				bestMinDist = minDist
				bestPoint = idx
			}
		}

		chosenSet[bestPoint] = true
		chosen = append(chosen, bestPoint)
	}

	reps := make([]point.Point, len(chosen))
	for i, idx := range chosen {
		p := c.dataset[idx]
		shrunk := make(point.Point, len(p))
		for d := range p {
			shrunk[d] = p[d] + c.opts.Compression*(merged.mean[d]-p[d])
		}
		reps[i] = shrunk
	}
	return reps
}

// resolveClosestAndRelocate scans every remaining live cluster once,
// both to find merged's own closest neighbor and to service the
// relocation request: any cluster whose closest was aHandle or bHandle
// needs its own closest recomputed, either cheaply confirmed via merged
// or reestablished with a radius-bounded kd-tree query.
func (c *CURE) resolveClosestAndRelocate(merged *cluster, aHandle, bHandle int) []int {
	var relocated []int

	for _, h := range c.order {
		cl := c.byHandle[h]
		d := clusterDistance(merged, cl)

		if d < merged.distanceClosest {
			merged.distanceClosest = d
			merged.closest = h
		}

		if cl.closest != aHandle && cl.closest != bHandle {
			continue
		}

		if cl.distanceClosest < d {
			if nearestHandle, nearestDist, found := c.queryNearestForeign(cl); found {
				cl.closest = nearestHandle
				cl.distanceClosest = nearestDist
			} else {
				cl.closest = merged.handle
				cl.distanceClosest = d
			}
		} else {
			cl.closest = merged.handle
			cl.distanceClosest = d
		}
		relocated = append(relocated, h)
	}

	return relocated
}

// queryNearestForeign searches, for each of cl's representative
// points, every kd-tree node within cl's previous distance_closest
// radius, and returns the globally nearest candidate belonging to a
// different cluster.
func (c *CURE) queryNearestForeign(cl *cluster) (int, float64, bool) {
	bestHandle := -1
	bestDist := math.MaxFloat64

	for _, rep := range cl.rep {
		for _, cand := range c.tree.FindNearestWithin(rep, cl.distanceClosest) {
			h := cand.Node.Payload.(int)
			if h == cl.handle {
				continue
			}
			if cand.Distance < bestDist {
				bestDist = cand.Distance
				bestHandle = h
			}
		}
	}

	if bestHandle == -1 {
		return -1, 0, false
	}
	return bestHandle, bestDist, true
}

func (c *CURE) removeRepresentatives(cl *cluster) {
	for _, rep := range cl.rep {
		c.tree.Remove(rep, cl.handle)
	}
}

func (c *CURE) insertRepresentatives(cl *cluster) {
	for _, rep := range cl.rep {
		c.tree.Insert(rep, cl.handle)
	}
}

// removeFromOrder deletes handle from the sorted queue.
func (c *CURE) removeFromOrder(handle int) {
	for i, h := range c.order {
		if h == handle {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// insertSorted re-inserts handle at the position keeping c.order
// ascending by distanceClosest. Per the algorithm's own design
// rationale, a full priority-queue rebuild is never required: sorted
// insertion at the correct position suffices, since the queue never
// exceeds the original point count and most insertions land near the
// front.
func (c *CURE) insertSorted(handle int) {
	d := c.byHandle[handle].distanceClosest
	for i, h := range c.order {
		if d < c.byHandle[h].distanceClosest {
			c.order = append(c.order[:i+1], c.order[i:]...)
			c.order[i] = handle
			return
		}
	}
	c.order = append(c.order, handle)
}

// extractClusters converts live clusters into point-index sets,
// sorted ascending within each cluster, in queue order.
func (c *CURE) extractClusters() [][]int {
	out := make([][]int, 0, len(c.order))
	for _, h := range c.order {
		cl := c.byHandle[h]
		pts := append([]int{}, cl.points...)
		sort.Ints(pts)
		out = append(out, pts)
	}
	return out
}
