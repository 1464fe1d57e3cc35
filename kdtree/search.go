package kdtree

import (
	"math"

	"github.com/gopherclust/ccore/point"
)

// FindNearestWithin returns every node whose Euclidean distance to
// query is <= radius, in unspecified order. Branch pruning compares the
// query's discriminator coordinate against each node's to skip subtrees
// that cannot contain a point within radius.
func (t *Tree) FindNearestWithin(query point.Point, radius float64) []NodeDistance {
	var out []NodeDistance
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		d := point.Euclidean(query, n.Point)
		if d <= radius {
			out = append(out, NodeDistance{Node: n, Distance: d})
		}

		disc := n.discriminator
		diff := query[disc] - n.Point[disc]
		if diff <= 0 {
			walk(n.left)
			if -diff <= radius {
				walk(n.right)
			}
		} else {
			walk(n.right)
			if diff <= radius {
				walk(n.left)
			}
		}
	}
	walk(t.root)
	return out
}

// FindNearest returns the node closest to query by Euclidean distance.
// The search radius starts at +Inf and tightens as better candidates
// are found, so a single descent suffices. ok is false for an empty
// tree.
func (t *Tree) FindNearest(query point.Point) (node *Node, distance float64, ok bool) {
	best := math.Inf(1)
	var bestNode *Node

	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		d := point.Euclidean(query, n.Point)
		if d < best {
			best = d
			bestNode = n
		}

		disc := n.discriminator
		diff := query[disc] - n.Point[disc]
		if diff <= 0 {
			walk(n.left)
			if math.Abs(diff) <= best {
				walk(n.right)
			}
		} else {
			walk(n.right)
			if math.Abs(diff) <= best {
				walk(n.left)
			}
		}
	}
	walk(t.root)

	if bestNode == nil {
		return nil, 0, false
	}
	return bestNode, best, true
}
