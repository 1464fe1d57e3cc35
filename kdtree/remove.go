package kdtree

import "github.com/gopherclust/ccore/point"

// Remove locates the node matching both p and payload and deletes it.
// If no such node exists, Remove is a no-op — it is never an error for
// a caller to remove something already gone.
//
// Deletion repeatedly promotes the minimum (by the removed node's
// discriminator) node from the right subtree into the removed node's
// place; if the right subtree is empty, the left subtree is re-rooted
// as the new right subtree and the search continues there. This keeps
// the invariant "left strictly less, right greater-or-equal" intact
// without requiring a full rebuild.
func (t *Tree) Remove(p point.Point, payload interface{}) {
	target := t.locate(p, payload, true)
	if target == nil {
		return
	}
	t.deleteNode(target)
	t.size--
}

func (t *Tree) deleteNode(node *Node) {
	for {
		if node.right != nil {
			m := findMinByDiscriminator(node.right, node.discriminator)
			node.Point, m.Point = m.Point, node.Point
			node.Payload, m.Payload = m.Payload, node.Payload
			node = m
			continue
		}
		if node.left != nil {
			promoted := node.left
			node.left = nil
			node.right = promoted
			promoted.parent = node
			continue
		}

		// Leaf: detach from parent.
		parent := node.parent
		switch {
		case parent == nil:
			t.root = nil
		case parent.left == node:
			parent.left = nil
		default:
			parent.right = nil
		}
		return
	}
}

// findMinByDiscriminator returns the node in the subtree rooted at n
// with the smallest coordinate at axis disc. When n itself is split on
// disc, only its left subtree can hold smaller values at that axis;
// otherwise both children must be searched.
func findMinByDiscriminator(n *Node, disc int) *Node {
	if n == nil {
		return nil
	}
	best := n
	if n.discriminator == disc {
		if left := findMinByDiscriminator(n.left, disc); left != nil && left.Point[disc] < best.Point[disc] {
			best = left
		}
		return best
	}
	if left := findMinByDiscriminator(n.left, disc); left != nil && left.Point[disc] < best.Point[disc] {
		best = left
	}
	if right := findMinByDiscriminator(n.right, disc); right != nil && right.Point[disc] < best.Point[disc] {
		best = right
	}
	return best
}
