package kdtree

import "github.com/gopherclust/ccore/point"

// Insert adds point p with the given payload, descending from the root
// and choosing left/right at each node by comparing p against the
// node's discriminator coordinate: strictly less routes left, greater
// or equal routes right. The new leaf's discriminator is
// (parent.discriminator + 1) mod dim; the root always uses 0.
//
// Insert returns ErrDimensionMismatch if len(p) != t.Dim().
func (t *Tree) Insert(p point.Point, payload interface{}) (*Node, error) {
	if len(p) != t.dim {
		return nil, ErrDimensionMismatch
	}

	leaf := &Node{Point: p.Clone(), Payload: payload}

	if t.root == nil {
		leaf.discriminator = 0
		t.root = leaf
		t.size++
		return leaf, nil
	}

	cur := t.root
	for {
		disc := cur.discriminator
		if p[disc] < cur.Point[disc] {
			if cur.left == nil {
				leaf.discriminator = (disc + 1) % t.dim
				leaf.parent = cur
				cur.left = leaf
				t.size++
				return leaf, nil
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				leaf.discriminator = (disc + 1) % t.dim
				leaf.parent = cur
				cur.right = leaf
				t.size++
				return leaf, nil
			}
			cur = cur.right
		}
	}
}

// FindNode locates a node matching p. If payload is non-nil, the match
// additionally requires cur.Payload == payload, which is how callers
// disambiguate duplicate coordinate vectors. Returns nil if not found.
func (t *Tree) FindNode(p point.Point, payload interface{}) *Node {
	return t.locate(p, payload, payload != nil)
}

// locate walks the tree following the same routing rule as Insert,
// checking every node whose coordinates equal p for a payload match
// (when requirePayload is set). Because equal coordinates always route
// right, duplicates are reachable by continuing the descent.
func (t *Tree) locate(p point.Point, payload interface{}, requirePayload bool) *Node {
	cur := t.root
	for cur != nil {
		if cur.Point.Equal(p) {
			if !requirePayload || cur.Payload == payload {
				return cur
			}
		}
		disc := cur.discriminator
		if p[disc] < cur.Point[disc] {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return nil
}
