package kdtree

import "github.com/gopherclust/ccore/point"

// Node is a single k-d tree node: a copy of the inserted coordinate, an
// opaque payload, and links to its left child, right child, and parent.
// The tree exclusively owns the node graph; callers must not mutate
// left/right/parent directly. Remove moves points and payloads between
// nodes, so a *Node returned by Insert holds its point only until the
// next Remove on the tree.
type Node struct {
	Point   point.Point // coordinate vector, dimension == tree.dim
	Payload interface{} // opaque back-reference, must be comparable

	left, right, parent *Node
	discriminator        int
}

// Left returns the node's left child, or nil.
func (n *Node) Left() *Node { return n.left }

// Right returns the node's right child, or nil.
func (n *Node) Right() *Node { return n.right }

// Parent returns the node's parent, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Discriminator returns the coordinate axis this node routes children on.
func (n *Node) Discriminator() int { return n.discriminator }

// NodeDistance pairs a node with its distance to some query point.
type NodeDistance struct {
	Node     *Node
	Distance float64
}

// Tree is a root-owning k-d tree of fixed dimension. The zero value is
// not usable; construct with New.
type Tree struct {
	root *Node
	dim  int
	size int
}

// New constructs an empty Tree over points of dimension dim.
func New(dim int) *Tree {
	return &Tree{dim: dim}
}

// Dim returns the tree's fixed dimension.
func (t *Tree) Dim() int { return t.dim }

// Len returns the number of nodes currently in the tree.
func (t *Tree) Len() int { return t.size }

// Root returns the tree's root node, or nil if empty.
func (t *Tree) Root() *Node { return t.root }
