// Package kdtree implements a density-indexing k-d tree over
// github.com/gopherclust/ccore/point.Point coordinates, carrying an
// opaque payload per node so higher-level algorithms (CURE, neighbor
// queries) can back-reference geometry to their own objects.
//
// The tree is unbalanced: shape follows insertion order. CURE relies on
// this explicitly, inserting cluster representatives incrementally
// rather than bulk-loading, so merges only ever touch a small, local
// part of the tree.
//
// Node lifetime: the tree exclusively owns its nodes; parents own
// children. Remove re-links the subtree by promoting a replacement
// rather than freeing live children — Go's garbage collector reclaims
// a detached node once nothing references it, so "ownership" here means
// "reachable from the root", not manual memory management.
package kdtree
