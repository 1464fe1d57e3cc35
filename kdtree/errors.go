package kdtree

import "errors"

// ErrDimensionMismatch is returned by Insert when the supplied point
// does not have the tree's fixed dimension. FindNode, Remove and the
// search methods have no error return and do not check the dimension.
var ErrDimensionMismatch = errors.New("kdtree: dimension mismatch")
