package kmedoids

import "errors"

// ErrInvalidParameter is returned for an empty initial medoid index
// set, an out-of-range medoid index, or a non-positive tolerance.
var ErrInvalidParameter = errors.New("kmedoids: invalid parameter")
