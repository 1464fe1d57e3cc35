package dbscan

import "errors"

// ErrInvalidParameter is returned for a non-positive Epsilon or a
// MinNeighbors below 1.
var ErrInvalidParameter = errors.New("dbscan: invalid parameter")
