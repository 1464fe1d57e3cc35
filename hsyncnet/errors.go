package hsyncnet

import "errors"

// ErrInvalidParameter is returned for a non-positive cluster count or a
// dataset too small to grow a radius from.
var ErrInvalidParameter = errors.New("hsyncnet: invalid parameter")
