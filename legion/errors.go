package legion

import "errors"

// ErrInvalidParameter is returned when the stimulus length disagrees
// with the topology size, or a non-positive step count is requested.
var ErrInvalidParameter = errors.New("legion: invalid parameter")
