package rock

import "errors"

// ErrInvalidParameter is returned for a non-positive radius, a zero
// or out-of-range cluster count, or a threshold outside (0, 1].
var ErrInvalidParameter = errors.New("rock: invalid parameter")
