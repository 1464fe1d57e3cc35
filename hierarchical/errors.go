package hierarchical

import "errors"

// ErrInvalidParameter is returned for a zero or out-of-range cluster
// count.
var ErrInvalidParameter = errors.New("hierarchical: invalid parameter")
