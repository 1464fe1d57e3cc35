package agglomerative

import "errors"

// ErrInvalidParameter is returned for a zero or out-of-range cluster
// count, or an unrecognized Linkage.
var ErrInvalidParameter = errors.New("agglomerative: invalid parameter")
