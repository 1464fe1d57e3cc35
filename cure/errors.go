package cure

import "errors"

// ErrInvalidParameter is returned when ClusterNumber is not in
// [1, len(dataset)], RepresentativePoints is less than 1, or
// Compression is outside [0, 1].
var ErrInvalidParameter = errors.New("cure: invalid parameter")
