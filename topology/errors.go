package topology

import "errors"

// ErrInvalidTopology is returned when grid dimensions are inconsistent
// with the node count, or an unknown topology tag is requested.
var ErrInvalidTopology = errors.New("topology: invalid topology")
