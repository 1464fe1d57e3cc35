package kmedians

import "errors"

// ErrInvalidParameter is returned for an empty initial median set, a
// median whose dimension disagrees with the dataset, or a non-positive
// tolerance.
var ErrInvalidParameter = errors.New("kmedians: invalid parameter")
