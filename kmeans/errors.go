package kmeans

import "errors"

// ErrInvalidParameter is returned for an empty initial center set, a
// center whose dimension disagrees with the dataset, or a non-positive
// tolerance.
var ErrInvalidParameter = errors.New("kmeans: invalid parameter")
