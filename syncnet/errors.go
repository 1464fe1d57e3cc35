package syncnet

import "errors"

// ErrInvalidParameter is returned for a negative connectivity radius. An
// empty or ragged dataset is reported with point.ErrEmptyDataset or
// point.ErrDimensionMismatch.
var ErrInvalidParameter = errors.New("syncnet: invalid parameter")
