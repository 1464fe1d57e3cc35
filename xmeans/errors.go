package xmeans

import "errors"

// ErrInvalidParameter is returned for an empty initial center set, a
// maximum cluster count smaller than the initial one, or a non-positive
// tolerance.
var ErrInvalidParameter = errors.New("xmeans: invalid parameter")

// ErrUnknownSplittingCriterion is returned when opts.Criterion does
// not name a recognized splitting criterion.
var ErrUnknownSplittingCriterion = errors.New("xmeans: unknown splitting criterion")
