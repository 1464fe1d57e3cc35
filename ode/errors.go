package ode

import "errors"

// ErrDimensionMismatch is returned when two States of different length
// are combined, or when the right-hand side returns a derivative of a
// different length than the state it was evaluated on.
var ErrDimensionMismatch = errors.New("ode: dimension mismatch")

// ErrInvalidParameter is returned for non-positive step counts or
// non-positive tolerances.
var ErrInvalidParameter = errors.New("ode: invalid parameter")
