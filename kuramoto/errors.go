package kuramoto

import "errors"

// ErrUnknownSolver is returned when the solver passed to SimulateStatic
// or SimulateDynamic names an integrator this package does not implement.
var ErrUnknownSolver = errors.New("kuramoto: unknown solver")

// ErrUnknownInitialization is returned when Options.Initialization names
// a phase-initialization strategy this package does not implement.
var ErrUnknownInitialization = errors.New("kuramoto: unknown initialization")

// ErrInvalidParameter is returned for non-positive step counts or a nil
// topology.
var ErrInvalidParameter = errors.New("kuramoto: invalid parameter")
