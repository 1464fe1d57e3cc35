package ode

// RHS is the caller-provided right-hand side of an ODE: dy/dt = f(t, y,
// extra). extra is a typed closure capturing whatever context the
// caller needs (e.g. a network identity and target oscillator index)
// in place of a variadic void* argument vector.
type RHS func(t float64, y State, extra interface{}) (State, error)

// Sample is one recorded point of a trajectory.
type Sample struct {
	Time  float64
	State State
}

// Trajectory is an ordered sequence of Samples. When collect=false was
// requested, a Trajectory has exactly one Sample: the terminal state.
type Trajectory []Sample

// Last returns the final sample of the trajectory.
func (tr Trajectory) Last() Sample {
	return tr[len(tr)-1]
}
