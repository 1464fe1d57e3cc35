package kuramoto

// Solver selects the ODE integrator used to advance oscillator phases.
type Solver int

const (
	// RK4 integrates each phase with a fixed-step classical Runge-Kutta 4.
	RK4 Solver = iota
	// RKF45 integrates each phase with the adaptive Fehlberg 4(5) pair.
	RKF45
)

// Initialization selects how initial phases are drawn.
type Initialization int

const (
	// RandomGaussian draws phases uniformly on [0, 2*pi).
	// (Named for parity with the source project; the distribution used
	// is uniform, not Gaussian.)
	RandomGaussian Initialization = iota
	// Equipartition sets phase_i = pi*i/N.
	Equipartition
)

// rkf45Tolerance is the fixed per-oscillator RKF45 tolerance used by
// calculatePhases, matching the source project's hard-coded 0.00001.
const rkf45Tolerance = 0.00001

// Options configures a Network's construction and phase dynamics.
type Options struct {
	// Coupling is the global coupling strength W in the Kuramoto update.
	Coupling float64
	// FrequencyFactor bounds the uniform draw for natural frequencies:
	// omega_i ~ Uniform[0, FrequencyFactor).
	FrequencyFactor float64
	// Initialization selects the initial phase distribution.
	Initialization Initialization
	// Cluster is an integer multiplier on the sinusoid argument in the
	// phase update; defaults to 1 when zero (see spec Open Questions).
	Cluster int
	// Seed seeds the random draws for phases/frequencies, for
	// reproducible construction.
	Seed int64
	// NormalizeByDegree divides the coupling sum by each oscillator's
	// own neighbor count instead of the network size N. SyncNet uses
	// this; the base Kuramoto model (spec 4.4) does not.
	NormalizeByDegree bool
}

// DefaultOptions returns Options with Cluster=1 and RandomGaussian
// initialization; Coupling and FrequencyFactor must still be set by the
// caller.
func DefaultOptions() Options {
	return Options{
		Initialization: RandomGaussian,
		Cluster:        1,
	}
}

// State is one recorded instant of a Network's phase trajectory.
type State struct {
	Time   float64
	Phases []float64
}

// Dynamic is an ordered sequence of States, all over the same oscillator
// count.
type Dynamic []State

// Last returns the final recorded state.
func (d Dynamic) Last() State {
	return d[len(d)-1]
}
