package pcnn

// Oscillator is one PCNN neuron's internal state.
type Oscillator struct {
	Feeding   float64
	Linking   float64
	Threshold float64
	Output    float64
}

// Parameters configures the PCNN dynamics, field-for-field matching
// the source project's pcnn_parameters defaults.
type Parameters struct {
	VF, VL, VT float64
	AF, AL, AT float64
	W, M       float64
	B          float64

	OutputTrue, OutputFalse float64

	// FastLinking enables the fast-linking variant, which iterates
	// the linking/output pair to a local fixed point within a single
	// time step before the threshold is updated, instead of taking
	// one linking update per step.
	FastLinking bool
}

// DefaultParameters returns the source project's defaults.
func DefaultParameters() Parameters {
	return Parameters{
		VF: 1.0, VL: 1.0, VT: 10.0,
		AF: 0.1, AL: 0.1, AT: 0.5,
		W: 1.0, M: 1.0,
		B:           0.1,
		OutputTrue:  1.0,
		OutputFalse: 0.0,
		FastLinking: false,
	}
}

// State is one recorded simulation step: every oscillator's output
// (spike) at that step.
type State struct {
	Step   int
	Output []float64
}

// Dynamic is an ordered sequence of States. When collect=false was
// requested, a Dynamic has exactly one State: the terminal one.
type Dynamic []State

const maxFastLinkingIterations = 100
