package legion

// Oscillator is one LEGION neuron's internal state, field-for-field
// matching the source project's legion_oscillator.
type Oscillator struct {
	Excitatory         float64
	Inhibitory         float64
	Potential          float64
	Stimulus           float64
	Coupling           float64
	BufferCouplingTerm float64
	Noise              float64
}

// Parameters configures the LEGION dynamics, field-for-field matching
// the source project's legion_parameters defaults.
type Parameters struct {
	Eps    float64
	Alpha  float64
	Gamma  float64
	Betta  float64
	Lamda  float64
	Teta   float64
	TetaX  float64
	TetaP  float64
	TetaXZ float64
	TetaZX float64
	T      float64
	Mu     float64
	Wz     float64
	Wt     float64
	Fi     float64
	Ro     float64
	I      float64
}

// DefaultParameters returns the source project's defaults.
func DefaultParameters() Parameters {
	return Parameters{
		Eps: 0.02, Alpha: 0.005, Gamma: 6.0, Betta: 0.1,
		Lamda: 0.1, Teta: 0.9, TetaX: -1.5, TetaP: 1.5,
		TetaXZ: 0.1, TetaZX: 0.1, T: 2.0, Mu: 0.01,
		Wz: 1.5, Wt: 8.0, Fi: 3.0, Ro: 0.02, I: 0.2,
	}
}

// State is one recorded simulation step: every oscillator's
// excitatory value, plus the single shared global-inhibitor value,
// which pyclustering's own legion_network documents as always being
// the dynamic's trailing value.
type State struct {
	Time       float64
	Excitatory []float64
	Global     float64
}

// Dynamic is an ordered sequence of States. When collect=false was
// requested, a Dynamic has exactly one State: the terminal one.
type Dynamic []State
