package kuramoto

import (
	"math"

	"github.com/gopherclust/ccore/internal/rng"
	"github.com/gopherclust/ccore/ode"
	"github.com/gopherclust/ccore/topology"
)

// WeightFunc returns a per-edge multiplier applied to the sinusoid term
// between oscillators i and j. A nil WeightFunc means every edge has
// weight 1 (the unweighted Kuramoto model).
type WeightFunc func(i, j int) float64

// Network is a population of Kuramoto oscillators coupled over a
// topology.Topology. The zero value is not usable; construct with New.
type Network struct {
	topology    topology.Topology
	phases      []float64
	frequencies []float64
	opts        Options
	weight      WeightFunc

	stalled bool
}

// New constructs a Network of topology.Size() oscillators. Phases are
// initialized per opts.Initialization, frequencies drawn uniformly on
// [0, opts.FrequencyFactor).
func New(top topology.Topology, opts Options, weight WeightFunc) (*Network, error) {
	if top == nil {
		return nil, ErrInvalidParameter
	}
	if opts.Cluster == 0 {
		opts.Cluster = 1
	}

	n := top.Size()
	net := &Network{
		topology:    top,
		phases:      make([]float64, n),
		frequencies: make([]float64, n),
		opts:        opts,
		weight:      weight,
	}

	source := rng.New(opts.Seed)
	switch opts.Initialization {
	case RandomGaussian:
		for i := range net.phases {
			net.phases[i] = source.Float64() * 2 * math.Pi
		}
	case Equipartition:
		for i := range net.phases {
			net.phases[i] = math.Pi * float64(i) / float64(n)
		}
	default:
		return nil, ErrUnknownInitialization
	}
	for i := range net.frequencies {
		net.frequencies[i] = source.Float64() * opts.FrequencyFactor
	}

	return net, nil
}

// Size returns the number of oscillators.
func (net *Network) Size() int { return len(net.phases) }

// Phases returns the current phase of every oscillator.
func (net *Network) Phases() []float64 {
	out := make([]float64, len(net.phases))
	copy(out, net.phases)
	return out
}

// SetPhases overwrites the network's current phases. Used by hsyncnet
// to carry phase state across radius-growth rounds.
func (net *Network) SetPhases(phases []float64) {
	copy(net.phases, phases)
}

// Topology returns the network's coupling topology.
func (net *Network) Topology() topology.Topology { return net.topology }

// SetTopology replaces the network's coupling topology and weight
// function in place, leaving phases and frequencies untouched. Used by
// hsyncnet to grow the connectivity radius between rounds without
// resetting the oscillators' accumulated phase state.
func (net *Network) SetTopology(top topology.Topology, weight WeightFunc) {
	net.topology = top
	net.weight = weight
}

// Stalled reports whether the most recent simulate call stopped early:
// RKF45 hit its 300-accepted-step ceiling, or SimulateDynamic ended on an
// order plateau. Advisory, non-fatal.
func (net *Network) Stalled() bool { return net.stalled }

// phaseExtra is the typed closure forwarded through the ODE core in
// place of a variadic argument vector: it names the network and the
// specific oscillator whose scalar phase is being integrated.
type phaseExtra struct {
	net   *Network
	index int
}

// phaseRHS is the right-hand side of a single oscillator's phase ODE:
// dphi_i/dt = omega_i + (W/N) * sum_j weight_ij * sin(cluster*(phi_j - phi_i)).
// Neighbor phases are read from net.phases, the pre-step snapshot — this
// function never mutates network state.
func phaseRHS(_ float64, y ode.State, extra interface{}) (ode.State, error) {
	ctx := extra.(phaseExtra)
	net := ctx.net
	i := ctx.index
	phaseI := y[0]

	neighbors := net.topology.Neighbors(i)
	var sum float64
	for _, j := range neighbors {
		w := 1.0
		if net.weight != nil {
			w = net.weight(i, j)
		}
		sum += w * math.Sin(float64(net.opts.Cluster)*(net.phases[j]-phaseI))
	}

	denom := float64(net.Size())
	if net.opts.NormalizeByDegree {
		denom = float64(len(neighbors))
		if denom == 0 {
			denom = 1
		}
	}
	deriv := net.frequencies[i] + (net.opts.Coupling/denom)*sum
	return ode.State{deriv}, nil
}

// calculatePhases advances every oscillator's phase over [t, t+step]
// using the requested solver, writing results into a fresh buffer that
// only replaces net.phases once every oscillator has been computed.
func (net *Network) calculatePhases(solver Solver, t, step, intStep float64) error {
	n := net.Size()
	next := make([]float64, n)
	numIntSteps := int(step / intStep)
	if numIntSteps < 1 {
		numIntSteps = 1
	}

	for i := 0; i < n; i++ {
		extra := phaseExtra{net: net, index: i}
		y0 := ode.State{net.phases[i]}

		var result float64
		switch solver {
		case RK4:
			traj, err := ode.IntegrateRK4(phaseRHS, y0, t, t+step, numIntSteps, false, extra)
			if err != nil {
				return err
			}
			result = traj.Last().State[0]
		case RKF45:
			traj, stalled, err := ode.IntegrateRKF45(phaseRHS, y0, t, t+step, rkf45Tolerance, false, extra)
			if err != nil {
				return err
			}
			if stalled {
				net.stalled = true
			}
			result = traj.Last().State[0]
		default:
			return ErrUnknownSolver
		}

		next[i] = normalizePhase(result)
	}

	net.phases = next
	return nil
}

// normalizePhase folds teta into [0, 2*pi) by repeated addition or
// subtraction of 2*pi.
func normalizePhase(teta float64) float64 {
	for teta >= 2*math.Pi || teta < 0 {
		if teta >= 2*math.Pi {
			teta -= 2 * math.Pi
		} else {
			teta += 2 * math.Pi
		}
	}
	return teta
}
