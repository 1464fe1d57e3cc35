package legion

import (
	"math"
	"math/rand"

	"github.com/gopherclust/ccore/internal/rng"
	"github.com/gopherclust/ccore/ode"
	"github.com/gopherclust/ccore/topology"
)

// Network holds a LEGION population over a fixed topology, plus the
// one global inhibitor shared by every oscillator. The zero value is
// not usable; construct with New.
type Network struct {
	stimulus    []float64
	top         topology.Topology
	params      Parameters
	oscillators []Oscillator
	global      float64
	rng         *rand.Rand
}

// New builds a Network of top.Size() oscillators, one stimulus value
// per node, with noise drawn from a Rand seeded by seed.
func New(stimulus []float64, top topology.Topology, params Parameters, seed int64) (*Network, error) {
	n := top.Size()
	if len(stimulus) != n || n == 0 {
		return nil, ErrInvalidParameter
	}

	oscillators := make([]Oscillator, n)
	for i := range oscillators {
		oscillators[i].Stimulus = stimulus[i]
	}

	return &Network{
		stimulus:    stimulus,
		top:         top,
		params:      params,
		oscillators: oscillators,
		rng:         rng.New(seed),
	}, nil
}

// Size returns the number of oscillators.
func (net *Network) Size() int { return net.top.Size() }

// Excitatory returns the current excitatory value of every
// oscillator.
func (net *Network) Excitatory() []float64 {
	out := make([]float64, len(net.oscillators))
	for i, o := range net.oscillators {
		out[i] = o.Excitatory
	}
	return out
}

// sigmoid is the logistic activation used throughout the Terman-Wang
// coupling and global-inhibitor terms, scaled by lamda.
func sigmoid(v, lamda float64) float64 {
	return 1.0 / (1.0 + math.Exp(-lamda*v))
}

// oscillatorExtra is the typed closure forwarded through the ODE
// core for a single oscillator's (excitatory, inhibitory, potential)
// ODE. buffered holds that oscillator's coupling term and noise
// sample, frozen for the whole macro-step — mirroring the source
// project's own coupling_term/buffer_coupling_term split, which
// holds neighbor influence fixed across a step's internal sub-steps
// rather than recomputing it, and for the same reason the kuramoto
// package holds neighbor phases fixed via its own pre-step snapshot.
type oscillatorExtra struct {
	net      *Network
	index    int
	buffered float64
}

// oscillatorRHS integrates one oscillator's relaxation dynamics:
//
//	dx/dt = 3x - x^3 + 2 - y + I + S
//	dy/dt = eps*(gamma*(1+tanh(x/betta)) - y)
//	dp/dt = (sigmoid(x - tetaP) - p) / T
//
// where S is the frozen, pre-computed local+global coupling term.
func oscillatorRHS(_ float64, y ode.State, extra interface{}) (ode.State, error) {
	ctx := extra.(oscillatorExtra)
	net := ctx.net
	p := net.params

	x, inhibitory, potential := y[0], y[1], y[2]

	dx := 3*x - x*x*x + 2 - inhibitory + net.stimulus[ctx.index] + ctx.buffered
	dy := p.Eps * (p.Gamma*(1+math.Tanh(x/p.Betta)) - inhibitory)
	dp := (sigmoid(x-p.TetaP, p.Lamda) - potential) / p.T

	return ode.State{dx, dy, dp}, nil
}

// couplingTerm computes oscillator i's local-excitatory coupling
// (summed over topology neighbors) minus the global inhibitor's own
// activation, both read from the pre-step snapshot.
func (net *Network) couplingTerm(i int, prevExcitatory []float64, prevGlobal float64) float64 {
	p := net.params
	var coupling float64
	for _, j := range net.top.Neighbors(i) {
		coupling += p.Wt * sigmoid(prevExcitatory[j]-p.TetaX, p.Lamda)
	}
	coupling -= p.Wz * sigmoid(prevGlobal-p.TetaXZ, p.Lamda)
	return coupling
}

// globalExtra is the typed closure for the global inhibitor's scalar
// ODE.
type globalExtra struct {
	net            *Network
	prevExcitatory []float64
}

// globalRHS integrates the shared global inhibitor:
//
//	dz/dt = mu*(fi/N * sum_i sigmoid(x_i - tetaZX) - z)
func globalRHS(_ float64, y ode.State, extra interface{}) (ode.State, error) {
	ctx := extra.(globalExtra)
	p := ctx.net.params
	n := float64(len(ctx.prevExcitatory))

	var activation float64
	for _, x := range ctx.prevExcitatory {
		activation += sigmoid(x-p.TetaZX, p.Lamda)
	}
	activation /= n

	dz := p.Mu * (p.Fi*activation - y[0])
	return ode.State{dz}, nil
}

// Step advances every oscillator and the global inhibitor by one
// interval of length step, integrated internally in numSubSteps
// sub-steps of fixed-step RK4, and returns the resulting excitatory
// vector.
func (net *Network) Step(step float64, numSubSteps int) ([]float64, error) {
	if numSubSteps < 1 {
		numSubSteps = 1
	}

	prevExcitatory := net.Excitatory()
	prevGlobal := net.global

	next := make([]Oscillator, len(net.oscillators))
	for i, osc := range net.oscillators {
		coupling := net.couplingTerm(i, prevExcitatory, prevGlobal)
		noise := net.params.Ro * net.rng.NormFloat64()

		extra := oscillatorExtra{net: net, index: i, buffered: coupling + noise}
		y0 := ode.State{osc.Excitatory, osc.Inhibitory, osc.Potential}

		traj, err := ode.IntegrateRK4(oscillatorRHS, y0, 0, step, numSubSteps, false, extra)
		if err != nil {
			return nil, err
		}
		result := traj.Last().State

		next[i] = Oscillator{
			Excitatory:         result[0],
			Inhibitory:         result[1],
			Potential:          result[2],
			Stimulus:           osc.Stimulus,
			Coupling:           coupling,
			BufferCouplingTerm: coupling + noise,
			Noise:              noise,
		}
	}

	gExtra := globalExtra{net: net, prevExcitatory: prevExcitatory}
	gTraj, err := ode.IntegrateRK4(globalRHS, ode.State{net.global}, 0, step, numSubSteps, false, gExtra)
	if err != nil {
		return nil, err
	}

	net.oscillators = next
	net.global = gTraj.Last().State[0]

	return net.Excitatory(), nil
}

// SimulateStatic advances the network through steps fixed intervals
// of length timeSpan/steps, each integrated with numSubSteps internal
// RK4 sub-steps, and returns the resulting dynamic.
func (net *Network) SimulateStatic(steps int, timeSpan float64, numSubSteps int, collect bool) (Dynamic, error) {
	if steps <= 0 {
		return nil, ErrInvalidParameter
	}

	step := timeSpan / float64(steps)
	var traj Dynamic
	curTime := 0.0

	for s := 0; s < steps; s++ {
		excitatory, err := net.Step(step, numSubSteps)
		if err != nil {
			return nil, err
		}
		traj = storeDynamic(traj, curTime, excitatory, net.global, collect)
		curTime += step
	}

	return traj, nil
}

// AllocateSyncEnsembles groups oscillator indices by their binarized
// activity pattern across dyn: an oscillator is considered active at
// a step when its excitatory value exceeds params.Teta, and two
// oscillators land in the same ensemble exactly when they were active
// on precisely the same subset of recorded steps.
func (net *Network) AllocateSyncEnsembles(dyn Dynamic) [][]int {
	if len(dyn) == 0 {
		return nil
	}
	n := len(dyn[0].Excitatory)
	teta := net.params.Teta

	patterns := make(map[string][]int)
	var order []string
	for i := 0; i < n; i++ {
		key := make([]byte, len(dyn))
		for s, state := range dyn {
			if state.Excitatory[i] > teta {
				key[s] = '1'
			} else {
				key[s] = '0'
			}
		}
		k := string(key)
		if _, ok := patterns[k]; !ok {
			order = append(order, k)
		}
		patterns[k] = append(patterns[k], i)
	}

	ensembles := make([][]int, 0, len(order))
	for _, k := range order {
		ensembles = append(ensembles, patterns[k])
	}
	return ensembles
}

func storeDynamic(traj Dynamic, t float64, excitatory []float64, global float64, collect bool) Dynamic {
	out := append([]float64{}, excitatory...)
	state := State{Time: t, Excitatory: out, Global: global}
	if !collect {
		return Dynamic{state}
	}
	return append(traj, state)
}
