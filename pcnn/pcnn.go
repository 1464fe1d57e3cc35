package pcnn

import (
	"github.com/gopherclust/ccore/ode"
	"github.com/gopherclust/ccore/topology"
)

// Network holds a PCNN population over a fixed topology. The zero
// value is not usable; construct with New.
type Network struct {
	stimulus    []float64
	top         topology.Topology
	params      Parameters
	oscillators []Oscillator
}

// New builds a Network of top.Size() oscillators, one stimulus value
// per node.
func New(stimulus []float64, top topology.Topology, params Parameters) (*Network, error) {
	n := top.Size()
	if len(stimulus) != n || n == 0 {
		return nil, ErrInvalidParameter
	}

	oscillators := make([]Oscillator, n)
	return &Network{stimulus: stimulus, top: top, params: params, oscillators: oscillators}, nil
}

// Size returns the number of oscillators.
func (net *Network) Size() int { return net.top.Size() }

// Outputs returns the most recent spike value of every oscillator.
func (net *Network) Outputs() []float64 {
	out := make([]float64, len(net.oscillators))
	for i, o := range net.oscillators {
		out[i] = o.Output
	}
	return out
}

// fieldExtra is the typed closure forwarded through the ODE core:
// it names the network, the target oscillator, and the snapshot of
// every oscillator's previous spike (the pre-step values feeding and
// linking sum over).
type fieldExtra struct {
	net        *Network
	index      int
	prevOutput []float64
}

// fieldRHS integrates an oscillator's (feeding, linking, threshold)
// triplet:
//
//	dF/dt = -AF*F + VF*(stimulus_i + W*sum_j Y_j)
//	dL/dt = -AL*L + VL*M*sum_j Y_j
//	dT/dt = -AT*T + VT*Y_i
//
// where the Y values are read from the pre-step snapshot, never from
// mid-integration state.
func fieldRHS(_ float64, y ode.State, extra interface{}) (ode.State, error) {
	ctx := extra.(fieldExtra)
	net := ctx.net
	i := ctx.index
	p := net.params

	var neighborSum float64
	for _, j := range net.top.Neighbors(i) {
		neighborSum += ctx.prevOutput[j]
	}

	feeding, linking, threshold := y[0], y[1], y[2]

	dF := -p.AF*feeding + p.VF*(net.stimulus[i]+p.W*neighborSum)
	dL := -p.AL*linking + p.VL*p.M*neighborSum
	dT := -p.AT*threshold + p.VT*ctx.prevOutput[i]

	return ode.State{dF, dL, dT}, nil
}

// Step advances every oscillator by one interval of length step,
// integrated internally in numSubSteps sub-steps of fixed-step RK4,
// and returns the resulting spike vector. When params.FastLinking is
// set, linking and output are additionally relaxed to a local fixed
// point (capped at maxFastLinkingIterations) before the threshold
// update is folded in.
func (net *Network) Step(step float64, numSubSteps int) ([]float64, error) {
	if numSubSteps < 1 {
		numSubSteps = 1
	}

	prevOutput := net.Outputs()
	next := make([]Oscillator, len(net.oscillators))

	for i, osc := range net.oscillators {
		extra := fieldExtra{net: net, index: i, prevOutput: prevOutput}
		y0 := ode.State{osc.Feeding, osc.Linking, osc.Threshold}

		traj, err := ode.IntegrateRK4(fieldRHS, y0, 0, step, numSubSteps, false, extra)
		if err != nil {
			return nil, err
		}
		result := traj.Last().State

		feeding, linking, threshold := result[0], result[1], result[2]

		output := net.fire(feeding, linking, threshold)

		if net.params.FastLinking {
			linking, output = net.relaxFastLinking(i, feeding, linking, threshold, prevOutput)
		}

		next[i] = Oscillator{Feeding: feeding, Linking: linking, Threshold: threshold, Output: output}
	}

	net.oscillators = next
	return net.Outputs(), nil
}

// fire reports the spike value implied by an oscillator's internal
// activity U = F*(1+B*L) against its threshold.
func (net *Network) fire(feeding, linking, threshold float64) float64 {
	u := feeding * (1 + net.params.B*linking)
	if u > threshold {
		return net.params.OutputTrue
	}
	return net.params.OutputFalse
}

// relaxFastLinking iterates the linking field using neighbors' most
// recently settled output, recomputing the fired output each round,
// until the output stops changing or the iteration cap is hit.
func (net *Network) relaxFastLinking(i int, feeding, linking, threshold float64, neighborOutput []float64) (float64, float64) {
	p := net.params
	output := net.fire(feeding, linking, threshold)
	local := append([]float64{}, neighborOutput...)
	local[i] = output

	for iter := 0; iter < maxFastLinkingIterations; iter++ {
		var neighborSum float64
		for _, j := range net.top.Neighbors(i) {
			neighborSum += local[j]
		}
		newLinking := linking + p.VL*p.M*neighborSum
		newOutput := net.fire(feeding, newLinking, threshold)

		if newOutput == output {
			linking = newLinking
			break
		}
		linking = newLinking
		output = newOutput
		local[i] = output
	}

	return linking, output
}

// SimulateStatic advances the network through steps fixed intervals
// of length timeSpan/steps, each integrated with numSubSteps internal
// RK4 sub-steps, and returns the resulting spike-train dynamic.
func (net *Network) SimulateStatic(steps int, timeSpan float64, numSubSteps int, collect bool) (Dynamic, error) {
	if steps <= 0 {
		return nil, ErrInvalidParameter
	}

	step := timeSpan / float64(steps)
	var traj Dynamic

	for s := 0; s < steps; s++ {
		output, err := net.Step(step, numSubSteps)
		if err != nil {
			return nil, err
		}
		traj = storeDynamic(traj, s, output, collect)
	}

	return traj, nil
}

// AllocateSyncEnsembles groups oscillator indices by their complete
// spike pattern across dyn: two oscillators land in the same ensemble
// exactly when they fired on precisely the same subset of recorded
// steps.
func (net *Network) AllocateSyncEnsembles(dyn Dynamic) [][]int {
	if len(dyn) == 0 {
		return nil
	}
	n := len(dyn[0].Output)

	patterns := make(map[string][]int)
	var order []string
	for i := 0; i < n; i++ {
		key := make([]byte, len(dyn))
		for s, state := range dyn {
			if state.Output[i] == net.params.OutputTrue {
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

// AllocateSpikeEnsembles returns, for every recorded step, the
// indices of the oscillators that fired at that step.
func (net *Network) AllocateSpikeEnsembles(dyn Dynamic) [][]int {
	ensembles := make([][]int, len(dyn))
	for s, state := range dyn {
		var spiking []int
		for i, v := range state.Output {
			if v == net.params.OutputTrue {
				spiking = append(spiking, i)
			}
		}
		ensembles[s] = spiking
	}
	return ensembles
}

func storeDynamic(traj Dynamic, step int, output []float64, collect bool) Dynamic {
	out := append([]float64{}, output...)
	state := State{Step: step, Output: out}
	if !collect {
		return Dynamic{state}
	}
	return append(traj, state)
}
