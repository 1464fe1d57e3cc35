package kuramoto

// SimulateStatic advances the network through steps fixed intervals of
// size time/steps, each integrated with an internal sub-step of
// step/10. When collect is true, every interval's state is returned;
// otherwise only the last recorded state is.
//
// Matching the source project exactly, each recorded State carries the
// time at the *start* of its interval, so the final recorded time is
// time - time/steps, not time itself.
func (net *Network) SimulateStatic(steps int, timeSpan float64, solver Solver, collect bool) (Dynamic, error) {
	if steps <= 0 {
		return nil, ErrInvalidParameter
	}
	net.stalled = false

	step := timeSpan / float64(steps)
	intStep := step / 10.0

	var traj Dynamic
	curTime := 0.0
	for s := 0; s < steps; s++ {
		if err := net.calculatePhases(solver, curTime, step, intStep); err != nil {
			return nil, err
		}
		traj = storeDynamic(traj, curTime, net.Phases(), collect)
		curTime += step
	}

	return traj, nil
}

// SimulateDynamic integrates step-by-step until the network's local
// order exceeds orderThreshold, or until consecutive local-order
// readings differ by less than stallThreshold (an early exit against
// near-stationary loops, surfaced via Network.Stalled).
//
// stepInt is the internal integration sub-step passed to calculatePhases
// (ignored by RKF45, which adapts its own step; used as the RK4
// sub-step count divisor otherwise).
func (net *Network) SimulateDynamic(orderThreshold float64, solver Solver, collect bool, step, stepInt, stallThreshold float64) (Dynamic, error) {
	net.stalled = false
	previousOrder := 0.0
	currentOrder := net.LocalOrder()

	var traj Dynamic
	timeCounter := 0.0
	for currentOrder < orderThreshold {
		if err := net.calculatePhases(solver, timeCounter, step, stepInt); err != nil {
			return nil, err
		}
		traj = storeDynamic(traj, timeCounter, net.Phases(), collect)
		timeCounter += step

		previousOrder = currentOrder
		currentOrder = net.LocalOrder()

		if absFloat(currentOrder-previousOrder) < stallThreshold {
			net.stalled = true
			break
		}
	}

	return traj, nil
}

func storeDynamic(traj Dynamic, t float64, phases []float64, collect bool) Dynamic {
	state := State{Time: t, Phases: phases}
	if !collect {
		return Dynamic{state}
	}
	return append(traj, state)
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
