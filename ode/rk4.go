package ode

// IntegrateRK4 advances y0 from tStart to tEnd using the classical
// four-stage Runge-Kutta formula with a fixed step h = (tEnd-tStart)/steps.
// When collect is false, only the terminal (t, y) is returned, as a
// Trajectory of length 1; otherwise every step is recorded.
func IntegrateRK4(f RHS, y0 State, tStart, tEnd float64, steps int, collect bool, extra interface{}) (Trajectory, error) {
	if steps <= 0 {
		return nil, ErrInvalidParameter
	}

	h := (tEnd - tStart) / float64(steps)
	t := tStart
	y := y0.Clone()

	var traj Trajectory
	if collect {
		traj = make(Trajectory, 0, steps+1)
		traj = append(traj, Sample{Time: t, State: y.Clone()})
	}

	for i := 0; i < steps; i++ {
		next, err := rk4Step(f, t, y, h, extra)
		if err != nil {
			return nil, err
		}
		t += h
		y = next
		if collect {
			traj = append(traj, Sample{Time: t, State: y.Clone()})
		}
	}

	if !collect {
		traj = Trajectory{{Time: t, State: y}}
	}
	return traj, nil
}

// rk4Step computes a single RK4 step: y_{n+1} = y_n + h/6*(k1+2k2+2k3+k4).
func rk4Step(f RHS, t float64, y State, h float64, extra interface{}) (State, error) {
	k1, err := f(t, y, extra)
	if err != nil {
		return nil, err
	}
	if len(k1) != len(y) {
		return nil, ErrDimensionMismatch
	}

	y2 := addScaled(y, k1, h/2)
	k2, err := f(t+h/2, y2, extra)
	if err != nil {
		return nil, err
	}

	y3 := addScaled(y, k2, h/2)
	k3, err := f(t+h/2, y3, extra)
	if err != nil {
		return nil, err
	}

	y4 := addScaled(y, k3, h)
	k4, err := f(t+h, y4, extra)
	if err != nil {
		return nil, err
	}

	out := make(State, len(y))
	for i := range y {
		out[i] = y[i] + (h/6.0)*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return out, nil
}

// addScaled returns y + k*scale, element-wise.
func addScaled(y, k State, scale float64) State {
	out := make(State, len(y))
	for i := range y {
		out[i] = y[i] + k[i]*scale
	}
	return out
}
