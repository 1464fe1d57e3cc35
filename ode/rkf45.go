package ode

import "math"

// rkf45Tableau holds the Fehlberg 4(5) Butcher tableau coefficients.
var (
	rkf45C = [6]float64{0, 1.0 / 4, 3.0 / 8, 12.0 / 13, 1, 1.0 / 2}

	rkf45A = [6][5]float64{
		{},
		{1.0 / 4},
		{3.0 / 32, 9.0 / 32},
		{1932.0 / 2197, -7200.0 / 2197, 7296.0 / 2197},
		{439.0 / 216, -8, 3680.0 / 513, -845.0 / 4104},
		{-8.0 / 27, 2, -3544.0 / 2565, 1859.0 / 4104, -11.0 / 40},
	}

	// Fourth-order solution weights.
	rkf45B4 = [6]float64{25.0 / 216, 0, 1408.0 / 2565, 2197.0 / 4104, -1.0 / 5, 0}
	// Fifth-order solution weights.
	rkf45B5 = [6]float64{16.0 / 135, 0, 6656.0 / 12825, 28561.0 / 56430, -9.0 / 50, 2.0 / 55}
)

const rkf45MaxAcceptedSteps = 300

// IntegrateRKF45 advances y0 from tStart to tEnd using the embedded
// Runge-Kutta-Fehlberg 4(5) pair, adapting step size from the infinity
// norm of the difference between the two embedded estimates.
//
// Initial h = (tEnd-tStart)/10, h_min = h/1000, h_max = 1000*h. A step
// is accepted when its error is below tolerance, or when h has already
// shrunk below 2*h_min (to guarantee forward progress); otherwise h is
// halved and retried. After acceptance, if the step-quality factor
// s = 0.84*(tolerance*h/error)^0.25 exceeds 1.5 and doubling would stay
// under h_max, h is doubled for the next step.
//
// An iteration ceiling of 300 accepted steps guards against runaway
// integrations: if reached before tEnd, IntegrateRKF45 returns the
// trajectory accumulated so far with stalled=true rather than an error,
// matching the advisory (non-fatal) ConvergenceStall policy.
func IntegrateRKF45(f RHS, y0 State, tStart, tEnd, tolerance float64, collect bool, extra interface{}) (trajectory Trajectory, stalled bool, err error) {
	if tolerance <= 0 {
		return nil, false, ErrInvalidParameter
	}
	if tEnd <= tStart {
		return nil, false, ErrInvalidParameter
	}

	t := tStart
	y := y0.Clone()

	h := (tEnd - tStart) / 10.0
	hMin := h / 1000.0
	hMax := h * 1000.0

	var traj Trajectory
	if collect {
		traj = append(traj, Sample{Time: t, State: y.Clone()})
	}

	accepted := 0
	for t < tEnd && accepted < rkf45MaxAcceptedSteps {
		hTry := h
		if t+hTry > tEnd {
			hTry = tEnd - t
		}

		var y4, y5 State
		for {
			y4, y5, err = rkf45Stage(f, t, y, hTry, extra)
			if err != nil {
				return nil, false, err
			}
			diff, derr := y5.Sub(y4)
			if derr != nil {
				return nil, false, derr
			}
			errNorm := diff.InfNorm()

			if errNorm < tolerance || hTry < 2*hMin {
				// Accept this step.
				t += hTry
				y = y5
				accepted++
				if collect {
					traj = append(traj, Sample{Time: t, State: y.Clone()})
				}

				h = hTry
				if errNorm > 0 {
					s := 0.84 * math.Pow(tolerance*hTry/errNorm, 0.25)
					if s > 1.5 && hTry*2 < hMax {
						h = hTry * 2
					}
				}
				break
			}

			hTry /= 2
		}

		if accepted >= rkf45MaxAcceptedSteps {
			break
		}
	}

	if t < tEnd {
		stalled = true
	}

	if !collect {
		traj = Trajectory{{Time: t, State: y}}
	}
	return traj, stalled, nil
}

// rkf45Stage evaluates the six Fehlberg stages at (t, y) with step h and
// returns the fourth-order and fifth-order solution estimates.
func rkf45Stage(f RHS, t float64, y State, h float64, extra interface{}) (y4, y5 State, err error) {
	var k [6]State
	for i := 0; i < 6; i++ {
		yi := y.Clone()
		for j := 0; j < i; j++ {
			coeff := rkf45A[i][j]
			if coeff == 0 {
				continue
			}
			for d := range yi {
				yi[d] += coeff * h * k[j][d]
			}
		}
		ki, kerr := f(t+rkf45C[i]*h, yi, extra)
		if kerr != nil {
			return nil, nil, kerr
		}
		if len(ki) != len(y) {
			return nil, nil, ErrDimensionMismatch
		}
		k[i] = ki
	}

	y4 = make(State, len(y))
	y5 = make(State, len(y))
	copy(y4, y)
	copy(y5, y)
	for i := 0; i < 6; i++ {
		for d := range y {
			y4[d] += h * rkf45B4[i] * k[i][d]
			y5[d] += h * rkf45B5[i] * k[i][d]
		}
	}
	return y4, y5, nil
}
