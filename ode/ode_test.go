package ode_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherclust/ccore/ode"
)

func linearRHS(_ float64, y ode.State, _ interface{}) (ode.State, error) {
	return y.Clone(), nil
}

func TestIntegrateRK4_LinearODE(t *testing.T) {
	traj, err := ode.IntegrateRK4(linearRHS, ode.State{1}, 0, 1, 1000, false, nil)
	require.NoError(t, err)
	require.Len(t, traj, 1)
	assert.InDelta(t, math.E, traj.Last().State[0], 1e-4)
}

func TestIntegrateRKF45_LinearODE(t *testing.T) {
	traj, stalled, err := ode.IntegrateRKF45(linearRHS, ode.State{1}, 0, 1, 1e-5, false, nil)
	require.NoError(t, err)
	assert.False(t, stalled)
	require.Len(t, traj, 1)
	assert.InDelta(t, math.E, traj.Last().State[0], 1e-5)
}

func TestIntegrateRK4_CollectsTrajectory(t *testing.T) {
	traj, err := ode.IntegrateRK4(linearRHS, ode.State{1}, 0, 1, 10, true, nil)
	require.NoError(t, err)
	assert.Len(t, traj, 11)
}

func TestIntegrateRK4_InvalidSteps(t *testing.T) {
	_, err := ode.IntegrateRK4(linearRHS, ode.State{1}, 0, 1, 0, false, nil)
	require.ErrorIs(t, err, ode.ErrInvalidParameter)
}

func TestIntegrateRKF45_InvalidTolerance(t *testing.T) {
	_, _, err := ode.IntegrateRKF45(linearRHS, ode.State{1}, 0, 1, 0, false, nil)
	require.ErrorIs(t, err, ode.ErrInvalidParameter)
}

func TestStateAlgebraDimensionMismatch(t *testing.T) {
	a := ode.State{1, 2}
	b := ode.State{1, 2, 3}
	_, err := a.Add(b)
	require.ErrorIs(t, err, ode.ErrDimensionMismatch)

	err = a.AddInPlace(b)
	require.ErrorIs(t, err, ode.ErrDimensionMismatch)
}

func TestStateArithmetic(t *testing.T) {
	a := ode.State{1, 2, 3}
	b := ode.State{1, 1, 1}

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, ode.State{2, 3, 4}, sum)

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, ode.State{0, 1, 2}, diff)

	assert.Equal(t, ode.State{2, 4, 6}, a.Scale(2))
	assert.Equal(t, ode.State{0.5, 1, 1.5}, a.Div(2))
}

func TestRHSExtraPassthrough(t *testing.T) {
	type ctx struct{ oscillator int }
	captured := -1
	f := func(_ float64, y ode.State, extra interface{}) (ode.State, error) {
		captured = extra.(ctx).oscillator
		return y.Clone(), nil
	}
	_, err := ode.IntegrateRK4(f, ode.State{1}, 0, 0.1, 1, false, ctx{oscillator: 7})
	require.NoError(t, err)
	assert.Equal(t, 7, captured)
}
