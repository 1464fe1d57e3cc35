package ode_test

import (
	"fmt"

	"github.com/gopherclust/ccore/ode"
)

func ExampleIntegrateRK4() {
	f := func(_ float64, y ode.State, _ interface{}) (ode.State, error) {
		return y.Clone(), nil // y' = y
	}
	traj, err := ode.IntegrateRK4(f, ode.State{1}, 0, 1, 1000, false, nil)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f\n", traj.Last().State[0])
	// Output: 2.7183
}
