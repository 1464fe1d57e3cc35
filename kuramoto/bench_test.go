package kuramoto_test

import (
	"testing"

	"github.com/gopherclust/ccore/kuramoto"
	"github.com/gopherclust/ccore/topology"
)

func BenchmarkSimulateStaticRK4(b *testing.B) {
	top, _ := topology.New(topology.AllToAll, 50, 0, 0)
	opts := kuramoto.Options{Coupling: 10, FrequencyFactor: 1, Initialization: kuramoto.RandomGaussian}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		net, _ := kuramoto.New(top, opts, nil)
		_, _ = net.SimulateStatic(10, 5, kuramoto.RK4, false)
	}
}
