package syncnet

import "github.com/gopherclust/ccore/kuramoto"

// Options configures SyncNet construction.
type Options struct {
	// ConnectivityRadius: oscillators i, j are coupled iff the
	// Euclidean distance between their points is <= this radius.
	ConnectivityRadius float64
	// EnableConnWeight passes BuildConnections' distance-normalized edge
	// weights into the coupling sum. Under the normalization it
	// preserves, every weight rounds to 1, so coupling stays uniform.
	EnableConnWeight bool
	// Initialization selects the initial phase distribution.
	Initialization kuramoto.Initialization
	// Seed seeds the random phase/frequency draw.
	Seed int64
}

// DefaultOptions returns Options with RandomGaussian initialization and
// connection weighting disabled; ConnectivityRadius must still be set.
func DefaultOptions() Options {
	return Options{Initialization: kuramoto.RandomGaussian}
}
