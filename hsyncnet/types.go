package hsyncnet

import "github.com/gopherclust/ccore/kuramoto"

// Options configures HSyncNet construction.
type Options struct {
	// ClusterNumber is the target number of clusters k; Process stops
	// growing the radius once the ensemble count drops to k or below.
	ClusterNumber int
	// Initialization selects the initial phase distribution.
	Initialization kuramoto.Initialization
	// Seed seeds the initial phase draw.
	Seed int64
}

// DefaultOptions returns Options with RandomGaussian initialization;
// ClusterNumber must still be set.
func DefaultOptions() Options {
	return Options{Initialization: kuramoto.RandomGaussian}
}

// initialNeighbors is the starting neighbor count used to compute the
// first round's connectivity radius, matching the source project's
// hard-coded value of 3.
const initialNeighbors = 3

// radiusGrowthFactor scales the radius by 10% per round once the
// neighbor count reaches the dataset size, matching the source
// project's fallback growth rule.
const radiusGrowthFactor = 0.1

// ensembleTolerance is the fixed phase tolerance used to count clusters
// each round, matching the source project's hard-coded 0.05.
const ensembleTolerance = 0.05
