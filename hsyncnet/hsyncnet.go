package hsyncnet

import (
	"sort"

	"github.com/gopherclust/ccore/kuramoto"
	"github.com/gopherclust/ccore/point"
	"github.com/gopherclust/ccore/syncnet"
	"github.com/gopherclust/ccore/topology"
)

// HSyncNet is a SyncNet whose connectivity radius grows round by round
// until the ensemble count reaches a target cluster count, rather than
// requiring a radius chosen up front.
type HSyncNet struct {
	dataset point.Dataset
	opts    Options
	network *kuramoto.Network
}

// New builds an HSyncNet over ds with an unconnected Dynamic topology;
// Process grows connections radius by radius.
func New(ds point.Dataset, opts Options) (*HSyncNet, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if opts.ClusterNumber <= 0 || opts.ClusterNumber > len(ds) {
		return nil, ErrInvalidParameter
	}
	if len(ds) <= initialNeighbors {
		return nil, ErrInvalidParameter
	}

	top := topology.NewDynamic(len(ds))
	netOpts := kuramoto.Options{
		Coupling:          1,
		FrequencyFactor:   0,
		Initialization:    opts.Initialization,
		Cluster:           1,
		Seed:              opts.Seed,
		NormalizeByDegree: true,
	}
	net, err := kuramoto.New(top, netOpts, nil)
	if err != nil {
		return nil, err
	}

	return &HSyncNet{dataset: ds, opts: opts, network: net}, nil
}

// Process repeatedly rebuilds connections at a growing radius and
// simulates to local-order convergence, extracting ensembles at
// tolerance 0.05 after each round, until the ensemble count drops to
// opts.ClusterNumber or below. Trajectories from every round are
// concatenated into a single Dynamic, each round's recorded times
// offset by the cumulative simulated time of all prior rounds so the
// result is monotonic in time.
func (h *HSyncNet) Process(orderThreshold float64, solver kuramoto.Solver, collect bool, stepInt, stallThreshold float64) ([][]int, kuramoto.Dynamic, error) {
	n := len(h.dataset)
	numNeighbors := initialNeighbors
	radius := averageNeighborDistance(h.dataset, numNeighbors)

	var accumulated kuramoto.Dynamic
	var cumulativeTime float64
	var clusters [][]int

	for {
		top := topology.NewDynamic(n)
		weight := syncnet.BuildConnections(h.dataset, top, radius, false)
		h.network.SetTopology(top, weight)

		round, err := h.network.SimulateDynamic(orderThreshold, solver, collect, 0.1, stepInt, stallThreshold)
		if err != nil {
			return nil, nil, err
		}

		for i := range round {
			round[i].Time += cumulativeTime
		}
		if len(round) > 0 {
			cumulativeTime = round[len(round)-1].Time
		}
		accumulated = append(accumulated, round...)

		clusters = kuramoto.ExtractEnsembles(h.network.Phases(), ensembleTolerance)
		if len(clusters) <= h.opts.ClusterNumber {
			break
		}

		numNeighbors++
		if numNeighbors >= n {
			radius += radius * radiusGrowthFactor
		} else {
			radius = averageNeighborDistance(h.dataset, numNeighbors)
		}
	}

	return clusters, accumulated, nil
}

// Stalled reports whether the most recent round's simulation stopped
// early (an RKF45 step cap or an order plateau).
func (h *HSyncNet) Stalled() bool { return h.network.Stalled() }

// averageNeighborDistance returns the average, across every point in
// ds, of that point's distance to its numNeighbors nearest other
// points.
func averageNeighborDistance(ds point.Dataset, numNeighbors int) float64 {
	n := len(ds)
	distances := make([][]float64, n)
	for i := range distances {
		distances[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := point.Euclidean(ds[i], ds[j])
			distances[i][j] = d
			distances[j][i] = d
		}
		sort.Float64s(distances[i])
	}

	var total float64
	for i := 0; i < n; i++ {
		for j := 0; j < numNeighbors; j++ {
			total += distances[i][j+1]
		}
	}
	return total / (float64(numNeighbors) * float64(n))
}
