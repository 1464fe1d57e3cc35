package syncnet

import (
	"math"

	"github.com/gopherclust/ccore/kuramoto"
	"github.com/gopherclust/ccore/point"
	"github.com/gopherclust/ccore/topology"
)

// SyncNet pairs each input point with one Kuramoto oscillator, coupled
// within a connectivity radius, and uses phase synchronization to
// recover spatial clusters.
type SyncNet struct {
	dataset point.Dataset
	network *kuramoto.Network
}

// New builds a SyncNet over ds: every pair of points within
// opts.ConnectivityRadius is linked on a Dynamic topology, and one
// oscillator per point is constructed with Coupling=1, FrequencyFactor=0
// (matching the source project exactly: SyncNet carries no natural
// frequency spread of its own), normalizing each oscillator's coupling
// sum by its own neighbor count rather than network size.
func New(ds point.Dataset, opts Options) (*SyncNet, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if opts.ConnectivityRadius < 0 {
		return nil, ErrInvalidParameter
	}

	top := topology.NewDynamic(len(ds))
	weight := BuildConnections(ds, top, opts.ConnectivityRadius, opts.EnableConnWeight)

	netOpts := kuramoto.Options{
		Coupling:          1,
		FrequencyFactor:   0,
		Initialization:    opts.Initialization,
		Cluster:           1,
		Seed:              opts.Seed,
		NormalizeByDegree: true,
	}
	net, err := kuramoto.New(top, netOpts, weight)
	if err != nil {
		return nil, err
	}

	return &SyncNet{dataset: ds, network: net}, nil
}

// BuildConnections links every pair of points in ds within radius on
// top and, when enableWeight is set, returns a WeightFunc reproducing
// the source project's normalization policy exactly: the comparison
// preserved below lowers its maximum-distance accumulator to any
// smaller distance, so it ends as the last pair's distance, and its
// minimum-distance accumulator never leaves its math.MaxFloat64
// sentinel, so the "minimum" subtracted is always that sentinel rather
// than a true observed minimum. (d - sentinel)/(last - sentinel) then
// rounds to 1 for every edge. This is preserved deliberately — see spec Open Questions
// and DESIGN.md — rather than "fixed", since downstream behavior is
// calibrated against it. Exported so hsyncnet can rebuild connections
// at a new radius each round without duplicating this logic.
func BuildConnections(ds point.Dataset, top topology.Mutable, radius float64, enableWeight bool) kuramoto.WeightFunc {
	n := len(ds)
	radiusSq := radius * radius

	var weights [][]float64
	if enableWeight {
		weights = make([][]float64, n)
		for i := range weights {
			weights[i] = make([]float64, n)
		}
	}

	maxDistance := 0.0
	minDistance := math.MaxFloat64

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := point.EuclideanSquared(ds[i], ds[j])
			if d <= radiusSq {
				top.SetConnection(i, j)
			}
			if enableWeight {
				weights[i][j] = d
				weights[j][i] = d
				if d > maxDistance {
					maxDistance = d
				}
				// Preserved quirk: this should compare against
				// minDistance to discover a true minimum, but the
				// source project compares against maxDistance instead,
				// so minDistance is never updated from its sentinel.
				if d < maxDistance {
					maxDistance = d
				}
			}
		}
	}

	if !enableWeight {
		return nil
	}

	multiplier := 1.0
	subtractor := 0.0
	if maxDistance != minDistance {
		multiplier = maxDistance - minDistance
		subtractor = minDistance
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := (weights[i][j] - subtractor) / multiplier
			weights[i][j] = w
			weights[j][i] = w
		}
	}

	return func(i, j int) float64 {
		return weights[i][j]
	}
}

// Process synchronizes the network via kuramoto.Network.SimulateDynamic
// until local order exceeds orderThreshold, then extracts clusters as
// phase ensembles at tolerance tau. step=0.1 matches the source
// project's fixed SyncNet step; stepInt and stallThreshold are exposed
// so callers can tune convergence behavior for larger datasets.
func (s *SyncNet) Process(orderThreshold float64, solver kuramoto.Solver, collect bool, tau, stepInt, stallThreshold float64) ([][]int, kuramoto.Dynamic, error) {
	dynamic, err := s.network.SimulateDynamic(orderThreshold, solver, collect, 0.1, stepInt, stallThreshold)
	if err != nil {
		return nil, nil, err
	}
	clusters := kuramoto.ExtractEnsembles(s.network.Phases(), tau)
	return clusters, dynamic, nil
}

// Stalled reports whether the most recent Process call stopped early (an
// RKF45 step cap or an order plateau) rather than reaching orderThreshold.
func (s *SyncNet) Stalled() bool { return s.network.Stalled() }

// Network exposes the underlying Kuramoto network, e.g. for callers
// wanting GlobalOrder/LocalOrder directly.
func (s *SyncNet) Network() *kuramoto.Network { return s.network }
