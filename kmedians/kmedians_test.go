package kmedians_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherclust/ccore/kmedians"
	"github.com/gopherclust/ccore/point"
)

func twoBlobDataset() point.Dataset {
	blob := func(cx, cy float64) point.Dataset {
		out := make(point.Dataset, 6)
		for i := 0; i < 6; i++ {
			out[i] = point.Point{
				cx + 0.2*math.Sin(float64(i)),
				cy + 0.2*math.Cos(float64(i)),
			}
		}
		return out
	}
	var ds point.Dataset
	ds = append(ds, blob(0, 0)...)
	ds = append(ds, blob(10, 10)...)
	return ds
}

func TestKMediansTwoBlobsConverge(t *testing.T) {
	ds := twoBlobDataset()
	seeds := []point.Point{{0, 0}, {10, 10}}

	km, err := kmedians.New(ds, seeds, kmedians.DefaultOptions())
	require.NoError(t, err)

	clusters, medians := km.Process()
	require.Len(t, clusters, 2)
	require.Len(t, medians, 2)

	var sizes []int
	for _, c := range clusters {
		sizes = append(sizes, len(c))
	}
	assert.ElementsMatch(t, []int{6, 6}, sizes)
}

func TestKMediansOddClusterUsesMiddleValue(t *testing.T) {
	ds := point.Dataset{{1, 0}, {2, 0}, {3, 0}, {100, 100}}
	seeds := []point.Point{{2, 0}, {100, 100}}

	km, err := kmedians.New(ds, seeds, kmedians.DefaultOptions())
	require.NoError(t, err)

	clusters, medians := km.Process()
	require.Len(t, clusters, 2)

	for i, c := range clusters {
		if len(c) == 3 {
			assert.InDelta(t, 2, medians[i][0], 1e-9)
			assert.InDelta(t, 0, medians[i][1], 1e-9)
		}
	}
}

func TestKMediansRejectsInvalidParameters(t *testing.T) {
	ds := point.Dataset{{0, 0}, {1, 1}}

	_, err := kmedians.New(ds, nil, kmedians.DefaultOptions())
	require.ErrorIs(t, err, kmedians.ErrInvalidParameter)

	_, err = kmedians.New(ds, []point.Point{{0, 0, 0}}, kmedians.DefaultOptions())
	require.ErrorIs(t, err, kmedians.ErrInvalidParameter)
}
