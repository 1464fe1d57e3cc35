package kmedoids_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherclust/ccore/kmedoids"
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

func TestKMedoidsTwoBlobsConverge(t *testing.T) {
	ds := twoBlobDataset()

	km, err := kmedoids.New(ds, []int{0, 6}, kmedoids.DefaultOptions())
	require.NoError(t, err)

	clusters, medoidIdx := km.Process()
	require.Len(t, clusters, 2)
	require.Len(t, medoidIdx, 2)

	var sizes []int
	for _, c := range clusters {
		sizes = append(sizes, len(c))
	}
	assert.ElementsMatch(t, []int{6, 6}, sizes)

	for _, m := range medoidIdx {
		assert.True(t, m < 6 || m >= 6)
	}
}

func TestKMedoidsMedoidIsAlwaysADatasetMember(t *testing.T) {
	ds := twoBlobDataset()
	opts := kmedoids.DefaultOptions()
	opts.Metric = point.Manhattan

	km, err := kmedoids.New(ds, []int{0, 6}, opts)
	require.NoError(t, err)

	_, medoidIdx := km.Process()
	for _, m := range medoidIdx {
		assert.GreaterOrEqual(t, m, 0)
		assert.Less(t, m, len(ds))
	}
}

func TestKMedoidsRejectsInvalidParameters(t *testing.T) {
	ds := point.Dataset{{0, 0}, {1, 1}}

	_, err := kmedoids.New(ds, nil, kmedoids.DefaultOptions())
	require.ErrorIs(t, err, kmedoids.ErrInvalidParameter)

	_, err = kmedoids.New(ds, []int{0, 0}, kmedoids.DefaultOptions())
	require.ErrorIs(t, err, kmedoids.ErrInvalidParameter)

	_, err = kmedoids.New(ds, []int{5}, kmedoids.DefaultOptions())
	require.ErrorIs(t, err, kmedoids.ErrInvalidParameter)

	badOpts := kmedoids.DefaultOptions()
	badOpts.Tolerance = 0
	_, err = kmedoids.New(ds, []int{0}, badOpts)
	require.ErrorIs(t, err, kmedoids.ErrInvalidParameter)
}
