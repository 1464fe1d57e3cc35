package kmeans_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherclust/ccore/kmeans"
	"github.com/gopherclust/ccore/point"
)

// twoBlobDataset returns 10 points split into two tight, widely
// separated blobs of 5, loosely centered near (3.7, 5.5) and
// (6.7, 7.5) so the seeds below land close to each blob's true mean.
func twoBlobDataset() point.Dataset {
	blob := func(cx, cy float64) point.Dataset {
		out := make(point.Dataset, 5)
		for i := 0; i < 5; i++ {
			out[i] = point.Point{
				cx + 0.2*math.Sin(float64(i)),
				cy + 0.2*math.Cos(float64(i)),
			}
		}
		return out
	}
	var ds point.Dataset
	ds = append(ds, blob(3.7, 5.5)...)
	ds = append(ds, blob(6.7, 7.5)...)
	return ds
}

func TestKMeansTwoBlobsConverge(t *testing.T) {
	ds := twoBlobDataset()
	seeds := []point.Point{{3.7, 5.5}, {6.7, 7.5}}

	km, err := kmeans.New(ds, seeds, kmeans.Options{
		Metric:    point.EuclideanSquared,
		Tolerance: 1e-4,
	})
	require.NoError(t, err)

	clusters, centers := km.Process()
	require.Len(t, clusters, 2)
	require.Len(t, centers, 2)

	var sizes []int
	for _, c := range clusters {
		sizes = append(sizes, len(c))
	}
	assert.ElementsMatch(t, []int{5, 5}, sizes)
}

func TestKMeansDropsEmptyClusters(t *testing.T) {
	ds := point.Dataset{{0, 0}, {0.1, 0}, {0.2, 0}}
	// Two seeds land on the same side, so one cluster is guaranteed to
	// receive every point and the other none.
	seeds := []point.Point{{0, 0}, {100, 100}}

	km, err := kmeans.New(ds, seeds, kmeans.DefaultOptions())
	require.NoError(t, err)

	clusters, centers := km.Process()
	assert.Len(t, clusters, 1)
	assert.Len(t, centers, 1)
	assert.Len(t, clusters[0], 3)
}

func TestKMeansRejectsInvalidParameters(t *testing.T) {
	ds := point.Dataset{{0, 0}, {1, 1}}

	_, err := kmeans.New(ds, nil, kmeans.DefaultOptions())
	require.ErrorIs(t, err, kmeans.ErrInvalidParameter)

	_, err = kmeans.New(ds, []point.Point{{0, 0, 0}}, kmeans.DefaultOptions())
	require.ErrorIs(t, err, kmeans.ErrInvalidParameter)

	opts := kmeans.DefaultOptions()
	opts.Tolerance = 0
	_, err = kmeans.New(ds, []point.Point{{0, 0}}, opts)
	require.ErrorIs(t, err, kmeans.ErrInvalidParameter)
}
