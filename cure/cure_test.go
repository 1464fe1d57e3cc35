package cure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherclust/ccore/cure"
	"github.com/gopherclust/ccore/point"
)

// blob returns n points clustered tightly around center: small enough
// jitter that every point stays far closer to its own center than to
// any other blob's center placed >= 20 units away.
func blob(center point.Point, n int) point.Dataset {
	out := make(point.Dataset, n)
	for i := 0; i < n; i++ {
		out[i] = point.Point{
			center[0] + math.Sin(float64(i)),
			center[1] + math.Cos(float64(i)),
		}
	}
	return out
}

func fourBlobDataset() point.Dataset {
	var ds point.Dataset
	ds = append(ds, blob(point.Point{0, 0}, 10)...)
	ds = append(ds, blob(point.Point{100, 0}, 10)...)
	ds = append(ds, blob(point.Point{0, 100}, 10)...)
	ds = append(ds, blob(point.Point{100, 100}, 30)...)
	return ds
}

func TestCUREFourWellSeparatedBlobs(t *testing.T) {
	ds := fourBlobDataset()
	c, err := cure.New(ds, cure.Options{
		ClusterNumber:        4,
		RepresentativePoints: 5,
		Compression:          0.5,
	})
	require.NoError(t, err)

	clusters := c.Process()
	require.Len(t, clusters, 4)

	var sizes []int
	for _, cl := range clusters {
		sizes = append(sizes, len(cl))
	}
	assert.ElementsMatch(t, []int{10, 10, 10, 30}, sizes)

	seen := make(map[int]bool)
	for _, cl := range clusters {
		for _, idx := range cl {
			assert.False(t, seen[idx], "point %d assigned to more than one cluster", idx)
			seen[idx] = true
		}
	}
	assert.Len(t, seen, len(ds))
}

func TestCURECollapsesToOneCluster(t *testing.T) {
	ds := fourBlobDataset()
	opts := cure.DefaultOptions()
	opts.ClusterNumber = 1
	c, err := cure.New(ds, opts)
	require.NoError(t, err)

	clusters := c.Process()
	require.Len(t, clusters, 1)
	assert.Len(t, clusters[0], len(ds))
}

func TestCURERejectsInvalidParameters(t *testing.T) {
	ds := fourBlobDataset()

	_, err := cure.New(ds, cure.Options{ClusterNumber: 0, RepresentativePoints: 5, Compression: 0.5})
	require.ErrorIs(t, err, cure.ErrInvalidParameter)

	_, err = cure.New(ds, cure.Options{ClusterNumber: len(ds) + 1, RepresentativePoints: 5, Compression: 0.5})
	require.ErrorIs(t, err, cure.ErrInvalidParameter)

	_, err = cure.New(ds, cure.Options{ClusterNumber: 4, RepresentativePoints: 0, Compression: 0.5})
	require.ErrorIs(t, err, cure.ErrInvalidParameter)

	_, err = cure.New(ds, cure.Options{ClusterNumber: 4, RepresentativePoints: 5, Compression: 1.5})
	require.ErrorIs(t, err, cure.ErrInvalidParameter)
}
