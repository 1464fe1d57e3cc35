package point_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherclust/ccore/point"
)

func TestEuclidean(t *testing.T) {
	a := point.Point{0, 0}
	b := point.Point{3, 4}
	assert.InDelta(t, 5.0, point.Euclidean(a, b), 1e-12)
	assert.InDelta(t, 25.0, point.EuclideanSquared(a, b), 1e-12)
}

func TestManhattanChebyshev(t *testing.T) {
	a := point.Point{0, 0}
	b := point.Point{3, 4}
	assert.InDelta(t, 7.0, point.Manhattan(a, b), 1e-12)
	assert.InDelta(t, 4.0, point.Chebyshev(a, b), 1e-12)
}

func TestMinkowski(t *testing.T) {
	a := point.Point{0, 0}
	b := point.Point{3, 4}
	m2 := point.Minkowski(2)
	assert.InDelta(t, point.Euclidean(a, b), m2(a, b), 1e-9)
}

func TestDatasetValidate(t *testing.T) {
	ds := point.Dataset{{1, 2}, {3, 4}}
	require.NoError(t, ds.Validate())

	bad := point.Dataset{{1, 2}, {3}}
	require.ErrorIs(t, bad.Validate(), point.ErrDimensionMismatch)

	require.ErrorIs(t, point.Dataset{}.Validate(), point.ErrEmptyDataset)
}

func TestCentroid(t *testing.T) {
	ds := point.Dataset{{0, 0}, {2, 2}, {4, 4}}
	c := ds.Centroid(ds.Indices())
	assert.InDelta(t, 2.0, c[0], 1e-12)
	assert.InDelta(t, 2.0, c[1], 1e-12)
}

func TestNearestIndex(t *testing.T) {
	ds := point.Dataset{{0, 0}, {10, 10}, {1, 1}}
	idx, dist := point.NearestIndex(ds, point.Point{0, 0}, ds.Indices(), point.Euclidean)
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 0.0, dist, 1e-12)

	idx, _ = point.NearestIndex(ds, point.Point{9, 9}, []int{0, 1}, point.Euclidean)
	assert.Equal(t, 1, idx)
}
