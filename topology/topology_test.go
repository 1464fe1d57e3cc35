package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherclust/ccore/topology"
)

func TestNoneTopology(t *testing.T) {
	tp, err := topology.New(topology.None, 5, 0, 0)
	require.NoError(t, err)
	assert.False(t, tp.Connected(0, 1))
	assert.Empty(t, tp.Neighbors(0))
}

func TestAllToAllTopology(t *testing.T) {
	tp, err := topology.New(topology.AllToAll, 4, 0, 0)
	require.NoError(t, err)
	assert.True(t, tp.Connected(0, 1))
	assert.False(t, tp.Connected(2, 2))
	assert.Len(t, tp.Neighbors(0), 3)
}

func TestGridFourInvalidDimensions(t *testing.T) {
	_, err := topology.New(topology.GridFour, 10, 3, 3)
	require.ErrorIs(t, err, topology.ErrInvalidTopology)
}

func TestGridFourConnectivity(t *testing.T) {
	tp, err := topology.New(topology.GridFour, 9, 3, 3)
	require.NoError(t, err)
	// node 4 is the center of a 3x3 grid: connects to 1, 3, 5, 7.
	neighbors := tp.Neighbors(4)
	assert.ElementsMatch(t, []int{1, 3, 5, 7}, neighbors)
	assert.True(t, tp.Connected(4, 1))
	assert.True(t, tp.Connected(1, 4))
	assert.False(t, tp.Connected(4, 0))
}

func TestGridEightConnectivity(t *testing.T) {
	tp, err := topology.New(topology.GridEight, 9, 3, 3)
	require.NoError(t, err)
	neighbors := tp.Neighbors(4)
	assert.Len(t, neighbors, 8)
}

func TestListBidir(t *testing.T) {
	tp, err := topology.New(topology.ListBidir, 4, 0, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1}, tp.Neighbors(0))
	assert.ElementsMatch(t, []int{0, 2}, tp.Neighbors(1))
	assert.ElementsMatch(t, []int{2}, tp.Neighbors(3))
}

func TestDynamicTopologySymmetric(t *testing.T) {
	tp := topology.NewDynamic(5)
	tp.SetConnection(1, 3)
	assert.True(t, tp.Connected(1, 3))
	assert.True(t, tp.Connected(3, 1))
	assert.ElementsMatch(t, []int{3}, tp.Neighbors(1))

	tp.RemoveConnection(1, 3)
	assert.False(t, tp.Connected(1, 3))
	assert.False(t, tp.Connected(3, 1))
}

func TestDynamicTopologyLargePacked(t *testing.T) {
	n := 5000
	tp := topology.NewDynamic(n)
	tp.SetConnection(10, 4999)
	assert.True(t, tp.Connected(10, 4999))
	assert.True(t, tp.Connected(4999, 10))
	assert.ElementsMatch(t, []int{4999}, tp.Neighbors(10))
}

func TestUnknownKind(t *testing.T) {
	_, err := topology.New(topology.Kind(99), 3, 0, 0)
	require.ErrorIs(t, err, topology.ErrInvalidTopology)
}
