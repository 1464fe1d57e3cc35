package rock_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherclust/ccore/point"
	"github.com/gopherclust/ccore/rock"
)

func twoBlobDataset() point.Dataset {
	blob := func(cx, cy float64) point.Dataset {
		out := make(point.Dataset, 5)
		for i := 0; i < 5; i++ {
			out[i] = point.Point{
				cx + 0.1*math.Sin(float64(i)),
				cy + 0.1*math.Cos(float64(i)),
			}
		}
		return out
	}
	var ds point.Dataset
	ds = append(ds, blob(0, 0)...)
	ds = append(ds, blob(20, 20)...)
	return ds
}

func TestRockTwoBalancedClusters(t *testing.T) {
	ds := twoBlobDataset()

	opts := rock.Options{Radius: 0.5, ClusterNumber: 2, Threshold: 0.5}
	r, err := rock.New(ds, opts)
	require.NoError(t, err)

	clusters := r.Process()
	require.Len(t, clusters, 2)

	var sizes []int
	for _, c := range clusters {
		sizes = append(sizes, len(c))
	}
	assert.ElementsMatch(t, []int{5, 5}, sizes)
}

func TestRockStopsWhenNoLinksRemain(t *testing.T) {
	ds := twoBlobDataset()

	opts := rock.Options{Radius: 0.5, ClusterNumber: 1, Threshold: 0.5}
	r, err := rock.New(ds, opts)
	require.NoError(t, err)

	clusters := r.Process()
	assert.Len(t, clusters, 2, "disconnected blobs should not merge even though ClusterNumber=1 was requested")
}

func TestRockRejectsInvalidParameters(t *testing.T) {
	ds := point.Dataset{{0, 0}, {1, 1}}

	_, err := rock.New(ds, rock.Options{Radius: 0, ClusterNumber: 1, Threshold: 0.5})
	require.ErrorIs(t, err, rock.ErrInvalidParameter)

	_, err = rock.New(ds, rock.Options{Radius: 1, ClusterNumber: 3, Threshold: 0.5})
	require.ErrorIs(t, err, rock.ErrInvalidParameter)

	_, err = rock.New(ds, rock.Options{Radius: 1, ClusterNumber: 1, Threshold: 0})
	require.ErrorIs(t, err, rock.ErrInvalidParameter)

	_, err = rock.New(ds, rock.Options{Radius: 1, ClusterNumber: 1, Threshold: 1.5})
	require.ErrorIs(t, err, rock.ErrInvalidParameter)
}
