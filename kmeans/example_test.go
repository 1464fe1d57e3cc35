package kmeans_test

import (
	"fmt"
	"sort"

	"github.com/gopherclust/ccore/kmeans"
	"github.com/gopherclust/ccore/point"
)

func ExampleKMeans_Process() {
	ds := twoBlobDataset()
	seeds := []point.Point{{3.7, 5.5}, {6.7, 7.5}}

	km, err := kmeans.New(ds, seeds, kmeans.Options{
		Metric:    point.EuclideanSquared,
		Tolerance: 1e-4,
	})
	if err != nil {
		panic(err)
	}

	clusters, _ := km.Process()

	var sizes []int
	for _, c := range clusters {
		sizes = append(sizes, len(c))
	}
	sort.Ints(sizes)
	fmt.Println(sizes)
	// Output: [5 5]
}
