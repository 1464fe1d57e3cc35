package xmeans_test

import (
	"fmt"
	"sort"

	"github.com/gopherclust/ccore/point"
	"github.com/gopherclust/ccore/xmeans"
)

func ExampleXMeans_Process() {
	ds := twoBlobDataset()
	seeds := []point.Point{{3.7, 5.5}, {6.7, 7.5}}

	opts := xmeans.DefaultOptions()
	opts.MaximumClusters = 20

	xm, err := xmeans.New(ds, seeds, opts)
	if err != nil {
		panic(err)
	}

	clusters, _ := xm.Process()

	var sizes []int
	for _, c := range clusters {
		if len(c) > 0 {
			sizes = append(sizes, len(c))
		}
	}
	sort.Ints(sizes)
	fmt.Println(sizes)
	// Output: [5 5]
}
