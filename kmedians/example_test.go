package kmedians_test

import (
	"fmt"
	"sort"

	"github.com/gopherclust/ccore/kmedians"
	"github.com/gopherclust/ccore/point"
)

func ExampleKMedians_Process() {
	ds := twoBlobDataset()
	seeds := []point.Point{{0, 0}, {10, 10}}

	km, err := kmedians.New(ds, seeds, kmedians.DefaultOptions())
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
	// Output: [6 6]
}
