package kdtree_test

import (
	"fmt"

	"github.com/gopherclust/ccore/kdtree"
	"github.com/gopherclust/ccore/point"
)

func ExampleTree_FindNearestWithin() {
	tr := kdtree.New(2)
	points := []point.Point{{0, 0}, {1, 0}, {5, 5}}
	for i, p := range points {
		_, _ = tr.Insert(p, i)
	}

	results := tr.FindNearestWithin(point.Point{0, 0}, 1.5)
	fmt.Println(len(results))
	// Output: 2
}
