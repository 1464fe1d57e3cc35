package cure_test

import (
	"fmt"
	"sort"

	"github.com/gopherclust/ccore/cure"
)

func ExampleCURE_Process() {
	ds := fourBlobDataset()

	c, err := cure.New(ds, cure.Options{
		ClusterNumber:        4,
		RepresentativePoints: 5,
		Compression:          0.5,
	})
	if err != nil {
		panic(err)
	}

	clusters := c.Process()

	var sizes []int
	for _, cl := range clusters {
		sizes = append(sizes, len(cl))
	}
	sort.Ints(sizes)
	fmt.Println(sizes)
	// Output: [10 10 10 30]
}
