package rock_test

import (
	"fmt"
	"sort"

	"github.com/gopherclust/ccore/rock"
)

func ExampleRock_Process() {
	ds := twoBlobDataset()

	r, err := rock.New(ds, rock.Options{Radius: 0.5, ClusterNumber: 2, Threshold: 0.5})
	if err != nil {
		panic(err)
	}

	clusters := r.Process()

	var sizes []int
	for _, c := range clusters {
		sizes = append(sizes, len(c))
	}
	sort.Ints(sizes)
	fmt.Println(sizes)
	// Output: [5 5]
}
