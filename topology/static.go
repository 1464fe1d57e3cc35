package topology

// noneTopology connects nothing.
type noneTopology struct{ n int }

func (t *noneTopology) Size() int              { return t.n }
func (t *noneTopology) Neighbors(int) []int     { return nil }
func (t *noneTopology) Connected(int, int) bool { return false }

// allToAllTopology connects every distinct pair implicitly: no storage.
type allToAllTopology struct{ n int }

func (t *allToAllTopology) Size() int { return t.n }

func (t *allToAllTopology) Neighbors(i int) []int {
	out := make([]int, 0, t.n-1)
	for j := 0; j < t.n; j++ {
		if j != i {
			out = append(out, j)
		}
	}
	return out
}

func (t *allToAllTopology) Connected(i, j int) bool {
	return i != j
}

// adjacencyTopology stores an explicit per-node neighbor list, used for
// grid and linear-chain topologies whose structure is fixed at
// construction time.
type adjacencyTopology struct {
	n   int
	adj [][]int
}

func (t *adjacencyTopology) Size() int { return t.n }

func (t *adjacencyTopology) Neighbors(i int) []int {
	return t.adj[i]
}

func (t *adjacencyTopology) Connected(i, j int) bool {
	for _, k := range t.adj[i] {
		if k == j {
			return true
		}
	}
	return false
}

func (t *adjacencyTopology) link(i, j int) {
	t.adj[i] = append(t.adj[i], j)
	t.adj[j] = append(t.adj[j], i)
}

// newListBidir links each i to i-1 and i+1 when in-bounds.
func newListBidir(n int) *adjacencyTopology {
	t := &adjacencyTopology{n: n, adj: make([][]int, n)}
	for i := 0; i < n; i++ {
		if i > 0 {
			t.adj[i] = append(t.adj[i], i-1)
		}
		if i+1 < n {
			t.adj[i] = append(t.adj[i], i+1)
		}
	}
	return t
}

// newGrid builds a 4- or 8-connected grid topology over height*width
// nodes, row-major indexed: node index = r*width + c.
func newGrid(height, width int, eight bool) *adjacencyTopology {
	n := height * width
	t := &adjacencyTopology{n: n, adj: make([][]int, n)}

	idx := func(r, c int) int { return r*width + c }
	inBounds := func(r, c int) bool { return r >= 0 && r < height && c >= 0 && c < width }

	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			i := idx(r, c)
			offsets := [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
			if eight {
				offsets = append(offsets, [2]int{-1, -1}, [2]int{-1, 1}, [2]int{1, -1}, [2]int{1, 1})
			}
			for _, off := range offsets {
				nr, nc := r+off[0], c+off[1]
				if inBounds(nr, nc) {
					t.adj[i] = append(t.adj[i], idx(nr, nc))
				}
			}
		}
	}
	return t
}
