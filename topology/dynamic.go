package topology

// dynamicTopology implements Mutable. For n <= dynamicBitmapThreshold it
// stores a dense []bool row per node; beyond that it packs each row into
// a []uint64 bitmap. Both representations answer Connected in O(1) and
// Neighbors in O(n); the packed form simply trades a shift+mask for 8x
// less memory per row.
type dynamicTopology struct {
	n      int
	dense  [][]bool // nil when packed is in use
	packed [][]uint64
}

func newDynamic(n int) *dynamicTopology {
	t := &dynamicTopology{n: n}
	if n <= dynamicBitmapThreshold {
		t.dense = make([][]bool, n)
		for i := range t.dense {
			t.dense[i] = make([]bool, n)
		}
		return t
	}
	words := (n + 63) / 64
	t.packed = make([][]uint64, n)
	for i := range t.packed {
		t.packed[i] = make([]uint64, words)
	}
	return t
}

func (t *dynamicTopology) Size() int { return t.n }

func (t *dynamicTopology) Connected(i, j int) bool {
	if t.dense != nil {
		return t.dense[i][j]
	}
	return t.packed[i][j/64]&(1<<uint(j%64)) != 0
}

func (t *dynamicTopology) Neighbors(i int) []int {
	out := make([]int, 0)
	if t.dense != nil {
		row := t.dense[i]
		for j, connected := range row {
			if connected {
				out = append(out, j)
			}
		}
		return out
	}
	row := t.packed[i]
	for j := 0; j < t.n; j++ {
		if row[j/64]&(1<<uint(j%64)) != 0 {
			out = append(out, j)
		}
	}
	return out
}

func (t *dynamicTopology) SetConnection(i, j int) {
	if i == j {
		return
	}
	t.setBit(i, j, true)
	t.setBit(j, i, true)
}

func (t *dynamicTopology) RemoveConnection(i, j int) {
	t.setBit(i, j, false)
	t.setBit(j, i, false)
}

func (t *dynamicTopology) setBit(i, j int, v bool) {
	if t.dense != nil {
		t.dense[i][j] = v
		return
	}
	if v {
		t.packed[i][j/64] |= 1 << uint(j%64)
	} else {
		t.packed[i][j/64] &^= 1 << uint(j%64)
	}
}
