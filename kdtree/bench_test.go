package kdtree_test

import (
	"math/rand"
	"testing"

	"github.com/gopherclust/ccore/kdtree"
	"github.com/gopherclust/ccore/point"
)

func randomPoints(n, dim int, seed int64) []point.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]point.Point, n)
	for i := range pts {
		p := make(point.Point, dim)
		for k := range p {
			p[k] = r.Float64() * 100
		}
		pts[i] = p
	}
	return pts
}

func BenchmarkInsert(b *testing.B) {
	pts := randomPoints(b.N, 3, 1)
	tr := kdtree.New(3)
	b.ResetTimer()
	for i, p := range pts {
		_, _ = tr.Insert(p, i)
	}
}

func BenchmarkFindNearestWithin(b *testing.B) {
	pts := randomPoints(2000, 3, 2)
	tr := kdtree.New(3)
	for i, p := range pts {
		_, _ = tr.Insert(p, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.FindNearestWithin(pts[i%len(pts)], 5.0)
	}
}
