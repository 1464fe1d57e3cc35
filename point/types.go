package point

import "errors"

// ErrDimensionMismatch indicates two points, or a point and a dataset,
// disagree on dimensionality.
var ErrDimensionMismatch = errors.New("point: dimension mismatch")

// ErrEmptyDataset indicates an operation requires at least one point.
var ErrEmptyDataset = errors.New("point: dataset is empty")

// Point is an ordered sequence of float64 coordinates of fixed dimension.
// Equality and hashing (where needed by callers) are value-based; Point
// itself carries no identity beyond its coordinates.
type Point []float64

// Dim returns the dimensionality of p.
func (p Point) Dim() int {
	return len(p)
}

// Clone returns a deep copy of p.
func (p Point) Clone() Point {
	out := make(Point, len(p))
	copy(out, p)
	return out
}

// Equal reports whether p and q have identical coordinates.
func (p Point) Equal(q Point) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Dataset is an ordered sequence of Points. Every entry must share the
// same dimension; Dataset.Validate enforces this invariant.
type Dataset []Point

// Dim returns the common dimension of the dataset, or 0 if empty.
func (d Dataset) Dim() int {
	if len(d) == 0 {
		return 0
	}
	return d[0].Dim()
}

// Validate checks that the dataset is non-empty and every point shares
// the same dimension.
func (d Dataset) Validate() error {
	if len(d) == 0 {
		return ErrEmptyDataset
	}
	dim := d[0].Dim()
	for _, p := range d {
		if p.Dim() != dim {
			return ErrDimensionMismatch
		}
	}
	return nil
}

// Indices returns {0, ..., len(d)-1}, the canonical full index set.
func (d Dataset) Indices() []int {
	out := make([]int, len(d))
	for i := range out {
		out[i] = i
	}
	return out
}

// Centroid returns the size-weighted mean of the points at idx.
func (d Dataset) Centroid(idx []int) Point {
	if len(idx) == 0 {
		return nil
	}
	dim := d.Dim()
	sum := make(Point, dim)
	for _, i := range idx {
		p := d[i]
		for k := 0; k < dim; k++ {
			sum[k] += p[k]
		}
	}
	inv := 1.0 / float64(len(idx))
	for k := 0; k < dim; k++ {
		sum[k] *= inv
	}
	return sum
}
