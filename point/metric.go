package point

import "math"

// Metric computes a distance between two points of equal dimension.
// Implementations are not required to validate dimension; callers that
// accept user-supplied points should call Dataset.Validate first.
type Metric func(a, b Point) float64

// Euclidean returns the L2 distance between a and b.
func Euclidean(a, b Point) float64 {
	return math.Sqrt(EuclideanSquared(a, b))
}

// EuclideanSquared returns the squared L2 distance between a and b.
// Algorithms that only compare distances, never report them, should
// prefer this over Euclidean to avoid the square root.
func EuclideanSquared(a, b Point) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Manhattan returns the L1 distance between a and b.
func Manhattan(a, b Point) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

// Chebyshev returns the L∞ distance between a and b.
func Chebyshev(a, b Point) float64 {
	var max float64
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > max {
			max = d
		}
	}
	return max
}

// Minkowski returns a metric constructor for the Lp distance with the
// given order p > 0. p == 1 is equivalent to Manhattan, p == 2 to
// Euclidean, and p == math.Inf(1) is not handled specially (callers
// wanting Chebyshev should use Chebyshev directly).
func Minkowski(p float64) Metric {
	return func(a, b Point) float64 {
		var sum float64
		for i := range a {
			sum += math.Pow(math.Abs(a[i]-b[i]), p)
		}
		return math.Pow(sum, 1.0/p)
	}
}

// NearestIndex returns the index within candidates (indices into ds)
// minimizing metric(query, ds[candidates[i]]), and that distance.
// Returns (-1, +Inf) if candidates is empty.
func NearestIndex(ds Dataset, query Point, candidates []int, metric Metric) (int, float64) {
	best := -1
	bestDist := math.Inf(1)
	for _, c := range candidates {
		d := metric(query, ds[c])
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best, bestDist
}
