package nodes

import (
	"errors"
	"math"
)

// Sentinel errors returned by the generators.
var (
	// ErrNodeCount indicates a requested node count below one.
	ErrNodeCount = errors.New("nodes: node count must be >= 1")

	// ErrInterval indicates a degenerate or non-finite interval (b <= a).
	ErrInterval = errors.New("nodes: interval must satisfy a < b with finite endpoints")
)

// checkInterval validates the common [a, b] precondition.
func checkInterval(a, b float64) error {
	if !(a < b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return ErrInterval
	}
	return nil
}

// Uniform returns n equispaced nodes on [a, b], ascending.
//
// For n == 1 the single node is the interval midpoint. For n > 1 the nodes
// are a + i·(b−a)/(n−1); the last node is then overwritten with b so the
// right endpoint is exact regardless of rounding in the accumulated step.
//
// Complexity: O(n), one allocation.
func Uniform(n int, a, b float64) ([]float64, error) {
	if n < 1 {
		return nil, ErrNodeCount
	}
	if err := checkInterval(a, b); err != nil {
		return nil, err
	}

	if n == 1 {
		return []float64{(a + b) / 2}, nil
	}

	xs := make([]float64, n)
	h := (b - a) / float64(n-1)
	for i := 0; i < n; i++ {
		xs[i] = a + float64(i)*h
	}
	xs[n-1] = b // exact right endpoint

	return xs, nil
}

// Chebyshev returns the n zeros of the Chebyshev polynomial Tₙ mapped from
// [−1, 1] to [a, b], stored in ascending order.
//
// The natural cosine order x_k = cos((2k+1)π/(2n)) is descending, so the
// output index is reversed. All nodes are strictly interior to (a, b).
//
// Complexity: O(n), one allocation.
func Chebyshev(n int, a, b float64) ([]float64, error) {
	if n < 1 {
		return nil, ErrNodeCount
	}
	if err := checkInterval(a, b); err != nil {
		return nil, err
	}

	xs := make([]float64, n)
	mid := (a + b) / 2
	half := (b - a) / 2
	for k := 0; k < n; k++ {
		theta := (2*float64(k) + 1) * math.Pi / (2 * float64(n))
		// reversed index: k = 0 has the largest cosine, so it goes last
		xs[n-1-k] = mid + half*math.Cos(theta)
	}

	return xs, nil
}
