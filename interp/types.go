// Package interp: sentinel errors and the shared sample validator.
package interp

import "errors"

// Sentinel errors returned by the interpolator constructors.
var (
	// ErrTooFewNodes indicates an empty sample set (n < 1).
	ErrTooFewNodes = errors.New("interp: at least one node required")

	// ErrLengthMismatch indicates xs/ys (or yps) differ in length.
	ErrLengthMismatch = errors.New("interp: sample sequences must have equal length")

	// ErrNodesNotIncreasing indicates the abscissae are not strictly ascending.
	ErrNodesNotIncreasing = errors.New("interp: nodes must be strictly increasing")
)

// checkSamples validates the common (xs, ys) preconditions: n ≥ 1, equal
// lengths, strictly ascending abscissae. NaN values in ys are legal (they
// propagate); NaN abscissae fail the ordering check by comparison.
func checkSamples(xs, ys []float64) error {
	if len(xs) < 1 {
		return ErrTooFewNodes
	}
	if len(xs) != len(ys) {
		return ErrLengthMismatch
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return ErrNodesNotIncreasing
		}
	}
	return nil
}
