// Package spline: boundary-condition tags, sentinel errors, shared
// validation and interval location.
package spline

import "errors"

// Sentinel errors returned by the spline constructors.
var (
	// ErrTooFewNodes indicates fewer than two nodes.
	ErrTooFewNodes = errors.New("spline: at least two nodes required")

	// ErrLengthMismatch indicates len(xs) != len(ys).
	ErrLengthMismatch = errors.New("spline: sample sequences must have equal length")

	// ErrNodesNotIncreasing indicates a non-positive interval length h_i.
	ErrNodesNotIncreasing = errors.New("spline: nodes must be strictly increasing")

	// ErrBoundary indicates a boundary tag the engine does not support.
	ErrBoundary = errors.New("spline: boundary condition not supported by this engine")
)

// boundaryKind discriminates the Boundary union.
type boundaryKind int

const (
	bcClampedStart boundaryKind = iota
	bcClampedEnd
	bcZeroSlopeStart
	bcNatural
	bcClamped
)

// Boundary is the tagged boundary-condition union. Constructors carry the
// payload each family needs; the engines reject tags from the other family
// with ErrBoundary.
type Boundary struct {
	kind   boundaryKind
	da, db float64
}

// ClampedStart pins the quadratic spline's first slope to d = f′(a).
func ClampedStart(d float64) Boundary { return Boundary{kind: bcClampedStart, da: d} }

// ClampedEnd pins the quadratic spline's last slope to d = f′(b).
func ClampedEnd(d float64) Boundary { return Boundary{kind: bcClampedEnd, db: d} }

// ZeroSlopeStart pins the quadratic spline's first slope to zero.
func ZeroSlopeStart() Boundary { return Boundary{kind: bcZeroSlopeStart} }

// Natural requests zero second derivatives at both ends of the cubic spline.
func Natural() Boundary { return Boundary{kind: bcNatural} }

// Clamped prescribes the cubic spline's end slopes da = f′(a), db = f′(b).
func Clamped(da, db float64) Boundary { return Boundary{kind: bcClamped, da: da, db: db} }

// String returns the tag name for table headers.
func (b Boundary) String() string {
	switch b.kind {
	case bcClampedStart:
		return "clamped-start"
	case bcClampedEnd:
		return "clamped-end"
	case bcZeroSlopeStart:
		return "zero-slope-start"
	case bcNatural:
		return "natural"
	case bcClamped:
		return "clamped"
	default:
		return "unknown"
	}
}

// checkKnots validates the shared spline preconditions: n ≥ 2, equal
// lengths, every interval length positive.
func checkKnots(xs, ys []float64) error {
	if len(xs) < 2 {
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

// locate returns the segment index i with xs[i] ≤ x < xs[i+1], clamped to
// the first segment below x₀ and the last above x₍ₙ₋₁₎. Linear scan; the
// knot counts of the laboratory never justify a bisection.
func locate(xs []float64, x float64) int {
	n := len(xs)
	if x <= xs[0] {
		return 0
	}
	if x >= xs[n-1] {
		return n - 2
	}
	i := 0
	for i < n-2 && x >= xs[i+1] {
		i++
	}
	return i
}
