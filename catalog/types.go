// Package catalog: the function descriptor, entry IDs and sentinel errors.
package catalog

import "errors"

// ErrUnknownFunc is returned by Lookup for an ID outside the published set.
var ErrUnknownFunc = errors.New("catalog: unknown function id")

// FuncID names a published catalog entry.
type FuncID string

// Published entry IDs. The four P8 variants share the interval and the
// exact value (x−1)⁸ but differ in evaluation order, which is the point.
const (
	// P8Naive evaluates the expanded monomial sum term by term.
	P8Naive FuncID = "p8/naive"

	// P8Horner evaluates the expanded coefficients in Horner form.
	P8Horner FuncID = "p8/horner"

	// P8Power evaluates (x−1)⁸ by direct integer power.
	P8Power FuncID = "p8/power"

	// P8ExpLog evaluates exp(8·ln|x−1|); NaN at x = 1.
	P8ExpLog FuncID = "p8/explog"

	// F1 is the damped sine sin(kx/π)·exp(−mx/π).
	F1 FuncID = "f1"

	// F2 is the two-term monomial x¹⁴ + x¹³.
	F2 FuncID = "f2"
)

// Func describes one target function. Records are immutable after package
// initialization; any component may read them without coordination.
type Func struct {
	// ID is the registry key of this entry.
	ID FuncID

	// Name is a short human-readable label for table headers.
	Name string

	// Eval computes f(x). Never panics; returns NaN where f is undefined.
	Eval func(x float64) float64

	// Deriv computes f′(x), or is nil when the entry publishes no
	// derivative (the P8 variants, whose derivative is never studied).
	Deriv func(x float64) float64

	// A and B are the endpoints of the study interval, A < B.
	A, B float64
}

// HasDeriv reports whether the entry publishes a derivative evaluator.
func (f Func) HasDeriv() bool { return f.Deriv != nil }
