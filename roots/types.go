// Package roots: criteria, options, result record and sentinel errors.
package roots

import "math"

// Criterion selects which residuals must fall under the tolerance.
type Criterion int

const (
	// OnStep stops on |x_{i+1} − x_i| < tol.
	OnStep Criterion = iota

	// OnResidual stops on |f(x_{i+1})| < tol.
	OnResidual

	// OnBoth requires both residuals under tol.
	OnBoth
)

// String returns the criterion name for table headers.
func (c Criterion) String() string {
	switch c {
	case OnStep:
		return "on-step"
	case OnResidual:
		return "on-residual"
	case OnBoth:
		return "on-both"
	default:
		return "unknown"
	}
}

// Valid reports whether c is a published criterion.
func (c Criterion) Valid() bool { return c == OnStep || c == OnResidual || c == OnBoth }

// Status tags the outcome of an iteration run. The integer values are the
// laboratory's table encoding and part of the contract.
type Status int

const (
	// Converged: the selected criterion held.
	Converged Status = 0

	// MaxIterations: the iteration budget ran out first.
	MaxIterations Status = 1

	// Stalled: zero derivative, flat chord, or non-finite update.
	Stalled Status = 2
)

// String returns the status name for table headers.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case MaxIterations:
		return "max-iterations"
	case Stalled:
		return "stalled"
	default:
		return "unknown"
	}
}

// Options configures an iteration run.
type Options struct {
	// Tol is the convergence tolerance ρ applied by the criterion.
	Tol float64

	// MaxIter caps the number of iterations actually executed.
	MaxIter int

	// Criterion selects the stopping rule.
	Criterion Criterion
}

// Default iteration parameters.
const (
	// DefaultTol is the default convergence tolerance.
	DefaultTol = 1e-10

	// DefaultMaxIter is the default iteration budget.
	DefaultMaxIter = 100
)

// DefaultOptions returns the laboratory defaults: tol 1e-10, 100
// iterations, OnBoth.
func DefaultOptions() Options {
	return Options{Tol: DefaultTol, MaxIter: DefaultMaxIter, Criterion: OnBoth}
}

// normalize fills non-positive fields with defaults and clamps an unknown
// criterion to OnBoth, so a zero Options value behaves like the defaults.
func (o Options) normalize() Options {
	if o.Tol <= 0 {
		o.Tol = DefaultTol
	}
	if o.MaxIter <= 0 {
		o.MaxIter = DefaultMaxIter
	}
	if !o.Criterion.Valid() {
		o.Criterion = OnBoth
	}
	return o
}

// Result is the shared outcome record of both methods.
type Result struct {
	// Root is the final iterate, or NaN when the run stalled before
	// producing a finite update.
	Root float64

	// Iters counts the iterations that actually executed.
	Iters int

	// Residual is εx, εf or min(εx, εf) per the selected criterion; NaN
	// when no iteration completed.
	Residual float64

	// Status tags the outcome.
	Status Status
}

// met reports whether the criterion holds for the residual pair, and the
// residual value to report for it.
func (c Criterion) met(ex, ef, tol float64) (bool, float64) {
	switch c {
	case OnStep:
		return ex < tol, ex
	case OnResidual:
		return ef < tol, ef
	default: // OnBoth
		return ex < tol && ef < tol, math.Min(ex, ef)
	}
}
