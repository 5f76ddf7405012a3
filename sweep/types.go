// Package sweep: sink contracts, tag parsing and sentinel errors.
package sweep

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlnum/core"
	"github.com/katalvlaran/lvlnum/nodes"
	"github.com/katalvlaran/lvlnum/roots"
)

// Sentinel errors returned by the drivers.
var (
	// ErrNilSink indicates a driver invoked without its sink.
	ErrNilSink = errors.New("sweep: nil sink")

	// ErrUnknownNodes indicates a node-family tag outside the published pair.
	ErrUnknownNodes = errors.New("sweep: unknown node family")

	// ErrUnknownEngine indicates a spline-engine tag outside the published pair.
	ErrUnknownEngine = errors.New("sweep: unknown spline engine")

	// ErrUnknownBoundary indicates a boundary tag the engine does not publish.
	ErrUnknownBoundary = errors.New("sweep: unknown boundary condition")

	// ErrUnknownMethod indicates a root-method tag outside the published pair.
	ErrUnknownMethod = errors.New("sweep: unknown root method")

	// ErrUnknownCriterion indicates a stopping-criterion tag outside the
	// published set.
	ErrUnknownCriterion = errors.New("sweep: unknown stopping criterion")

	// ErrNoDerivative indicates a derivative-hungry study configured with a
	// catalog function that carries none.
	ErrNoDerivative = errors.New("sweep: catalog function has no derivative")
)

// TableSink receives summary rows under named logical tables. A row is a
// tuple of scalars; NaN marks a refused cell. The drivers are agnostic to
// the underlying format.
type TableSink interface {
	WriteRow(table string, row []float64) error
	CloseTable(table string) error
}

// CurveSink receives ordered (x, y) pair sequences under symbolic names.
type CurveSink interface {
	WriteCurve(id string, xs, ys []float64) error
}

// DefaultGridLen is the dense evaluation grid size the drivers fall back
// to when a study leaves its grid length unset.
const DefaultGridLen = 1000

// Grid returns n equispaced evaluation points on [a, b]; n < 2 selects
// DefaultGridLen. A degenerate interval yields nil.
func Grid(a, b float64, n int) []float64 {
	if n < 2 {
		n = DefaultGridLen
	}
	xs, err := nodes.Uniform(n, a, b)
	if err != nil {
		return nil
	}
	return xs
}

// Node-family tags. The choice travels into a study as data, never as a
// kernel branch.
const (
	NodesUniform   = "uniform"
	NodesChebyshev = "chebyshev"
)

// nodesFor dispatches the tagged node generator.
func nodesFor(family string, n int, a, b float64) ([]float64, error) {
	switch family {
	case NodesUniform, "":
		return nodes.Uniform(n, a, b)
	case NodesChebyshev:
		return nodes.Chebyshev(n, a, b)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNodes, family)
	}
}

// Stopping-criterion tags for RootStudy.
const (
	CritStep     = "step"
	CritResidual = "residual"
	CritBoth     = "both"
)

// parseCriterion maps a tag onto the roots enum.
func parseCriterion(tag string) (roots.Criterion, error) {
	switch tag {
	case CritStep, "":
		return roots.OnStep, nil
	case CritResidual:
		return roots.OnResidual, nil
	case CritBoth:
		return roots.OnBoth, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCriterion, tag)
	}
}

// Precision tags for LinexpStudy and HornerStudy.
const (
	PrecSingle   = "single"
	PrecDouble   = "double"
	PrecExtended = "extended"
)

// parsePrecision maps a tag onto the core enum.
func parsePrecision(tag string) (core.Precision, error) {
	switch tag {
	case PrecSingle:
		return core.Single, nil
	case PrecDouble, "":
		return core.Double, nil
	case PrecExtended:
		return core.Extended, nil
	default:
		return 0, fmt.Errorf("%w: %q", core.ErrBadPrecision, tag)
	}
}

// studyErrorf wraps a configuration failure with the study kind and its
// target table so a plan-level log pinpoints the offender.
func studyErrorf(kind, table string, err error) error {
	return fmt.Errorf("%s(%s): %w", kind, table, err)
}

// sampleFunc evaluates f across xs.
func sampleFunc(f func(float64) float64, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}
