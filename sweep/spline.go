package sweep

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlnum/catalog"
	"github.com/katalvlaran/lvlnum/reduce"
	"github.com/katalvlaran/lvlnum/spline"
)

// Spline-engine tags.
const (
	EngineQuadratic = "quadratic"
	EngineCubic     = "cubic"
)

// Boundary tags. The clamped tags read the end-slope values off the
// catalog derivative, so they require a derivative-equipped function.
const (
	BoundaryNatural      = "natural"
	BoundaryClamped      = "clamped"
	BoundaryClampedStart = "clamped-start"
	BoundaryClampedEnd   = "clamped-end"
	BoundaryZeroSlope    = "zero-slope"
)

// SplineStudy sweeps the knot count of one spline engine under one
// boundary condition.
//
// Row layout per n: n, max-abs, MSE, observed convergence order. The
// order column is ln(e₋/e)/ln(h₋/h) against the previous row, NaN on the
// first row and wherever an error vanishes.
type SplineStudy struct {
	Table    string `yaml:"table"`
	Func     string `yaml:"func"`
	Engine   string `yaml:"engine"`
	Boundary string `yaml:"boundary"`
	NS       []int  `yaml:"ns"`
	GridLen  int    `yaml:"grid"`
}

// Kind returns the study tag.
func (SplineStudy) Kind() string { return "spline" }

// Run emits one row and one curve per knot count.
func (st SplineStudy) Run(tables TableSink, curves CurveSink) error {
	if tables == nil || curves == nil {
		return studyErrorf(st.Kind(), st.Table, ErrNilSink)
	}
	fn, err := catalog.Lookup(catalog.FuncID(st.Func))
	if err != nil {
		return studyErrorf(st.Kind(), st.Table, err)
	}
	bc, err := boundaryFor(st.Engine, st.Boundary, fn)
	if err != nil {
		return studyErrorf(st.Kind(), st.Table, err)
	}

	grid := Grid(fn.A, fn.B, st.GridLen)
	truth := sampleFunc(fn.Eval, grid)

	prevErr, prevH := math.NaN(), math.NaN()
	for _, n := range st.NS {
		xs, err := nodesFor(NodesUniform, n, fn.A, fn.B)
		if err != nil {
			if nanErr := writeNaNRow(tables, st.Table, float64(n), 3); nanErr != nil {
				return studyErrorf(st.Kind(), st.Table, nanErr)
			}
			continue
		}
		eval, err := splineFor(st.Engine, xs, sampleFunc(fn.Eval, xs), bc)
		if err != nil {
			if nanErr := writeNaNRow(tables, st.Table, float64(n), 3); nanErr != nil {
				return studyErrorf(st.Kind(), st.Table, nanErr)
			}
			continue
		}

		ys := make([]float64, len(grid))
		for i, x := range grid {
			ys[i] = eval(x)
		}
		rec, err := reduce.Errors(truth, ys)
		if err != nil {
			return studyErrorf(st.Kind(), st.Table, err)
		}

		h := (fn.B - fn.A) / float64(n-1)
		order := math.NaN()
		if prevErr > 0 && rec.MaxAbs > 0 {
			order = math.Log(prevErr/rec.MaxAbs) / math.Log(prevH/h)
		}
		prevErr, prevH = rec.MaxAbs, h

		row := []float64{float64(n), rec.MaxAbs, rec.MSE, order}
		if err := tables.WriteRow(st.Table, row); err != nil {
			return studyErrorf(st.Kind(), st.Table, err)
		}
		if err := curves.WriteCurve(curveID(st.Table, st.Engine, n), grid, ys); err != nil {
			return studyErrorf(st.Kind(), st.Table, err)
		}
	}

	if err := tables.CloseTable(st.Table); err != nil {
		return studyErrorf(st.Kind(), st.Table, err)
	}
	return nil
}

// boundaryFor maps the engine and boundary tags onto a spline.Boundary,
// reading clamped slopes from the catalog derivative.
func boundaryFor(engine, tag string, fn catalog.Func) (spline.Boundary, error) {
	needDeriv := func() error {
		if !fn.HasDeriv() {
			return ErrNoDerivative
		}
		return nil
	}
	switch engine {
	case EngineQuadratic:
		switch tag {
		case BoundaryZeroSlope, "":
			return spline.ZeroSlopeStart(), nil
		case BoundaryClampedStart:
			if err := needDeriv(); err != nil {
				return spline.Boundary{}, err
			}
			return spline.ClampedStart(fn.Deriv(fn.A)), nil
		case BoundaryClampedEnd:
			if err := needDeriv(); err != nil {
				return spline.Boundary{}, err
			}
			return spline.ClampedEnd(fn.Deriv(fn.B)), nil
		}
	case EngineCubic:
		switch tag {
		case BoundaryNatural, "":
			return spline.Natural(), nil
		case BoundaryClamped:
			if err := needDeriv(); err != nil {
				return spline.Boundary{}, err
			}
			return spline.Clamped(fn.Deriv(fn.A), fn.Deriv(fn.B)), nil
		}
	default:
		return spline.Boundary{}, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
	return spline.Boundary{}, fmt.Errorf("%w: %q", ErrUnknownBoundary, tag)
}

// splineFor constructs the tagged engine and returns its evaluator.
func splineFor(engine string, xs, ys []float64, bc spline.Boundary) (func(float64) float64, error) {
	switch engine {
	case EngineQuadratic:
		q, err := spline.NewQuadratic(xs, ys, bc)
		if err != nil {
			return nil, err
		}
		return q.Eval, nil
	case EngineCubic:
		c, err := spline.NewCubic(xs, ys, bc)
		if err != nil {
			return nil, err
		}
		return c.Eval, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}
