package sweep

import (
	"github.com/katalvlaran/lvlnum/catalog"
	"github.com/katalvlaran/lvlnum/lsq"
	"github.com/katalvlaran/lvlnum/reduce"
)

// LsqStudy sweeps the degree of the polynomial least-squares fit of one
// catalog function on a fixed sample set of N points.
//
// Row layout per m: m, max-abs, MSE. A refused cell (invalid arity or a
// singular Gram matrix) is a NaN row and the sweep continues.
type LsqStudy struct {
	Table     string `yaml:"table"`
	Func      string `yaml:"func"`
	Nodes     string `yaml:"nodes"`
	N         int    `yaml:"n"`
	MaxDegree int    `yaml:"max_degree"`
	GridLen   int    `yaml:"grid"`
}

// Kind returns the study tag.
func (LsqStudy) Kind() string { return "lsq" }

// Run emits one row and one curve per degree.
func (st LsqStudy) Run(tables TableSink, curves CurveSink) error {
	if tables == nil || curves == nil {
		return studyErrorf(st.Kind(), st.Table, ErrNilSink)
	}
	fn, err := catalog.Lookup(catalog.FuncID(st.Func))
	if err != nil {
		return studyErrorf(st.Kind(), st.Table, err)
	}
	xs, err := nodesFor(st.Nodes, st.N, fn.A, fn.B)
	if err != nil {
		return studyErrorf(st.Kind(), st.Table, err)
	}
	ys := sampleFunc(fn.Eval, xs)

	grid := Grid(fn.A, fn.B, st.GridLen)
	truth := sampleFunc(fn.Eval, grid)

	for m := 0; m <= st.MaxDegree; m++ {
		c, err := lsq.FitPoly(xs, ys, m)
		if err != nil {
			if nanErr := writeNaNRow(tables, st.Table, float64(m), 2); nanErr != nil {
				return studyErrorf(st.Kind(), st.Table, nanErr)
			}
			continue
		}

		fitY := make([]float64, len(grid))
		for i, x := range grid {
			fitY[i] = lsq.EvalPoly(c, x)
		}
		rec, err := reduce.Errors(truth, fitY)
		if err != nil {
			return studyErrorf(st.Kind(), st.Table, err)
		}

		if err := tables.WriteRow(st.Table, []float64{float64(m), rec.MaxAbs, rec.MSE}); err != nil {
			return studyErrorf(st.Kind(), st.Table, err)
		}
		if err := curves.WriteCurve(curveID(st.Table, "lsq", m), grid, fitY); err != nil {
			return studyErrorf(st.Kind(), st.Table, err)
		}
	}

	if err := tables.CloseTable(st.Table); err != nil {
		return studyErrorf(st.Kind(), st.Table, err)
	}
	return nil
}

// TrigStudy sweeps the harmonic count of the trigonometric fit on a
// fixed sample set of N points. Samples sit on the endpoint-excluded
// periodic grid xᵢ = a + i(b−a)/N; the period closes at b.
//
// Row layout per m: m, max-abs, MSE. The m ≥ N/2 cells are refused by
// the kernel and recorded as NaN rows.
type TrigStudy struct {
	Table       string `yaml:"table"`
	Func        string `yaml:"func"`
	N           int    `yaml:"n"`
	MaxHarmonic int    `yaml:"max_harmonic"`
	GridLen     int    `yaml:"grid"`
}

// Kind returns the study tag.
func (TrigStudy) Kind() string { return "trig" }

// Run emits one row and one curve per harmonic count.
func (st TrigStudy) Run(tables TableSink, curves CurveSink) error {
	if tables == nil || curves == nil {
		return studyErrorf(st.Kind(), st.Table, ErrNilSink)
	}
	fn, err := catalog.Lookup(catalog.FuncID(st.Func))
	if err != nil {
		return studyErrorf(st.Kind(), st.Table, err)
	}

	xs := periodicNodes(st.N, fn.A, fn.B)
	ys := sampleFunc(fn.Eval, xs)

	grid := Grid(fn.A, fn.B, st.GridLen)
	truth := sampleFunc(fn.Eval, grid)

	for m := 0; m <= st.MaxHarmonic; m++ {
		ts, err := lsq.FitTrig(xs, ys, m, fn.A, fn.B)
		if err != nil {
			if nanErr := writeNaNRow(tables, st.Table, float64(m), 2); nanErr != nil {
				return studyErrorf(st.Kind(), st.Table, nanErr)
			}
			continue
		}

		fitY := make([]float64, len(grid))
		for i, x := range grid {
			fitY[i] = ts.Eval(x)
		}
		rec, err := reduce.Errors(truth, fitY)
		if err != nil {
			return studyErrorf(st.Kind(), st.Table, err)
		}

		if err := tables.WriteRow(st.Table, []float64{float64(m), rec.MaxAbs, rec.MSE}); err != nil {
			return studyErrorf(st.Kind(), st.Table, err)
		}
		if err := curves.WriteCurve(curveID(st.Table, "trig", m), grid, fitY); err != nil {
			return studyErrorf(st.Kind(), st.Table, err)
		}
	}

	if err := tables.CloseTable(st.Table); err != nil {
		return studyErrorf(st.Kind(), st.Table, err)
	}
	return nil
}

// periodicNodes returns n equispaced samples on [a, b) with spacing
// (b−a)/n. Excluding b keeps the discrete trigonometric sums orthogonal.
func periodicNodes(n int, a, b float64) []float64 {
	if n < 1 {
		return nil
	}
	h := (b - a) / float64(n)
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = a + float64(i)*h
	}
	return xs
}
