package sweep

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlnum/catalog"
	"github.com/katalvlaran/lvlnum/interp"
	"github.com/katalvlaran/lvlnum/reduce"
)

// InterpStudy sweeps the node count of the Lagrange and Newton
// interpolants of one catalog function over one node family.
//
// Row layout per n: n, Lagrange max-abs, Lagrange MSE, Newton max-abs,
// Newton MSE. A refused cell (too few nodes) is a NaN row.
type InterpStudy struct {
	Table   string `yaml:"table"`
	Func    string `yaml:"func"`
	Nodes   string `yaml:"nodes"`
	NS      []int  `yaml:"ns"`
	GridLen int    `yaml:"grid"`
}

// Kind returns the study tag.
func (InterpStudy) Kind() string { return "interp" }

// Run emits one row and two curves per node count.
func (st InterpStudy) Run(tables TableSink, curves CurveSink) error {
	if tables == nil || curves == nil {
		return studyErrorf(st.Kind(), st.Table, ErrNilSink)
	}
	fn, err := catalog.Lookup(catalog.FuncID(st.Func))
	if err != nil {
		return studyErrorf(st.Kind(), st.Table, err)
	}

	grid := Grid(fn.A, fn.B, st.GridLen)
	truth := sampleFunc(fn.Eval, grid)

	for _, n := range st.NS {
		xs, err := nodesFor(st.Nodes, n, fn.A, fn.B)
		if err != nil {
			if nanErr := writeNaNRow(tables, st.Table, float64(n), 4); nanErr != nil {
				return studyErrorf(st.Kind(), st.Table, nanErr)
			}
			continue
		}
		ys := sampleFunc(fn.Eval, xs)

		nw, err := interp.NewNewton(xs, ys)
		if err != nil {
			if nanErr := writeNaNRow(tables, st.Table, float64(n), 4); nanErr != nil {
				return studyErrorf(st.Kind(), st.Table, nanErr)
			}
			continue
		}

		lagY := make([]float64, len(grid))
		newY := make([]float64, len(grid))
		for i, x := range grid {
			lagY[i], _ = interp.Lagrange(xs, ys, x)
			newY[i] = nw.Eval(x)
		}

		lagRec, err := reduce.Errors(truth, lagY)
		if err != nil {
			return studyErrorf(st.Kind(), st.Table, err)
		}
		newRec, err := reduce.Errors(truth, newY)
		if err != nil {
			return studyErrorf(st.Kind(), st.Table, err)
		}

		row := []float64{float64(n), lagRec.MaxAbs, lagRec.MSE, newRec.MaxAbs, newRec.MSE}
		if err := tables.WriteRow(st.Table, row); err != nil {
			return studyErrorf(st.Kind(), st.Table, err)
		}
		if err := curves.WriteCurve(curveID(st.Table, "lagrange", n), grid, lagY); err != nil {
			return studyErrorf(st.Kind(), st.Table, err)
		}
		if err := curves.WriteCurve(curveID(st.Table, "newton", n), grid, newY); err != nil {
			return studyErrorf(st.Kind(), st.Table, err)
		}
	}

	if err := tables.CloseTable(st.Table); err != nil {
		return studyErrorf(st.Kind(), st.Table, err)
	}
	return nil
}

// HermiteStudy sweeps the node count of the Hermite interpolant, which
// consumes function values and first derivatives at every node.
//
// Row layout per n: n, max-abs, MSE.
type HermiteStudy struct {
	Table   string `yaml:"table"`
	Func    string `yaml:"func"`
	Nodes   string `yaml:"nodes"`
	NS      []int  `yaml:"ns"`
	GridLen int    `yaml:"grid"`
}

// Kind returns the study tag.
func (HermiteStudy) Kind() string { return "hermite" }

// Run emits one row and one curve per node count. The catalog function
// must carry a derivative.
func (st HermiteStudy) Run(tables TableSink, curves CurveSink) error {
	if tables == nil || curves == nil {
		return studyErrorf(st.Kind(), st.Table, ErrNilSink)
	}
	fn, err := catalog.Lookup(catalog.FuncID(st.Func))
	if err != nil {
		return studyErrorf(st.Kind(), st.Table, err)
	}
	if !fn.HasDeriv() {
		return studyErrorf(st.Kind(), st.Table, ErrNoDerivative)
	}

	grid := Grid(fn.A, fn.B, st.GridLen)
	truth := sampleFunc(fn.Eval, grid)

	for _, n := range st.NS {
		xs, err := nodesFor(st.Nodes, n, fn.A, fn.B)
		if err != nil {
			if nanErr := writeNaNRow(tables, st.Table, float64(n), 2); nanErr != nil {
				return studyErrorf(st.Kind(), st.Table, nanErr)
			}
			continue
		}
		hm, err := interp.NewHermite(xs, sampleFunc(fn.Eval, xs), sampleFunc(fn.Deriv, xs))
		if err != nil {
			if nanErr := writeNaNRow(tables, st.Table, float64(n), 2); nanErr != nil {
				return studyErrorf(st.Kind(), st.Table, nanErr)
			}
			continue
		}

		ys := make([]float64, len(grid))
		for i, x := range grid {
			ys[i] = hm.Eval(x)
		}
		rec, err := reduce.Errors(truth, ys)
		if err != nil {
			return studyErrorf(st.Kind(), st.Table, err)
		}

		if err := tables.WriteRow(st.Table, []float64{float64(n), rec.MaxAbs, rec.MSE}); err != nil {
			return studyErrorf(st.Kind(), st.Table, err)
		}
		if err := curves.WriteCurve(curveID(st.Table, "hermite", n), grid, ys); err != nil {
			return studyErrorf(st.Kind(), st.Table, err)
		}
	}

	if err := tables.CloseTable(st.Table); err != nil {
		return studyErrorf(st.Kind(), st.Table, err)
	}
	return nil
}

// curveID names a per-cell curve: "<table>/<kernel>/n=<n>".
func curveID(table, kernel string, n int) string {
	return fmt.Sprintf("%s/%s/n=%d", table, kernel, n)
}

// writeNaNRow records a refused cell: the leading key column followed by
// width NaN value columns.
func writeNaNRow(tables TableSink, table string, key float64, width int) error {
	row := make([]float64, width+1)
	row[0] = key
	for i := 1; i <= width; i++ {
		row[i] = math.NaN()
	}
	return tables.WriteRow(table, row)
}
