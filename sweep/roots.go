package sweep

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/catalog"
	"github.com/katalvlaran/lvlnum/roots"
)

// Root-method tags.
const (
	MethodNewton = "newton"
	MethodSecant = "secant"
)

// RootStudy sweeps starting points and stopping criteria of one root
// finder on one catalog function. The secant method takes its second
// start at x₀ + Step.
//
// Row layout per (start, criterion): x₀, criterion code, root, iteration
// count, final residual, status code. Non-converged cells still carry
// their status code; nothing aborts the sweep.
type RootStudy struct {
	Table    string    `yaml:"table"`
	Func     string    `yaml:"func"`
	Method   string    `yaml:"method"`
	Starts   []float64 `yaml:"starts"`
	Step     float64   `yaml:"step"`
	Criteria []string  `yaml:"criteria"`
	Tol      float64   `yaml:"tol"`
	MaxIter  int       `yaml:"max_iter"`
}

// Kind returns the study tag.
func (RootStudy) Kind() string { return "roots" }

// Run emits one row per (start, criterion) cell.
func (st RootStudy) Run(tables TableSink, _ CurveSink) error {
	if tables == nil {
		return studyErrorf(st.Kind(), st.Table, ErrNilSink)
	}
	fn, err := catalog.Lookup(catalog.FuncID(st.Func))
	if err != nil {
		return studyErrorf(st.Kind(), st.Table, err)
	}

	switch st.Method {
	case MethodNewton, "":
		if !fn.HasDeriv() {
			return studyErrorf(st.Kind(), st.Table, ErrNoDerivative)
		}
	case MethodSecant:
	default:
		return studyErrorf(st.Kind(), st.Table, fmt.Errorf("%w: %q", ErrUnknownMethod, st.Method))
	}

	crits := make([]roots.Criterion, 0, len(st.Criteria))
	if len(st.Criteria) == 0 {
		crits = append(crits, roots.OnStep)
	}
	for _, tag := range st.Criteria {
		c, err := parseCriterion(tag)
		if err != nil {
			return studyErrorf(st.Kind(), st.Table, err)
		}
		crits = append(crits, c)
	}

	step := st.Step
	if step == 0 {
		step = 1e-3
	}

	for _, x0 := range st.Starts {
		for _, crit := range crits {
			opt := roots.Options{Tol: st.Tol, MaxIter: st.MaxIter, Criterion: crit}
			var res roots.Result
			if st.Method == MethodSecant {
				res = roots.Secant(fn.Eval, x0, x0+step, opt)
			} else {
				res = roots.Newton(fn.Eval, fn.Deriv, x0, opt)
			}
			row := []float64{
				x0,
				float64(crit),
				res.Root,
				float64(res.Iters),
				res.Residual,
				float64(res.Status),
			}
			if err := tables.WriteRow(st.Table, row); err != nil {
				return studyErrorf(st.Kind(), st.Table, err)
			}
		}
	}

	if err := tables.CloseTable(st.Table); err != nil {
		return studyErrorf(st.Kind(), st.Table, err)
	}
	return nil
}
