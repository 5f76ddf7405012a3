package sweep

import (
	"math"

	"github.com/katalvlaran/lvlnum/catalog"
	"github.com/katalvlaran/lvlnum/core"
	"github.com/katalvlaran/lvlnum/poly"
)

// HornerStudy probes the four algebraic forms of p₈(x) = (x−1)⁸ across
// the three working precisions at points near the eight-fold root.
//
// Row layout: probe x, then the relative error of each form at each
// precision, forms ordered naive, Horner, power, exp-log and precisions
// ordered single, double, extended.
type HornerStudy struct {
	Table  string    `yaml:"table"`
	Probes []float64 `yaml:"probes"`
}

// Kind returns the study tag.
func (HornerStudy) Kind() string { return "horner" }

// defaultProbes cluster around the root where cancellation dominates.
var defaultProbes = []float64{0.99, 0.995, 0.999, 0.9999, 1.0001, 1.001, 1.005, 1.01}

// Run emits one row per probe and one double-lane error curve per form
// over the catalog interval.
func (h HornerStudy) Run(tables TableSink, curves CurveSink) error {
	if tables == nil || curves == nil {
		return studyErrorf(h.Kind(), h.Table, ErrNilSink)
	}

	probes := h.Probes
	if len(probes) == 0 {
		probes = defaultProbes
	}
	c := catalog.P8Coeffs()
	precs := []core.Precision{core.Single, core.Double, core.Extended}

	for _, x := range probes {
		truth := math.Pow(x-1, 8)
		row := make([]float64, 0, 1+4*len(precs))
		row = append(row, x)
		for _, form := range p8Forms {
			for _, p := range precs {
				row = append(row, relErr(form.at(c, x, p), truth))
			}
		}
		if err := tables.WriteRow(h.Table, row); err != nil {
			return studyErrorf(h.Kind(), h.Table, err)
		}
	}

	fn, err := catalog.Lookup(catalog.P8Horner)
	if err != nil {
		return studyErrorf(h.Kind(), h.Table, err)
	}
	grid := Grid(fn.A, fn.B, 0)
	for _, form := range p8Forms {
		ys := make([]float64, len(grid))
		for i, x := range grid {
			ys[i] = relErr(form.at(c, x, core.Double), math.Pow(x-1, 8))
		}
		if err := curves.WriteCurve(h.Table+"/"+form.name, grid, ys); err != nil {
			return studyErrorf(h.Kind(), h.Table, err)
		}
	}

	if err := tables.CloseTable(h.Table); err != nil {
		return studyErrorf(h.Kind(), h.Table, err)
	}
	return nil
}

// p8Forms is the published form order of the summary table.
var p8Forms = []struct {
	name string
	at   func(c []float64, x float64, p core.Precision) float64
}{
	{"naive", poly.NaiveAt},
	{"horner", poly.EvalAt},
	{"power", p8PowerAt},
	{"explog", p8ExpLogAt},
}

// p8PowerAt evaluates (x−1)⁸ by three squarings in the requested lane.
func p8PowerAt(_ []float64, x float64, p core.Precision) float64 {
	switch p {
	case core.Single:
		d := float32(x) - 1
		d *= d
		d *= d
		return float64(d * d)
	case core.Double:
		d := (x - 1) * (x - 1)
		d *= d
		return d * d
	case core.Extended:
		d := core.NewExtended(x)
		d.Sub(d, core.NewExtended(1))
		d.Mul(d, d)
		d.Mul(d, d)
		d.Mul(d, d)
		return core.RoundBack(d)
	default:
		return math.NaN()
	}
}

// p8ExpLogAt evaluates exp(8·ln|x−1|), NaN at the singularity x = 1.
// math/big carries no exp/log, so the extended lane reuses the double
// transcendentals.
func p8ExpLogAt(_ []float64, x float64, p core.Precision) float64 {
	switch p {
	case core.Single:
		d := math.Abs(float64(float32(x)) - 1)
		if d == 0 {
			return math.NaN()
		}
		return float64(float32(math.Exp(8 * math.Log(d))))
	case core.Double, core.Extended:
		d := math.Abs(x - 1)
		if d == 0 {
			return math.NaN()
		}
		return math.Exp(8 * math.Log(d))
	default:
		return math.NaN()
	}
}

// relErr is |approx − truth| / |truth|, degrading to the absolute error
// on a zero truth value.
func relErr(approx, truth float64) float64 {
	d := math.Abs(approx - truth)
	if truth == 0 {
		return d
	}
	return d / math.Abs(truth)
}
