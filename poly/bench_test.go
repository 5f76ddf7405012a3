package poly_test

import (
	"testing"

	"github.com/katalvlaran/lvlnum/catalog"
	"github.com/katalvlaran/lvlnum/core"
	"github.com/katalvlaran/lvlnum/poly"
)

// benchmarkEval runs one evaluation form over a fixed probe point.
func benchmarkEval(b *testing.B, at func(c []float64, x float64, p core.Precision) float64, p core.Precision) {
	c := catalog.P8Coeffs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = at(c, 1.0001, p)
	}
}

// BenchmarkHornerDouble measures the O(n) nested form at float64.
func BenchmarkHornerDouble(b *testing.B) {
	benchmarkEval(b, poly.EvalAt, core.Double)
}

// BenchmarkNaiveDouble measures the O(n²) monomial sum at float64.
func BenchmarkNaiveDouble(b *testing.B) {
	benchmarkEval(b, poly.NaiveAt, core.Double)
}

// BenchmarkHornerExtended measures the big.Float lane, allocations included.
func BenchmarkHornerExtended(b *testing.B) {
	benchmarkEval(b, poly.EvalAt, core.Extended)
}
