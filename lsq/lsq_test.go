package lsq_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlnum/catalog"
	"github.com/katalvlaran/lvlnum/lsq"
	"github.com/katalvlaran/lvlnum/nodes"
	"github.com/katalvlaran/lvlnum/solve"
)

// periodicGrid builds the n-point DFT sample grid a + i·(b−a)/n, i < n —
// uniform spacing with the right endpoint excluded (one full period).
func periodicGrid(n int, a, b float64) []float64 {
	xs := make([]float64, n)
	h := (b - a) / float64(n)
	for i := range xs {
		xs[i] = a + float64(i)*h
	}
	return xs
}

// TestFitPolyGuards verifies the arity sentinels.
func TestFitPolyGuards(t *testing.T) {
	_, err := lsq.FitPoly([]float64{1, 2}, []float64{1}, 1)
	require.ErrorIs(t, err, lsq.ErrLengthMismatch)

	_, err = lsq.FitPoly([]float64{1, 2}, []float64{1, 2}, -1)
	require.ErrorIs(t, err, lsq.ErrArity)

	_, err = lsq.FitPoly([]float64{1, 2}, []float64{1, 2}, 2)
	require.ErrorIs(t, err, lsq.ErrArity)
}

// TestFitPolyExactRecovery fits a quadratic to noise-free quadratic data;
// the normal equations must return the generating coefficients.
func TestFitPolyExactRecovery(t *testing.T) {
	gen := []float64{1.5, -2, 0.75}
	xs, err := nodes.Uniform(20, -1, 3)
	require.NoError(t, err)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = lsq.EvalPoly(gen, x)
	}

	c, err := lsq.FitPoly(xs, ys, 2)
	require.NoError(t, err)
	require.Len(t, c, 3)
	for i := range gen {
		require.InDelta(t, gen[i], c[i], 1e-10, "coefficient %d", i)
	}
}

// TestFitPolySingularGram verifies collapsed samples surface the solver's
// singular sentinel instead of fabricated coefficients.
func TestFitPolySingularGram(t *testing.T) {
	xs := []float64{2, 2, 2}
	ys := []float64{1, 1, 1}
	_, err := lsq.FitPoly(xs, ys, 1)
	require.ErrorIs(t, err, solve.ErrSingular)
}

// TestDegreeSweepMonotone fits F1 with n = 50 samples at degrees 0..10;
// the sample-grid MSE (the quantity least squares minimizes) must be
// non-increasing up to roundoff slack.
func TestDegreeSweepMonotone(t *testing.T) {
	f, err := catalog.Lookup(catalog.F1)
	require.NoError(t, err)
	xs, err := nodes.Uniform(50, f.A, f.B)
	require.NoError(t, err)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f.Eval(x)
	}

	mse := func(c []float64) float64 {
		s := 0.0
		for i, x := range xs {
			d := ys[i] - lsq.EvalPoly(c, x)
			s += d * d
		}
		return s / float64(len(xs))
	}

	prev := math.Inf(1)
	for m := 0; m <= 10; m++ {
		c, err := lsq.FitPoly(xs, ys, m)
		require.NoError(t, err, "degree %d", m)
		e := mse(c)
		require.LessOrEqual(t, e, prev*(1+1e-6), "degree %d", m)
		prev = e
	}
}

// TestFitTrigHarmonicGuard: n = 11 admits m = 5 and refuses m = 6, the
// floating comparison handling odd n (5 < 5.5 ≤ 6).
func TestFitTrigHarmonicGuard(t *testing.T) {
	xs := periodicGrid(11, 0, 2*math.Pi)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = math.Sin(x)
	}

	ts, err := lsq.FitTrig(xs, ys, 5, 0, 2*math.Pi)
	require.NoError(t, err)
	require.Len(t, ts.Coeffs, 11)

	_, err = lsq.FitTrig(xs, ys, 6, 0, 2*math.Pi)
	require.ErrorIs(t, err, lsq.ErrHarmonicLimit)
}

// TestFitTrigRecoversSeries synthesizes a harmonic-≤4 series on the
// periodic grid; discrete orthogonality must recover the coefficients and
// reproduce the samples to roundoff.
func TestFitTrigRecoversSeries(t *testing.T) {
	a, b := -1.0, 3.0
	omega := 2 * math.Pi / (b - a)
	gen := func(x float64) float64 {
		return 0.5 + 1.25*math.Cos(omega*x) - 2*math.Sin(2*omega*x) + 0.3*math.Cos(4*omega*x)
	}

	xs := periodicGrid(11, a, b)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = gen(x)
	}

	ts, err := lsq.FitTrig(xs, ys, 4, a, b)
	require.NoError(t, err)

	require.InDelta(t, 1.0, ts.Coeffs[0], 1e-12)    // a0 = 2·mean
	require.InDelta(t, 1.25, ts.Coeffs[1], 1e-12)   // a1
	require.InDelta(t, 0.0, ts.Coeffs[2], 1e-12)    // b1
	require.InDelta(t, -2.0, ts.Coeffs[4], 1e-12)   // b2
	require.InDelta(t, 0.3, ts.Coeffs[7], 1e-12)    // a4

	for i, x := range xs {
		require.InDelta(t, ys[i], ts.Eval(x), 1e-12, "sample %d", i)
	}
}

// TestFitTrigNonUniform rejects Chebyshev samples: the direct formulas are
// unsound off the uniform grid.
func TestFitTrigNonUniform(t *testing.T) {
	xs, err := nodes.Chebyshev(11, 0, 1)
	require.NoError(t, err)
	ys := make([]float64, len(xs))
	_, err = lsq.FitTrig(xs, ys, 2, 0, 1)
	require.ErrorIs(t, err, lsq.ErrNonUniform)
}
