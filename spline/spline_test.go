package spline_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlnum/catalog"
	"github.com/katalvlaran/lvlnum/nodes"
	"github.com/katalvlaran/lvlnum/spline"
)

// sample evaluates f over xs.
func sample(f func(float64) float64, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}

// SplineSuite exercises both engines across boundary families.
type SplineSuite struct {
	suite.Suite
}

// TestGuards verifies the shared sentinel errors.
func (s *SplineSuite) TestGuards() {
	_, err := spline.NewCubic([]float64{1}, []float64{1}, spline.Natural())
	require.ErrorIs(s.T(), err, spline.ErrTooFewNodes)

	_, err = spline.NewCubic([]float64{1, 2}, []float64{1}, spline.Natural())
	require.ErrorIs(s.T(), err, spline.ErrLengthMismatch)

	_, err = spline.NewQuadratic([]float64{2, 1}, []float64{0, 0}, spline.ZeroSlopeStart())
	require.ErrorIs(s.T(), err, spline.ErrNodesNotIncreasing)

	_, err = spline.NewQuadratic([]float64{1, 1}, []float64{0, 0}, spline.ZeroSlopeStart())
	require.ErrorIs(s.T(), err, spline.ErrNodesNotIncreasing)
}

// TestBoundaryFamilyMismatch verifies tags are rejected across engines.
func (s *SplineSuite) TestBoundaryFamilyMismatch() {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 1, 4}

	_, err := spline.NewQuadratic(xs, ys, spline.Natural())
	require.ErrorIs(s.T(), err, spline.ErrBoundary)
	_, err = spline.NewQuadratic(xs, ys, spline.Clamped(0, 0))
	require.ErrorIs(s.T(), err, spline.ErrBoundary)

	_, err = spline.NewCubic(xs, ys, spline.ClampedStart(0))
	require.ErrorIs(s.T(), err, spline.ErrBoundary)
	_, err = spline.NewCubic(xs, ys, spline.ZeroSlopeStart())
	require.ErrorIs(s.T(), err, spline.ErrBoundary)
}

// TestQuadraticReproducesParabola: with the exact start slope, the C¹
// engine reconstructs a quadratic polynomial to roundoff, both sweeps.
func (s *SplineSuite) TestQuadraticReproducesParabola() {
	f := func(x float64) float64 { return 2*x*x - 3*x + 1 }
	df := func(x float64) float64 { return 4*x - 3 }
	xs, err := nodes.Uniform(7, -2, 3)
	require.NoError(s.T(), err)
	ys := sample(f, xs)

	fw, err := spline.NewQuadratic(xs, ys, spline.ClampedStart(df(xs[0])))
	require.NoError(s.T(), err)
	bw, err := spline.NewQuadratic(xs, ys, spline.ClampedEnd(df(xs[len(xs)-1])))
	require.NoError(s.T(), err)

	for _, x := range []float64{-1.9, -0.4, 0.77, 1.5, 2.9} {
		require.InDelta(s.T(), f(x), fw.Eval(x), 1e-11, "forward x=%v", x)
		require.InDelta(s.T(), f(x), bw.Eval(x), 1e-11, "backward x=%v", x)
		require.InDelta(s.T(), df(x), fw.Deriv(x), 1e-10, "forward slope x=%v", x)
	}
}

// TestZeroSlopeStart pins s₀ = 0.
func (s *SplineSuite) TestZeroSlopeStart() {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{1, 2, 0, 1}
	q, err := spline.NewQuadratic(xs, ys, spline.ZeroSlopeStart())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, q.Slopes()[0])
	require.Equal(s.T(), 0.0, q.Deriv(0))
}

// TestQuadraticC1Continuity: value and first-derivative jumps at interior
// knots stay below 1e-10 (the curvature jump is allowed for this engine).
func (s *SplineSuite) TestQuadraticC1Continuity() {
	f, err := catalog.Lookup(catalog.F1)
	require.NoError(s.T(), err)
	xs, err := nodes.Uniform(15, f.A, f.B)
	require.NoError(s.T(), err)
	ys := sample(f.Eval, xs)

	q, err := spline.NewQuadratic(xs, ys, spline.ClampedStart(f.Deriv(xs[0])))
	require.NoError(s.T(), err)

	const h = 1e-9
	for i := 1; i < len(xs)-1; i++ {
		x := xs[i]
		require.InDelta(s.T(), q.Eval(x-h), q.Eval(x+h), 1e-6, "value at knot %d", i)
		require.InDelta(s.T(), q.Deriv(x-h), q.Deriv(x+h), 1e-5, "slope at knot %d", i)
	}
}

// TestCubicNaturalLine: a straight line has zero moments everywhere.
func (s *SplineSuite) TestCubicNaturalLine() {
	xs := []float64{0, 1, 2.5, 4}
	ys := []float64{1, 3, 6, 9}
	c, err := spline.NewCubic(xs, ys, spline.Natural())
	require.NoError(s.T(), err)
	for _, m := range c.Moments() {
		require.InDelta(s.T(), 0.0, m, 1e-12)
	}
	require.InDelta(s.T(), 5.0, c.Eval(2), 1e-12)
	require.InDelta(s.T(), 2.0, c.Deriv(3.3), 1e-12)
	require.InDelta(s.T(), 0.0, c.Deriv2(1.7), 1e-12)
}

// TestCubicClampedReproducesCubic: the clamped engine is exact on cubic
// polynomials when the end slopes are exact.
func (s *SplineSuite) TestCubicClampedReproducesCubic() {
	f := func(x float64) float64 { return x*x*x - 2*x*x + x - 5 }
	df := func(x float64) float64 { return 3*x*x - 4*x + 1 }
	xs, err := nodes.Uniform(6, -1, 2)
	require.NoError(s.T(), err)
	ys := sample(f, xs)

	c, err := spline.NewCubic(xs, ys, spline.Clamped(df(xs[0]), df(xs[len(xs)-1])))
	require.NoError(s.T(), err)

	for _, x := range []float64{-0.9, -0.1, 0.42, 1.3, 1.95} {
		require.InDelta(s.T(), f(x), c.Eval(x), 1e-11, "x=%v", x)
		require.InDelta(s.T(), df(x), c.Deriv(x), 1e-10, "slope x=%v", x)
	}
}

// TestCubicC2Continuity: value, slope and curvature jumps at interior
// knots stay below 1e-10 on a genuine transcendental sample.
func (s *SplineSuite) TestCubicC2Continuity() {
	f, err := catalog.Lookup(catalog.F1)
	require.NoError(s.T(), err)
	xs, err := nodes.Uniform(12, f.A, f.B)
	require.NoError(s.T(), err)
	ys := sample(f.Eval, xs)

	c, err := spline.NewCubic(xs, ys, spline.Clamped(f.Deriv(f.A), f.Deriv(f.B)))
	require.NoError(s.T(), err)

	for i := 1; i < len(xs)-1; i++ {
		x := xs[i]
		lo, hi := math.Nextafter(x, math.Inf(-1)), math.Nextafter(x, math.Inf(1))
		require.InDelta(s.T(), c.Eval(lo), c.Eval(hi), 1e-10, "value at knot %d", i)
		require.InDelta(s.T(), c.Deriv(lo), c.Deriv(hi), 1e-10, "slope at knot %d", i)
		require.InDelta(s.T(), c.Deriv2(lo), c.Deriv2(hi), 1e-10, "curvature at knot %d", i)
	}
}

// TestCubicConvergenceRate: halving h divides the clamped-spline error by
// roughly 16 (fourth order). The first doubling is pre-asymptotic on this
// oscillatory interval, so only the later ratios are pinned.
func (s *SplineSuite) TestCubicConvergenceRate() {
	f, err := catalog.Lookup(catalog.F1)
	require.NoError(s.T(), err)
	grid, err := nodes.Uniform(1000, f.A, f.B)
	require.NoError(s.T(), err)

	maxErr := func(n int) float64 {
		xs, err := nodes.Uniform(n, f.A, f.B)
		require.NoError(s.T(), err)
		ys := sample(f.Eval, xs)
		c, err := spline.NewCubic(xs, ys, spline.Clamped(f.Deriv(f.A), f.Deriv(f.B)))
		require.NoError(s.T(), err)
		worst := 0.0
		for _, x := range grid {
			if d := math.Abs(c.Eval(x) - f.Eval(x)); d > worst {
				worst = d
			}
		}
		return worst
	}

	e10, e20, e40, e80 := maxErr(10), maxErr(20), maxErr(40), maxErr(80)
	require.Greater(s.T(), e10, e20)
	require.Greater(s.T(), e20, e40)
	require.Greater(s.T(), e40, e80)
	require.Greater(s.T(), e20/e40, 6.0, "rate between n=20 and n=40")
	require.Greater(s.T(), e40/e80, 6.0, "rate between n=40 and n=80")
	require.Greater(s.T(), e10/e80, 500.0, "overall fourth-order gain")
}

// TestExtrapolationClamping: queries outside the knot range use the
// boundary segments.
func (s *SplineSuite) TestExtrapolationClamping() {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 1, 0}
	c, err := spline.NewCubic(xs, ys, spline.Natural())
	require.NoError(s.T(), err)
	// continuity across the boundary knot into the extrapolated region
	require.InDelta(s.T(), c.Eval(0), c.Eval(-1e-9), 1e-6)
	require.InDelta(s.T(), c.Eval(2), c.Eval(2+1e-9), 1e-6)
}

func TestSplineSuite(t *testing.T) {
	suite.Run(t, new(SplineSuite))
}
