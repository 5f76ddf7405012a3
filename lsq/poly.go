package lsq

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvlnum/poly"
	"github.com/katalvlaran/lvlnum/solve"
)

// Sentinel errors returned by the fitters.
var (
	// ErrArity indicates an invalid (n, m) pairing: m < 0 or n <= m.
	ErrArity = errors.New("lsq: need more samples than coefficients (n > m >= 0)")

	// ErrLengthMismatch indicates len(xs) != len(ys).
	ErrLengthMismatch = errors.New("lsq: sample sequences must have equal length")

	// ErrHarmonicLimit indicates m >= n/2 in the trigonometric fit.
	ErrHarmonicLimit = errors.New("lsq: harmonic count must satisfy m < n/2")

	// ErrNonUniform indicates non-uniform samples fed to the direct
	// trigonometric formulas, which are only a least-squares solution on
	// uniform grids.
	ErrNonUniform = errors.New("lsq: trigonometric fit requires uniform samples")
)

// FitPoly fits the degree-m least-squares polynomial to the samples via
// the normal equations G·a = B with G[j][k] = Σ xᵢ^(j+k) and
// B[j] = Σ yᵢ·xᵢ^j, solved by Gaussian elimination with partial pivoting.
//
// Powers 0 and 1 are taken directly instead of through math.Pow. The
// coefficient vector is ascending: c[0] is the constant term.
//
// A singular Gram matrix (high degree, clustered samples) is reported via
// solve.ErrSingular; nothing is guessed. The Gram matrix and right-hand
// side are scoped to this call.
//
// Complexity: O(n·m + m³) time, O(m²) space.
func FitPoly(xs, ys []float64, degree int) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}
	if degree < 0 || len(xs) <= degree {
		return nil, ErrArity
	}
	m := degree + 1
	n := len(xs)

	// power sums S_p = Σ xᵢ^p for p = 0..2·degree feed every Gram entry
	sums := make([]float64, 2*degree+1)
	sums[0] = float64(n)
	if degree > 0 {
		for _, x := range xs {
			sums[1] += x
		}
		for p := 2; p <= 2*degree; p++ {
			for _, x := range xs {
				sums[p] += math.Pow(x, float64(p))
			}
		}
	}

	g := make([][]float64, m)
	for j := 0; j < m; j++ {
		g[j] = make([]float64, m)
		for k := 0; k < m; k++ {
			g[j][k] = sums[j+k]
		}
	}

	b := make([]float64, m)
	for i, x := range xs {
		b[0] += ys[i]
		if degree > 0 {
			b[1] += ys[i] * x
		}
		for j := 2; j < m; j++ {
			b[j] += ys[i] * math.Pow(x, float64(j))
		}
	}

	return solve.Gaussian(g, b)
}

// EvalPoly evaluates an ascending coefficient vector by Horner's scheme.
func EvalPoly(c []float64, x float64) float64 {
	return poly.Horner(c, x)
}
