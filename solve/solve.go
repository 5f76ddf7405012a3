package solve

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlnum/core"
)

// PivotTol is the magnitude below which a dense pivot is declared singular.
const PivotTol = 1e-12

// Sentinel errors returned by the solvers.
var (
	// ErrBadShape indicates an empty, ragged, or length-mismatched system.
	ErrBadShape = errors.New("solve: invalid system shape")

	// ErrSingular indicates a (near-)singular matrix: no usable pivot.
	ErrSingular = errors.New("solve: singular or near-singular matrix")
)

// Operation tags for uniform error wrapping.
const (
	opGaussian    = "Gaussian"
	opGaussianBig = "GaussianBig"
	opTridiagonal = "Tridiagonal"
)

// solveErrorf wraps err with an operation tag, preserving errors.Is matching.
func solveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// checkDense validates a square row-major system against its right-hand side.
func checkDense[T core.Float](a [][]T, b []T) error {
	n := len(a)
	if n == 0 || len(b) != n {
		return ErrBadShape
	}
	for i := 0; i < n; i++ {
		if len(a[i]) != n {
			return ErrBadShape
		}
	}
	return nil
}

// Gaussian solves the dense square system a·x = b by Gaussian elimination
// with partial pivoting, generic over the native float widths.
//
// Both a and b are consumed: elimination rewrites them in place. The
// returned solution is a fresh slice of length n.
//
// Pivoting: for each column k the row with the largest |a[i][k]|, i ≥ k,
// is swapped up. A pivot below PivotTol aborts with ErrSingular — the
// routine never divides by a vanishing pivot.
//
// Complexity: O(n³) time, O(n) extra space.
func Gaussian[T core.Float](a [][]T, b []T) ([]T, error) {
	if err := checkDense(a, b); err != nil {
		return nil, solveErrorf(opGaussian, err)
	}
	n := len(a)

	for k := 0; k < n; k++ {
		// partial pivot: largest magnitude in column k at or below the diagonal
		piv := k
		best := math.Abs(float64(a[k][k]))
		for i := k + 1; i < n; i++ {
			if m := math.Abs(float64(a[i][k])); m > best {
				best, piv = m, i
			}
		}
		if best < PivotTol {
			return nil, solveErrorf(opGaussian, ErrSingular)
		}
		if piv != k {
			a[k], a[piv] = a[piv], a[k]
			b[k], b[piv] = b[piv], b[k]
		}

		// eliminate subdiagonal entries of column k
		for i := k + 1; i < n; i++ {
			f := a[i][k] / a[k][k]
			if f == 0 {
				continue
			}
			a[i][k] = 0
			for j := k + 1; j < n; j++ {
				a[i][j] -= f * a[k][j]
			}
			b[i] -= f * b[k]
		}
	}

	// back-substitution, bottom row up
	x := make([]T, n)
	for i := n - 1; i >= 0; i-- {
		s := b[i]
		for j := i + 1; j < n; j++ {
			s -= a[i][j] * x[j]
		}
		x[i] = s / a[i][i]
	}

	return x, nil
}

// Tridiagonal solves the tridiagonal system with subdiagonal sub, main
// diagonal diag, superdiagonal sup and right-hand side rhs by the Thomas
// two-sweep scheme.
//
// Shape contract: len(diag) == len(rhs) == n ≥ 1, len(sub) == len(sup) ==
// n−1. Inputs are not mutated; the sweeps run on scratch copies. A zero
// pivot at any forward step aborts with ErrSingular.
//
// Complexity: O(n) time, O(n) extra space.
func Tridiagonal(sub, diag, sup, rhs []float64) ([]float64, error) {
	n := len(diag)
	if n == 0 || len(rhs) != n || len(sub) != n-1 || len(sup) != n-1 {
		return nil, solveErrorf(opTridiagonal, ErrBadShape)
	}

	// forward sweep on scratch copies: normalize each row, kill the subdiagonal
	cp := make([]float64, n) // modified superdiagonal
	dp := make([]float64, n) // modified right-hand side
	if diag[0] == 0 {
		return nil, solveErrorf(opTridiagonal, ErrSingular)
	}
	cp[0] = 0
	if n > 1 {
		cp[0] = sup[0] / diag[0]
	}
	dp[0] = rhs[0] / diag[0]
	for i := 1; i < n; i++ {
		den := diag[i] - sub[i-1]*cp[i-1]
		if den == 0 {
			return nil, solveErrorf(opTridiagonal, ErrSingular)
		}
		if i < n-1 {
			cp[i] = sup[i] / den
		}
		dp[i] = (rhs[i] - sub[i-1]*dp[i-1]) / den
	}

	// back-substitution
	x := make([]float64, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}

	return x, nil
}
