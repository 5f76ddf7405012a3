// Package solve: the Extended-lane variant of the dense solver.
// Identical elimination order to Gaussian, carried on *big.Float values so
// the linear-system experiments can study a third rounding width.
package solve

import (
	"math/big"

	"github.com/katalvlaran/lvlnum/core"
)

// GaussianBig solves a·x = b with partial pivoting on *big.Float values.
//
// All values are expected in the Extended lane (core.ExtendedPrec mantissa
// bits); the result inherits the operand precision. As with Gaussian, a
// and b are consumed in place and the solution is the sole output.
//
// The singularity test mirrors the native path: a pivot with absolute
// value below PivotTol aborts with ErrSingular.
func GaussianBig(a [][]*big.Float, b []*big.Float) ([]*big.Float, error) {
	n := len(a)
	if n == 0 || len(b) != n {
		return nil, solveErrorf(opGaussianBig, ErrBadShape)
	}
	for i := 0; i < n; i++ {
		if len(a[i]) != n {
			return nil, solveErrorf(opGaussianBig, ErrBadShape)
		}
	}

	tol := core.NewExtended(PivotTol)
	abs := new(big.Float).SetPrec(core.ExtendedPrec)
	tmp := new(big.Float).SetPrec(core.ExtendedPrec)

	for k := 0; k < n; k++ {
		// partial pivot on |a[i][k]|, i >= k
		piv := k
		best := new(big.Float).SetPrec(core.ExtendedPrec).Abs(a[k][k])
		for i := k + 1; i < n; i++ {
			abs.Abs(a[i][k])
			if abs.Cmp(best) > 0 {
				best.Set(abs)
				piv = i
			}
		}
		if best.Cmp(tol) < 0 {
			return nil, solveErrorf(opGaussianBig, ErrSingular)
		}
		if piv != k {
			a[k], a[piv] = a[piv], a[k]
			b[k], b[piv] = b[piv], b[k]
		}

		for i := k + 1; i < n; i++ {
			if a[i][k].Sign() == 0 {
				continue
			}
			f := new(big.Float).SetPrec(core.ExtendedPrec).Quo(a[i][k], a[k][k])
			a[i][k].SetFloat64(0)
			for j := k + 1; j < n; j++ {
				tmp.Mul(f, a[k][j])
				a[i][j].Sub(a[i][j], tmp)
			}
			tmp.Mul(f, b[k])
			b[i].Sub(b[i], tmp)
		}
	}

	x := make([]*big.Float, n)
	for i := n - 1; i >= 0; i-- {
		s := new(big.Float).SetPrec(core.ExtendedPrec).Set(b[i])
		for j := i + 1; j < n; j++ {
			tmp.Mul(a[i][j], x[j])
			s.Sub(s, tmp)
		}
		x[i] = s.Quo(s, a[i][i])
	}

	return x, nil
}
