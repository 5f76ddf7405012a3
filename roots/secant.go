package roots

import "math"

// Secant runs the iteration
//
//	x_{i+1} = x_i − f(x_i)·(x_i − x_{i−1}) / (f(x_i) − f(x_{i−1}))
//
// from the pair (x0, x1).
//
// Identical starting points are rejected as Stalled with zero iterations.
// A vanishing denominator mid-run is Stalled — unless the tolerance
// already holds at the current iterate, in which case the run reports
// Converged: the iterate is already an acceptable answer (see the package
// comment; this mirrors the reference behavior on purpose).
func Secant(f func(float64) float64, x0, x1 float64, opt Options) Result {
	opt = opt.normalize()

	if x0 == x1 {
		return Result{Root: math.NaN(), Residual: math.NaN(), Status: Stalled}
	}

	prev, cur := x0, x1
	fPrev, fCur := f(x0), f(x1)
	res := Result{Root: math.NaN(), Residual: math.NaN(), Status: MaxIterations}
	for i := 1; i <= opt.MaxIter; i++ {
		den := fCur - fPrev
		if den == 0 {
			// flat chord: accept the current iterate iff it already passes
			ex := math.Abs(cur - prev)
			ef := math.Abs(fCur)
			if ok, r := opt.Criterion.met(ex, ef, opt.Tol); ok {
				return Result{Root: cur, Iters: res.Iters, Residual: r, Status: Converged}
			}
			res.Status = Stalled
			return res
		}

		next := cur - fCur*(cur-prev)/den
		if math.IsNaN(next) || math.IsInf(next, 0) {
			res.Status = Stalled
			return res
		}
		res.Iters = i

		ex := math.Abs(next - cur)
		prev, fPrev = cur, fCur
		cur, fCur = next, f(next)
		ef := math.Abs(fCur)

		ok, r := opt.Criterion.met(ex, ef, opt.Tol)
		res.Residual = r
		if ok {
			res.Root, res.Status = cur, Converged
			return res
		}
	}

	res.Root = cur
	return res
}
