package roots

import "math"

// Newton runs the iteration x_{i+1} = x_i − f(x_i)/f′(x_i) from x0.
//
// Stall conditions: f′(x_i) == 0, or a non-finite update (overflowing
// quotient, NaN from the function). The stalled Result carries NaN as the
// root and the count of iterations that actually executed.
func Newton(f, df func(float64) float64, x0 float64, opt Options) Result {
	opt = opt.normalize()

	x := x0
	res := Result{Root: math.NaN(), Residual: math.NaN(), Status: MaxIterations}
	for i := 1; i <= opt.MaxIter; i++ {
		d := df(x)
		if d == 0 {
			res.Status = Stalled
			return res
		}
		next := x - f(x)/d
		if math.IsNaN(next) || math.IsInf(next, 0) {
			res.Status = Stalled
			return res
		}
		res.Iters = i

		ex := math.Abs(next - x)
		ef := math.Abs(f(next))
		x = next

		ok, r := opt.Criterion.met(ex, ef, opt.Tol)
		res.Residual = r
		if ok {
			res.Root, res.Status = x, Converged
			return res
		}
	}

	res.Root = x
	return res
}
