package spline

// Quadratic is the C¹ piecewise-quadratic spline. On [xᵢ, xᵢ₊₁] the
// segment is Sᵢ(x) = yᵢ + sᵢ·t + cᵢ·t², t = x − xᵢ, with sᵢ = S′(xᵢ) and
// cᵢ = (yᵢ₊₁ − yᵢ − sᵢhᵢ)/hᵢ². Only the knots and the slope sequence are
// stored; cᵢ is reconstructed per query.
type Quadratic struct {
	xs, ys []float64
	s      []float64 // slopes at the knots
}

// NewQuadratic fits the quadratic spline. The slope sequence satisfies
// sᵢ + sᵢ₋₁ = 2(yᵢ − yᵢ₋₁)/hᵢ₋₁; the boundary tag supplies the one scalar
// that pins it and the sweep direction:
//
//   - ClampedStart(d):   s₀ = d, forward sweep i = 1..n−1
//   - ZeroSlopeStart():  s₀ = 0, forward sweep
//   - ClampedEnd(d):     s₍ₙ₋₁₎ = d, backward sweep i = n−2..0
//
// Cubic-family tags are rejected with ErrBoundary.
func NewQuadratic(xs, ys []float64, bc Boundary) (*Quadratic, error) {
	if err := checkKnots(xs, ys); err != nil {
		return nil, err
	}
	n := len(xs)

	q := &Quadratic{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
		s:  make([]float64, n),
	}

	switch bc.kind {
	case bcClampedStart, bcZeroSlopeStart:
		if bc.kind == bcClampedStart {
			q.s[0] = bc.da
		}
		for i := 1; i < n; i++ {
			q.s[i] = 2*(ys[i]-ys[i-1])/(xs[i]-xs[i-1]) - q.s[i-1]
		}
	case bcClampedEnd:
		q.s[n-1] = bc.db
		for i := n - 2; i >= 0; i-- {
			q.s[i] = 2*(ys[i+1]-ys[i])/(xs[i+1]-xs[i]) - q.s[i+1]
		}
	default:
		return nil, ErrBoundary
	}

	return q, nil
}

// coeff reconstructs the curvature coefficient of segment i.
func (q *Quadratic) coeff(i int) float64 {
	h := q.xs[i+1] - q.xs[i]
	return (q.ys[i+1] - q.ys[i] - q.s[i]*h) / (h * h)
}

// Eval evaluates the spline at x; queries outside the knot range
// extrapolate with the boundary segment.
func (q *Quadratic) Eval(x float64) float64 {
	i := locate(q.xs, x)
	t := x - q.xs[i]
	return q.ys[i] + q.s[i]*t + q.coeff(i)*t*t
}

// Deriv evaluates S′(x).
func (q *Quadratic) Deriv(x float64) float64 {
	i := locate(q.xs, x)
	t := x - q.xs[i]
	return q.s[i] + 2*q.coeff(i)*t
}

// Slopes returns a copy of the knot slope sequence.
func (q *Quadratic) Slopes() []float64 {
	return append([]float64(nil), q.s...)
}
