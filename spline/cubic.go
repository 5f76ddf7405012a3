package spline

import "github.com/katalvlaran/lvlnum/solve"

// Cubic is the C² piecewise-cubic spline. The unknowns are the knot second
// derivatives (moments) Mᵢ = S″(xᵢ); segment coefficients are reconstructed
// from (xᵢ, yᵢ, Mᵢ) on every query.
type Cubic struct {
	xs, ys []float64
	m      []float64 // moments at the knots
}

// NewCubic fits the cubic spline by assembling the moment system
//
//	hᵢ₋₁Mᵢ₋₁ + 2(hᵢ₋₁+hᵢ)Mᵢ + hᵢMᵢ₊₁ = 6[(yᵢ₊₁−yᵢ)/hᵢ − (yᵢ−yᵢ₋₁)/hᵢ₋₁]
//
// for the interior knots, closed by the boundary rows of the tag:
//
//   - Natural():        M₀ = 0, M₍ₙ₋₁₎ = 0
//   - Clamped(da, db):  2h₀M₀ + h₀M₁ = 6[(y₁−y₀)/h₀ − da] and
//     h₍ₙ₋₂₎M₍ₙ₋₂₎ + 2h₍ₙ₋₂₎M₍ₙ₋₁₎ = 6[db − (y₍ₙ₋₁₎−y₍ₙ₋₂₎)/h₍ₙ₋₂₎]
//
// and solved with the Thomas tridiagonal solver. Quadratic-family tags are
// rejected with ErrBoundary. The work arrays are scoped to this call.
func NewCubic(xs, ys []float64, bc Boundary) (*Cubic, error) {
	if err := checkKnots(xs, ys); err != nil {
		return nil, err
	}
	if bc.kind != bcNatural && bc.kind != bcClamped {
		return nil, ErrBoundary
	}
	n := len(xs)

	sub := make([]float64, n-1)
	diag := make([]float64, n)
	sup := make([]float64, n-1)
	rhs := make([]float64, n)

	// interior rows
	for i := 1; i < n-1; i++ {
		h0 := xs[i] - xs[i-1]
		h1 := xs[i+1] - xs[i]
		sub[i-1] = h0
		diag[i] = 2 * (h0 + h1)
		sup[i] = h1
		rhs[i] = 6 * ((ys[i+1]-ys[i])/h1 - (ys[i]-ys[i-1])/h0)
	}

	// boundary rows
	switch bc.kind {
	case bcNatural:
		diag[0], sup[0], rhs[0] = 1, 0, 0
		diag[n-1], sub[n-2], rhs[n-1] = 1, 0, 0
	case bcClamped:
		h0 := xs[1] - xs[0]
		hl := xs[n-1] - xs[n-2]
		diag[0], sup[0] = 2*h0, h0
		rhs[0] = 6 * ((ys[1]-ys[0])/h0 - bc.da)
		diag[n-1], sub[n-2] = 2*hl, hl
		rhs[n-1] = 6 * (bc.db - (ys[n-1]-ys[n-2])/hl)
	}

	m, err := solve.Tridiagonal(sub, diag, sup, rhs)
	if err != nil {
		return nil, err
	}

	return &Cubic{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
		m:  m,
	}, nil
}

// Eval evaluates the spline at x from the moment form
//
//	Sᵢ(x) = yᵢ + [Δᵢ − hᵢ(Mᵢ₊₁+2Mᵢ)/6]·t + Mᵢ/2·t² + (Mᵢ₊₁−Mᵢ)/(6hᵢ)·t³
//
// with t = x − xᵢ and Δᵢ = (yᵢ₊₁−yᵢ)/hᵢ.
func (c *Cubic) Eval(x float64) float64 {
	i := locate(c.xs, x)
	h := c.xs[i+1] - c.xs[i]
	t := x - c.xs[i]
	delta := (c.ys[i+1] - c.ys[i]) / h
	b := delta - h*(c.m[i+1]+2*c.m[i])/6
	return c.ys[i] + t*(b+t*(c.m[i]/2+t*(c.m[i+1]-c.m[i])/(6*h)))
}

// Deriv evaluates S′(x).
func (c *Cubic) Deriv(x float64) float64 {
	i := locate(c.xs, x)
	h := c.xs[i+1] - c.xs[i]
	t := x - c.xs[i]
	delta := (c.ys[i+1] - c.ys[i]) / h
	b := delta - h*(c.m[i+1]+2*c.m[i])/6
	return b + t*(c.m[i]+t*(c.m[i+1]-c.m[i])/(2*h))
}

// Deriv2 evaluates S″(x); it is linear on each segment.
func (c *Cubic) Deriv2(x float64) float64 {
	i := locate(c.xs, x)
	h := c.xs[i+1] - c.xs[i]
	t := x - c.xs[i]
	return c.m[i] + t*(c.m[i+1]-c.m[i])/h
}

// Moments returns a copy of the knot moment sequence.
func (c *Cubic) Moments() []float64 {
	return append([]float64(nil), c.m...)
}
