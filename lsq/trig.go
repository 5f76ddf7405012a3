package lsq

import "math"

// uniformTol is the relative spacing deviation above which a sample grid
// is rejected as non-uniform by FitTrig.
const uniformTol = 1e-8

// TrigSeries is a fitted trigonometric least-squares approximant
//
//	T_m(x) = a₀/2 + Σ_{k=1..m} [aₖ·cos(kωx) + bₖ·sin(kωx)]
//
// with fundamental frequency ω = 2π/(b−a). The coefficient layout in
// Coeffs is (a₀, a₁, b₁, a₂, b₂, …, a_m, b_m); b₀ has no slot.
type TrigSeries struct {
	// Coeffs is the packed coefficient vector, length 2m+1.
	Coeffs []float64

	// Omega is the fundamental frequency 2π/(b−a).
	Omega float64

	// M is the maximum harmonic.
	M int
}

// FitTrig computes the direct-formula trigonometric least-squares
// coefficients of the uniform samples (xs, ys) on [a, b]:
//
//	aₖ = (2/n) Σ yᵢ·cos(kωxᵢ),  bₖ = (2/n) Σ yᵢ·sin(kωxᵢ)
//
// for k = 0..m. The harmonic guard is strict and carried out in floating
// point so odd n is handled: float64(m) ≥ float64(n)/2 fails with
// ErrHarmonicLimit and writes no coefficients.
//
// The direct formulas are a genuine least-squares solution only on
// (approximately) uniform grids; visibly non-uniform spacing is refused
// with ErrNonUniform rather than silently producing an unsound fit.
func FitTrig(xs, ys []float64, m int, a, b float64) (*TrigSeries, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}
	n := len(xs)
	if m < 0 || n < 1 {
		return nil, ErrArity
	}
	if float64(m) >= float64(n)/2 {
		return nil, ErrHarmonicLimit
	}
	if err := checkUniform(xs); err != nil {
		return nil, err
	}

	omega := 2 * math.Pi / (b - a)
	coeffs := make([]float64, 2*m+1)

	// a0
	s := 0.0
	for _, y := range ys {
		s += y
	}
	coeffs[0] = 2 * s / float64(n)

	// higher harmonics
	for k := 1; k <= m; k++ {
		ca, cb := 0.0, 0.0
		kw := float64(k) * omega
		for i, x := range xs {
			ca += ys[i] * math.Cos(kw*x)
			cb += ys[i] * math.Sin(kw*x)
		}
		coeffs[2*k-1] = 2 * ca / float64(n)
		coeffs[2*k] = 2 * cb / float64(n)
	}

	return &TrigSeries{Coeffs: coeffs, Omega: omega, M: m}, nil
}

// Eval evaluates the fitted series at x.
func (t *TrigSeries) Eval(x float64) float64 {
	s := t.Coeffs[0] / 2
	for k := 1; k <= t.M; k++ {
		kw := float64(k) * t.Omega
		s += t.Coeffs[2*k-1]*math.Cos(kw*x) + t.Coeffs[2*k]*math.Sin(kw*x)
	}
	return s
}

// checkUniform verifies the sample spacing is constant within uniformTol
// relative deviation. Single-sample grids pass trivially.
func checkUniform(xs []float64) error {
	if len(xs) < 3 {
		return nil
	}
	h := xs[1] - xs[0]
	span := math.Abs(xs[len(xs)-1] - xs[0])
	for i := 2; i < len(xs); i++ {
		if math.Abs((xs[i]-xs[i-1])-h) > uniformTol*span {
			return ErrNonUniform
		}
	}
	return nil
}
