package interp

// Lagrange evaluates the interpolating polynomial through (xsᵢ, ysᵢ) at x
// in the direct Lagrange form Σ yᵢ Π_{j≠i} (x−xⱼ)/(xᵢ−xⱼ).
//
// No state is built: every call pays the full O(n²) product. Drivers that
// sweep a dense grid should prefer the Newton form.
//
// NaN values in ys poison the result naturally; the denominators are
// nonzero by the strictly-increasing precondition.
func Lagrange(xs, ys []float64, x float64) (float64, error) {
	if err := checkSamples(xs, ys); err != nil {
		return 0, err
	}

	s := 0.0
	for i := range xs {
		l := 1.0
		for j := range xs {
			if j == i {
				continue
			}
			l *= (x - xs[j]) / (xs[i] - xs[j])
		}
		s += ys[i] * l
	}

	return s, nil
}
