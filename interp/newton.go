package interp

// Newton is the divided-difference form of the interpolating polynomial.
// The n×n triangle is built once by NewNewton and discarded; only the top
// row (the Newton coefficients) and the abscissae survive on the value.
type Newton struct {
	xs    []float64 // copy of the abscissae, ascending
	coeff []float64 // D[0][k], k = 0..n−1
}

// NewNewton builds the divided-difference triangle for the sample set and
// returns the reusable interpolant.
//
// The triangle is computed column by column in a single n×n scratch table
// D with D[i][0] = yᵢ and D[i][j] = (D[i+1][j−1] − D[i][j−1])/(x_{i+j} −
// xᵢ); the table is released when the constructor returns.
//
// Complexity: O(n²) build, O(n) retained.
func NewNewton(xs, ys []float64) (*Newton, error) {
	if err := checkSamples(xs, ys); err != nil {
		return nil, err
	}
	n := len(xs)

	d := make([][]float64, n)
	for i := 0; i < n; i++ {
		d[i] = make([]float64, n)
		d[i][0] = ys[i]
	}
	for j := 1; j < n; j++ {
		for i := 0; i+j < n; i++ {
			d[i][j] = (d[i+1][j-1] - d[i][j-1]) / (xs[i+j] - xs[i])
		}
	}

	nw := &Newton{
		xs:    append([]float64(nil), xs...),
		coeff: make([]float64, n),
	}
	for k := 0; k < n; k++ {
		nw.coeff[k] = d[0][k]
	}

	return nw, nil
}

// Eval evaluates the interpolant at x using the nested Newton form:
// D₀₀ + Σ_k D₀ₖ Π_{j<k} (x − xⱼ).
//
// Complexity: O(n) per query, allocation-free.
func (nw *Newton) Eval(x float64) float64 {
	n := len(nw.coeff)
	s := nw.coeff[n-1]
	for k := n - 2; k >= 0; k-- {
		s = s*(x-nw.xs[k]) + nw.coeff[k]
	}
	return s
}

// Degree returns the polynomial degree of the interpolant, n−1.
func (nw *Newton) Degree() int { return len(nw.coeff) - 1 }
