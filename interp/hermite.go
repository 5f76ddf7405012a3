package interp

import "math"

// Hermite is the generalized divided-difference interpolant matching both
// values and first derivatives at every node. Its degree is 2n−1.
type Hermite struct {
	zs    []float64 // duplicated abscissae z₂ᵢ = z₂ᵢ₊₁ = xᵢ, length 2n
	coeff []float64 // top triangle row, length 2n
}

// NewHermite builds the generalized divided-difference triangle over the
// duplicated abscissae and returns the reusable interpolant.
//
// First column: D[2i][0] = D[2i+1][0] = yᵢ. In column one, the duplicated
// slots (even i) take the supplied derivative y′ᵢ directly; every other
// entry is an ordinary divided difference. For distinct input nodes no
// further zero denominator can occur; if one does, the entry becomes NaN
// and propagates to the evaluation rather than failing the build.
//
// Complexity: O(n²) build, O(n) retained.
func NewHermite(xs, ys, yps []float64) (*Hermite, error) {
	if err := checkSamples(xs, ys); err != nil {
		return nil, err
	}
	if len(yps) != len(xs) {
		return nil, ErrLengthMismatch
	}
	n := len(xs)
	m := 2 * n

	zs := make([]float64, m)
	d := make([][]float64, m)
	for i := 0; i < n; i++ {
		zs[2*i], zs[2*i+1] = xs[i], xs[i]
	}
	for i := 0; i < m; i++ {
		d[i] = make([]float64, m)
		d[i][0] = ys[i/2]
	}

	for j := 1; j < m; j++ {
		for i := 0; i+j < m; i++ {
			den := zs[i+j] - zs[i]
			switch {
			case j == 1 && i%2 == 0:
				// duplicated abscissa: the first-order difference is the derivative
				d[i][1] = yps[i/2]
			case den == 0:
				// unexpected coincidence; poison the entry and keep going
				d[i][j] = math.NaN()
			default:
				d[i][j] = (d[i+1][j-1] - d[i][j-1]) / den
			}
		}
	}

	hm := &Hermite{zs: zs, coeff: make([]float64, m)}
	for k := 0; k < m; k++ {
		hm.coeff[k] = d[0][k]
	}

	return hm, nil
}

// Eval evaluates the Hermite interpolant at x with the Newton formula over
// the duplicated abscissae. O(n) per query, allocation-free.
func (hm *Hermite) Eval(x float64) float64 {
	m := len(hm.coeff)
	s := hm.coeff[m-1]
	for k := m - 2; k >= 0; k-- {
		s = s*(x-hm.zs[k]) + hm.coeff[k]
	}
	return s
}

// Degree returns the polynomial degree of the interpolant, 2n−1.
func (hm *Hermite) Degree() int { return len(hm.coeff) - 1 }
