package linexp

import (
	"errors"
	"math"
	"math/big"

	"github.com/katalvlaran/lvlnum/core"
	"github.com/katalvlaran/lvlnum/solve"
)

// Sentinel errors returned by the experiment.
var (
	// ErrBadSize indicates a system size below one.
	ErrBadSize = errors.New("linexp: system size must be >= 1")

	// ErrUnknownFamily indicates a family tag outside the published pair.
	ErrUnknownFamily = errors.New("linexp: unknown matrix family")
)

// Family tags the published matrix generators.
type Family int

const (
	// FamilyBordered is Family I: ones on the first row and column,
	// 1/(r+c−1) elsewhere.
	FamilyBordered Family = iota

	// FamilySymmetric is Family II: 2r/c for c ≥ r, mirrored below.
	FamilySymmetric
)

// String returns the family name for table headers.
func (f Family) String() string {
	switch f {
	case FamilyBordered:
		return "bordered"
	case FamilySymmetric:
		return "symmetric"
	default:
		return "unknown"
	}
}

// Valid reports whether f is a published family.
func (f Family) Valid() bool { return f == FamilyBordered || f == FamilySymmetric }

// Build returns the n×n matrix of the family, row-major, at full double
// precision. Lanes narrow the entries themselves when they need to.
func Build(fam Family, n int) ([][]float64, error) {
	if n < 1 {
		return nil, ErrBadSize
	}
	if !fam.Valid() {
		return nil, ErrUnknownFamily
	}

	a := make([][]float64, n)
	for i := 0; i < n; i++ {
		a[i] = make([]float64, n)
		r := i + 1
		for j := 0; j < n; j++ {
			c := j + 1
			switch {
			case fam == FamilyBordered && (r == 1 || c == 1):
				a[i][j] = 1
			case fam == FamilyBordered:
				a[i][j] = 1 / float64(r+c-1)
			case c >= r: // FamilySymmetric upper triangle
				a[i][j] = 2 * float64(r) / float64(c)
			default:
				a[i][j] = a[j][i]
			}
		}
	}

	return a, nil
}

// NormOne returns the matrix 1-norm, the maximum absolute column sum.
func NormOne(a [][]float64) float64 {
	if len(a) == 0 {
		return 0
	}
	worst := 0.0
	for j := range a[0] {
		s := 0.0
		for i := range a {
			s += math.Abs(a[i][j])
		}
		if s > worst {
			worst = s
		}
	}
	return worst
}

// Report is one cell of the size×precision sweep.
type Report struct {
	// Family and N identify the system.
	Family Family
	N      int

	// Precision is the working width of the synthesize-and-solve run.
	Precision core.Precision

	// ForwardErr is ‖x − x*‖∞ against the planted ±1 solution; NaN when
	// the solve failed.
	ForwardErr float64

	// NormOne is ‖A‖₁, a cheap conditioning proxy for the summary table.
	NormOne float64
}

// Run builds the system, synthesizes b = A·x* at the working precision,
// solves at the same precision and reports the forward error.
//
// The planted solution x* is the seeded ±1 vector of SignVector, so a
// repeated Run with identical arguments is bit-identical.
func Run(fam Family, n int, p core.Precision) (Report, error) {
	if !p.Valid() {
		return Report{}, core.ErrBadPrecision
	}
	a, err := Build(fam, n)
	if err != nil {
		return Report{}, err
	}

	rep := Report{Family: fam, N: n, Precision: p, NormOne: NormOne(a)}
	xStar := SignVector(n)

	var x []float64
	switch p {
	case core.Single:
		x, err = runSingle(a, xStar)
	case core.Double:
		x, err = runDouble(a, xStar)
	default:
		x, err = runExtended(a, xStar)
	}
	if err != nil {
		return Report{}, err
	}

	worst := 0.0
	for i := range x {
		if d := math.Abs(x[i] - xStar[i]); d > worst {
			worst = d
		}
	}
	rep.ForwardErr = worst

	return rep, nil
}

// runDouble synthesizes and solves in the native double lane.
func runDouble(a [][]float64, xStar []float64) ([]float64, error) {
	n := len(a)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		s := 0.0
		for j := 0; j < n; j++ {
			s += a[i][j] * xStar[j]
		}
		b[i] = s
	}
	return solve.Gaussian(a, b)
}

// runSingle narrows the matrix entries, accumulates b in float32 and
// solves the float32 instantiation of the generic solver.
func runSingle(a [][]float64, xStar []float64) ([]float64, error) {
	n := len(a)
	a32 := make([][]float32, n)
	b32 := make([]float32, n)
	for i := 0; i < n; i++ {
		a32[i] = make([]float32, n)
		var s float32
		for j := 0; j < n; j++ {
			a32[i][j] = float32(a[i][j])
			s += a32[i][j] * float32(xStar[j])
		}
		b32[i] = s
	}
	x32, err := solve.Gaussian(a32, b32)
	if err != nil {
		return nil, err
	}
	x := make([]float64, n)
	for i, v := range x32 {
		x[i] = float64(v)
	}
	return x, nil
}

// runExtended lifts the system into the big.Float lane and rounds the
// solution back once.
func runExtended(a [][]float64, xStar []float64) ([]float64, error) {
	n := len(a)
	ab := make([][]*big.Float, n)
	bb := make([]*big.Float, n)
	tmp := new(big.Float).SetPrec(core.ExtendedPrec)
	for i := 0; i < n; i++ {
		ab[i] = core.ExtendedVec(a[i])
		s := core.NewExtended(0)
		for j := 0; j < n; j++ {
			tmp.SetFloat64(xStar[j])
			tmp.Mul(tmp, ab[i][j])
			s.Add(s, tmp)
		}
		bb[i] = s
	}
	xb, err := solve.GaussianBig(ab, bb)
	if err != nil {
		return nil, err
	}
	x := make([]float64, n)
	for i, v := range xb {
		x[i] = core.RoundBack(v)
	}
	return x, nil
}

// Sweep runs every size×precision cell of the family. A failed cell
// (singular solve) contributes a NaN-forward-error report; the sweep
// never aborts.
func Sweep(fam Family, sizes []int, precs []core.Precision) []Report {
	out := make([]Report, 0, len(sizes)*len(precs))
	for _, n := range sizes {
		for _, p := range precs {
			rep, err := Run(fam, n, p)
			if err != nil {
				rep = Report{Family: fam, N: n, Precision: p, ForwardErr: math.NaN(), NormOne: math.NaN()}
				if a, berr := Build(fam, n); berr == nil {
					rep.NormOne = NormOne(a)
				}
			}
			out = append(out, rep)
		}
	}
	return out
}
