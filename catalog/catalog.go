package catalog

import (
	"math"
	"sort"
)

// Parameters of the published entries. Fixed for the whole program;
// a different parameterization is a different catalog entry.
const (
	// f1 parameters: sin(F1K·x/π) · exp(−F1M·x/π).
	F1K = 4.0
	F1M = 0.4

	// f2 exponents: x^F2N + x^F2M.
	F2N = 14
	F2M = 13
)

// p8Coeffs are the expanded coefficients of (x−1)⁸, ascending degree.
var p8Coeffs = [9]float64{1, -8, 28, -56, 70, -56, 28, -8, 1}

// Study intervals. The P8 window brackets the root x = 1 where the four
// forms disagree; F1/F2 intervals come with the functions themselves.
var (
	p8A, p8B = 0.99, 1.01
	f1A, f1B = -2 * math.Pi * math.Pi, math.Pi * math.Pi
	f2A, f2B = -1.4, 0.6
)

// p8NaiveEval sums the expanded monomials, each power computed on its own.
// Deliberately cancellation-prone near x = 1.
func p8NaiveEval(x float64) float64 {
	s := 0.0
	for i, c := range p8Coeffs {
		p := 1.0
		for k := 0; k < i; k++ {
			p *= x
		}
		s += c * p
	}
	return s
}

// p8HornerEval evaluates the same coefficients in Horner form.
func p8HornerEval(x float64) float64 {
	s := p8Coeffs[len(p8Coeffs)-1]
	for i := len(p8Coeffs) - 2; i >= 0; i-- {
		s = s*x + p8Coeffs[i]
	}
	return s
}

// p8PowerEval computes (x−1)⁸ by repeated squaring of the binomial.
func p8PowerEval(x float64) float64 {
	d := x - 1
	d2 := d * d
	d4 := d2 * d2
	return d4 * d4
}

// p8ExpLogEval computes exp(8·ln|x−1|). At x = 1 the logarithm diverges
// and the product 8·(−Inf) → exp(−Inf) would give 0; the formula is
// undefined there and the entry reports NaN instead.
func p8ExpLogEval(x float64) float64 {
	if x == 1 {
		return math.NaN()
	}
	return math.Exp(8 * math.Log(math.Abs(x-1)))
}

func f1Eval(x float64) float64 {
	return math.Sin(F1K*x/math.Pi) * math.Exp(-F1M*x/math.Pi)
}

func f1Deriv(x float64) float64 {
	return math.Exp(-F1M*x/math.Pi) * (F1K*math.Cos(F1K*x/math.Pi) - F1M*math.Sin(F1K*x/math.Pi)) / math.Pi
}

func f2Eval(x float64) float64 {
	p13 := math.Pow(x, F2M)
	return p13*x + p13
}

func f2Deriv(x float64) float64 {
	p12 := math.Pow(x, F2M-1)
	return float64(F2N)*p12*x + float64(F2M)*p12
}

// registry holds the immutable entry set, keyed by ID.
var registry = map[FuncID]Func{
	P8Naive:  {ID: P8Naive, Name: "(x-1)^8 naive", Eval: p8NaiveEval, A: p8A, B: p8B},
	P8Horner: {ID: P8Horner, Name: "(x-1)^8 horner", Eval: p8HornerEval, A: p8A, B: p8B},
	P8Power:  {ID: P8Power, Name: "(x-1)^8 power", Eval: p8PowerEval, A: p8A, B: p8B},
	P8ExpLog: {ID: P8ExpLog, Name: "(x-1)^8 explog", Eval: p8ExpLogEval, A: p8A, B: p8B},
	F1:       {ID: F1, Name: "sin(4x/pi)exp(-0.4x/pi)", Eval: f1Eval, Deriv: f1Deriv, A: f1A, B: f1B},
	F2:       {ID: F2, Name: "x^14+x^13", Eval: f2Eval, Deriv: f2Deriv, A: f2A, B: f2B},
}

// Lookup returns the published entry for id, or ErrUnknownFunc.
// The returned record is a value copy; callers cannot mutate the registry.
func Lookup(id FuncID) (Func, error) {
	f, ok := registry[id]
	if !ok {
		return Func{}, ErrUnknownFunc
	}
	return f, nil
}

// All returns every published entry in stable ID order, for data-driven
// drivers that iterate the whole catalog.
func All() []Func {
	out := make([]Func, 0, len(registry))
	for _, f := range registry {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// P8Coeffs returns a fresh copy of the expanded (x−1)⁸ coefficient vector,
// ascending degree, for kernels that evaluate the polynomial themselves.
func P8Coeffs() []float64 {
	out := make([]float64, len(p8Coeffs))
	copy(out, p8Coeffs[:])
	return out
}
