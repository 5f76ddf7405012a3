package reduce

import (
	"errors"
	"math"
)

// ErrLengthMismatch indicates the two sequences differ in length.
var ErrLengthMismatch = errors.New("reduce: sequences must have equal length")

// Record bundles the two error measures of one configuration.
// A NaN pair means no valid index survived the reduction.
type Record struct {
	// MaxAbs is max_i |truth[i] − approx[i]| over valid indices.
	MaxAbs float64

	// MSE is the mean of (truth[i] − approx[i])² over valid indices.
	MSE float64
}

// Errors reduces truth and approx to a Record in a single pass.
//
// Indices where either value is NaN are skipped. Empty input, or input
// with no valid index, yields {NaN, NaN} — the driver's empty-cell value.
// The divisor of MSE is the count of valid indices, not the full length.
func Errors(truth, approx []float64) (Record, error) {
	if len(truth) != len(approx) {
		return Record{}, ErrLengthMismatch
	}

	maxAbs := 0.0
	sumSq := 0.0
	valid := 0
	for i := range truth {
		if math.IsNaN(truth[i]) || math.IsNaN(approx[i]) {
			continue
		}
		d := math.Abs(truth[i] - approx[i])
		if d > maxAbs {
			maxAbs = d
		}
		sumSq += d * d
		valid++
	}

	if valid == 0 {
		return Record{MaxAbs: math.NaN(), MSE: math.NaN()}, nil
	}

	return Record{MaxAbs: maxAbs, MSE: sumSq / float64(valid)}, nil
}
