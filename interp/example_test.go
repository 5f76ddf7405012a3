package interp_test

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/interp"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewNewton
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Interpolate y = x² + x + 1 through three exact samples and evaluate
//	outside the node set. The divided-difference triangle is built once;
//	every Eval afterwards costs O(n).
func ExampleNewNewton() {
	xs := []float64{0, 1, 2}
	ys := []float64{1, 3, 7}

	nw, err := interp.NewNewton(xs, ys)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("p(3)=%.0f degree=%d\n", nw.Eval(3), nw.Degree())
	// Output:
	// p(3)=13 degree=2
}

// ExampleLagrange evaluates the same data in direct Lagrange form; each
// call pays O(n²) and needs no precomputation.
func ExampleLagrange() {
	xs := []float64{0, 1, 2}
	ys := []float64{1, 3, 7}

	y, err := interp.Lagrange(xs, ys, 0.5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("p(0.5)=%.2f\n", y)
	// Output:
	// p(0.5)=1.75
}
