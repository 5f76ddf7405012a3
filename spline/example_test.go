package spline_test

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/spline"
)

// ExampleNewCubic fits a natural cubic through collinear samples; the
// moment system collapses to zeros and the spline reproduces the line.
func ExampleNewCubic() {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 2, 4, 6}

	c, err := spline.NewCubic(xs, ys, spline.Natural())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("s(1.5)=%.1f s'(1.5)=%.1f\n", c.Eval(1.5), c.Deriv(1.5))
	// Output:
	// s(1.5)=3.0 s'(1.5)=2.0
}

// ExampleNewQuadratic propagates a clamped start slope through the C¹
// slope recurrence.
func ExampleNewQuadratic() {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 1, 4}

	q, err := spline.NewQuadratic(xs, ys, spline.ClampedStart(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("s(0.5)=%.2f\n", q.Eval(0.5))
	// Output:
	// s(0.5)=0.25
}
