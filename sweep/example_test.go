package sweep_test

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/sweep"
)

// ExampleRunPlan loads a one-study YAML plan and runs it against an
// in-memory sink. Each (size, precision) cell lands as one table row.
func ExampleRunPlan() {
	doc := []byte(`
linexp:
  - table: fam2
    family: symmetric
    sizes: [2, 4, 8]
    precisions: [double]
`)
	plan, err := sweep.LoadPlan(doc)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	sink := sweep.NewMemSink()
	if err := sweep.RunPlan(plan, sink, sink); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("rows=%d closed=%t\n", len(sink.Tables["fam2"]), sink.Closed["fam2"])
	// Output:
	// rows=3 closed=true
}
