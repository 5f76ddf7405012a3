// Package catalog publishes the target scalar functions of the laboratory:
// pure maps f: ℝ → ℝ with optional first derivatives and the closed
// interval [A, B] each experiment studies them on.
//
// 🚀 What is the catalog?
//
//	A small data-driven registry. Drivers never hard-code formulas; they
//	look a Func up by ID and receive its evaluator, derivative evaluator
//	and interval in one record. Multiple functions coexist because the
//	interval and parameters live on the record, not in package state.
//
// ✨ Published entries:
//   - P8Naive / P8Horner / P8Power / P8ExpLog — four algebraically equal
//     renditions of (x−1)⁸, numerically very unequal near x = 1
//   - F1 — sin(kx/π)·exp(−mx/π), k=4, m=0.4 on [−2π², π²], with derivative
//   - F2 — x¹⁴ + x¹³ on [−1.4, 0.6], with derivative
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlnum/catalog"
//
//	f, err := catalog.Lookup(catalog.F1)
//	if err != nil { ... }
//	y := f.Eval(0.5)
//	dy := f.Deriv(0.5)
//
// Failure policy: evaluators return NaN at points where the formula has no
// real value (e.g. the log form of P8 at x = 1) and never panic. NaN is the
// natural value there and flows through the error summarizers unchanged.
package catalog
