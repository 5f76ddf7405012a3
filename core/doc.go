// Package core provides the shared numeric primitives used by every
// lvlnum kernel: the generic floating-point constraint, the working
// precision tag, and extended-precision helpers built on math/big.
//
// 🚀 What is core?
//
//	The foundation layer of the laboratory. Kernels never duplicate
//	precision handling — they accept a core.Precision tag (or a core.Float
//	type parameter) and let core answer:
//	  • What is machine epsilon at this width?
//	  • How do I carry a value through the Extended (80-bit style) lane?
//	  • Is this tag valid at all?
//
// ✨ Key features:
//   - Float — the `~float32 | ~float64` constraint shared by all generic kernels
//   - Precision — tagged working precision: Single, Double, Extended
//   - Extended lane on big.Float with a fixed 64-bit mantissa (x87-style),
//     rounded back to float64 at the boundary
//   - Eps(p) — unit roundoff per precision, used by tests and stopping logic
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlnum/core"
//
//	if !p.Valid() { return core.ErrBadPrecision }
//	x := core.NewExtended(0.1)      // *big.Float, 64-bit mantissa
//	y, _ := x.Float64()             // round back to the double lane
//
// Everything in core is allocation-free except the Extended constructors,
// deterministic, and safe for concurrent reads (there is no mutable state).
package core
