// Package sweep orchestrates the laboratory experiments: it sweeps the
// control parameters of one kernel at a time, evaluates the resulting
// approximant on a dense grid and pushes tables and curves into caller
// supplied sinks.
//
// 🚀 What is sweep?
//
//	Every study is a plain configuration record with a Run method. A run
//	walks its nested parameter ranges one cell at a time, invokes the
//	kernel, reduces the approximant against the true-function grid and
//	emits one summary row per cell plus one curve per approximant. A cell
//	whose kernel refuses (singular system, harmonic limit, invalid arity)
//	contributes a NaN row and the sweep continues; no cell failure aborts
//	a study, and no study failure aborts a plan.
//
// ✨ Key features:
//   - TableSink / CurveSink — the only output contract the drivers know;
//     MemSink implements both for tests and in-process runs
//   - eight study kinds: HornerStudy, InterpStudy, HermiteStudy,
//     SplineStudy, LsqStudy, TrigStudy, RootStudy, LinexpStudy
//   - algorithmic choices (node family, boundary condition, stopping
//     criterion, precision lane) travel in as tagged parameters, never
//     hard-wired into a kernel
//   - LoadPlan parses a declarative YAML plan document; RunPlan executes
//     its studies in order and joins the per-study errors
//
// ⚙️ Usage:
//
//	sink := sweep.NewMemSink()
//	st := sweep.InterpStudy{Table: "f2", Func: "f2", Nodes: sweep.NodesChebyshev, NS: []int{4, 8, 12}}
//	if err := st.Run(sink, sink); err != nil { ... }
//
//	plan, err := sweep.LoadPlan(doc)
//	err = sweep.RunPlan(plan, sink, sink)
//
// Errors (sentinel):
//
//	– ErrNilSink          — a driver was handed a nil sink
//	– ErrUnknownNodes     — node family tag outside {uniform, chebyshev}
//	– ErrUnknownEngine    — spline engine tag outside {quadratic, cubic}
//	– ErrUnknownBoundary  — boundary tag the engine does not publish
//	– ErrUnknownMethod    — root method tag outside {newton, secant}
//	– ErrUnknownCriterion — stopping-criterion tag outside the published set
//	– ErrNoDerivative     — a derivative-hungry study on a Func without one
//	– catalog.ErrUnknownFunc and core.ErrBadPrecision bubble up from tags
package sweep
