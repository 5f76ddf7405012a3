// Package roots finds scalar roots by Newton's method and the secant
// method under a shared stopping-criterion policy.
//
// 🚀 What is roots?
//
//	Two classic iterations with one result shape. Drivers pick the method,
//	the starting point(s), the tolerance and the criterion; the package
//	answers with the estimated root, the iterations spent, the final
//	residual and a status tag. Nothing panics: a vanishing derivative, a
//	flat secant chord or a non-finite update all surface as Stalled.
//
// ✨ Stopping criteria:
//   - OnStep     — |xᵢ₊₁ − xᵢ| < tol
//   - OnResidual — |f(xᵢ₊₁)| < tol
//   - OnBoth     — both must hold
//
// The reported residual is εx, εf or min(εx, εf) respectively.
//
// ⚙️ Usage:
//
//	res := roots.Newton(f.Eval, f.Deriv, 0.1, roots.DefaultOptions())
//	if res.Status == roots.Converged { ... }
//
// A documented quirk, kept on purpose: when the secant denominator
// f(xᵢ) − f(xᵢ₋₁) vanishes but the tolerance already holds at the current
// iterate, the method reports Converged rather than Stalled — the iterate
// is a perfectly good answer at that point.
package roots
