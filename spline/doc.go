// Package spline computes cubic smoothing splines in piecewise-polynomial
// (PP) form and evaluates them.
//
// Given strictly increasing sites x, values y and optional positive weights,
// the fitted spline minimizes
//
//	p · Σ w_i (y_i − f(x_i))² + (1 − p) · ∫ f''(t)² dt
//
// for a smoothing parameter p ∈ [0, 1]: p = 0 is the least-squares straight
// line, p = 1 the natural cubic interpolant. When p is not given it is chosen
// from the traces of the roughness and fidelity matrices.
//
// Building blocks:
//   - FitUnivariate / EvaluatePP: the 2-d kernel, rows are independent
//     output dimensions sharing one set of breaks.
//   - Fit / Spline: n-d values fitted along one axis.
//   - FitGrid / GridPP: tensor-product splines on n-d grids, fitted and
//     evaluated one axis at a time.
//   - Digitize: interval lookup for unsorted query sites.
//
// Fitted values are immutable and safe for concurrent Evaluate calls.
package spline
