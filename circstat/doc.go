// Package circstat computes statistics of angular (periodic) samples,
// where naive linear averaging across the wrap point gives biased
// results: the mean of 0.99 and 0.01 on a unit circle is ≈0.0, not 0.5.
//
// 🚀 What is circstat?
//
//	Small, allocation-light estimators for samples living on [0, period):
//	  • Mean / StdErr — dual-candidate de-aliased direct estimators
//	  • VectorMean / StdFromResultant — Fourier (unit-vector) estimators
//	  • TValue — Hill's Student-t quantile correction for small samples
//
// ✨ Key properties:
//   - Dual-candidate branch selection: each sample set is evaluated both
//     on [0, period) and re-centered on [-period/2, period/2); the branch
//     with the smaller dispersion around its own average wins, which
//     de-aliases sets straddling the wrap discontinuity.
//   - The two estimator families are intentionally distinct: the vector
//     form derives dispersion from the resultant length R via
//     sqrt(-2·ln R); the direct form from (n-1)-normalized squared
//     deviations with a TValue small-sample correction. Callers pick one
//     and must not mix their outputs.
//   - Degenerate dispersion never yields NaN: StdFromResultant clamps
//     R≥1 to 0 and saturates R≈0 to +Inf.
//
// ⚙️ Usage:
//
//	m, err := circstat.Mean([]float64{0.99, 0.01}, 1.0) // ≈ 0.0
//	s, err := circstat.StdErr(samples, 1.0)             // includes TValue(n-1)
//
// Complexity: all estimators are single- or two-pass O(n), O(1) extra
// memory beyond one candidate buffer.
package circstat
