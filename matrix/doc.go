// Package matrix provides the dense numeric grids backing BPM×BPM
// phase-advance results.
//
// The matrix package provides:
//
//   - Dense: a row-major flat float64 matrix with O(1) element access,
//     an optional fill value (NaN for missing-data grids) and a Row view
//     for allocation-free hot loops.
//   - Ints: a row-major int matrix for per-pair valid-sample counts.
//
// Grids are best for dense, small-to-medium results (hundreds of BPMs)
// where O(V²) memory is acceptable and cache-friendly traversal matters.
//
// NaN policy: Dense deliberately admits NaN — a missing pair in a
// union-mode result is NaN by contract, never a silent zero. Consumers
// that need finite values filter with math.IsNaN at read time.
package matrix
