// Package matrix provides the dense, row-major float64 table used to cache
// pairwise distances between tour points.
//
// The package is deliberately small:
//
//   - Dense: an r×c table stored in a flat slice with bounds-checked At.
//   - Pairwise: builds a symmetric n×n table from a distance function,
//     rejecting NaN, ±Inf and negative entries at ingestion time.
//
// Errors are package-level sentinels (see errors.go); callers match them with
// errors.Is. Nothing in this package panics on user input.
package matrix
