// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels, optionally wrapped with method context
// via %w. Tests and callers MUST branch with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	ErrBadShape = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeWeight signals a negative distance during Pairwise ingestion.
	ErrNegativeWeight = errors.New("matrix: negative distance")

	// ErrNilFunc indicates that Pairwise was called without a distance function.
	ErrNilFunc = errors.New("matrix: nil distance function")
)
