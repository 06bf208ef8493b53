// SPDX-License-Identifier: MIT

package matrix

// DistanceFunc reports the distance between items i and j of a point set.
// Implementations must be pure: Pairwise calls it once per unordered pair.
type DistanceFunc func(i, j int) float64
