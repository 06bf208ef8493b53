// Package ga - crossover strategies.
//
// Both strategies are order-preserving and produce exactly two children from
// two parents. Membership checks go through a hash set, so a cross is O(n).
//
// Two-point gap filling: the middle segment of a child is filled with the
// other parent's points that appear in NEITHER retained flank, in that
// parent's order. The flanks hold n-(b-a) distinct points, so exactly b-a
// points remain and the child is a permutation by construction.
package ga

import (
	"fmt"
	"math/rand"
	"strings"
)

// Crossover combines two parent orders into two child orders.
// Implementations must not modify the parents and must draw all randomness
// from r.
type Crossover interface {
	// Name returns the canonical strategy name.
	Name() string

	// Cross returns two freshly allocated child orders.
	Cross(p1, p2 []Point, r *rand.Rand) ([]Point, []Point, error)
}

// SingleSplit is the classic one-cut crossover at k = n/2.
type SingleSplit struct{}

// Name implements Crossover.
func (SingleSplit) Name() string { return "classic" }

// Cross implements Crossover. r is unused.
//
//	child A = p1[:k] + (p2 minus p1[:k])
//	child B = p2[:k] + (p1 minus p2[:k])
func (SingleSplit) Cross(p1, p2 []Point, _ *rand.Rand) ([]Point, []Point, error) {
	if err := checkParents(p1, p2); err != nil {
		return nil, nil, err
	}
	k := len(p1) / 2

	return splitChild(p1, p2, k), splitChild(p2, p1, k), nil
}

// splitChild keeps head[:k] and appends the remaining points of tail in order.
func splitChild(head, tail []Point, k int) []Point {
	var (
		n     = len(head)
		child = make([]Point, 0, n)
		taken = make(map[Point]struct{}, k)
	)
	for _, p := range head[:k] {
		child = append(child, p)
		taken[p] = struct{}{}
	}
	for _, p := range tail {
		if _, ok := taken[p]; !ok {
			child = append(child, p)
		}
	}

	return child
}

// TwoPoint cuts both parents at 1 ≤ a < b ≤ n-1, sampled per call.
// Orders with fewer than 3 points admit no such cut pair and fall back to
// SingleSplit.
type TwoPoint struct{}

// Name implements Crossover.
func (TwoPoint) Name() string { return "two-point" }

// Cross implements Crossover.
func (TwoPoint) Cross(p1, p2 []Point, r *rand.Rand) ([]Point, []Point, error) {
	if err := checkParents(p1, p2); err != nil {
		return nil, nil, err
	}
	n := len(p1)
	if n < 3 {
		return SingleSplit{}.Cross(p1, p2, r)
	}
	// Two distinct cut positions from [1, n-1], ordered.
	i, j := distinctPair(n-1, r)
	a, b := min(i, j)+1, max(i, j)+1

	return TwoPointAt(p1, p2, a, b)
}

// TwoPointAt performs the two-point construction with fixed cuts.
//
//	child A = p1[:a] + (p2 minus p1[:a] minus p1[b:]) + p1[b:]
//	child B = p2[:a] + (p1 minus p2[:a] minus p2[b:]) + p2[b:]
//
// Contract: 1 ≤ a < b ≤ n-1, otherwise ErrInvalidConfig.
// ErrInvariantViolation is returned if the parents are not permutations of
// the same point set (the gap would not fill exactly).
func TwoPointAt(p1, p2 []Point, a, b int) ([]Point, []Point, error) {
	if err := checkParents(p1, p2); err != nil {
		return nil, nil, err
	}
	n := len(p1)
	if a < 1 || b <= a || b > n-1 {
		return nil, nil, fmt.Errorf("cuts a=%d b=%d for n=%d: %w", a, b, n, ErrInvalidConfig)
	}
	c1, err := twoPointChild(p1, p2, a, b)
	if err != nil {
		return nil, nil, err
	}
	c2, err := twoPointChild(p2, p1, a, b)
	if err != nil {
		return nil, nil, err
	}

	return c1, c2, nil
}

// twoPointChild keeps outer's flanks and fills the gap from inner.
func twoPointChild(outer, inner []Point, a, b int) ([]Point, error) {
	var (
		n     = len(outer)
		child = make([]Point, 0, n)
		taken = make(map[Point]struct{}, n-(b-a))
	)
	for _, p := range outer[:a] {
		taken[p] = struct{}{}
	}
	for _, p := range outer[b:] {
		taken[p] = struct{}{}
	}

	child = append(child, outer[:a]...)
	for _, p := range inner {
		if _, ok := taken[p]; !ok {
			child = append(child, p)
		}
	}
	if len(child) != b {
		return nil, fmt.Errorf("two-point gap filled %d of %d slots: %w", len(child)-a, b-a, ErrInvariantViolation)
	}
	child = append(child, outer[b:]...)

	return child, nil
}

// checkParents rejects empty or differently sized parents.
func checkParents(p1, p2 []Point) error {
	if len(p1) == 0 {
		return ErrEmptyInput
	}
	if len(p1) != len(p2) {
		return fmt.Errorf("parent lengths %d and %d: %w", len(p1), len(p2), ErrInvariantViolation)
	}

	return nil
}

// ParseCrossover maps a strategy name to its Crossover.
// Accepted: "classic", "single-split", "two-point" (case-insensitive).
func ParseCrossover(name string) (Crossover, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "classic", "single-split", "single":
		return SingleSplit{}, nil
	case "two-point", "twopoint", "two":
		return TwoPoint{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownCrossover)
	}
}
