package ga

import (
	"fmt"
	"math"
	"strings"
)

// Point is an immutable 2D coordinate. Points compare by value.
type Point struct {
	X float64
	Y float64
}

// String renders the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// DistancePolicy controls how a single edge length enters the fitness sum.
type DistancePolicy int

const (
	// Truncate drops the fractional part of every edge before summing.
	// This reproduces the integer fitness values of the legacy optimizer.
	Truncate DistancePolicy = iota

	// Exact sums real-valued Euclidean edge lengths.
	Exact
)

// String returns the canonical policy name.
func (p DistancePolicy) String() string {
	switch p {
	case Truncate:
		return "truncate"
	case Exact:
		return "exact"
	default:
		return fmt.Sprintf("DistancePolicy(%d)", int(p))
	}
}

// edge applies the policy to a raw Euclidean length.
func (p DistancePolicy) edge(d float64) float64 {
	if p == Truncate {
		return math.Trunc(d)
	}

	return d
}

// ParseDistancePolicy maps "truncate" / "exact" (case-insensitive) to a policy.
func ParseDistancePolicy(name string) (DistancePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "truncate", "int":
		return Truncate, nil
	case "exact", "real":
		return Exact, nil
	default:
		return Truncate, fmt.Errorf("%q: %w", name, ErrUnknownDistancePolicy)
	}
}
