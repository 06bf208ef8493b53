// Package ga - fitness evaluation.
//
// The Evaluator owns the depot and a dense (n+1)×(n+1) distance table where
// row/column 0 is the depot and rows 1..n are the input points in input
// order. The distance policy is applied per edge when the table is built, so
// evaluating a tour is n+1 table lookups.
package ga

import (
	"fmt"

	"github.com/katalvlaran/beehive/matrix"
)

// depotIndex is the table row/column reserved for the depot.
const depotIndex = 0

// Evaluator computes tour lengths for a fixed depot and point set.
// It is read-only after construction and safe for concurrent use.
type Evaluator struct {
	depot  Point
	points []Point
	index  map[Point]int // point -> table index (1..n)
	dist   *matrix.Dense
	policy DistancePolicy
}

// NewEvaluator validates the point set and precomputes the distance table.
//
// Contract:
//   - len(points) ≥ 2, otherwise ErrEmptyInput.
//   - points are distinct, otherwise ErrDuplicatePoint.
//   - coordinates are finite, otherwise the matrix.ErrNaNInf sentinel is
//     returned wrapped.
//
// The depot may coincide with an input point.
//
// Complexity: O(n²) time and memory.
func NewEvaluator(depot Point, points []Point, policy DistancePolicy) (*Evaluator, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("new evaluator: %d point(s): %w", len(points), ErrEmptyInput)
	}
	if policy != Truncate && policy != Exact {
		return nil, fmt.Errorf("new evaluator: %v: %w", policy, ErrUnknownDistancePolicy)
	}

	var (
		n     = len(points)
		own   = make([]Point, n)
		index = make(map[Point]int, n)
		i     int
	)
	copy(own, points)
	for i = 0; i < n; i++ {
		if _, dup := index[own[i]]; dup {
			return nil, fmt.Errorf("new evaluator: point %v at %d: %w", own[i], i, ErrDuplicatePoint)
		}
		index[own[i]] = i + 1
	}

	// at resolves a table index to its coordinate.
	at := func(k int) Point {
		if k == depotIndex {
			return depot
		}
		return own[k-1]
	}
	dist, err := matrix.Pairwise(n+1, func(a, b int) float64 {
		return policy.edge(Distance(at(a), at(b)))
	})
	if err != nil {
		return nil, fmt.Errorf("new evaluator: %w", err)
	}

	return &Evaluator{depot: depot, points: own, index: index, dist: dist, policy: policy}, nil
}

// Depot returns the fixed start/end point.
func (e *Evaluator) Depot() Point { return e.depot }

// Len returns the number of input points (depot excluded).
func (e *Evaluator) Len() int { return len(e.points) }

// Policy returns the per-edge distance policy.
func (e *Evaluator) Policy() DistancePolicy { return e.policy }

// Points returns a copy of the input points in input order.
func (e *Evaluator) Points() []Point {
	out := make([]Point, len(e.points))
	copy(out, e.points)

	return out
}

// Length returns the closed-walk length depot → stops[0] → … → stops[n-1] → depot.
// It does not check that stops is a full permutation (see Verify); it only
// requires every stop to belong to the input set.
//
// Complexity: O(len(stops)).
func (e *Evaluator) Length(stops []Point) (float64, error) {
	if len(stops) == 0 {
		return 0, ErrEmptyInput
	}

	var (
		sum  float64
		prev = depotIndex
		idx  int
		ok   bool
		w    float64
		err  error
		i    int
	)
	for i = 0; i < len(stops); i++ {
		if idx, ok = e.index[stops[i]]; !ok {
			return 0, fmt.Errorf("stop %d %v: %w", i, stops[i], ErrInvariantViolation)
		}
		if w, err = e.dist.At(prev, idx); err != nil {
			return 0, err
		}
		sum += w
		prev = idx
	}
	if w, err = e.dist.At(prev, depotIndex); err != nil {
		return 0, err
	}

	return sum + w, nil
}

// TourLength computes the closed-walk length of stops from depot without a
// precomputed table. It is the reference form of Evaluator.Length.
func TourLength(depot Point, stops []Point, policy DistancePolicy) (float64, error) {
	if len(stops) == 0 {
		return 0, ErrEmptyInput
	}

	var (
		sum  float64
		prev = depot
	)
	for _, p := range stops {
		sum += policy.edge(Distance(prev, p))
		prev = p
	}

	return sum + policy.edge(Distance(prev, depot)), nil
}
