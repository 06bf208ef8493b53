// Package ga - 2-opt polish of a finished tour.
//
// Polish performs deterministic first-improvement 2-opt on the closed walk
// depot → stops → depot, reversing a segment [i..k] whenever
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d) < −eps,  a=T[i−1], b=T[i], c=T[k], d=T[k+1].
//
// The depot stays fixed at both ends. Polish is a post-processing step: the
// generation loop never calls it, so it does not change selection, the
// best-ever snapshot or the lineage.
package ga

import (
	"fmt"
	"slices"
)

// polishEps is the minimum gain for a move to be accepted.
const polishEps = 1e-9

// Polish improves stops with 2-opt moves and returns the new order with its
// length. maxMoves bounds the accepted moves; 0 runs to a local optimum.
// The input slice is not modified.
//
// Errors: ErrInvariantViolation when stops is not a permutation of the input
// points, ErrInvalidConfig for maxMoves < 0.
//
// Complexity: O(n²) per scan, O(moves·n²) overall; O(n²) extra space.
func (e *Evaluator) Polish(stops []Point, maxMoves int) ([]Point, float64, error) {
	if maxMoves < 0 {
		return nil, 0, fmt.Errorf("polish: max moves %d < 0: %w", maxMoves, ErrInvalidConfig)
	}
	if err := e.Verify(stops); err != nil {
		return nil, 0, fmt.Errorf("polish: %w", err)
	}

	// Prefetch the table into a flat buffer for the scan loops.
	var (
		n    = len(stops)
		size = n + 1
		w    = make([]float64, size*size)
		i, k int
		err  error
	)
	for i = 0; i < size; i++ {
		for k = 0; k < size; k++ {
			if w[i*size+k], err = e.dist.At(i, k); err != nil {
				return nil, 0, fmt.Errorf("polish: %w", err)
			}
		}
	}
	at := func(u, v int) float64 { return w[u*size+v] }

	// cur is the closed walk of table indices: depot, stops..., depot.
	cur := make([]int, n+2)
	for i = 0; i < n; i++ {
		cur[i+1] = e.index[stops[i]]
	}

	var (
		accepted   int
		improved   = true
		a, b, c, d int
	)
	for improved && (maxMoves == 0 || accepted < maxMoves) {
		improved = false
	scan:
		for i = 1; i < n; i++ {
			for k = i + 1; k <= n; k++ {
				a, b, c, d = cur[i-1], cur[i], cur[k], cur[k+1]
				if at(a, c)+at(b, d)-at(a, b)-at(c, d) < -polishEps {
					slices.Reverse(cur[i : k+1])
					accepted++
					improved = true
					break scan
				}
			}
		}
	}

	out := make([]Point, n)
	for i = 0; i < n; i++ {
		out[i] = e.points[cur[i+1]-1]
	}
	length, err := e.Length(out)
	if err != nil {
		return nil, 0, fmt.Errorf("polish: %w", err)
	}

	return out, length, nil
}
