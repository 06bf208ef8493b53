// Package ga_test - shared fixtures for the ga tests.
package ga_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/beehive/ga"
	"github.com/stretchr/testify/require"
)

const seedDet int64 = 42

// Square corners used by the depot-in-the-middle scenarios.
var (
	ptA = ga.Point{X: 0, Y: 0}
	ptB = ga.Point{X: 0, Y: 10}
	ptC = ga.Point{X: 10, Y: 10}
	ptD = ga.Point{X: 10, Y: 0}

	squareDepot = ga.Point{X: 5, Y: 5}
)

// squareOptimum is the length of the perimeter walk from the centre depot:
// two half-diagonals plus three sides.
var squareOptimum = 30 + 2*math.Sqrt(50)

func square() []ga.Point { return []ga.Point{ptA, ptB, ptC, ptD} }

// grid returns rows×cols distinct points spaced 7 units apart.
func grid(rows, cols int) []ga.Point {
	pts := make([]ga.Point, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			pts = append(pts, ga.Point{X: float64(7 * j), Y: float64(7*i + j%3)})
		}
	}
	return pts
}

func newEval(t *testing.T, depot ga.Point, pts []ga.Point, policy ga.DistancePolicy) *ga.Evaluator {
	t.Helper()
	e, err := ga.NewEvaluator(depot, pts, policy)
	require.NoError(t, err)
	return e
}

// shuffled returns a random permutation of pts drawn from r.
func shuffled(pts []ga.Point, r *rand.Rand) []ga.Point {
	out := append([]ga.Point(nil), pts...)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// requirePermutation asserts that got holds every point of want exactly once.
func requirePermutation(t *testing.T, want, got []ga.Point) {
	t.Helper()
	require.Len(t, got, len(want))
	count := make(map[ga.Point]int, len(want))
	for _, p := range want {
		count[p]++
	}
	for _, p := range got {
		count[p]--
	}
	for p, c := range count {
		require.Zerof(t, c, "point %v count off by %d", p, c)
	}
}

func newPopulation(t *testing.T, e *ga.Evaluator, opts ...ga.Option) *ga.Population {
	t.Helper()
	p, err := ga.NewPopulation(e, opts...)
	require.NoError(t, err)
	return p
}
