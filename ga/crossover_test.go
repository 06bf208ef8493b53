package ga_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/beehive/ga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ptE = ga.Point{X: 5, Y: 20}
)

// -----------------------------------------------------------------------------
// SingleSplit
// -----------------------------------------------------------------------------

func TestSingleSplit_KnownChildren(t *testing.T) {
	p1 := []ga.Point{ptA, ptB, ptC, ptD, ptE}
	p2 := []ga.Point{ptE, ptD, ptC, ptB, ptA}

	a, b, err := ga.SingleSplit{}.Cross(p1, p2, nil)
	require.NoError(t, err)
	assert.Equal(t, []ga.Point{ptA, ptB, ptE, ptD, ptC}, a)
	assert.Equal(t, []ga.Point{ptE, ptD, ptA, ptB, ptC}, b)

	// Parents untouched.
	assert.Equal(t, []ga.Point{ptA, ptB, ptC, ptD, ptE}, p1)
	assert.Equal(t, []ga.Point{ptE, ptD, ptC, ptB, ptA}, p2)
}

// -----------------------------------------------------------------------------
// TwoPoint
// -----------------------------------------------------------------------------

// TestTwoPointAt_Scenario: cuts a=1, b=2 on [A,B,C,D] and [B,A,D,C].
func TestTwoPointAt_Scenario(t *testing.T) {
	p1 := []ga.Point{ptA, ptB, ptC, ptD}
	p2 := []ga.Point{ptB, ptA, ptD, ptC}

	a, b, err := ga.TwoPointAt(p1, p2, 1, 2)
	require.NoError(t, err)
	requirePermutation(t, p1, a)
	requirePermutation(t, p1, b)
	assert.Equal(t, []ga.Point{ptA, ptB, ptC, ptD}, a)
	assert.Equal(t, []ga.Point{ptB, ptA, ptD, ptC}, b)
}

// TestTwoPointAt_GapRepair covers parents whose middle segments disagree:
// the gap takes the other parent's points missing from BOTH flanks, so the
// child never repeats a flank point.
func TestTwoPointAt_GapRepair(t *testing.T) {
	p1 := []ga.Point{ptA, ptB, ptC, ptD, ptE}
	p2 := []ga.Point{ptE, ptD, ptC, ptB, ptA}

	a, b, err := ga.TwoPointAt(p1, p2, 1, 3)
	require.NoError(t, err)
	// flanks of p1: [A] and [D,E]; p2 order fills the gap with C, B.
	assert.Equal(t, []ga.Point{ptA, ptC, ptB, ptD, ptE}, a)
	// flanks of p2: [E] and [B,A]; p1 order fills the gap with C, D.
	assert.Equal(t, []ga.Point{ptE, ptC, ptD, ptB, ptA}, b)
}

func TestTwoPointAt_InvalidCuts(t *testing.T) {
	p := []ga.Point{ptA, ptB, ptC, ptD}
	for _, cut := range [][2]int{{0, 2}, {2, 2}, {3, 2}, {1, 4}} {
		_, _, err := ga.TwoPointAt(p, p, cut[0], cut[1])
		require.ErrorIsf(t, err, ga.ErrInvalidConfig, "cuts %v", cut)
	}
}

func TestTwoPointAt_ForeignParents(t *testing.T) {
	p1 := []ga.Point{ptA, ptB, ptC, ptD}
	p2 := []ga.Point{ptA, ptB, ptC, ptE}

	_, _, err := ga.TwoPointAt(p1, p2, 1, 3)
	require.ErrorIs(t, err, ga.ErrInvariantViolation)
}

func TestTwoPoint_TwoPointsFallsBack(t *testing.T) {
	p1 := []ga.Point{ptA, ptB}
	p2 := []ga.Point{ptB, ptA}

	a, b, err := ga.TwoPoint{}.Cross(p1, p2, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)
	requirePermutation(t, p1, a)
	requirePermutation(t, p1, b)
}

// -----------------------------------------------------------------------------
// Shared properties
// -----------------------------------------------------------------------------

// TestCrossover_PermutationInvariant runs both strategies on random parents
// of every size from 2 to 40.
func TestCrossover_PermutationInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(seedDet))
	for _, x := range []ga.Crossover{ga.SingleSplit{}, ga.TwoPoint{}} {
		t.Run(x.Name(), func(t *testing.T) {
			for n := 2; n <= 40; n++ {
				pts := grid(1, n)
				for rep := 0; rep < 5; rep++ {
					p1, p2 := shuffled(pts, r), shuffled(pts, r)
					a, b, err := x.Cross(p1, p2, r)
					require.NoError(t, err)
					requirePermutation(t, pts, a)
					requirePermutation(t, pts, b)
				}
			}
		})
	}
}

func TestCrossover_ParentShape(t *testing.T) {
	for _, x := range []ga.Crossover{ga.SingleSplit{}, ga.TwoPoint{}} {
		_, _, err := x.Cross(nil, nil, rand.New(rand.NewSource(1)))
		require.ErrorIs(t, err, ga.ErrEmptyInput)

		_, _, err = x.Cross([]ga.Point{ptA, ptB}, []ga.Point{ptA}, rand.New(rand.NewSource(1)))
		require.ErrorIs(t, err, ga.ErrInvariantViolation)
	}
}

func TestTwoPoint_CutsVaryPerCall(t *testing.T) {
	pts := grid(1, 12)
	p1 := pts
	p2 := append([]ga.Point(nil), pts...)
	for i, j := 0, len(p2)-1; i < j; i, j = i+1, j-1 {
		p2[i], p2[j] = p2[j], p2[i]
	}

	r := rand.New(rand.NewSource(seedDet))
	seen := map[ga.Point]struct{}{}
	for i := 0; i < 50; i++ {
		a, _, err := ga.TwoPoint{}.Cross(p1, p2, r)
		require.NoError(t, err)
		seen[a[1]] = struct{}{}
	}
	assert.Greater(t, len(seen), 1, "cut points must be resampled on every call")
}

func TestParseCrossover(t *testing.T) {
	cases := map[string]string{
		"classic":      "classic",
		"single-split": "classic",
		"Two-Point":    "two-point",
		"":             "classic",
	}
	for in, want := range cases {
		x, err := ga.ParseCrossover(in)
		require.NoError(t, err)
		assert.Equal(t, want, x.Name())
	}

	_, err := ga.ParseCrossover("pmx")
	require.ErrorIs(t, err, ga.ErrUnknownCrossover)
}
