package ga_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/beehive/ga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwap_ChangesExactlyTwo(t *testing.T) {
	pts := grid(1, 10)
	r := rand.New(rand.NewSource(seedDet))
	for rep := 0; rep < 20; rep++ {
		got := append([]ga.Point(nil), pts...)
		ga.Swap{}.Mutate(got, r)
		requirePermutation(t, pts, got)

		diff := 0
		for i := range got {
			if got[i] != pts[i] {
				diff++
			}
		}
		require.Equal(t, 2, diff)
	}
}

func TestReverse_ReversesOneSegment(t *testing.T) {
	pts := grid(1, 10)
	r := rand.New(rand.NewSource(seedDet))
	for rep := 0; rep < 20; rep++ {
		got := append([]ga.Point(nil), pts...)
		ga.Reverse{}.Mutate(got, r)
		requirePermutation(t, pts, got)

		// Locate the changed window and check it is the reversed original.
		i, j := 0, len(got)-1
		for i < len(got) && got[i] == pts[i] {
			i++
		}
		for j >= 0 && got[j] == pts[j] {
			j--
		}
		require.Less(t, i, j, "reversal of distinct indices must change the order")
		want := slices.Clone(pts[i : j+1])
		slices.Reverse(want)
		require.Equal(t, want, got[i:j+1])
	}
}

func TestMutation_ShortOrdersUnchanged(t *testing.T) {
	r := rand.New(rand.NewSource(seedDet))
	for _, m := range []ga.Mutation{ga.Swap{}, ga.Reverse{}, ga.CoinFlip{}} {
		one := []ga.Point{ptA}
		m.Mutate(one, r)
		assert.Equal(t, []ga.Point{ptA}, one, m.Name())

		m.Mutate(nil, r)
	}
}

func TestCoinFlip_UsesBothOperators(t *testing.T) {
	pts := grid(1, 12)
	r := rand.New(rand.NewSource(seedDet))
	var swaps, reversals int
	for rep := 0; rep < 200; rep++ {
		got := append([]ga.Point(nil), pts...)
		ga.CoinFlip{}.Mutate(got, r)
		requirePermutation(t, pts, got)

		diff := 0
		for i := range got {
			if got[i] != pts[i] {
				diff++
			}
		}
		// A swap changes exactly two positions; a reversal of length ≥ 4
		// changes more. Length-2/3 reversals are indistinguishable from swaps.
		if diff == 2 {
			swaps++
		} else {
			reversals++
		}
	}
	assert.Greater(t, swaps, 50)
	assert.Greater(t, reversals, 20)
}

// -----------------------------------------------------------------------------
// Population.Mutate locality
// -----------------------------------------------------------------------------

func TestPopulation_MutateLocality(t *testing.T) {
	pts := grid(3, 4)
	e := newEval(t, ga.DefaultDepot, pts, ga.Truncate)
	p := newPopulation(t, e, ga.WithPopulationSize(20), ga.WithEliteSize(8), ga.WithSeed(seedDet))
	_, err := p.Evolve()
	require.NoError(t, err)

	type state struct {
		stops   []ga.Point
		fitness float64
	}
	before := map[int64]state{}
	for _, m := range p.Members() {
		f, ok := m.Fitness()
		require.True(t, ok)
		before[m.ID()] = state{stops: m.Stops(), fitness: f}
	}
	elite := ga.SelectElite(p.Members(), 8)

	mutated, err := p.Mutate()
	require.NoError(t, err)
	requirePermutation(t, pts, mutated.Stops())
	_, ok := mutated.Fitness()
	assert.False(t, ok, "mutation must clear the cached fitness")

	inElite := false
	for _, m := range elite {
		inElite = inElite || m.ID() == mutated.ID()
	}
	assert.True(t, inElite, "mutation must pick an elite member")

	for _, m := range p.Members() {
		if m.ID() == mutated.ID() {
			continue
		}
		f, ok := m.Fitness()
		require.True(t, ok)
		assert.Equal(t, before[m.ID()].stops, m.Stops())
		assert.Equal(t, before[m.ID()].fitness, f)
	}
}

func TestParseMutation(t *testing.T) {
	cases := map[string]string{
		"":          "coin-flip",
		"Coin-Flip": "coin-flip",
		"swap":      "swap",
		" reverse ": "reverse",
	}
	for in, want := range cases {
		m, err := ga.ParseMutation(in)
		require.NoError(t, err)
		assert.Equal(t, want, m.Name())
	}

	_, err := ga.ParseMutation("scramble")
	require.ErrorIs(t, err, ga.ErrUnknownMutation)
}
