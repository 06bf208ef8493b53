package ga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededRand_ZeroMapsToDefault(t *testing.T) {
	a, b := seededRand(0), seededRand(defaultRNGSeed)
	for i := 0; i < 8; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}

func TestBreedSeed_KeyedByGenerationAndPair(t *testing.T) {
	assert.Equal(t, breedSeed(7, 2, 3), breedSeed(7, 2, 3))
	assert.NotEqual(t, breedSeed(7, 2, 3), breedSeed(7, 2, 4), "pair index")
	assert.NotEqual(t, breedSeed(7, 2, 3), breedSeed(7, 3, 3), "generation")
	assert.NotEqual(t, breedSeed(7, 2, 3), breedSeed(8, 2, 3), "salt")
	// Swapping generation and pair must not collide.
	assert.NotEqual(t, breedSeed(7, 2, 3), breedSeed(7, 3, 2))
}

func TestPairStreams_OneDrawPerGeneration(t *testing.T) {
	base, twin := seededRand(42), seededRand(42)

	streams := pairStreams(base, 5, 4)
	require.Len(t, streams, 4)
	twin.Int63()
	assert.Equal(t, twin.Int63(), base.Int63(), "exactly one value consumed")

	again := pairStreams(seededRand(42), 5, 4)
	for k := range streams {
		assert.Equal(t, again[k].Int63(), streams[k].Int63(), "pair %d", k)
	}
	assert.Empty(t, pairStreams(seededRand(42), 5, 0))
}

func TestDistinctPair(t *testing.T) {
	r := seededRand(42)
	hits := make(map[[2]int]int)
	for k := 0; k < 3000; k++ {
		i, j := distinctPair(3, r)
		require.NotEqual(t, i, j)
		require.True(t, i >= 0 && i < 3 && j >= 0 && j < 3)
		hits[[2]int{i, j}]++
	}
	assert.Len(t, hits, 6, "every ordered pair is reachable")
}

func TestShufflePoints_Permutes(t *testing.T) {
	pts := []Point{{X: 1}, {X: 2}, {X: 3}, {X: 4}, {X: 5}}
	got := append([]Point(nil), pts...)
	shufflePoints(got, seededRand(42))
	assert.ElementsMatch(t, pts, got)
}
