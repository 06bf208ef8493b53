// Package ga - randomness.
//
// Every random decision of a Population comes from one seeded *rand.Rand.
// Breeding is the exception that needs more than one stream: each pair of a
// generation crosses on its own generator, keyed by (generation, pair) and
// salted with one draw from the population RNG per generation. The salt is
// drawn before the fan-out, so the children do not depend on how many
// workers run or in which order they finish.
package ga

import "math/rand"

// defaultRNGSeed replaces seed 0.
const defaultRNGSeed int64 = 1

// seededRand returns a deterministic generator; seed 0 means defaultRNGSeed.
func seededRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// breedKey packs a generation number and a pair index into one word.
func breedKey(generation, pair int) uint64 {
	return uint64(uint32(generation))<<32 | uint64(uint32(pair))
}

// breedSeed scrambles salt ⊕ key with the murmur3 64-bit finalizer, so
// neighbouring pairs and generations get unrelated seeds.
func breedSeed(salt int64, generation, pair int) int64 {
	h := uint64(salt) ^ breedKey(generation, pair)
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33

	return int64(h)
}

// pairStreams returns one generator per pair of the given generation.
// It consumes exactly one value from base.
func pairStreams(base *rand.Rand, generation, pairs int) []*rand.Rand {
	var (
		salt    = base.Int63()
		streams = make([]*rand.Rand, pairs)
		k       int
	)
	for k = 0; k < pairs; k++ {
		streams[k] = rand.New(rand.NewSource(breedSeed(salt, generation, k)))
	}

	return streams
}

// shufflePoints performs an in-place Fisher–Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func shufflePoints(a []Point, r *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// distinctPair draws two distinct indices from [0, n) uniformly.
// Requires n ≥ 2.
func distinctPair(n int, r *rand.Rand) (int, int) {
	i := r.Intn(n)
	j := r.Intn(n - 1)
	if j >= i {
		j++
	}

	return i, j
}
