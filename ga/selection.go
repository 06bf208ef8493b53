package ga

import (
	"cmp"
	"slices"
)

// SelectElite returns the first min(eliteSize, len(pop)) tours of pop after
// a stable sort by ascending fitness. Ties keep their relative order in pop.
// Tours without a cached fitness rank after every evaluated tour.
//
// pop is not modified. A non-positive eliteSize yields an empty slice.
//
// Complexity: O(n log n).
func SelectElite(pop []*Tour, eliteSize int) []*Tour {
	if eliteSize <= 0 || len(pop) == 0 {
		return []*Tour{}
	}
	ranked := slices.Clone(pop)
	slices.SortStableFunc(ranked, compareFitness)
	if eliteSize > len(ranked) {
		eliteSize = len(ranked)
	}

	return ranked[:eliteSize:eliteSize]
}

// compareFitness orders evaluated tours by fitness, unevaluated ones last.
func compareFitness(a, b *Tour) int {
	if a.evaluated != b.evaluated {
		if a.evaluated {
			return -1
		}
		return 1
	}

	return cmp.Compare(a.fitness, b.fitness)
}
