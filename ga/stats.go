package ga

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GenerationStats summarizes the fitness values of one generation.
type GenerationStats struct {
	Generation int     // 1-based index of the completed Evolve call
	Size       int     // members after replacement
	Mean       float64 // arithmetic mean fitness
	StdDev     float64 // population standard deviation
	Min        float64
	Max        float64
	BestEver   float64 // best-ever fitness after this generation
	Mutated    bool    // a mutation preceded this generation
	MutatedID  int64   // id of the mutated tour, when Mutated
}

// Summarize computes GenerationStats for fits. An empty fits yields zeroed
// statistics with only Generation and BestEver set.
func Summarize(generation int, fits []float64, bestEver float64) GenerationStats {
	s := GenerationStats{Generation: generation, Size: len(fits), BestEver: bestEver}
	if len(fits) == 0 {
		return s
	}
	s.Mean, s.StdDev = stat.PopMeanStdDev(fits, nil)
	s.Min = floats.Min(fits)
	s.Max = floats.Max(fits)

	return s
}
