// Package ga implements a genetic-algorithm optimizer for closed tours that
// start and end at a fixed depot and visit every input point exactly once.
//
// The engine is split into small, composable parts:
//
//   - Tour: an ordered permutation of the input points with a cached fitness
//     (total closed-walk length) and read-only provenance (parent ids).
//   - Evaluator: the fitness function; it owns the depot and a dense pairwise
//     distance table (see package matrix).
//   - SelectElite: stable ranking by ascending fitness, truncated to k.
//   - Crossover: SingleSplit ("classic") and TwoPoint strategies, both
//     producing two children that are permutations by construction.
//   - Mutation: Swap, Reverse and CoinFlip (an unbiased choice per call).
//   - Population: owns the live members, the best tour ever observed, the
//     per-generation fitness history and the Lineage arena.
//   - Run: drives N generations, applying mutation on a fixed cadence and
//     collecting GenerationStats.
//   - Evaluator.Polish: optional 2-opt post-processing of a finished tour.
//
// Replacement is (μ+λ) elitist: the next generation is the elite set plus
// the children bred from it. With an odd elite size one elite member is left
// unpaired each generation; that member still survives into the next
// generation.
//
// Determinism: every random decision is drawn from an explicit *rand.Rand
// (WithSeed / WithRand). Crossover pairs receive independent derived streams,
// so a run's outcome does not depend on the number of workers.
//
// Errors are sentinels from errors.go; match them with errors.Is.
// Nothing in this package logs.
package ga
