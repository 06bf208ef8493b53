// Package ga - permutation checks.
//
// Every tour produced by crossover or mutation passes through Verify before
// it can be ranked; a failure aborts the generation with ErrInvariantViolation.
package ga

import "fmt"

// Verify checks that stops is a permutation of the evaluator's input points:
// same length, every stop known, no stop repeated.
//
// Complexity: O(n) time, O(n) space.
func (e *Evaluator) Verify(stops []Point) error {
	if len(stops) != len(e.points) {
		return fmt.Errorf("length %d, want %d: %w", len(stops), len(e.points), ErrInvariantViolation)
	}
	seen := make([]bool, len(e.points)+1)

	var (
		i   int
		idx int
		ok  bool
	)
	for i = 0; i < len(stops); i++ {
		if idx, ok = e.index[stops[i]]; !ok {
			return fmt.Errorf("stop %d %v unknown: %w", i, stops[i], ErrInvariantViolation)
		}
		if seen[idx] {
			return fmt.Errorf("stop %d %v repeated: %w", i, stops[i], ErrInvariantViolation)
		}
		seen[idx] = true
	}

	return nil
}

// validateConfig checks option combinations before any tour is created.
func validateConfig(c config) error {
	if c.populationSize < 2 {
		return fmt.Errorf("population size %d < 2: %w", c.populationSize, ErrInvalidConfig)
	}
	if c.eliteSize < 2 {
		return fmt.Errorf("elite size %d < 2: %w", c.eliteSize, ErrInvalidConfig)
	}
	if c.eliteSize > c.populationSize {
		return fmt.Errorf("elite size %d > population size %d: %w",
			c.eliteSize, c.populationSize, ErrInsufficientPopulation)
	}
	if c.workers < 1 {
		return fmt.Errorf("workers %d < 1: %w", c.workers, ErrInvalidConfig)
	}
	if c.lineageDepth < 0 {
		return fmt.Errorf("lineage depth %d < 0: %w", c.lineageDepth, ErrInvalidConfig)
	}

	return nil
}
