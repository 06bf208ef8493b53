// Package ga - generation loop.
//
// Run is the only driver of a Population in the command-line tool, but it
// holds no hidden state: everything it does is reachable through Mutate and
// Evolve, so callers with other cadences can write their own loop.
package ga

import "fmt"

// RunConfig parameterizes Run.
type RunConfig struct {
	// Generations is the number of Evolve calls.
	Generations int

	// MutateEvery applies one mutation before generation g (0-based) whenever
	// g % MutateEvery == 0. 0 disables mutation.
	MutateEvery int
}

// DefaultRunConfig mirrors the legacy optimizer: 10 generations, a mutation
// before the first and every tenth generation.
func DefaultRunConfig() RunConfig {
	return RunConfig{Generations: DefaultGenerations, MutateEvery: DefaultMutateEvery}
}

// Observer receives the statistics of every completed generation, in order,
// on Run's goroutine.
type Observer interface {
	ObserveGeneration(GenerationStats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(GenerationStats)

// ObserveGeneration implements Observer.
func (f ObserverFunc) ObserveGeneration(s GenerationStats) { f(s) }

// Result is the read-only outcome of Run, handed to reporting and plotting.
type Result struct {
	Best    *Tour             // snapshot of the best tour ever observed
	Depot   Point             // the evaluator's depot
	History [][]float64       // fitness values per generation
	Stats   []GenerationStats // summary per generation
	Lineage *Lineage          // ancestry arena of the population
}

// MeanFitness returns the mean fitness of every generation.
func (r Result) MeanFitness() []float64 {
	out := make([]float64, len(r.Stats))
	for i, s := range r.Stats {
		out[i] = s.Mean
	}

	return out
}

// BestFitness returns the best-ever fitness after every generation.
func (r Result) BestFitness() []float64 {
	out := make([]float64, len(r.Stats))
	for i, s := range r.Stats {
		out[i] = s.BestEver
	}

	return out
}

// Run drives cfg.Generations generations of p and returns the collected
// results. The first error aborts the run; no partial Result is returned.
func Run(p *Population, cfg RunConfig, observers ...Observer) (Result, error) {
	if p == nil {
		return Result{}, fmt.Errorf("run: nil population: %w", ErrInvalidConfig)
	}
	if cfg.Generations < 0 {
		return Result{}, fmt.Errorf("run: generations %d < 0: %w", cfg.Generations, ErrInvalidConfig)
	}
	if cfg.MutateEvery < 0 {
		return Result{}, fmt.Errorf("run: mutate every %d < 0: %w", cfg.MutateEvery, ErrInvalidConfig)
	}

	stats := make([]GenerationStats, 0, cfg.Generations)
	for g := 0; g < cfg.Generations; g++ {
		var mutated *Tour
		if cfg.MutateEvery > 0 && g%cfg.MutateEvery == 0 {
			t, err := p.Mutate()
			if err != nil {
				return Result{}, fmt.Errorf("run: generation %d: %w", g+1, err)
			}
			mutated = t
		}

		fits, err := p.Evolve()
		if err != nil {
			return Result{}, fmt.Errorf("run: %w", err)
		}

		s := Summarize(p.Generation(), fits, p.best.fitness)
		if mutated != nil {
			s.Mutated = true
			s.MutatedID = mutated.id
		}
		stats = append(stats, s)
		for _, o := range observers {
			o.ObserveGeneration(s)
		}
	}

	res := Result{
		Depot:   p.eval.Depot(),
		History: p.History(),
		Stats:   stats,
		Lineage: p.lineage,
	}
	if best, ok := p.BestEver(); ok {
		res.Best = best
	}

	return res, nil
}
