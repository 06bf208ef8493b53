// Options for NewPopulation.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors PANIC on nil arguments (programmer error);
//     numeric ranges are validated by NewPopulation and reported as errors.
//   - Determinism is explicit: seed via WithSeed or WithRand.

package ga

import "math/rand"

// Defaults mirror the legacy optimizer.
const (
	DefaultPopulationSize = 100
	DefaultEliteSize      = 50
	DefaultGenerations    = 10
	DefaultMutateEvery    = 10
	DefaultLineageDepth   = 5
)

// DefaultDepot is the legacy hive position.
var DefaultDepot = Point{X: 500, Y: 500}

// config is the resolved parameter set of a Population.
type config struct {
	populationSize int
	eliteSize      int
	workers        int
	lineageDepth   int // 0 keeps every record
	crossover      Crossover
	mutation       Mutation
	rng            *rand.Rand
}

func defaultConfig() config {
	return config{
		populationSize: DefaultPopulationSize,
		eliteSize:      DefaultEliteSize,
		workers:        1,
		crossover:      SingleSplit{},
		mutation:       CoinFlip{},
	}
}

// Option customizes a Population before its founders are created.
type Option func(*config)

// WithPopulationSize sets the number of founder tours.
func WithPopulationSize(n int) Option {
	return func(c *config) { c.populationSize = n }
}

// WithEliteSize sets how many ranked tours survive and breed each generation.
func WithEliteSize(n int) Option {
	return func(c *config) { c.eliteSize = n }
}

// WithCrossover selects the crossover strategy. Panics on nil.
func WithCrossover(x Crossover) Option {
	if x == nil {
		panic("ga: WithCrossover(nil)")
	}
	return func(c *config) { c.crossover = x }
}

// WithMutation selects the mutation operator. Panics on nil.
func WithMutation(m Mutation) Option {
	if m == nil {
		panic("ga: WithMutation(nil)")
	}
	return func(c *config) { c.mutation = m }
}

// WithSeed seeds a fresh RNG. Seed 0 maps to a fixed default seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = seededRand(seed) }
}

// WithRand provides an explicit RNG. Panics on nil.
// The Population becomes the RNG's only user.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("ga: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithWorkers bounds the goroutines used for fitness evaluation and
// crossover. Results do not depend on n.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithLineageDepth sets how many generations of ancestry the Lineage arena
// must keep reachable from the best tour. 0 keeps every record.
func WithLineageDepth(depth int) Option {
	return func(c *config) { c.lineageDepth = depth }
}
