// Package ga - population and the evolve state machine.
//
// One Evolve call moves through: ranked (elite computed) → paired (elite
// split into parent pairs) → bred (children produced) → merged (elite ∪
// children become the members). Mutation is a separate operation that the
// caller schedules (see Run).
package ga

import (
	"fmt"
	"math/rand"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Population owns the live tours of the current generation, the best tour
// ever observed, the fitness history and the lineage arena.
// A Population is not safe for concurrent use.
type Population struct {
	cfg        config
	eval       *Evaluator
	rng        *rand.Rand
	ids        *IDSequence
	members    []*Tour
	best       *Tour // snapshot; nil until the first Evolve
	history    [][]float64
	lineage    *Lineage
	generation int
}

// NewPopulation validates the options and creates the founder generation:
// one random permutation of the evaluator's points per member, each
// evaluated immediately.
//
// Errors: ErrInvalidConfig, ErrInsufficientPopulation (elite larger than
// population). No state is built on failure.
func NewPopulation(eval *Evaluator, opts ...Option) (*Population, error) {
	if eval == nil {
		return nil, fmt.Errorf("new population: nil evaluator: %w", ErrInvalidConfig)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("new population: %w", err)
	}
	if cfg.rng == nil {
		cfg.rng = seededRand(0)
	}

	p := &Population{
		cfg:     cfg,
		eval:    eval,
		rng:     cfg.rng,
		ids:     NewIDSequence(0),
		members: make([]*Tour, 0, cfg.populationSize),
		lineage: newLineage(),
	}

	var (
		stops []Point
		i     int
	)
	for i = 0; i < cfg.populationSize; i++ {
		stops = eval.Points()
		shufflePoints(stops, p.rng)
		p.members = append(p.members, newTour(p.ids.Next(), stops, 0, noParent, noParent))
	}
	if err := p.evaluate(p.members); err != nil {
		return nil, fmt.Errorf("new population: %w", err)
	}
	for _, t := range p.members {
		p.lineage.add(t)
	}

	return p, nil
}

// Evolve runs one generation and returns the fitness values of the new
// members (elite first, then children in breeding order). The same values
// are appended to History.
//
// Steps:
//  1. Evaluate members lacking a cached fitness (e.g. after Mutate).
//  2. Rank and keep the elite (SelectElite).
//  3. Replace the best-ever snapshot on strict improvement only.
//  4. Pair distinct elite members at random without replacement; an odd
//     member out is not bred this generation.
//  5. Cross every pair into two verified, evaluated children.
//  6. members = elite ∪ children.
//
// Errors: ErrInsufficientPopulation when fewer than two elite members exist,
// ErrInvariantViolation when a child is not a permutation. On error the
// members, best tour and history are left unchanged.
func (p *Population) Evolve() ([]float64, error) {
	if err := p.evaluate(p.members); err != nil {
		return nil, fmt.Errorf("evolve: %w", err)
	}
	elite := SelectElite(p.members, p.cfg.eliteSize)
	if len(elite) < 2 {
		return nil, fmt.Errorf("evolve: %d elite member(s): %w", len(elite), ErrInsufficientPopulation)
	}

	generation := p.generation + 1
	children, err := p.breed(p.pair(elite), generation)
	if err != nil {
		return nil, fmt.Errorf("evolve: generation %d: %w", generation, err)
	}

	p.generation = generation
	p.trackBest(elite[0])
	for _, c := range children {
		p.lineage.add(c)
	}
	next := make([]*Tour, 0, len(elite)+len(children))
	next = append(next, elite...)
	p.members = append(next, children...)
	p.retainLineage()

	fits := make([]float64, len(p.members))
	for i, t := range p.members {
		fits[i] = t.fitness
	}
	p.history = append(p.history, slices.Clone(fits))

	return fits, nil
}

// Mutate picks one tour uniformly from the current elite, perturbs it in
// place with the configured Mutation and clears its cached fitness. No other
// member is touched. The next Evolve re-evaluates the tour.
func (p *Population) Mutate() (*Tour, error) {
	elite := SelectElite(p.members, p.cfg.eliteSize)
	if len(elite) == 0 {
		return nil, fmt.Errorf("mutate: %w", ErrInsufficientPopulation)
	}
	t := elite[p.rng.Intn(len(elite))]
	p.cfg.mutation.Mutate(t.stops, p.rng)
	t.invalidate()
	if err := p.eval.Verify(t.stops); err != nil {
		return nil, fmt.Errorf("mutate: tour %d: %w", t.id, err)
	}

	return t, nil
}

// pair draws distinct pairs without replacement from a working copy of elite.
func (p *Population) pair(elite []*Tour) [][2]*Tour {
	var (
		work  = slices.Clone(elite)
		pairs = make([][2]*Tour, 0, len(elite)/2)
		a, b  *Tour
		i     int
	)
	for len(work) >= 2 {
		i = p.rng.Intn(len(work))
		a = work[i]
		work = slices.Delete(work, i, i+1)
		i = p.rng.Intn(len(work))
		b = work[i]
		work = slices.Delete(work, i, i+1)
		pairs = append(pairs, [2]*Tour{a, b})
	}

	return pairs
}

// breed crosses every pair. Each pair crosses on its own stream keyed by
// (generation, pair index), so the outcome is independent of the worker
// count. Ids are assigned afterwards on this goroutine.
func (p *Population) breed(pairs [][2]*Tour, generation int) ([]*Tour, error) {
	type brood struct{ a, b []Point }

	var (
		streams = pairStreams(p.rng, generation, len(pairs))
		broods  = make([]brood, len(pairs))
		k       int
	)

	g := new(errgroup.Group)
	g.SetLimit(p.cfg.workers)
	for k = range pairs {
		k := k
		g.Go(func() error {
			a, b, err := p.cfg.crossover.Cross(pairs[k][0].stops, pairs[k][1].stops, streams[k])
			if err != nil {
				return fmt.Errorf("%s crossover of %d×%d: %w",
					p.cfg.crossover.Name(), pairs[k][0].id, pairs[k][1].id, err)
			}
			if err = p.eval.Verify(a); err != nil {
				return fmt.Errorf("%s child of %d×%d: %w", p.cfg.crossover.Name(), pairs[k][0].id, pairs[k][1].id, err)
			}
			if err = p.eval.Verify(b); err != nil {
				return fmt.Errorf("%s child of %d×%d: %w", p.cfg.crossover.Name(), pairs[k][0].id, pairs[k][1].id, err)
			}
			broods[k] = brood{a: a, b: b}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	children := make([]*Tour, 0, 2*len(pairs))
	for k = range pairs {
		p1, p2 := pairs[k][0].id, pairs[k][1].id
		children = append(children,
			newTour(p.ids.Next(), broods[k].a, generation, p1, p2),
			newTour(p.ids.Next(), broods[k].b, generation, p1, p2),
		)
	}
	if err := p.evaluate(children); err != nil {
		return nil, err
	}

	return children, nil
}

// evaluate fills missing fitness values. Distinct tours write only their own
// fields, so the fan-out needs no locking.
func (p *Population) evaluate(tours []*Tour) error {
	g := new(errgroup.Group)
	g.SetLimit(p.cfg.workers)
	for _, t := range tours {
		if t.evaluated {
			continue
		}
		t := t
		g.Go(func() error {
			_, err := t.Evaluate(p.eval)
			return err
		})
	}

	return g.Wait()
}

// trackBest replaces the best-ever snapshot when candidate is strictly fitter.
func (p *Population) trackBest(candidate *Tour) {
	if p.best == nil || candidate.fitness < p.best.fitness {
		p.best = candidate.snapshot()
	}
}

// retainLineage prunes records older than the configured depth. The
// ancestry of every live member and of the best tour is kept up to that
// depth, so whichever tour becomes best next can still be walked back.
func (p *Population) retainLineage() {
	depth := p.cfg.lineageDepth
	if depth == 0 {
		return
	}
	keep := make(map[int64]struct{}, len(p.members)*2)
	mark := func(id int64) {
		for _, r := range p.lineage.Ancestors(id, depth) {
			keep[r.ID] = struct{}{}
		}
	}
	for _, t := range p.members {
		mark(t.id)
	}
	if p.best != nil {
		mark(p.best.id)
	}
	p.lineage.prune(p.generation-depth, keep)
}

// Members returns the live tours. The slice is a copy; the tours are shared.
func (p *Population) Members() []*Tour {
	return slices.Clone(p.members)
}

// Size returns the number of live tours.
func (p *Population) Size() int { return len(p.members) }

// BestEver returns a snapshot of the fittest tour observed by Evolve.
// ok is false before the first Evolve.
func (p *Population) BestEver() (*Tour, bool) {
	if p.best == nil {
		return nil, false
	}

	return p.best.snapshot(), true
}

// History returns a deep copy of the per-generation fitness values.
func (p *Population) History() [][]float64 {
	out := make([][]float64, len(p.history))
	for i, h := range p.history {
		out[i] = slices.Clone(h)
	}

	return out
}

// Lineage returns the population's lineage arena.
func (p *Population) Lineage() *Lineage { return p.lineage }

// Generation returns the number of completed Evolve calls.
func (p *Population) Generation() int { return p.generation }

// Evaluator returns the fitness function the population was built with.
func (p *Population) Evaluator() *Evaluator { return p.eval }

// NextID returns the id the next created tour will receive.
func (p *Population) NextID() int64 { return p.ids.Peek() }
