package ga

import (
	"fmt"
	"strings"
)

// noParent marks founder tours.
const noParent int64 = -1

// Tour is a candidate solution: an ordered permutation of the input points
// plus a cached fitness. The depot is implicit at both ends.
//
// A Tour refers to its parents by id only; the owning Population keeps the
// ancestry in its Lineage arena.
type Tour struct {
	id         int64
	stops      []Point
	fitness    float64
	evaluated  bool
	parent1    int64
	parent2    int64
	generation int
}

// NewTour creates a founder tour with the next id from ids. The stops slice
// is copied; fitness is unset.
func NewTour(ids *IDSequence, stops []Point) *Tour {
	own := make([]Point, len(stops))
	copy(own, stops)

	return newTour(ids.Next(), own, 0, noParent, noParent)
}

// newTour takes ownership of stops.
func newTour(id int64, stops []Point, generation int, p1, p2 int64) *Tour {
	return &Tour{id: id, stops: stops, parent1: p1, parent2: p2, generation: generation}
}

// ID returns the tour's unique id.
func (t *Tour) ID() int64 { return t.id }

// Len returns the number of stops.
func (t *Tour) Len() int { return len(t.stops) }

// Generation returns the generation the tour was born in (0 for founders).
func (t *Tour) Generation() int { return t.generation }

// Stops returns a copy of the visiting order.
func (t *Tour) Stops() []Point {
	out := make([]Point, len(t.stops))
	copy(out, t.stops)

	return out
}

// Fitness returns the cached tour length and whether it is set.
func (t *Tour) Fitness() (float64, bool) {
	return t.fitness, t.evaluated
}

// Parents returns the ids of the two tours this one was bred from.
// ok is false for founders.
func (t *Tour) Parents() (p1, p2 int64, ok bool) {
	if t.parent1 == noParent {
		return noParent, noParent, false
	}

	return t.parent1, t.parent2, true
}

// Evaluate computes, caches and returns the tour length. A cached value is
// returned as-is until the stops change through mutation.
func (t *Tour) Evaluate(e *Evaluator) (float64, error) {
	if t.evaluated {
		return t.fitness, nil
	}
	f, err := e.Length(t.stops)
	if err != nil {
		return 0, fmt.Errorf("tour %d: %w", t.id, err)
	}
	t.fitness = f
	t.evaluated = true

	return f, nil
}

// invalidate drops the cached fitness after an in-place change.
func (t *Tour) invalidate() {
	t.fitness = 0
	t.evaluated = false
}

// snapshot returns a deep copy that later mutation of t cannot affect.
func (t *Tour) snapshot() *Tour {
	c := *t
	c.stops = t.Stops()

	return &c
}

// String renders "Tour#id[fitness] (x, y) -> ...".
func (t *Tour) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tour#%d", t.id)
	if t.evaluated {
		fmt.Fprintf(&sb, "[%g]", t.fitness)
	}
	for i, p := range t.stops {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(" -> ")
		}
		sb.WriteString(p.String())
	}

	return sb.String()
}
