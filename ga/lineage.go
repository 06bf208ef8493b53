// Package ga - lineage arena.
//
// Parent links form a DAG (children are always new tours). The arena maps a
// tour id to an immutable Record taken at birth, so ancestors stay queryable
// after they leave the live population and later in-place mutation of a
// live tour does not rewrite history.
package ga

// Record is the provenance snapshot of one tour.
type Record struct {
	ID         int64
	Parent1    int64
	Parent2    int64
	HasParents bool
	Generation int
	Fitness    float64
}

// Lineage is an id-keyed arena of Records owned by a Population.
// It is not safe for concurrent mutation; reads after Run returns are safe.
type Lineage struct {
	records map[int64]Record
}

func newLineage() *Lineage {
	return &Lineage{records: make(map[int64]Record)}
}

// add records t. t must already be evaluated.
func (l *Lineage) add(t *Tour) {
	p1, p2, ok := t.Parents()
	l.records[t.id] = Record{
		ID:         t.id,
		Parent1:    p1,
		Parent2:    p2,
		HasParents: ok,
		Generation: t.generation,
		Fitness:    t.fitness,
	}
}

// Len returns the number of retained records.
func (l *Lineage) Len() int { return len(l.records) }

// Lookup returns the record for id.
func (l *Lineage) Lookup(id int64) (Record, bool) {
	r, ok := l.records[id]
	return r, ok
}

// Ancestors walks parent links breadth-first from id, up to depth levels.
// The result starts with id's own record, lists every reachable id once, and
// skips ids that are no longer retained. depth 0 returns only the root.
//
// Complexity: O(visited).
func (l *Lineage) Ancestors(id int64, depth int) []Record {
	root, ok := l.records[id]
	if !ok {
		return nil
	}

	var (
		out   = []Record{root}
		seen  = map[int64]struct{}{id: {}}
		level = []Record{root}
		next  []Record
		d     int
	)
	for d = 0; d < depth && len(level) > 0; d++ {
		next = next[:0]
		for _, r := range level {
			if !r.HasParents {
				continue
			}
			for _, pid := range [2]int64{r.Parent1, r.Parent2} {
				if _, dup := seen[pid]; dup {
					continue
				}
				seen[pid] = struct{}{}
				if pr, found := l.records[pid]; found {
					out = append(out, pr)
					next = append(next, pr)
				}
			}
		}
		level, next = next, level
	}

	return out
}

// prune drops records born before cutoff unless their id is in keep.
func (l *Lineage) prune(cutoff int, keep map[int64]struct{}) {
	for id, r := range l.records {
		if r.Generation >= cutoff {
			continue
		}
		if _, ok := keep[id]; ok {
			continue
		}
		delete(l.records, id)
	}
}
