// Package genealogy turns the ancestry of one tour into a directed graph.
//
// Edges point from parent to child. Node identity is the tour id, so a
// tour reached along several paths appears once. The graph is a
// gonum.org/v1/gonum/graph/simple.DirectedGraph and can be exported as
// Graphviz DOT through gonum's encoding/dot.
package genealogy

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/katalvlaran/beehive/ga"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

var (
	// ErrUnknownTour is returned when the root id is not retained by the lineage.
	ErrUnknownTour = errors.New("genealogy: unknown tour")

	// ErrNegativeDepth is returned for depth < 0.
	ErrNegativeDepth = errors.New("genealogy: negative depth")
)

// Fill colors of the rendered tree.
const (
	RootColor     = "pink"
	AncestorColor = "skyblue"
)

// Node is one tour of the tree.
type Node struct {
	Record ga.Record
	Root   bool
}

// ID implements graph.Node.
func (n Node) ID() int64 { return n.Record.ID }

// Label is the display name of the tour.
func (n Node) Label() string { return "Bee " + strconv.FormatInt(n.Record.ID, 10) }

// Attributes implements encoding.Attributer for DOT output.
func (n Node) Attributes() []encoding.Attribute {
	fill := AncestorColor
	if n.Root {
		fill = RootColor
	}

	return []encoding.Attribute{
		{Key: "label", Value: n.Label()},
		{Key: "fillcolor", Value: fill},
		{Key: "tooltip", Value: fmt.Sprintf("generation %d, fitness %g", n.Record.Generation, n.Record.Fitness)},
	}
}

// Tree is the ancestry of one tour up to a fixed number of generations.
type Tree struct {
	g     *simple.DirectedGraph
	root  int64
	depth int
}

// Build collects the ancestors of rootID up to depth levels from lin and
// links every retained parent to its child.
//
// Complexity: O(V + E) where V is the number of visited records.
func Build(lin *ga.Lineage, rootID int64, depth int) (*Tree, error) {
	if depth < 0 {
		return nil, fmt.Errorf("build %d: depth %d: %w", rootID, depth, ErrNegativeDepth)
	}
	if lin == nil {
		return nil, fmt.Errorf("build %d: nil lineage: %w", rootID, ErrUnknownTour)
	}
	records := lin.Ancestors(rootID, depth)
	if len(records) == 0 {
		return nil, fmt.Errorf("build %d: %w", rootID, ErrUnknownTour)
	}

	t := &Tree{g: simple.NewDirectedGraph(), root: rootID, depth: depth}
	for i, r := range records {
		t.g.AddNode(Node{Record: r, Root: i == 0})
	}
	for _, r := range records {
		if !r.HasParents {
			continue
		}
		child := t.g.Node(r.ID)
		for _, pid := range [2]int64{r.Parent1, r.Parent2} {
			if parent := t.g.Node(pid); parent != nil {
				t.g.SetEdge(t.g.NewEdge(parent, child))
			}
		}
	}

	return t, nil
}

// Root returns the id of the tour the tree was built for.
func (t *Tree) Root() int64 { return t.root }

// Depth returns the number of generations walked back from the root.
func (t *Tree) Depth() int { return t.depth }

// Len returns the number of tours in the tree.
func (t *Tree) Len() int { return t.g.Nodes().Len() }

// Graph exposes the underlying directed graph for gonum algorithms.
func (t *Tree) Graph() graph.Directed { return t.g }

// Node returns the tree node for id.
func (t *Tree) Node(id int64) (Node, bool) {
	n, ok := t.g.Node(id).(Node)
	return n, ok
}

// Parents returns the ids of id's parents present in the tree, ascending.
func (t *Tree) Parents(id int64) []int64 {
	var out []int64
	to := t.g.To(id)
	for to.Next() {
		out = append(out, to.Node().ID())
	}
	slices.Sort(out)

	return out
}

// DOT renders the tree in Graphviz format.
func (t *Tree) DOT() ([]byte, error) {
	b, err := dot.Marshal(dotGraph{DirectedGraph: t.g, root: t.root}, "genealogy", "", "  ")
	if err != nil {
		return nil, fmt.Errorf("genealogy dot: %w", err)
	}

	return b, nil
}

// dotGraph adds graph-wide DOT attributes to the tree.
type dotGraph struct {
	*simple.DirectedGraph
	root int64
}

func (d dotGraph) DOTAttributers() (g, n, e encoding.Attributer) {
	return &encoding.Attributes{
			{Key: "label", Value: fmt.Sprintf("Genealogy of Bee %d", d.root)},
			{Key: "rankdir", Value: "TB"},
		},
		&encoding.Attributes{{Key: "style", Value: "filled"}},
		&encoding.Attributes{{Key: "arrowsize", Value: "0.6"}}
}
