package genealogy_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/beehive/ga"
	"github.com/katalvlaran/beehive/genealogy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evolved returns a population after two generations with full lineage.
func evolved(t *testing.T) *ga.Population {
	t.Helper()
	pts := []ga.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 5, Y: 20}}
	e, err := ga.NewEvaluator(ga.Point{X: 5, Y: 5}, pts, ga.Exact)
	require.NoError(t, err)
	p, err := ga.NewPopulation(e, ga.WithPopulationSize(6), ga.WithEliteSize(4), ga.WithSeed(42))
	require.NoError(t, err)
	for g := 0; g < 2; g++ {
		_, err = p.Evolve()
		require.NoError(t, err)
	}
	return p
}

// lastChild returns a second-generation child of p.
func lastChild(t *testing.T, p *ga.Population) *ga.Tour {
	t.Helper()
	members := p.Members()
	c := members[len(members)-1]
	require.Equal(t, 2, c.Generation())
	return c
}

func TestBuild_ParentEdges(t *testing.T) {
	p := evolved(t)
	child := lastChild(t, p)

	tree, err := genealogy.Build(p.Lineage(), child.ID(), 1)
	require.NoError(t, err)
	assert.Equal(t, child.ID(), tree.Root())
	assert.Equal(t, 1, tree.Depth())
	assert.Equal(t, 3, tree.Len(), "root plus two parents")

	p1, p2, ok := child.Parents()
	require.True(t, ok)
	want := []int64{p1, p2}
	if p2 < p1 {
		want = []int64{p2, p1}
	}
	assert.Equal(t, want, tree.Parents(child.ID()))

	root, ok := tree.Node(child.ID())
	require.True(t, ok)
	assert.True(t, root.Root)
	assert.Equal(t, "Bee "+strconv.FormatInt(child.ID(), 10), root.Label())

	parent, ok := tree.Node(p1)
	require.True(t, ok)
	assert.False(t, parent.Root)
	assert.True(t, tree.Graph().HasEdgeFromTo(p1, child.ID()))
	assert.False(t, tree.Graph().HasEdgeFromTo(child.ID(), p1))
}

func TestBuild_DepthBounds(t *testing.T) {
	p := evolved(t)
	child := lastChild(t, p)

	only, err := genealogy.Build(p.Lineage(), child.ID(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, only.Len())
	assert.Empty(t, only.Parents(child.ID()))

	deep, err := genealogy.Build(p.Lineage(), child.ID(), 10)
	require.NoError(t, err)
	assert.Equal(t, len(p.Lineage().Ancestors(child.ID(), 10)), deep.Len())
	assert.GreaterOrEqual(t, deep.Len(), 3)
}

func TestBuild_Errors(t *testing.T) {
	p := evolved(t)

	_, err := genealogy.Build(p.Lineage(), 9999, 2)
	require.ErrorIs(t, err, genealogy.ErrUnknownTour)

	_, err = genealogy.Build(nil, 0, 2)
	require.ErrorIs(t, err, genealogy.ErrUnknownTour)

	_, err = genealogy.Build(p.Lineage(), 0, -1)
	require.ErrorIs(t, err, genealogy.ErrNegativeDepth)
}

func TestTree_DOT(t *testing.T) {
	p := evolved(t)
	child := lastChild(t, p)
	p1, _, _ := child.Parents()

	tree, err := genealogy.Build(p.Lineage(), child.ID(), 1)
	require.NoError(t, err)
	b, err := tree.DOT()
	require.NoError(t, err)

	out := string(b)
	assert.True(t, strings.HasPrefix(out, "strict digraph genealogy {"), out)
	assert.Contains(t, out, `label="Bee `+strconv.FormatInt(child.ID(), 10)+`"`)
	assert.Contains(t, out, "fillcolor=pink")
	assert.Contains(t, out, "fillcolor=skyblue")
	assert.Contains(t, out, strconv.FormatInt(p1, 10)+" -> "+strconv.FormatInt(child.ID(), 10))
	assert.Equal(t, 1, strings.Count(out, "pink"))
}
