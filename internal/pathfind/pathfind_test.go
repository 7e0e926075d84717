package pathfind

import (
	"testing"

	"github.com/edgewise-labs/cmdbmap/internal/catalog"
	"github.com/edgewise-labs/cmdbmap/internal/graph"
	"github.com/edgewise-labs/cmdbmap/internal/hierarchy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inheritanceFixture builds the five-table class tree
//
//	a (root) -> b -> c,  a -> d,  a -> e
//
// with CI edges e->d and d->b. The subclass c participates only through
// its ancestors: it is a catalog table but carries no graph edges of its
// own, so any path to it must go through inheritance.
func inheritanceFixture() (*graph.Graph, *Finder) {
	s := catalog.NewStore()
	s.PutTable(catalog.Table{Name: "a"})
	s.PutTable(catalog.Table{Name: "b", SuperClass: "a"})
	s.PutTable(catalog.Table{Name: "c", SuperClass: "b"})
	s.PutTable(catalog.Table{Name: "d", SuperClass: "a"})
	s.PutTable(catalog.Table{Name: "e", SuperClass: "a"})

	g := graph.New()
	g.AddEdge("e", "d", graph.EdgeAttrs{Label: "depends on", Kind: graph.KindCI})
	g.AddEdge("d", "b", graph.EdgeAttrs{Label: "runs on", Kind: graph.KindCI})
	g.AddEdge("a", "b", graph.EdgeAttrs{Label: "parent of", Kind: graph.KindHierarchy})
	g.AddEdge("a", "d", graph.EdgeAttrs{Label: "parent of", Kind: graph.KindHierarchy})
	g.AddEdge("a", "e", graph.EdgeAttrs{Label: "parent of", Kind: graph.KindHierarchy})

	return g, NewFinder(g, hierarchy.New(s))
}

func TestFindPaths_InheritedPath(t *testing.T) {
	_, f := inheritanceFixture()

	got := f.FindPaths("e", "c", Options{})
	require.NotEmpty(t, got, "expected an inheritance path to surface")

	found := false
	for _, c := range got {
		if c.Ancestor == "b" {
			assert.Equal(t, []string{"e", "d", "b", "c"}, c.Nodes)
			found = true
		}
	}
	assert.True(t, found, "expected e->d->b->c tagged with ancestor b, got %v", got)
}

func TestFindPaths_SourceIsAncestorOfTarget(t *testing.T) {
	// a is at the top of the chain c -> b -> a, and the hierarchy edges
	// a->b->c are in the graph. The winner must be the real two-edge
	// direct path, not an edgeless [a, c] projected from ancestor a.
	s := catalog.NewStore()
	s.PutTable(catalog.Table{Name: "a"})
	s.PutTable(catalog.Table{Name: "b", SuperClass: "a"})
	s.PutTable(catalog.Table{Name: "c", SuperClass: "b"})

	g := graph.New()
	g.AddEdge("a", "b", graph.EdgeAttrs{Label: "parent of", Kind: graph.KindHierarchy})
	g.AddEdge("b", "c", graph.EdgeAttrs{Label: "parent of", Kind: graph.KindHierarchy})
	f := NewFinder(g, hierarchy.New(s))

	got := f.FindPaths("a", "c", Options{MaxPaths: 1})
	require.Len(t, got, 1)
	assert.Equal(t, []string{"a", "b", "c"}, got[0].Nodes)
	assert.False(t, got[0].Inherited())

	sub := f.BuildPathGraph("c", got)
	assert.Equal(t, 2, sub.EdgeCount(), "every hop of the winner is a real edge")
}

func TestFindPaths_SameSourceAndTarget(t *testing.T) {
	_, f := inheritanceFixture()
	assert.Empty(t, f.FindPaths("e", "e", Options{}))
}

func TestFindPaths_MissingSource(t *testing.T) {
	_, f := inheritanceFixture()
	assert.Empty(t, f.FindPaths("ghost", "c", Options{}))
}

func TestFindPaths_MissingTargetNoAncestors(t *testing.T) {
	_, f := inheritanceFixture()
	// Target unknown to both graph and catalog: nothing to project onto.
	assert.Empty(t, f.FindPaths("e", "ghost", Options{}))
}

func TestFindPaths_NoPathWithinBound(t *testing.T) {
	_, f := inheritanceFixture()
	// e->d->b needs two hops; MaxLen 1 cannot reach it, and no shorter
	// route to any ancestor of c exists.
	assert.Empty(t, f.FindPaths("e", "c", Options{MaxLen: 1}))
}

func TestFindPaths_Idempotent(t *testing.T) {
	_, f := inheritanceFixture()

	first := f.FindPaths("e", "c", Options{})
	second := f.FindPaths("e", "c", Options{})
	assert.Equal(t, first, second, "repeated queries on an unmodified graph must match")
}

func TestFindPaths_DirectBeatsInheritedPrefix(t *testing.T) {
	// x -> y -> t directly, and y is also t's superclass, so the same
	// walk is found again as an inherited candidate x->y(+t). The direct
	// path must win and the inherited duplicate must disappear.
	s := catalog.NewStore()
	s.PutTable(catalog.Table{Name: "t", SuperClass: "y"})
	s.PutTable(catalog.Table{Name: "y"})
	s.PutTable(catalog.Table{Name: "x"})

	g := graph.New()
	g.AddEdge("x", "y", graph.EdgeAttrs{Kind: graph.KindCI})
	g.AddEdge("y", "t", graph.EdgeAttrs{Kind: graph.KindCI})
	f := NewFinder(g, hierarchy.New(s))

	got := f.FindPaths("x", "t", Options{})
	require.Len(t, got, 1)
	assert.False(t, got[0].Inherited(), "direct path must suppress the inherited substitute")
	assert.Equal(t, []string{"x", "y", "t"}, got[0].Nodes)
}

func TestFindPaths_MaxPathsTruncates(t *testing.T) {
	// Diamond: s -> m1/m2 -> t gives two direct paths.
	s := catalog.NewStore()
	g := graph.New()
	g.AddEdge("s", "m1", graph.EdgeAttrs{})
	g.AddEdge("s", "m2", graph.EdgeAttrs{})
	g.AddEdge("m1", "t", graph.EdgeAttrs{})
	g.AddEdge("m2", "t", graph.EdgeAttrs{})
	f := NewFinder(g, hierarchy.New(s))

	all := f.FindPaths("s", "t", Options{})
	assert.Len(t, all, 2)

	shortest := f.FindPaths("s", "t", Options{MaxPaths: 1})
	require.Len(t, shortest, 1)
	assert.Equal(t, []string{"s", "m1", "t"}, shortest[0].Nodes)
}

func TestFindPaths_TerminatesOnCycles(t *testing.T) {
	s := catalog.NewStore()
	g := graph.New()
	g.AddEdge("a", "b", graph.EdgeAttrs{})
	g.AddEdge("b", "c", graph.EdgeAttrs{})
	g.AddEdge("c", "a", graph.EdgeAttrs{})
	f := NewFinder(g, hierarchy.New(s))

	got := f.FindPaths("a", "c", Options{})
	require.Len(t, got, 1)
	assert.Equal(t, []string{"a", "b", "c"}, got[0].Nodes)
}

func TestRank_Ordering(t *testing.T) {
	candidates := []Candidate{
		{Nodes: []string{"s", "m", "x", "t"}},                              // direct, len 4
		{Nodes: []string{"s", "q", "t"}, Ancestor: "anc"},                  // inherited, len 3
		{Nodes: []string{"s", "t"}},                                        // direct, len 2
		{Nodes: []string{"s", "m", "y", "z", "t"}, Ancestor: "anc"},        // inherited, len 5
		{Nodes: []string{"s", "r", "t"}},                                   // direct, len 3
	}

	got := rank(candidates, 0)
	require.Len(t, got, 5)

	assert.Equal(t, []string{"s", "t"}, got[0].Nodes)
	assert.Equal(t, []string{"s", "r", "t"}, got[1].Nodes, "direct before inherited at equal length")
	assert.Equal(t, []string{"s", "q", "t"}, got[2].Nodes)
	assert.Equal(t, []string{"s", "m", "x", "t"}, got[3].Nodes)
	assert.Equal(t, []string{"s", "m", "y", "z", "t"}, got[4].Nodes)
}

func TestRank_DropsExactDuplicates(t *testing.T) {
	candidates := []Candidate{
		{Nodes: []string{"s", "m", "t"}},
		{Nodes: []string{"s", "m", "t"}, Ancestor: "anc"}, // same sequence
	}

	got := rank(candidates, 0)
	require.Len(t, got, 1)
	assert.False(t, got[0].Inherited(), "first occurrence wins")
}

func TestRank_SuppressesInheritedWithDirectPrefix(t *testing.T) {
	candidates := []Candidate{
		{Nodes: []string{"s", "m"}},                        // direct path to the ancestor
		{Nodes: []string{"s", "m", "t"}, Ancestor: "m"},    // projected onto t
		{Nodes: []string{"s", "q", "t"}, Ancestor: "anc"},  // no direct prefix, survives
	}

	got := rank(candidates, 0)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"s", "m"}, got[0].Nodes)
	assert.Equal(t, []string{"s", "q", "t"}, got[1].Nodes)
}

func TestRank_Empty(t *testing.T) {
	assert.Nil(t, rank(nil, 0))
}
