package graph

import (
	"testing"
)

func TestGraph_AddNodeAndEdge(t *testing.T) {
	g := New()

	g.AddNode("a", NodeAttrs{Label: "Table A"})
	g.AddNode("b", NodeAttrs{Label: "Table B"})
	g.AddEdge("a", "b", EdgeAttrs{Label: "runs on", Kind: KindCI})

	if g.NodeCount() != 2 {
		t.Errorf("expected 2 nodes, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 1 {
		t.Errorf("expected 1 edge, got %d", g.EdgeCount())
	}
	if !g.HasEdge("a", "b") {
		t.Error("expected edge a->b")
	}
	if g.HasEdge("b", "a") {
		t.Error("did not expect reverse edge b->a")
	}
}

func TestGraph_AddNode_FirstWriteWins(t *testing.T) {
	g := New()

	g.AddNode("a", NodeAttrs{Label: "first"})
	g.AddNode("a", NodeAttrs{Label: "second"})

	attrs, ok := g.NodeAttrs("a")
	if !ok {
		t.Fatal("expected node a")
	}
	if attrs.Label != "first" {
		t.Errorf("expected first write to win, got label %q", attrs.Label)
	}
}

func TestGraph_AddEdge_Overwrites(t *testing.T) {
	g := New()

	g.AddEdge("a", "b", EdgeAttrs{Label: "L1"})
	g.AddEdge("a", "b", EdgeAttrs{Label: "L2"})

	if g.EdgeCount() != 1 {
		t.Fatalf("expected exactly 1 edge, got %d", g.EdgeCount())
	}
	attrs, ok := g.EdgeAttrs("a", "b")
	if !ok {
		t.Fatal("expected edge a->b")
	}
	if attrs.Label != "L2" {
		t.Errorf("expected last write to win, got label %q", attrs.Label)
	}
}

func TestGraph_AddEdge_CreatesEndpoints(t *testing.T) {
	g := New()

	g.AddEdge("x", "y", EdgeAttrs{})

	if !g.HasNode("x") || !g.HasNode("y") {
		t.Error("expected AddEdge to create missing endpoints")
	}
}

func TestGraph_AddEdge_SelfLoopAccepted(t *testing.T) {
	g := New()

	g.AddEdge("a", "a", EdgeAttrs{Label: "self"})

	if !g.HasEdge("a", "a") {
		t.Error("expected self-loop to be stored")
	}
	if g.Degree("a") != 2 {
		t.Errorf("expected self-loop degree 2, got %d", g.Degree("a"))
	}
}

func TestGraph_Neighbors(t *testing.T) {
	g := New()
	g.AddEdge("a", "b", EdgeAttrs{})
	g.AddEdge("a", "c", EdgeAttrs{})
	g.AddEdge("d", "a", EdgeAttrs{})

	out := g.NeighborsOut("a")
	if len(out) != 2 || out[0] != "b" || out[1] != "c" {
		t.Errorf("expected sorted out-neighbors [b c], got %v", out)
	}

	in := g.NeighborsIn("a")
	if len(in) != 1 || in[0] != "d" {
		t.Errorf("expected in-neighbors [d], got %v", in)
	}

	if g.Degree("a") != 3 {
		t.Errorf("expected degree 3, got %d", g.Degree("a"))
	}
}

func TestGraph_UnknownNodeQueries(t *testing.T) {
	g := New()

	if g.HasNode("ghost") {
		t.Error("did not expect unknown node")
	}
	if _, ok := g.NodeAttrs("ghost"); ok {
		t.Error("expected no attrs for unknown node")
	}
	if g.Degree("ghost") != 0 {
		t.Error("expected degree 0 for unknown node")
	}
	if len(g.NeighborsOut("ghost")) != 0 {
		t.Error("expected no out-neighbors for unknown node")
	}
	if len(g.NeighborsIn("ghost")) != 0 {
		t.Error("expected no in-neighbors for unknown node")
	}
}

func TestGraph_EdgesDeterministic(t *testing.T) {
	g := New()
	g.AddEdge("b", "c", EdgeAttrs{})
	g.AddEdge("a", "z", EdgeAttrs{})
	g.AddEdge("a", "b", EdgeAttrs{})

	edges := g.Edges()
	if len(edges) != 3 {
		t.Fatalf("expected 3 edges, got %d", len(edges))
	}
	want := [][2]string{{"a", "b"}, {"a", "z"}, {"b", "c"}}
	for i, e := range edges {
		if e.Src != want[i][0] || e.Dst != want[i][1] {
			t.Errorf("edge %d: expected %v, got (%s, %s)", i, want[i], e.Src, e.Dst)
		}
	}
}

func TestGraph_ComputeStats(t *testing.T) {
	g := New()
	g.AddEdge("a", "b", EdgeAttrs{})
	g.AddEdge("b", "c", EdgeAttrs{})
	g.AddNode("island", NodeAttrs{})

	stats := g.ComputeStats(2)

	if stats.Nodes != 4 {
		t.Errorf("expected 4 nodes, got %d", stats.Nodes)
	}
	if stats.Edges != 2 {
		t.Errorf("expected 2 edges, got %d", stats.Edges)
	}
	if stats.WeakComponents != 2 {
		t.Errorf("expected 2 weak components, got %d", stats.WeakComponents)
	}
	if len(stats.TopDegree) != 2 {
		t.Fatalf("expected top 2, got %d", len(stats.TopDegree))
	}
	if stats.TopDegree[0].Name != "b" || stats.TopDegree[0].Degree != 2 {
		t.Errorf("expected b with degree 2 first, got %+v", stats.TopDegree[0])
	}
}

func TestGraph_ComputeStats_Empty(t *testing.T) {
	g := New()
	stats := g.ComputeStats(5)
	if stats.Nodes != 0 || stats.Edges != 0 || stats.WeakComponents != 0 {
		t.Errorf("expected zero stats for empty graph, got %+v", stats)
	}
}
