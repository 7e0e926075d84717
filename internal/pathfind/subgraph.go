package pathfind

import "github.com/edgewise-labs/cmdbmap/internal/graph"

// BuildPathGraph merges the winning candidates for a (source, target)
// query into a standalone induced subgraph. Target nodes reached through
// an ancestor are flagged InheritedTarget; synthetic final hops borrow the
// (u, ancestor) edge's attributes and are flagged InheritedEdge. A node
// already marked stays marked: AddNode's first-write-wins covers that.
func (f *Finder) BuildPathGraph(target string, candidates []Candidate) *graph.Graph {
	sub := graph.New()

	for _, c := range candidates {
		for _, node := range c.Nodes {
			if node == target && c.Inherited() {
				attrs, _ := f.g.NodeAttrs(node)
				attrs.InheritedTarget = true
				attrs.InheritedFrom = c.Ancestor
				sub.AddNode(node, attrs)
				continue
			}
			attrs, _ := f.g.NodeAttrs(node)
			sub.AddNode(node, attrs)
		}
	}

	for _, c := range candidates {
		for i := 0; i+1 < len(c.Nodes); i++ {
			u, v := c.Nodes[i], c.Nodes[i+1]
			if attrs, ok := f.g.EdgeAttrs(u, v); ok {
				sub.AddEdge(u, v, attrs)
				continue
			}
			// Only the projected final hop of an inherited candidate
			// should be missing from the full graph. It borrows the
			// attributes of the edge that reached the ancestor and is
			// stored keyed (u, target).
			if v == target && c.Inherited() {
				attrs, ok := f.g.EdgeAttrs(u, c.Ancestor)
				if !ok && i > 0 {
					attrs, ok = f.g.EdgeAttrs(c.Nodes[i-1], c.Ancestor)
				}
				if ok {
					attrs.InheritedEdge = true
					attrs.InheritedFrom = c.Ancestor
					sub.AddEdge(u, v, attrs)
				}
			}
		}
	}

	return sub
}
