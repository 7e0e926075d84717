package pathfind

import "github.com/edgewise-labs/cmdbmap/internal/graph"

// neighborhoodNodeCap bounds depth-2 expansion of a table neighborhood.
const neighborhoodNodeCap = 20

// Neighborhood builds the subgraph around a single table: the table
// itself plus every edge incident to it or to any table in its
// applicable-ancestor set. With depth 2 the result is extended one more
// hop, capped at neighborhoodNodeCap total nodes. Nodes and edges
// borrowed from an ancestor carry inheritance provenance flags. An
// unknown table yields nil.
func (f *Finder) Neighborhood(table string, depth int) *graph.Graph {
	if !f.g.HasNode(table) {
		return nil
	}

	sub := graph.New()
	attrs, _ := f.g.NodeAttrs(table)
	sub.AddNode(table, attrs)

	applicable := f.resolver.ApplicableAncestors(f.g, table)

	addNode := func(name string) {
		if sub.HasNode(name) {
			return
		}
		a, _ := f.g.NodeAttrs(name)
		if applicable[name] && name != table {
			a.InheritedFrom = name
		}
		sub.AddNode(name, a)
	}

	for _, e := range f.g.Edges() {
		srcMatch := e.Src == table || applicable[e.Src]
		dstMatch := e.Dst == table || applicable[e.Dst]
		if !srcMatch && !dstMatch {
			continue
		}
		addNode(e.Src)
		addNode(e.Dst)

		attrs := e.Attrs
		if applicable[e.Src] && e.Src != table {
			attrs.InheritedEdge = true
			attrs.InheritedFrom = e.Src
		}
		if applicable[e.Dst] && e.Dst != table {
			attrs.InheritedEdge = true
			attrs.InheritedFrom = e.Dst
		}
		sub.AddEdge(e.Src, e.Dst, attrs)
	}

	if depth > 1 {
		f.extendNeighborhood(sub, table)
	}

	return sub
}

// extendNeighborhood adds neighbors-of-neighbors while the subgraph stays
// under the node cap. No ranking; only already-present checks.
func (f *Finder) extendNeighborhood(sub *graph.Graph, table string) {
	direct := make([]string, 0, sub.NodeCount())
	for _, n := range sub.Nodes() {
		if n != table {
			direct = append(direct, n)
		}
	}

	for _, neighbor := range direct {
		for _, e := range f.g.Edges() {
			switch {
			case e.Src == neighbor && !sub.HasNode(e.Dst):
				if sub.NodeCount() < neighborhoodNodeCap {
					attrs, _ := f.g.NodeAttrs(e.Dst)
					sub.AddNode(e.Dst, attrs)
					sub.AddEdge(e.Src, e.Dst, e.Attrs)
				}
			case e.Dst == neighbor && !sub.HasNode(e.Src):
				if sub.NodeCount() < neighborhoodNodeCap {
					attrs, _ := f.g.NodeAttrs(e.Src)
					sub.AddNode(e.Src, attrs)
					sub.AddEdge(e.Src, e.Dst, e.Attrs)
				}
			}
		}
	}
}
