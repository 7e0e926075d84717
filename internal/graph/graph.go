// Package graph provides the directed table graph for CMDB relationship
// queries. Nodes are tables, edges are CI relationships or class hierarchy
// links. The graph is built once per session and read-only afterward.
package graph

import (
	"sort"
)

// EdgeKind distinguishes CI relationship edges from class hierarchy edges.
type EdgeKind string

const (
	// KindCI marks an edge sourced from suggested relationship data.
	KindCI EdgeKind = "ci"
	// KindHierarchy marks an edge derived from a super_class pointer.
	KindHierarchy EdgeKind = "hierarchy"
)

// NodeAttrs holds the attributes of a table node. InheritedTarget and
// InheritedFrom are only set on nodes of an induced subgraph, never on the
// full graph.
type NodeAttrs struct {
	Label      string
	SuperClass string
	Scope      string
	Package    string
	Extendable bool

	InheritedTarget bool
	InheritedFrom   string
}

// EdgeAttrs holds the attributes of a directed edge. InheritedEdge and
// InheritedFrom are only set on edges of an induced subgraph.
type EdgeAttrs struct {
	RelationshipType string
	RelationshipID   string
	Label            string
	SourceFile       string
	Scope            string
	Kind             EdgeKind

	InheritedEdge bool
	InheritedFrom string
}

// Edge is an ordered (source, target) pair with its attributes, used when
// iterating the edge set.
type Edge struct {
	Src   string
	Dst   string
	Attrs EdgeAttrs
}

// Graph is a directed graph with at most one edge per ordered node pair.
type Graph struct {
	nodes map[string]NodeAttrs
	out   map[string]map[string]EdgeAttrs
	in    map[string]map[string]struct{}
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]NodeAttrs),
		out:   make(map[string]map[string]EdgeAttrs),
		in:    make(map[string]map[string]struct{}),
	}
}

// AddNode inserts a node. If the node already exists its attributes are
// kept unchanged; the first write wins.
func (g *Graph) AddNode(name string, attrs NodeAttrs) {
	if name == "" {
		return
	}
	if _, exists := g.nodes[name]; exists {
		return
	}
	g.nodes[name] = attrs
}

// AddEdge inserts a directed edge. A later write for the same ordered pair
// replaces the earlier edge's attributes. Missing endpoints are created
// with zero attributes. Self-loops are stored as given.
func (g *Graph) AddEdge(src, dst string, attrs EdgeAttrs) {
	if src == "" || dst == "" {
		return
	}
	g.AddNode(src, NodeAttrs{})
	g.AddNode(dst, NodeAttrs{})

	if g.out[src] == nil {
		g.out[src] = make(map[string]EdgeAttrs)
	}
	g.out[src][dst] = attrs

	if g.in[dst] == nil {
		g.in[dst] = make(map[string]struct{})
	}
	g.in[dst][src] = struct{}{}
}

// HasNode reports whether a node exists.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// NodeAttrs returns the attributes of a node. Unknown nodes return the
// zero value and false; absence is a normal result, not an error.
func (g *Graph) NodeAttrs(name string) (NodeAttrs, bool) {
	a, ok := g.nodes[name]
	return a, ok
}

// HasEdge reports whether the ordered pair (src, dst) has an edge.
func (g *Graph) HasEdge(src, dst string) bool {
	_, ok := g.out[src][dst]
	return ok
}

// EdgeAttrs returns the attributes of the edge (src, dst).
func (g *Graph) EdgeAttrs(src, dst string) (EdgeAttrs, bool) {
	a, ok := g.out[src][dst]
	return a, ok
}

// NeighborsOut returns the successors of a node in sorted order.
func (g *Graph) NeighborsOut(name string) []string {
	return sortedKeysEdges(g.out[name])
}

// NeighborsIn returns the predecessors of a node in sorted order.
func (g *Graph) NeighborsIn(name string) []string {
	set := g.in[name]
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Degree returns the sum of in-degree and out-degree of a node. Unknown
// nodes have degree zero.
func (g *Graph) Degree(name string) int {
	return len(g.out[name]) + len(g.in[name])
}

// Nodes returns all node names in sorted order.
func (g *Graph) Nodes() []string {
	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, targets := range g.out {
		count += len(targets)
	}
	return count
}

// Edges returns every edge ordered by (source, target) for deterministic
// iteration.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.EdgeCount())
	for _, src := range g.Nodes() {
		for _, dst := range sortedKeysEdges(g.out[src]) {
			edges = append(edges, Edge{Src: src, Dst: dst, Attrs: g.out[src][dst]})
		}
	}
	return edges
}

func sortedKeysEdges(m map[string]EdgeAttrs) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
