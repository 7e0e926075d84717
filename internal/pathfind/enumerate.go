package pathfind

import (
	"github.com/edgewise-labs/cmdbmap/internal/graph"
	"github.com/edgewise-labs/cmdbmap/internal/hierarchy"
)

// Default search bounds. MaxLen bounds the number of hops on a path;
// MaxPaths bounds how many ranked candidates are returned.
const (
	DefaultMaxLen   = 5
	DefaultMaxPaths = 10
)

// Options configures a path query.
type Options struct {
	// MaxPaths caps the ranked result. Zero or negative means
	// DefaultMaxPaths. Shortest-path mode uses 1.
	MaxPaths int
	// MaxLen caps the number of edges on any enumerated path. Zero or
	// negative means DefaultMaxLen.
	MaxLen int
}

func (o Options) normalized() Options {
	if o.MaxPaths <= 0 {
		o.MaxPaths = DefaultMaxPaths
	}
	if o.MaxLen <= 0 {
		o.MaxLen = DefaultMaxLen
	}
	return o
}

// Finder answers path queries against a built graph. It holds no mutable
// state; the same Finder can serve any number of queries.
type Finder struct {
	g        *graph.Graph
	resolver *hierarchy.Resolver
}

// NewFinder creates a finder over the graph and resolver.
func NewFinder(g *graph.Graph, resolver *hierarchy.Resolver) *Finder {
	return &Finder{g: g, resolver: resolver}
}

// FindPaths returns the ranked candidates from source to target. An absent
// source or target yields an empty result, not an error; so does a pair
// with no path within the length bound.
func (f *Finder) FindPaths(source, target string, opts Options) []Candidate {
	opts = opts.normalized()
	candidates := f.enumerate(source, target, opts.MaxLen)
	return rank(candidates, opts.MaxPaths)
}

// enumerate returns the raw candidate list: direct paths first, then
// inheritance paths per ancestor in chain order. Ranking happens later.
func (f *Finder) enumerate(source, target string, maxLen int) []Candidate {
	if !f.g.HasNode(source) {
		return nil
	}

	var candidates []Candidate

	if f.g.HasNode(target) {
		for _, p := range f.simplePaths(source, target, maxLen) {
			candidates = append(candidates, Candidate{Nodes: p})
		}
	}

	chain := f.resolver.AncestorChain(target)
	for _, ancestor := range chain[1:] {
		if !f.g.HasNode(ancestor) {
			continue
		}
		for _, p := range f.simplePaths(source, ancestor, maxLen) {
			projected := make([]string, 0, len(p)+1)
			projected = append(projected, p...)
			projected = append(projected, target)
			candidates = append(candidates, Candidate{Nodes: projected, Ancestor: ancestor})
		}
	}

	return candidates
}

// simplePaths enumerates every simple path from src to dst with at most
// maxLen edges, by exhaustive DFS with a per-branch visited set. Neighbors
// are visited in sorted order so enumeration is deterministic. A path has
// at least one edge: src == dst yields nothing, so a query whose source is
// itself an ancestor of the target cannot fabricate an edgeless candidate.
func (f *Finder) simplePaths(src, dst string, maxLen int) [][]string {
	if src == dst {
		return nil
	}
	var paths [][]string
	visited := map[string]bool{src: true}
	stack := []string{src}

	var dfs func(current string)
	dfs = func(current string) {
		if current == dst {
			p := make([]string, len(stack))
			copy(p, stack)
			paths = append(paths, p)
			return
		}
		if len(stack)-1 >= maxLen {
			return
		}
		for _, next := range f.g.NeighborsOut(current) {
			if visited[next] {
				continue
			}
			visited[next] = true
			stack = append(stack, next)
			dfs(next)
			stack = stack[:len(stack)-1]
			visited[next] = false
		}
	}

	dfs(src)
	return paths
}
