// Package hierarchy resolves table ancestor chains by walking super_class
// pointers. Chains are always finite: the walk stops on a missing parent,
// a self-reference, or a cycle.
package hierarchy

import (
	"github.com/edgewise-labs/cmdbmap/internal/catalog"
	"github.com/edgewise-labs/cmdbmap/internal/graph"
)

// Resolver walks super_class pointers against a catalog store.
type Resolver struct {
	store *catalog.Store
}

// New creates a resolver over the given catalog.
func New(store *catalog.Store) *Resolver {
	return &Resolver{store: store}
}

// AncestorChain returns [table, parent(table), ...]. The chain ends when a
// table has no super_class, references itself, or the walk revisits a
// table. Never trusts that super_class pointers are acyclic.
func (r *Resolver) AncestorChain(table string) []string {
	chain := []string{table}
	seen := map[string]bool{}
	current := table

	for current != "" && !seen[current] {
		seen[current] = true
		t, ok := r.store.Table(current)
		if !ok {
			break
		}
		if t.SuperClass == "" || t.SuperClass == current {
			break
		}
		chain = append(chain, t.SuperClass)
		current = t.SuperClass
	}

	return chain
}

// ApplicableAncestors returns the members of the table's ancestor chain
// (the table itself included) that are graph nodes with at least one
// incident edge. Only those ancestors can supply inherited relationships.
func (r *Resolver) ApplicableAncestors(g *graph.Graph, table string) map[string]bool {
	applicable := make(map[string]bool)
	for _, ancestor := range r.AncestorChain(table) {
		if g.HasNode(ancestor) && g.Degree(ancestor) > 0 {
			applicable[ancestor] = true
		}
	}
	return applicable
}
