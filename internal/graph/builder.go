package graph

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/edgewise-labs/cmdbmap/internal/catalog"
)

// BuildResult reports what went into a freshly built graph.
type BuildResult struct {
	CIEdges        int
	HierarchyEdges int
	// SkippedSuggestions counts malformed suggestion records per source
	// file. Malformed records degrade completeness but never abort the
	// build.
	SkippedSuggestions map[string]int
}

// Build constructs the full table graph from the catalog. CI relationship
// edges are ingested first, hierarchy edges last; because AddEdge is
// last-writer-wins per ordered pair, a hierarchy edge replaces an earlier
// CI edge between the same tables. That ordering is part of the contract.
func Build(store *catalog.Store, logger *slog.Logger) (*Graph, *BuildResult) {
	if logger == nil {
		logger = slog.Default()
	}
	g := New()
	res := &BuildResult{SkippedSuggestions: make(map[string]int)}

	for _, sr := range store.Suggestions() {
		if sr.BaseClass == "" || sr.DependentClass == "" || sr.TypeID == "" {
			res.SkippedSuggestions[sr.SourceFile]++
			continue
		}
		src, dst, label, rt := resolveSuggestion(store, sr)

		g.AddNode(src, nodeAttrs(store, src))
		g.AddNode(dst, nodeAttrs(store, dst))
		g.AddEdge(src, dst, EdgeAttrs{
			RelationshipType: rt.Name,
			RelationshipID:   sr.TypeID,
			Label:            label,
			SourceFile:       sr.SourceFile,
			Scope:            rt.Scope,
			Kind:             KindCI,
		})
		res.CIEdges++
	}

	for _, name := range store.TableNames() {
		t, _ := store.Table(name)
		if t.SuperClass == "" || t.SuperClass == name {
			continue
		}
		g.AddNode(name, nodeAttrs(store, name))
		g.AddNode(t.SuperClass, nodeAttrs(store, t.SuperClass))
		g.AddEdge(t.SuperClass, name, EdgeAttrs{
			RelationshipType: "class_hierarchy",
			Label:            "parent of",
			SourceFile:       "sys_db_object.json",
			Scope:            "hierarchy",
			Kind:             KindHierarchy,
		})
		res.HierarchyEdges++
	}

	logger.Debug("graph built",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"ci_edges", res.CIEdges,
		"hierarchy_edges", res.HierarchyEdges)
	for file, n := range res.SkippedSuggestions {
		logger.Warn("skipped malformed suggestion records", "file", file, "count", n)
	}

	return g, res
}

// resolveSuggestion applies the direction rule: when the suggestion marks
// the base class as parent, the edge runs base -> dependent labeled with
// the parent descriptor; otherwise dependent -> base with the child
// descriptor. Only an unknown type gets the placeholder name and the
// name-split label fallback; a known type keeps its descriptor as loaded,
// empty or not.
func resolveSuggestion(store *catalog.Store, sr catalog.SuggestedRelationship) (src, dst, label string, rt catalog.RelationshipType) {
	rt, known := store.RelationshipType(sr.TypeID)
	if !known {
		short := sr.TypeID
		if len(short) > 8 {
			short = short[:8]
		}
		rt.Name = fmt.Sprintf("rel_%s", short)
	}
	if rt.Scope == "" {
		rt.Scope = "global"
	}

	if sr.IsParent {
		src, dst = sr.BaseClass, sr.DependentClass
		label = rt.ParentDescriptor
		if !known {
			label = descriptorFromName(rt.Name, 0)
		}
	} else {
		src, dst = sr.DependentClass, sr.BaseClass
		label = rt.ChildDescriptor
		if !known {
			label = descriptorFromName(rt.Name, 1)
		}
	}
	return src, dst, label, rt
}

// descriptorFromName splits a "Parent::Child" relationship type name and
// returns the requested side; names without the separator are returned
// whole.
func descriptorFromName(name string, side int) string {
	parts := strings.SplitN(name, "::", 2)
	if len(parts) == 2 && side < len(parts) {
		return parts[side]
	}
	return name
}

// nodeAttrs copies a table's catalog attributes into node attributes.
// Unknown tables get the defaults the loader would have produced.
func nodeAttrs(store *catalog.Store, name string) NodeAttrs {
	t, ok := store.Table(name)
	if !ok {
		return NodeAttrs{Label: name, Scope: "unknown"}
	}
	label := t.Label
	if label == "" {
		label = name
	}
	scope := t.Scope
	if scope == "" {
		scope = "unknown"
	}
	return NodeAttrs{
		Label:      label,
		SuperClass: t.SuperClass,
		Scope:      scope,
		Package:    t.Package,
		Extendable: t.Extendable,
	}
}
