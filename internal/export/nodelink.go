package export

import (
	"encoding/json"
	"io"

	"github.com/edgewise-labs/cmdbmap/internal/graph"
)

// Node-link JSON in the shape networkx's node_link_data emits, a common
// interchange format for graph tooling.

type nodeLinkDoc struct {
	Directed   bool           `json:"directed"`
	Multigraph bool           `json:"multigraph"`
	Graph      map[string]any `json:"graph"`
	Nodes      []nodeLinkNode `json:"nodes"`
	Links      []nodeLinkEdge `json:"links"`
}

type nodeLinkNode struct {
	ID              string `json:"id"`
	Label           string `json:"label,omitempty"`
	SuperClass      string `json:"super_class,omitempty"`
	Scope           string `json:"scope,omitempty"`
	Package         string `json:"package,omitempty"`
	Extendable      bool   `json:"is_extendable,omitempty"`
	InheritedTarget bool   `json:"inherited_target,omitempty"`
	InheritedFrom   string `json:"inherited_from,omitempty"`
}

type nodeLinkEdge struct {
	Source           string `json:"source"`
	Target           string `json:"target"`
	Label            string `json:"label,omitempty"`
	RelationshipType string `json:"relationship_type,omitempty"`
	RelationshipID   string `json:"relationship_id,omitempty"`
	SourceFile       string `json:"source_file,omitempty"`
	Scope            string `json:"scope,omitempty"`
	Kind             string `json:"edge_type,omitempty"`
	InheritedEdge    bool   `json:"inherited_edge,omitempty"`
	InheritedFrom    string `json:"inherited_from,omitempty"`
}

// WriteNodeLink writes the graph as indented node-link JSON.
func WriteNodeLink(w io.Writer, g *graph.Graph) error {
	doc := nodeLinkDoc{
		Directed: true,
		Graph:    map[string]any{},
		Nodes:    []nodeLinkNode{},
		Links:    []nodeLinkEdge{},
	}

	for _, name := range g.Nodes() {
		attrs, _ := g.NodeAttrs(name)
		doc.Nodes = append(doc.Nodes, nodeLinkNode{
			ID:              name,
			Label:           attrs.Label,
			SuperClass:      attrs.SuperClass,
			Scope:           attrs.Scope,
			Package:         attrs.Package,
			Extendable:      attrs.Extendable,
			InheritedTarget: attrs.InheritedTarget,
			InheritedFrom:   attrs.InheritedFrom,
		})
	}

	for _, e := range g.Edges() {
		doc.Links = append(doc.Links, nodeLinkEdge{
			Source:           e.Src,
			Target:           e.Dst,
			Label:            e.Attrs.Label,
			RelationshipType: e.Attrs.RelationshipType,
			RelationshipID:   e.Attrs.RelationshipID,
			SourceFile:       e.Attrs.SourceFile,
			Scope:            e.Attrs.Scope,
			Kind:             string(e.Attrs.Kind),
			InheritedEdge:    e.Attrs.InheritedEdge,
			InheritedFrom:    e.Attrs.InheritedFrom,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
