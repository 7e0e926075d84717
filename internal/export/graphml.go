package export

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/edgewise-labs/cmdbmap/internal/graph"
)

// GraphML document shapes. Attribute keys are declared up front the way
// networkx's writer does, so consumers like Gephi and yEd pick them up.

type graphmlDoc struct {
	XMLName xml.Name     `xml:"graphml"`
	Xmlns   string       `xml:"xmlns,attr"`
	Keys    []graphmlKey `xml:"key"`
	Graph   graphmlGraph `xml:"graph"`
}

type graphmlKey struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr"`
	AttrName string `xml:"attr.name,attr"`
	AttrType string `xml:"attr.type,attr"`
}

type graphmlGraph struct {
	ID          string        `xml:"id,attr"`
	EdgeDefault string        `xml:"edgedefault,attr"`
	Nodes       []graphmlNode `xml:"node"`
	Edges       []graphmlEdge `xml:"edge"`
}

type graphmlNode struct {
	ID   string        `xml:"id,attr"`
	Data []graphmlData `xml:"data"`
}

type graphmlEdge struct {
	Source string        `xml:"source,attr"`
	Target string        `xml:"target,attr"`
	Data   []graphmlData `xml:"data"`
}

type graphmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// WriteGraphML writes the graph as a GraphML document.
func WriteGraphML(w io.Writer, g *graph.Graph) error {
	doc := graphmlDoc{
		Xmlns: "http://graphml.graphdrawing.org/xmlns",
		Keys: []graphmlKey{
			{ID: "label", For: "node", AttrName: "label", AttrType: "string"},
			{ID: "scope", For: "node", AttrName: "scope", AttrType: "string"},
			{ID: "package", For: "node", AttrName: "package", AttrType: "string"},
			{ID: "inherited_from", For: "node", AttrName: "inherited_from", AttrType: "string"},
			{ID: "edge_label", For: "edge", AttrName: "label", AttrType: "string"},
			{ID: "edge_kind", For: "edge", AttrName: "kind", AttrType: "string"},
			{ID: "relationship_type", For: "edge", AttrName: "relationship_type", AttrType: "string"},
			{ID: "inherited_edge", For: "edge", AttrName: "inherited_edge", AttrType: "boolean"},
		},
		Graph: graphmlGraph{ID: "cmdb", EdgeDefault: "directed"},
	}

	for _, name := range g.Nodes() {
		attrs, _ := g.NodeAttrs(name)
		node := graphmlNode{ID: name}
		node.Data = appendData(node.Data, "label", attrs.Label)
		node.Data = appendData(node.Data, "scope", attrs.Scope)
		node.Data = appendData(node.Data, "package", attrs.Package)
		if attrs.InheritedTarget {
			node.Data = appendData(node.Data, "inherited_from", attrs.InheritedFrom)
		}
		doc.Graph.Nodes = append(doc.Graph.Nodes, node)
	}

	for _, e := range g.Edges() {
		edge := graphmlEdge{Source: e.Src, Target: e.Dst}
		edge.Data = appendData(edge.Data, "edge_label", e.Attrs.Label)
		edge.Data = appendData(edge.Data, "edge_kind", string(e.Attrs.Kind))
		edge.Data = appendData(edge.Data, "relationship_type", e.Attrs.RelationshipType)
		if e.Attrs.InheritedEdge {
			edge.Data = appendData(edge.Data, "inherited_edge", "true")
		}
		doc.Graph.Edges = append(doc.Graph.Edges, edge)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode graphml: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func appendData(data []graphmlData, key, value string) []graphmlData {
	if value == "" {
		return data
	}
	return append(data, graphmlData{Key: key, Value: value})
}
