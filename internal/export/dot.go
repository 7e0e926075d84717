// Package export writes a table graph to interchange formats for
// downstream rendering tools: Graphviz DOT, GraphML, and node-link JSON.
// All writers are pure consumers of a built graph.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/edgewise-labs/cmdbmap/internal/graph"
)

// Format names accepted by writers and the CLI.
const (
	FormatDOT      = "dot"
	FormatGraphML  = "graphml"
	FormatNodeLink = "json"
)

// Formats lists the supported export formats.
func Formats() []string {
	return []string{FormatDOT, FormatGraphML, FormatNodeLink}
}

// Write dispatches to the writer for the named format.
func Write(w io.Writer, g *graph.Graph, format string) error {
	switch format {
	case FormatDOT:
		return WriteDOT(w, g)
	case FormatGraphML:
		return WriteGraphML(w, g)
	case FormatNodeLink:
		return WriteNodeLink(w, g)
	default:
		return fmt.Errorf("unsupported export format: %s (supported: %s)",
			format, strings.Join(Formats(), ", "))
	}
}

// WriteDOT writes the graph as a Graphviz digraph. Hierarchy edges render
// dotted, inherited edges dashed, and inherited target nodes get a note
// naming the ancestor that supplied the relationship.
func WriteDOT(w io.Writer, g *graph.Graph) error {
	var b strings.Builder
	b.WriteString("digraph cmdb {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=box, style=rounded];\n")

	for _, name := range g.Nodes() {
		attrs, _ := g.NodeAttrs(name)
		label := attrs.Label
		if label == "" {
			label = name
		}
		extra := ""
		if attrs.InheritedTarget {
			label = fmt.Sprintf("%s\\n(via %s)", label, attrs.InheritedFrom)
			extra = ", style=\"rounded,filled\", fillcolor=lightyellow"
		}
		fmt.Fprintf(&b, "  %s [label=%s%s];\n", quoteID(name), quoteID(label), extra)
	}

	for _, e := range g.Edges() {
		style := "solid"
		switch {
		case e.Attrs.InheritedEdge:
			style = "dashed"
		case e.Attrs.Kind == graph.KindHierarchy:
			style = "dotted"
		}
		fmt.Fprintf(&b, "  %s -> %s [label=%s, style=%s];\n",
			quoteID(e.Src), quoteID(e.Dst), quoteID(e.Attrs.Label), style)
	}

	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// quoteID quotes a DOT identifier, escaping embedded quotes.
func quoteID(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
