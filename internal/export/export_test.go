package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/edgewise-labs/cmdbmap/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportFixture() *graph.Graph {
	g := graph.New()
	g.AddNode("cmdb_ci_server", graph.NodeAttrs{Label: "Server", Scope: "global"})
	g.AddNode("cmdb_ci_appl", graph.NodeAttrs{Label: "Application", Scope: "global"})
	g.AddNode("u_custom", graph.NodeAttrs{
		Label:           "Custom CI",
		InheritedTarget: true,
		InheritedFrom:   "cmdb_ci_server",
	})
	g.AddEdge("cmdb_ci_appl", "cmdb_ci_server", graph.EdgeAttrs{
		Label: "Runs on",
		Kind:  graph.KindCI,
	})
	g.AddEdge("cmdb_ci_server", "u_custom", graph.EdgeAttrs{
		Label:         "Runs on",
		Kind:          graph.KindCI,
		InheritedEdge: true,
		InheritedFrom: "cmdb_ci_server",
	})
	g.AddEdge("cmdb_ci", "cmdb_ci_server", graph.EdgeAttrs{
		Label: "parent of",
		Kind:  graph.KindHierarchy,
	})
	return g
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDOT(&buf, exportFixture()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "digraph cmdb {"))
	assert.Contains(t, out, `"cmdb_ci_server" [label="Server"]`)
	assert.Contains(t, out, `label="Custom CI\n(via cmdb_ci_server)"`)
	assert.Contains(t, out, `"cmdb_ci_appl" -> "cmdb_ci_server" [label="Runs on", style=solid];`)
	assert.Contains(t, out, `"cmdb_ci_server" -> "u_custom" [label="Runs on", style=dashed];`)
	assert.Contains(t, out, `"cmdb_ci" -> "cmdb_ci_server" [label="parent of", style=dotted];`)
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestWriteDOT_QuotesEmbeddedQuotes(t *testing.T) {
	g := graph.New()
	g.AddNode("weird", graph.NodeAttrs{Label: `say "hi"`})

	var buf bytes.Buffer
	require.NoError(t, WriteDOT(&buf, g))
	assert.Contains(t, buf.String(), `label="say \"hi\""`)
}

func TestWriteGraphML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGraphML(&buf, exportFixture()))
	out := buf.String()

	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, `xmlns="http://graphml.graphdrawing.org/xmlns"`)
	assert.Contains(t, out, `<key id="label" for="node" attr.name="label" attr.type="string">`)
	assert.Contains(t, out, `<node id="cmdb_ci_server">`)
	assert.Contains(t, out, `<edge source="cmdb_ci_appl" target="cmdb_ci_server">`)
	assert.Contains(t, out, `<data key="inherited_edge">true</data>`)
	assert.Contains(t, out, `<data key="inherited_from">cmdb_ci_server</data>`)
	assert.Contains(t, out, `edgedefault="directed"`)
}

func TestWriteNodeLink(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteNodeLink(&buf, exportFixture()))

	var doc struct {
		Directed   bool `json:"directed"`
		Multigraph bool `json:"multigraph"`
		Nodes      []struct {
			ID            string `json:"id"`
			Label         string `json:"label"`
			InheritedFrom string `json:"inherited_from"`
		} `json:"nodes"`
		Links []struct {
			Source        string `json:"source"`
			Target        string `json:"target"`
			Kind          string `json:"edge_type"`
			InheritedEdge bool   `json:"inherited_edge"`
		} `json:"links"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.True(t, doc.Directed)
	assert.False(t, doc.Multigraph)
	require.Len(t, doc.Nodes, 4)
	require.Len(t, doc.Links, 3)

	var custom bool
	for _, n := range doc.Nodes {
		if n.ID == "u_custom" {
			custom = true
			assert.Equal(t, "cmdb_ci_server", n.InheritedFrom)
		}
	}
	assert.True(t, custom)

	var inherited bool
	for _, l := range doc.Links {
		if l.Target == "u_custom" {
			inherited = true
			assert.True(t, l.InheritedEdge)
		}
		assert.NotEmpty(t, l.Kind)
	}
	assert.True(t, inherited)
}

func TestWriteEmptyGraph(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteNodeLink(&buf, graph.New()))
	assert.Contains(t, buf.String(), `"nodes": []`)
	assert.Contains(t, buf.String(), `"links": []`)
}

func TestWrite_Dispatch(t *testing.T) {
	g := exportFixture()
	for _, format := range Formats() {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, g, format))
		assert.NotZero(t, buf.Len(), "format %s produced no output", format)
	}

	err := Write(&bytes.Buffer{}, g, "png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}
