package commands

import (
	"fmt"

	"github.com/edgewise-labs/cmdbmap/internal/cli/output"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewRelationshipsCommand creates the relationships command.
func NewRelationshipsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "relationships <name>",
		Short: "List the direct relationships of a table",
		Long: `List every incoming and outgoing relationship of a single table,
without inheritance expansion.`,
		Example: `  cmdbmap relationships cmdb_ci_server
  cmdbmap relationships cmdb_ci_server --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelationships(cmd, args[0])
		},
	}
}

type relationshipRow struct {
	Peer  string `json:"peer"`
	Label string `json:"relationship"`
	Type  string `json:"type"`
}

func runRelationships(cmd *cobra.Command, name string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer
	g := cmdCtx.Graph

	if !g.HasNode(name) {
		return fmt.Errorf("table %q not found in graph", name)
	}

	var incoming, outgoing []relationshipRow
	for _, src := range g.NeighborsIn(name) {
		attrs, _ := g.EdgeAttrs(src, name)
		incoming = append(incoming, relationshipRow{Peer: src, Label: attrs.Label, Type: attrs.RelationshipType})
	}
	for _, dst := range g.NeighborsOut(name) {
		attrs, _ := g.EdgeAttrs(name, dst)
		outgoing = append(outgoing, relationshipRow{Peer: dst, Label: attrs.Label, Type: attrs.RelationshipType})
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(map[string]any{
			"table":    name,
			"incoming": incoming,
			"outgoing": outgoing,
		})
	}

	r.Header(1, fmt.Sprintf("Relationships: %s", cmdCtx.Store.DisplayLabel(name, 50)))

	r.Header(2, fmt.Sprintf("Incoming (%d)", len(incoming)))
	renderRelationshipTable(r, incoming, "Source")
	r.Println()
	r.Header(2, fmt.Sprintf("Outgoing (%d)", len(outgoing)))
	renderRelationshipTable(r, outgoing, "Target")

	return nil
}

func renderRelationshipTable(r *output.Renderer, rows []relationshipRow, peerHeader string) {
	if len(rows) == 0 {
		r.Println("  (none)")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.AppendHeader(table.Row{peerHeader, "Relationship", "Type"})
	for _, row := range rows {
		t.AppendRow(table.Row{row.Peer, row.Label, row.Type})
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		t.RenderMarkdown()
		return
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
