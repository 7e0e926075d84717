package commands

import (
	"fmt"

	"github.com/edgewise-labs/cmdbmap/internal/cli/output"
	"github.com/edgewise-labs/cmdbmap/internal/graph"
	"github.com/spf13/cobra"
)

// TableOptions holds the flags of the table command.
type TableOptions struct {
	Depth        int
	ExportFormat string
	OutFile      string
}

// NewTableCommand creates the table command.
func NewTableCommand() *cobra.Command {
	opts := &TableOptions{}

	cmd := &cobra.Command{
		Use:   "table <name>",
		Short: "Show the neighborhood of a single table",
		Long: `Build the subgraph around one table: every relationship incident to
the table or to an ancestor class that can supply it with inherited
relationships. Depth 2 extends one more hop, capped at 20 tables.`,
		Example: `  # Direct neighborhood
  cmdbmap table cmdb_ci_server

  # Extended neighborhood as DOT
  cmdbmap table cmdb_ci_server --depth 2 --export dot --out server.dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.Depth, "depth", 2, "Neighborhood depth (1 or 2)")
	cmd.Flags().StringVar(&opts.ExportFormat, "export", "", "Export the subgraph (dot|graphml|json)")
	cmd.Flags().StringVar(&opts.OutFile, "out", "", "File to write the export to (default: stdout)")

	return cmd
}

func runTable(cmd *cobra.Command, name string, opts *TableOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	if opts.Depth < 1 || opts.Depth > 2 {
		return fmt.Errorf("depth must be 1 or 2, got %d", opts.Depth)
	}

	sub := cmdCtx.Finder.Neighborhood(name, opts.Depth)
	if sub == nil {
		return fmt.Errorf("table %q not found in graph", name)
	}

	if opts.ExportFormat != "" {
		if err := writeExport(cmd, sub, opts.ExportFormat, opts.OutFile); err != nil {
			return err
		}
	}

	if r.EffectiveMode() == output.ModeJSON {
		return tableJSON(r, name, sub)
	}

	tableText(r, cmdCtx, name, sub)
	return nil
}

func tableText(r *output.Renderer, cmdCtx *CommandContext, name string, sub *graph.Graph) {
	styles := r.Styles()

	r.Header(1, fmt.Sprintf("Neighborhood: %s", cmdCtx.Store.DisplayLabel(name, 50)))

	for _, e := range sub.Edges() {
		marker := ""
		if e.Attrs.InheritedEdge {
			marker = " " + styles.Inherited.Render(fmt.Sprintf("(via %s)", e.Attrs.InheritedFrom))
		} else if e.Attrs.Kind == graph.KindHierarchy {
			marker = " " + styles.Muted.Render("(hierarchy)")
		}
		r.Printf("%s --[%s]--> %s%s\n", e.Src, e.Attrs.Label, e.Dst, marker)
	}

	r.Println()
	r.Printf("Total: %d tables, %d relationships\n", sub.NodeCount(), sub.EdgeCount())
}

func tableJSON(r *output.Renderer, name string, sub *graph.Graph) error {
	type edgeRep struct {
		Source        string `json:"source"`
		Target        string `json:"target"`
		Label         string `json:"label"`
		Kind          string `json:"kind"`
		InheritedFrom string `json:"inherited_from,omitempty"`
	}
	type report struct {
		Table string    `json:"table"`
		Nodes []string  `json:"nodes"`
		Edges []edgeRep `json:"edges"`
	}

	rep := report{Table: name, Nodes: sub.Nodes()}
	for _, e := range sub.Edges() {
		rep.Edges = append(rep.Edges, edgeRep{
			Source:        e.Src,
			Target:        e.Dst,
			Label:         e.Attrs.Label,
			Kind:          string(e.Attrs.Kind),
			InheritedFrom: e.Attrs.InheritedFrom,
		})
	}
	return r.JSON(rep)
}
