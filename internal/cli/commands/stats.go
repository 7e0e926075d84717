package commands

import (
	"fmt"

	"github.com/edgewise-labs/cmdbmap/internal/cli/output"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// statsTopN is how many most-connected tables the stats command reports.
const statsTopN = 10

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show graph statistics",
		Long: `Summarize the built graph: node and edge counts, weakly connected
components, density, and the most connected tables.`,
		Example: `  cmdbmap stats
  cmdbmap stats --output json`,
		Args: cobra.NoArgs,
		RunE: runStats,
	}
}

func runStats(cmd *cobra.Command, _ []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	stats := cmdCtx.Graph.ComputeStats(statsTopN)

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(stats)
	}

	r.Header(1, "Graph Statistics")
	r.Printf("Tables:          %d\n", stats.Nodes)
	r.Printf("Relationships:   %d\n", stats.Edges)
	r.Printf("Components:      %d\n", stats.WeakComponents)
	r.Printf("Density:         %.4f\n", stats.Density)
	r.Printf("Average degree:  %.2f\n", stats.AverageDegree)
	r.Println()

	r.Header(2, fmt.Sprintf("Most connected tables (top %d)", len(stats.TopDegree)))
	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.AppendHeader(table.Row{"#", "Table", "Degree"})
	for i, nd := range stats.TopDegree {
		t.AppendRow(table.Row{i + 1, nd.Name, nd.Degree})
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		t.RenderMarkdown()
	} else {
		t.SetStyle(table.StyleLight)
		t.Render()
	}

	return nil
}
