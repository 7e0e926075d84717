package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/edgewise-labs/cmdbmap/internal/cli/output"
	"github.com/edgewise-labs/cmdbmap/internal/export"
	"github.com/edgewise-labs/cmdbmap/internal/graph"
	"github.com/edgewise-labs/cmdbmap/internal/pathfind"
	"github.com/spf13/cobra"
)

// PathsOptions holds the flags of the paths command.
type PathsOptions struct {
	Shortest     bool
	ExportFormat string
	OutFile      string
}

// NewPathsCommand creates the paths command.
func NewPathsCommand() *cobra.Command {
	opts := &PathsOptions{}

	cmd := &cobra.Command{
		Use:   "paths <source> <target>",
		Short: "Find paths between two tables",
		Long: `Find every path from one CMDB table to another, including paths that
only reach the target because one of its ancestor classes carries the
relationship. Direct paths rank before inherited ones of equal length;
shorter paths always rank first.`,
		Example: `  # All paths from a zone to a server
  cmdbmap paths cmdb_ci_zone cmdb_ci_server

  # Only the best path
  cmdbmap paths cmdb_ci_zone cmdb_ci_server --shortest

  # Induced subgraph as Graphviz DOT
  cmdbmap paths cmdb_ci_zone cmdb_ci_server --export dot --out paths.dot

  # Machine-readable path report
  cmdbmap paths cmdb_ci_zone cmdb_ci_server --output json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaths(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Shortest, "shortest", false, "Show only the shortest path")
	cmd.Flags().StringVar(&opts.ExportFormat, "export", "", "Export the induced subgraph (dot|graphml|json)")
	cmd.Flags().StringVar(&opts.OutFile, "out", "", "File to write the export to (default: stdout)")

	return cmd
}

func runPaths(cmd *cobra.Command, source, target string, opts *PathsOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	findOpts := pathfind.Options{
		MaxPaths: cmdCtx.Cfg.MaxPaths,
		MaxLen:   cmdCtx.Cfg.MaxLen,
	}
	if opts.Shortest {
		findOpts.MaxPaths = 1
	}

	candidates := cmdCtx.Finder.FindPaths(source, target, findOpts)
	if len(candidates) == 0 {
		return fmt.Errorf("no paths found between %q and %q", source, target)
	}

	sub := cmdCtx.Finder.BuildPathGraph(target, candidates)

	if opts.ExportFormat != "" {
		if err := writeExport(cmd, sub, opts.ExportFormat, opts.OutFile); err != nil {
			return err
		}
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return pathsJSON(r, source, target, candidates, sub)
	default:
		pathsText(r, cmdCtx, source, target, candidates, sub)
		return nil
	}
}

func pathsText(r *output.Renderer, cmdCtx *CommandContext, source, target string, candidates []pathfind.Candidate, sub *graph.Graph) {
	styles := r.Styles()
	md := r.EffectiveMode() == output.ModeMarkdown

	if md {
		r.Header(1, fmt.Sprintf("Paths: %s -> %s", source, target))
	} else {
		r.Header(1, fmt.Sprintf("Paths: %s → %s", source, target))
	}

	for i, c := range candidates {
		labels := make([]string, 0, c.Len())
		for _, node := range c.Nodes {
			labels = append(labels, cmdCtx.Store.DisplayLabel(node, 20))
		}
		line := strings.Join(labels, " → ")
		if md {
			line = strings.Join(labels, " -> ")
		}

		suffix := ""
		if c.Inherited() {
			suffix = fmt.Sprintf(" (inherited from %s)", c.Ancestor)
			if !md {
				suffix = " " + styles.Inherited.Render(fmt.Sprintf("(inherited from %s)", c.Ancestor))
			}
		}
		r.Printf("Path %d: %s%s\n", i+1, line, suffix)
	}

	r.Println()
	r.Printf("Subgraph: %d tables, %d relationships\n", sub.NodeCount(), sub.EdgeCount())
}

func pathsJSON(r *output.Renderer, source, target string, candidates []pathfind.Candidate, sub *graph.Graph) error {
	type report struct {
		Source   string               `json:"source"`
		Target   string               `json:"target"`
		Paths    []pathfind.Candidate `json:"paths"`
		Subgraph struct {
			Nodes int `json:"nodes"`
			Edges int `json:"edges"`
		} `json:"subgraph"`
	}
	rep := report{Source: source, Target: target, Paths: candidates}
	rep.Subgraph.Nodes = sub.NodeCount()
	rep.Subgraph.Edges = sub.EdgeCount()
	return r.JSON(rep)
}

// writeExport writes g in the requested format to the out file, or to
// the command's stdout when no file is given.
func writeExport(cmd *cobra.Command, g *graph.Graph, format, outFile string) error {
	if outFile == "" {
		return export.Write(cmd.OutOrStdout(), g, format)
	}
	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outFile, err)
	}
	defer f.Close()
	if err := export.Write(f, g, format); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Subgraph exported to %s\n", outFile)
	return nil
}
