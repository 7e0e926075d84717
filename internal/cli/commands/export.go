package commands

import (
	"strings"

	"github.com/edgewise-labs/cmdbmap/internal/export"
	"github.com/spf13/cobra"
)

// ExportOptions holds the flags of the export command.
type ExportOptions struct {
	Format  string
	OutFile string
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole table graph",
		Long: `Write the complete table graph to an interchange format for external
tools (Graphviz, Gephi, yEd, or anything that reads node-link JSON).`,
		Example: `  cmdbmap export --format dot --out cmdb.dot
  cmdbmap export --format graphml --out cmdb.graphml
  cmdbmap export --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", export.FormatDOT,
		"Export format ("+strings.Join(export.Formats(), "|")+")")
	cmd.Flags().StringVar(&opts.OutFile, "out", "", "File to write to (default: stdout)")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return export.Formats(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runExport(cmd *cobra.Command, opts *ExportOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	return writeExport(cmd, cmdCtx.Graph, opts.Format, opts.OutFile)
}
