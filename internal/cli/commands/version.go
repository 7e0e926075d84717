package commands

import (
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, buildDate, gitCommit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("cmdbmap %s\n", version)
			cmd.Printf("  build date: %s\n", buildDate)
			cmd.Printf("  commit:     %s\n", gitCommit)
		},
	}
}
