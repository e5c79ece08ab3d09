package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sqlpager",
		Short:         "Render paginated SQL statements and cursor tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		NewRenderCommand(),
		NewCursorCommand(),
	)

	return rootCmd
}
