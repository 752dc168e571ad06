package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/financify-dev/financify/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dir string

	rootCmd := &cobra.Command{
		Use:     "financify",
		Short:   "Simple bookkeeping with spreadsheet import/export",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dir, "dir", ".", "project directory")

	rootCmd.AddCommand(
		newInitCommand(),
		newAddCommand(&dir),
		newListCommand(&dir),
		newReportCommand(&dir),
		newAccountsCommand(),
		newImportCommand(&dir),
		newExportCommand(&dir),
		newTemplateCommand(&dir),
	)

	return rootCmd
}
