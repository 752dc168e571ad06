package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/financify-dev/financify/internal/excel"
)

func newExportCommand(dir *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all entries to a spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dir)
			if err != nil {
				return err
			}
			defer s.Close()

			f, err := excel.ExportEntries(s.ledger.All(), s.catalog)
			if err != nil {
				return fmt.Errorf("building export: %w", err)
			}

			path := filepath.Join(out, excel.EntriesFilename(time.Now()))
			if err := f.SaveAs(path); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(s.ledger.All()), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", ".", "output directory")

	return cmd
}
