package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/financify-dev/financify/internal/excel"
)

func newImportCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.xlsx>",
		Short: "Import entries from a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			candidates, skipped, err := excel.Parse(f)
			if err != nil {
				return fmt.Errorf("could not read file, check it matches the template: %w", err)
			}

			s, err := openSession(*dir)
			if err != nil {
				return err
			}
			defer s.Close()

			for _, sk := range skipped {
				fmt.Fprintf(cmd.OutOrStdout(), "row %d skipped: %s\n", sk.Row, sk.Reason)
			}

			added, err := s.ledger.Append(candidates)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries (ids %d-%d)\n", len(added), added[0].ID, added[len(added)-1].ID)
			return nil
		},
	}
	return cmd
}
