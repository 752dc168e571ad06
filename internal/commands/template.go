package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/financify-dev/financify/internal/accounts"
	"github.com/financify-dev/financify/internal/excel"
)

func newTemplateCommand(dir *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write a blank import template spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := accounts.NewService(accounts.DefaultChart())

			f, err := excel.ExportTemplate(time.Now(), catalog)
			if err != nil {
				return fmt.Errorf("building template: %w", err)
			}

			path := filepath.Join(out, excel.TemplateFilename)
			if err := f.SaveAs(path); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Template written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", ".", "output directory")

	return cmd
}
