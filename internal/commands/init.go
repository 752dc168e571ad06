package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/financify-dev/financify/internal/config"
	"github.com/financify-dev/financify/internal/ledger"
	"github.com/financify-dev/financify/internal/store"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new Financify project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfg := config.Default(name)
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Open the store once so first run seeds the demonstration entries.
	db, err := store.OpenBolt(filepath.Join(dir, cfg.Data.File))
	if err != nil {
		return err
	}
	defer db.Close()

	led := ledger.New(db, nil)
	if err := led.Load(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized Financify project at %s (%d entries)\n", dir, len(led.All()))
	return nil
}
