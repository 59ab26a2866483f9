package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/beadworks/strand/internal/bead"
	"github.com/beadworks/strand/internal/config"
	"github.com/beadworks/strand/internal/ui"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Work with a local beads SQLite database",
}

var dbImportCmd = &cobra.Command{
	Use:   "import <snapshot.json>",
	Short: "Replace the database snapshot with a JSON bead array",
	Args:  cobra.ExactArgs(1),
	RunE:  runDBImport,
}

func init() {
	rootCmd.AddCommand(dbCmd)
	dbCmd.AddCommand(dbImportCmd)
}

func runDBImport(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	printer := ui.New(cfg.Color)

	if cfg.DBPath == "" {
		return fmt.Errorf("no database given: set --db or db_path in config")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}
	beads, err := bead.Decode(data)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	ctx, cancel := storeContext()
	defer cancel()

	store, err := bead.OpenStore(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Import(ctx, beads); err != nil {
		return err
	}

	printer.Info(fmt.Sprintf("imported %d beads into %s", len(beads), cfg.DBPath))
	return nil
}
