package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/beadworks/strand/internal/config"
	"github.com/beadworks/strand/internal/ops"
	"github.com/beadworks/strand/internal/ui"
)

var graphAdjacencyCmd = &cobra.Command{
	Use:   "adjacency [snapshot.json|-]",
	Short: "Emit the declared outgoing-edge mapping for every bead",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGraphAdjacency,
}

func runGraphAdjacency(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	printer := ui.New(cfg.Color)
	em := openEmitter(cfg)
	defer em.Close()

	data, err := loadSnapshot(cfg, args)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	start := time.Now()
	out, err := ops.Adjacency(data)
	emitOp(em, "adjacency", snapshotSize(data), start, err)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
