package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/beadworks/strand/internal/config"
	"github.com/beadworks/strand/internal/ops"
	"github.com/beadworks/strand/internal/ui"
)

var graphReadyCmd = &cobra.Command{
	Use:   "ready [snapshot.json|-]",
	Short: "List beads whose blockers are all closed",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGraphReady,
}

func runGraphReady(cmd *cobra.Command, args []string) error {
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
	out, err := ops.Ready(data)
	emitOp(em, "ready", snapshotSize(data), start, err)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	var ids []string
	_ = json.Unmarshal(out, &ids)
	printer.ReadySummary(snapshotSize(data), ids)
	return nil
}
