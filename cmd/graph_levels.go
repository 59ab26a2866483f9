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

var graphLevelsCmd = &cobra.Command{
	Use:   "levels [snapshot.json|-]",
	Short: "Partition beads into parallel-execution levels",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGraphLevels,
}

func runGraphLevels(cmd *cobra.Command, args []string) error {
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
	out, err := ops.Levels(data)
	emitOp(em, "levels", snapshotSize(data), start, err)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	var levels map[int][]string
	_ = json.Unmarshal(out, &levels)
	printer.LevelsSummary(snapshotSize(data), levels)
	return nil
}
