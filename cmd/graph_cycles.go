package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/beadworks/strand/internal/bead"
	"github.com/beadworks/strand/internal/config"
	"github.com/beadworks/strand/internal/ops"
	"github.com/beadworks/strand/internal/ui"
)

var graphCyclesCmd = &cobra.Command{
	Use:   "cycles [snapshot.json|-]",
	Short: "Detect dependency cycles and list their participants",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGraphCycles,
}

// cyclesResult is the combined stdout payload for the cycles command.
type cyclesResult struct {
	HasCycle     bool            `json:"has_cycle"`
	Participants json.RawMessage `json:"participants"`
}

func runGraphCycles(cmd *cobra.Command, args []string) error {
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
	cyclic, err := ops.HasCycle(data)
	if err == nil {
		var participants []byte
		participants, err = ops.CycleParticipants(data)
		if err == nil {
			out, encErr := bead.Encode(cyclesResult{HasCycle: cyclic, Participants: participants})
			if encErr != nil {
				err = encErr
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), string(out))

				var ids []string
				_ = json.Unmarshal(participants, &ids)
				printer.CycleSummary(snapshotSize(data), cyclic, ids)
			}
		}
	}

	emitOp(em, "cycles", snapshotSize(data), start, err)
	if err != nil {
		printer.Error(err.Error())
	}
	return err
}

// snapshotSize reports how many records the raw snapshot holds; zero when
// the payload is malformed (the operation itself surfaces that error).
func snapshotSize(data []byte) int {
	beads, err := bead.Decode(data)
	if err != nil {
		return 0
	}
	return len(beads)
}
