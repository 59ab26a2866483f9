package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/beadworks/strand/internal/config"
	"github.com/beadworks/strand/internal/ops"
	"github.com/beadworks/strand/internal/telemetry"
	"github.com/beadworks/strand/internal/ui"
	"github.com/beadworks/strand/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <snapshot.json>",
	Short: "Re-run the graph analyses whenever the snapshot file changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	printer := ui.New(cfg.Color)
	em := openEmitter(cfg)
	defer em.Close()

	path := args[0]

	w, err := watch.New(path)
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Stop()

	// Run once up front so the first report doesn't wait for an edit.
	analyzeSnapshot(cmd, printer, em, path)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	printer.Info("watching " + path + " (ctrl-c to stop)")
	for {
		select {
		case change, ok := <-w.Changes:
			if !ok {
				return nil
			}
			if change.Kind == watch.ChangeRemoved {
				printer.Error("snapshot removed: " + path)
				continue
			}
			_ = em.Emit(telemetry.Event{Kind: telemetry.KindWatch, Data: path})
			analyzeSnapshot(cmd, printer, em, path)
		case <-sig:
			return nil
		}
	}
}

// analyzeSnapshot runs the full analysis suite over the current file
// contents and prints one combined JSON object. Failures are reported and
// swallowed so the watch loop keeps running.
func analyzeSnapshot(cmd *cobra.Command, printer *ui.Printer, em *telemetry.Emitter, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		printer.Error(err.Error())
		return
	}

	start := time.Now()
	report, err := buildReport(data)
	emitOp(em, "watch_analyze", snapshotSize(data), start, err)
	if err != nil {
		printer.Error(err.Error())
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(report))

	var summary struct {
		HasCycle bool             `json:"has_cycle"`
		Ready    []string         `json:"ready"`
		Levels   map[int][]string `json:"levels"`
	}
	_ = json.Unmarshal(report, &summary)
	printer.CycleSummary(snapshotSize(data), summary.HasCycle, nil)
	printer.ReadySummary(snapshotSize(data), summary.Ready)
	printer.LevelsSummary(snapshotSize(data), summary.Levels)
}

// buildReport assembles the combined JSON report from the five operations.
func buildReport(data []byte) ([]byte, error) {
	cyclic, err := ops.HasCycle(data)
	if err != nil {
		return nil, err
	}
	participants, err := ops.CycleParticipants(data)
	if err != nil {
		return nil, err
	}
	adjacency, err := ops.Adjacency(data)
	if err != nil {
		return nil, err
	}
	ready, err := ops.Ready(data)
	if err != nil {
		return nil, err
	}
	levels, err := ops.Levels(data)
	if err != nil {
		return nil, err
	}

	return json.Marshal(map[string]any{
		"has_cycle":    cyclic,
		"participants": json.RawMessage(participants),
		"adjacency":    json.RawMessage(adjacency),
		"ready":        json.RawMessage(ready),
		"levels":       json.RawMessage(levels),
	})
}
