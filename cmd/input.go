package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/beadworks/strand/internal/bead"
	"github.com/beadworks/strand/internal/config"
	"github.com/beadworks/strand/internal/telemetry"
)

// loadSnapshot resolves the bead snapshot for a graph command. Sources, in
// precedence order: the configured SQLite database, the path argument, or
// stdin when the path is "-". The result is the raw JSON array every
// analysis operation takes.
func loadSnapshot(cfg config.Config, args []string) ([]byte, error) {
	if cfg.DBPath != "" {
		return loadFromStore(cfg.DBPath)
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("no snapshot given: pass a beads JSON file, \"-\" for stdin, or --db")
	}

	if args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading snapshot from stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return data, nil
}

// loadFromStore reads the snapshot out of a beads database and re-encodes
// it as the JSON array form, so database-sourced runs flow through the
// same serialized boundary as file-sourced ones.
func loadFromStore(dbPath string) ([]byte, error) {
	ctx, cancel := storeContext()
	defer cancel()

	store, err := bead.OpenStore(ctx, dbPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	beads, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return bead.Encode(beads)
}

// storeContext bounds how long a database read may take.
func storeContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// openEmitter returns the telemetry emitter for this invocation, or nil
// (a valid no-op emitter) when telemetry is not configured.
func openEmitter(cfg config.Config) *telemetry.Emitter {
	if cfg.TelemetryPath == "" {
		return nil
	}
	em, err := telemetry.NewEmitter(cfg.TelemetryPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil
	}
	return em
}

// emitOp records one operation run: a start event and a done/failed event
// carrying the elapsed time.
func emitOp(em *telemetry.Emitter, op string, beadCount int, start time.Time, err error) {
	_ = em.Emit(telemetry.Event{Kind: telemetry.KindOpStart, Op: op, BeadCount: beadCount, Timestamp: start})
	kind := telemetry.KindOpDone
	var data any
	if err != nil {
		kind = telemetry.KindOpFailed
		data = err.Error()
	}
	_ = em.Emit(telemetry.Event{Kind: kind, Op: op, BeadCount: beadCount, Duration: int64(time.Since(start)), Data: data})
}
