// Package ops is the serialized boundary of the analysis core. Each
// operation takes a JSON array of bead records and returns a JSON result
// (or a bare bool), exactly mirroring the narrow string-in/string-out
// entry points an external host calls.
//
// There is no shared state: every call decodes its input, computes, and
// serializes its own result. Malformed input fails the whole call with a
// *bead.DecodeError; nothing is retried and no partial output is produced.
package ops

import (
	"github.com/beadworks/strand/internal/bead"
	"github.com/beadworks/strand/internal/graph"
)

// HasCycle reports whether the snapshot's blocked_by graph contains a
// directed cycle.
func HasCycle(data []byte) (bool, error) {
	beads, err := bead.Decode(data)
	if err != nil {
		return false, err
	}
	return graph.HasCycle(beads), nil
}

// CycleParticipants returns a JSON array of the ids that belong to any
// cycle of two or more beads. The array has set semantics; compare it
// order-insensitively.
func CycleParticipants(data []byte) ([]byte, error) {
	beads, err := bead.Decode(data)
	if err != nil {
		return nil, err
	}
	return bead.Encode(graph.CycleParticipants(beads))
}

// Adjacency returns a JSON object mapping every bead id to the ordered
// array of ids it blocks, including empty arrays for beads that block
// nothing.
func Adjacency(data []byte) ([]byte, error) {
	beads, err := bead.Decode(data)
	if err != nil {
		return nil, err
	}
	return bead.Encode(graph.Adjacency(beads))
}

// Ready returns a JSON array of actionable bead ids in input order.
func Ready(data []byte) ([]byte, error) {
	beads, err := bead.Decode(data)
	if err != nil {
		return nil, err
	}
	return bead.Encode(graph.Ready(beads))
}

// Levels returns a JSON object mapping each execution level to the ids
// assigned to it, in input order within a level.
func Levels(data []byte) ([]byte, error) {
	beads, err := bead.Decode(data)
	if err != nil {
		return nil, err
	}
	return bead.Encode(graph.Levels(beads))
}
