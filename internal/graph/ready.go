package graph

import "github.com/beadworks/strand/internal/bead"

// Ready returns the ids of beads that are immediately actionable: not
// closed themselves, with every id in blocked_by belonging to a closed
// bead. A bead with no blockers is ready as long as it is open. The result
// is a stable filter of the input — ids appear in input order.
//
// A blocker id that matches no bead in the snapshot can never be in the
// closed set, so it keeps its dependent un-ready. That is the opposite of
// the silent-drop rule the graph builders apply to dangling references,
// and the asymmetry is intentional.
func Ready(beads []bead.Bead) []string {
	closed := bead.ClosedSet(beads)

	ready := []string{}
	for _, b := range beads {
		if b.Closed() {
			continue
		}
		satisfied := true
		for _, blocker := range b.BlockedBy {
			if !closed[blocker] {
				satisfied = false
				break
			}
		}
		if satisfied {
			ready = append(ready, b.ID)
		}
	}
	return ready
}
