package graph

import "github.com/beadworks/strand/internal/bead"

// Levels partitions the snapshot into parallel-execution tiers keyed by a
// non-negative level number. Beads with an empty blocked_by list sit at
// level 0; every other bead sits one above the maximum level of its
// blockers. Within a level, ids are listed in input order.
//
// Beads whose blockers can never all resolve — members of a cycle, or
// dependents of an id absent from the snapshot — receive no level and are
// silently left out of the result. Levels does not detect or report
// cycles; callers that need cycle safety run HasCycle first.
func Levels(beads []bead.Bead) map[int][]string {
	levelOf := make(map[string]int, len(beads))
	var queue []string

	for _, b := range beads {
		if len(b.BlockedBy) == 0 {
			levelOf[b.ID] = 0
			queue = append(queue, b.ID)
		}
	}

	for len(queue) > 0 {
		done := queue[0]
		queue = queue[1:]

		for _, b := range beads {
			if _, assigned := levelOf[b.ID]; assigned {
				continue
			}
			if !contains(b.BlockedBy, done) {
				continue
			}

			max, resolved := 0, true
			for _, blocker := range b.BlockedBy {
				lvl, ok := levelOf[blocker]
				if !ok {
					resolved = false
					break
				}
				if lvl > max {
					max = lvl
				}
			}
			if resolved {
				levelOf[b.ID] = max + 1
				queue = append(queue, b.ID)
			}
		}
	}

	// Rebuild the tiers in one pass over the input so ids within a level
	// come out in input order regardless of queue processing order. Each
	// assignment is consumed as it is emitted, so a duplicated id appears
	// in the result once.
	levels := make(map[int][]string)
	for _, b := range beads {
		if lvl, ok := levelOf[b.ID]; ok {
			levels[lvl] = append(levels[lvl], b.ID)
			delete(levelOf, b.ID)
		}
	}
	return levels
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
