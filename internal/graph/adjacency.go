package graph

import "github.com/beadworks/strand/internal/bead"

// Adjacency returns the declared outgoing-edge mapping: each bead id maps
// to the ordered list of ids in its blocks field. Every bead gets an entry,
// empty when it blocks nothing. The mapping reflects declarations only —
// no edges are inferred from the blocked_by side, and references to
// unknown ids are passed through untouched.
func Adjacency(beads []bead.Bead) map[string][]string {
	adjacency := make(map[string][]string, len(beads))
	for _, b := range beads {
		if _, ok := adjacency[b.ID]; !ok {
			adjacency[b.ID] = []string{}
		}
		adjacency[b.ID] = append(adjacency[b.ID], b.Blocks...)
	}
	return adjacency
}
