// Package graph answers structural questions about a bead dependency
// snapshot: cyclicity, cycle membership, explicit adjacency, readiness,
// and parallel-execution levels.
//
// Every operation is a pure function over a caller-supplied []bead.Bead.
// Internal structures are built fresh per call and discarded, so concurrent
// calls with different inputs are independent by construction.
//
// The bead record encodes each edge twice (blocked_by on the dependent,
// blocks on the blocker) and nothing enforces that the two sides agree.
// The operations deliberately differ in which side they read: HasCycle and
// Levels derive edges from blocked_by, CycleParticipants and Adjacency from
// blocks. Inconsistent input therefore produces divergent answers across
// operations rather than an error; this mirrors the upstream behavior and
// is kept as-is.
package graph

import "github.com/beadworks/strand/internal/bead"

// digraph is a compact index-based directed graph over the snapshot's bead
// ids. Vertices are exactly the input ids; duplicate ids collapse into the
// first-seen vertex.
type digraph struct {
	ids   []string
	index map[string]int
	adj   [][]int
}

// newDigraph allocates the vertex set for a snapshot without any edges.
func newDigraph(beads []bead.Bead) *digraph {
	g := &digraph{index: make(map[string]int, len(beads))}
	for _, b := range beads {
		if _, seen := g.index[b.ID]; seen {
			continue
		}
		g.index[b.ID] = len(g.ids)
		g.ids = append(g.ids, b.ID)
	}
	g.adj = make([][]int, len(g.ids))
	return g
}

// buildFromBlockedBy builds the blocker→blocked orientation: for each bead,
// an edge runs from every id in its blocked_by list to the bead itself.
// References to ids not present in the snapshot are dropped silently.
func buildFromBlockedBy(beads []bead.Bead) *digraph {
	g := newDigraph(beads)
	for _, b := range beads {
		to := g.index[b.ID]
		for _, blocker := range b.BlockedBy {
			if from, ok := g.index[blocker]; ok {
				g.adj[from] = append(g.adj[from], to)
			}
		}
	}
	return g
}

// buildFromBlocks builds the declared outgoing orientation: for each bead,
// an edge runs from the bead to every known id in its blocks list.
func buildFromBlocks(beads []bead.Bead) *digraph {
	g := newDigraph(beads)
	for _, b := range beads {
		from := g.index[b.ID]
		for _, blocked := range b.Blocks {
			if to, ok := g.index[blocked]; ok {
				g.adj[from] = append(g.adj[from], to)
			}
		}
	}
	return g
}

// hasSelfEdge reports whether any vertex lists itself as a successor.
func (g *digraph) hasSelfEdge() bool {
	for v, succs := range g.adj {
		for _, w := range succs {
			if w == v {
				return true
			}
		}
	}
	return false
}
