package graph

import "github.com/beadworks/strand/internal/bead"

// HasCycle reports whether the dependency graph contains a directed cycle.
// Edges are derived from each bead's blocked_by list (blocker→blocked).
// A bead that lists itself in blocked_by forms a one-vertex cycle and
// counts here, unlike in CycleParticipants.
func HasCycle(beads []bead.Bead) bool {
	g := buildFromBlockedBy(beads)
	for _, scc := range stronglyConnected(g) {
		if len(scc) > 1 {
			return true
		}
	}
	return g.hasSelfEdge()
}

// CycleParticipants returns the ids of beads that belong to a strongly
// connected component of size >= 2, computed over the graph declared by
// each bead's blocks list. The result has set semantics; ordering follows
// component discovery order and carries no meaning.
//
// A bead that lists only itself in blocks forms a size-1 component and is
// not reported. That threshold is inherited behavior, not an oversight;
// do not fold self-loops in here without revisiting the callers.
func CycleParticipants(beads []bead.Bead) []string {
	g := buildFromBlocks(beads)

	participants := []string{}
	for _, scc := range stronglyConnected(g) {
		if len(scc) < 2 {
			continue
		}
		for _, v := range scc {
			participants = append(participants, g.ids[v])
		}
	}
	return participants
}

// sccFrame is one suspended visit in the iterative Tarjan traversal: the
// vertex being expanded and the cursor into its successor list.
type sccFrame struct {
	v    int
	next int
}

// stronglyConnected computes the strongly connected components of g using
// Tarjan's algorithm. The classic formulation recurses once per vertex;
// this version keeps an explicit frame stack instead, so component size is
// bounded by memory rather than call-stack depth.
func stronglyConnected(g *digraph) [][]int {
	n := len(g.ids)
	const unvisited = -1

	indices := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for i := range indices {
		indices[i] = unvisited
	}

	var (
		counter int
		stack   []int
		frames  []sccFrame
		sccs    [][]int
	)

	visit := func(v int) {
		indices[v] = counter
		lowlink[v] = counter
		counter++
		stack = append(stack, v)
		onStack[v] = true
		frames = append(frames, sccFrame{v: v})
	}

	for root := 0; root < n; root++ {
		if indices[root] != unvisited {
			continue
		}
		visit(root)

		for len(frames) > 0 {
			f := &frames[len(frames)-1]

			if f.next < len(g.adj[f.v]) {
				w := g.adj[f.v][f.next]
				f.next++
				if indices[w] == unvisited {
					visit(w)
				} else if onStack[w] {
					if indices[w] < lowlink[f.v] {
						lowlink[f.v] = indices[w]
					}
				}
				continue
			}

			// All successors explored: close the frame.
			v := f.v
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := &frames[len(frames)-1]
				if lowlink[v] < lowlink[parent.v] {
					lowlink[parent.v] = lowlink[v]
				}
			}

			// v roots a component when its lowlink never escaped it.
			if lowlink[v] == indices[v] {
				var scc []int
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					scc = append(scc, w)
					if w == v {
						break
					}
				}
				sccs = append(sccs, scc)
			}
		}
	}

	return sccs
}
