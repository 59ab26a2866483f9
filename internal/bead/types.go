// Package bead defines the bead record — one unit of schedulable work with
// dependency edges declared in both directions — and the JSON codec used at
// every analysis boundary.
package bead

// StatusClosed is the status value that marks a bead as complete. The
// comparison is an exact string match everywhere it appears.
const StatusClosed = "closed"

// Bead represents a single issue in a dependency graph snapshot.
//
// BlockedBy and Blocks are a redundant bidirectional encoding of the same
// edge set: if Y lists X in blocked_by, X should list Y in blocks. Nothing
// enforces that consistency, and the analysis operations deliberately read
// different sides of it (see internal/graph), so inconsistent input yields
// divergent results rather than an error.
type Bead struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Status    string   `json:"status"`
	Priority  int      `json:"priority"`
	BlockedBy []string `json:"blocked_by"`
	Blocks    []string `json:"blocks"`
	Duration  *int     `json:"duration,omitempty"`
}

// Closed reports whether the bead's status marks it complete.
func (b Bead) Closed() bool {
	return b.Status == StatusClosed
}

// ClosedSet returns the set of ids whose status is exactly StatusClosed.
func ClosedSet(beads []Bead) map[string]bool {
	closed := make(map[string]bool)
	for _, b := range beads {
		if b.Closed() {
			closed[b.ID] = true
		}
	}
	return closed
}
