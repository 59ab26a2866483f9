// Package molecule turns a cooked formula into a molecule: a concrete set
// of bead-shaped work units wired with dependency edges in both directions
// and grouped into parallel-execution waves.
package molecule

import (
	"errors"
	"fmt"

	"github.com/beadworks/strand/internal/bead"
	"github.com/beadworks/strand/internal/formula"
	"github.com/beadworks/strand/internal/graph"
)

// Generation errors.
var (
	// ErrNoWork indicates the formula declares neither steps nor legs.
	ErrNoWork = errors.New("formula has no steps or legs")
	// ErrUnknownNeed indicates a step needs an id that no step declares.
	ErrUnknownNeed = errors.New("step needs unknown step id")
	// ErrUnsupportedType indicates the formula type cannot be expanded into
	// a molecule.
	ErrUnsupportedType = errors.New("unsupported formula type")
)

// Molecule is an execution unit generated from a cooked formula.
type Molecule struct {
	Name        string           `json:"name"`
	FormulaName string           `json:"formula_name"`
	CreatedAt   string           `json:"created_at"`
	Beads       []bead.Bead      `json:"beads"`
	Waves       map[int][]string `json:"waves"`
}

// Generate expands a cooked formula into a molecule. Workflow formulas map
// each step to a bead wired from the step's needs list; convoy formulas
// chain legs in order. Both directions of every edge are populated so the
// output is a consistent snapshot for the graph analyses, and Waves holds
// the parallel tiers those analyses compute for it.
func Generate(cooked *formula.Cooked) (*Molecule, error) {
	var beads []bead.Bead
	var err error

	switch cooked.Type {
	case formula.TypeWorkflow:
		beads, err = stepBeads(cooked.Steps)
	case formula.TypeConvoy:
		beads = legBeads(cooked.Legs)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, cooked.Type)
	}
	if err != nil {
		return nil, err
	}
	if len(beads) == 0 {
		return nil, ErrNoWork
	}

	return &Molecule{
		Name:        cooked.Name,
		FormulaName: cooked.OriginalName,
		CreatedAt:   cooked.CookedAt,
		Beads:       beads,
		Waves:       graph.Levels(beads),
	}, nil
}

// stepBeads maps workflow steps to beads, mirroring each needs entry into
// the blocker's blocks list.
func stepBeads(steps []formula.Step) ([]bead.Bead, error) {
	index := make(map[string]int, len(steps))
	beads := make([]bead.Bead, len(steps))
	for i, s := range steps {
		beads[i] = bead.Bead{
			ID:        s.ID,
			Title:     s.Title,
			Status:    "open",
			BlockedBy: append([]string{}, s.Needs...),
			Blocks:    []string{},
			Duration:  s.Duration,
		}
		index[s.ID] = i
	}

	for _, s := range steps {
		for _, need := range s.Needs {
			j, ok := index[need]
			if !ok {
				return nil, fmt.Errorf("%w: step %q needs %q", ErrUnknownNeed, s.ID, need)
			}
			beads[j].Blocks = append(beads[j].Blocks, s.ID)
		}
	}
	return beads, nil
}

// legBeads chains convoy legs sequentially. Legs with an explicit order
// value sort ahead of file position; ties keep file position.
func legBeads(legs []formula.Leg) []bead.Bead {
	ordered := make([]formula.Leg, len(legs))
	copy(ordered, legs)

	// Insertion sort keeps the ordering stable for equal keys.
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && legOrder(ordered[j]) < legOrder(ordered[j-1]); j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}

	beads := make([]bead.Bead, len(ordered))
	for i, l := range ordered {
		b := bead.Bead{
			ID:        l.ID,
			Title:     l.Title,
			Status:    "open",
			BlockedBy: []string{},
			Blocks:    []string{},
		}
		if i > 0 {
			b.BlockedBy = append(b.BlockedBy, ordered[i-1].ID)
			beads[i-1].Blocks = append(beads[i-1].Blocks, l.ID)
		}
		beads[i] = b
	}
	return beads
}

// legOrder returns the sort key for a leg; legs without an explicit order
// sort after all ordered legs.
func legOrder(l formula.Leg) int {
	if l.Order == nil {
		return int(^uint(0) >> 1)
	}
	return *l.Order
}
