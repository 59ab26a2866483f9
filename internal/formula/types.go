// Package formula parses TOML formula definitions and cooks them by
// substituting variables, producing records the molecule generator and the
// graph analyses consume.
package formula

// Type classifies how a formula's work units are arranged.
type Type string

const (
	// TypeConvoy is an ordered sequence of legs run by separate agents.
	TypeConvoy Type = "convoy"
	// TypeWorkflow is a dependency-ordered set of steps.
	TypeWorkflow Type = "workflow"
	// TypeExpansion expands into further formulas.
	TypeExpansion Type = "expansion"
	// TypeAspect attaches cross-cutting behavior to another formula.
	TypeAspect Type = "aspect"
)

// ValidTypes is the set of recognized formula type values.
var ValidTypes = map[Type]bool{
	TypeConvoy:    true,
	TypeWorkflow:  true,
	TypeExpansion: true,
	TypeAspect:    true,
}

// Step is one unit of work in a workflow formula. Needs lists the ids of
// steps that must complete first.
type Step struct {
	ID          string   `toml:"id" json:"id"`
	Title       string   `toml:"title" json:"title"`
	Description string   `toml:"description" json:"description"`
	Needs       []string `toml:"needs" json:"needs"`
	Duration    *int     `toml:"duration" json:"duration,omitempty"`
	Requires    []string `toml:"requires" json:"requires"`
}

// Leg is one segment of a convoy formula. Order, when set, overrides file
// position for sequencing.
type Leg struct {
	ID          string `toml:"id" json:"id"`
	Title       string `toml:"title" json:"title"`
	Focus       string `toml:"focus" json:"focus"`
	Description string `toml:"description" json:"description"`
	Agent       string `toml:"agent" json:"agent,omitempty"`
	Order       *int   `toml:"order" json:"order,omitempty"`
}

// Var declares a substitutable variable with optional validation.
type Var struct {
	Name        string   `toml:"name" json:"name"`
	Description string   `toml:"description" json:"description,omitempty"`
	Default     string   `toml:"default" json:"default,omitempty"`
	Required    bool     `toml:"required" json:"required"`
	Pattern     string   `toml:"pattern" json:"pattern,omitempty"`
	Enum        []string `toml:"enum" json:"enum,omitempty"`
}

// Synthesis configures how a convoy's per-leg outputs are combined.
type Synthesis struct {
	Strategy    string `toml:"strategy" json:"strategy"`
	Format      string `toml:"format" json:"format,omitempty"`
	Description string `toml:"description" json:"description,omitempty"`
}

// Formula is a parsed formula definition.
type Formula struct {
	Name        string         `toml:"formula" json:"formula"`
	Description string         `toml:"description" json:"description"`
	Type        Type           `toml:"type" json:"type"`
	Version     int            `toml:"version" json:"version"`
	Legs        []Leg          `toml:"legs" json:"legs,omitempty"`
	Synthesis   *Synthesis     `toml:"synthesis" json:"synthesis,omitempty"`
	Steps       []Step         `toml:"steps" json:"steps,omitempty"`
	Vars        map[string]Var `toml:"vars" json:"vars,omitempty"`
}

// Cooked is a formula after variable substitution.
type Cooked struct {
	Formula
	CookedAt     string            `json:"cooked_at"`
	CookedVars   map[string]string `json:"cooked_vars"`
	OriginalName string            `json:"original_name"`
}
