package formula

import (
	"errors"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
)

// Sentinel errors for formula parsing and validation.
var (
	// ErrMissingName indicates the formula field is empty.
	ErrMissingName = errors.New("formula name missing")
	// ErrInvalidType indicates an unrecognized formula type value.
	ErrInvalidType = errors.New("invalid formula type")
	// ErrDuplicateStep indicates two or more steps share the same id.
	ErrDuplicateStep = errors.New("duplicate step id")
)

// Parse reads a TOML formula definition. Zero version defaults to 1.
func Parse(data []byte) (*Formula, error) {
	var f Formula
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing formula: %w", err)
	}

	if f.Name == "" {
		return nil, ErrMissingName
	}
	if !ValidTypes[f.Type] {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, f.Type)
	}
	if f.Version == 0 {
		f.Version = 1
	}

	seen := make(map[string]bool, len(f.Steps))
	for _, s := range f.Steps {
		if seen[s.ID] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStep, s.ID)
		}
		seen[s.ID] = true
	}

	// Backfill variable names from their table keys so callers can work
	// with Var values detached from the map.
	for name, v := range f.Vars {
		if v.Name == "" {
			v.Name = name
			f.Vars[name] = v
		}
	}

	return &f, nil
}
