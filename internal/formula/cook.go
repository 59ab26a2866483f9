package formula

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Cooking errors.
var (
	// ErrMissingVar indicates a required variable has no value and no default.
	ErrMissingVar = errors.New("required variable not provided")
	// ErrPatternMismatch indicates a variable value fails its pattern.
	ErrPatternMismatch = errors.New("variable value does not match pattern")
	// ErrNotInEnum indicates a variable value is outside its enum set.
	ErrNotInEnum = errors.New("variable value not in enum")
)

// Cook substitutes variables into a formula's text fields and returns the
// cooked result. Values are resolved from the provided map first, then
// from each variable's default; a required variable with neither fails the
// cook. Substitution replaces every {{name}} occurrence in descriptions,
// step text, leg text, and synthesis text.
func Cook(f *Formula, values map[string]string) (*Cooked, error) {
	resolved := make(map[string]string, len(f.Vars))
	for name, v := range f.Vars {
		val, ok := values[name]
		if !ok {
			if v.Default != "" {
				val = v.Default
			} else if v.Required {
				return nil, fmt.Errorf("%w: %s", ErrMissingVar, name)
			} else {
				continue
			}
		}
		if err := validateValue(v, val); err != nil {
			return nil, err
		}
		resolved[name] = val
	}

	cooked := &Cooked{
		Formula:      cloneFormula(f),
		CookedAt:     time.Now().UTC().Format(time.RFC3339),
		CookedVars:   resolved,
		OriginalName: f.Name,
	}

	sub := func(s string) string { return substitute(s, resolved) }

	cooked.Description = sub(cooked.Description)
	for i := range cooked.Steps {
		cooked.Steps[i].Title = sub(cooked.Steps[i].Title)
		cooked.Steps[i].Description = sub(cooked.Steps[i].Description)
	}
	for i := range cooked.Legs {
		cooked.Legs[i].Title = sub(cooked.Legs[i].Title)
		cooked.Legs[i].Focus = sub(cooked.Legs[i].Focus)
		cooked.Legs[i].Description = sub(cooked.Legs[i].Description)
	}
	if cooked.Synthesis != nil {
		s := *cooked.Synthesis
		s.Description = sub(s.Description)
		cooked.Synthesis = &s
	}

	return cooked, nil
}

// validateValue checks a resolved value against the variable's pattern and
// enum constraints.
func validateValue(v Var, val string) error {
	if v.Pattern != "" {
		re, err := regexp.Compile(v.Pattern)
		if err != nil {
			return fmt.Errorf("variable %s: compiling pattern: %w", v.Name, err)
		}
		if !re.MatchString(val) {
			return fmt.Errorf("%w: %s=%q (pattern %s)", ErrPatternMismatch, v.Name, val, v.Pattern)
		}
	}
	if len(v.Enum) > 0 {
		for _, allowed := range v.Enum {
			if val == allowed {
				return nil
			}
		}
		return fmt.Errorf("%w: %s=%q (allowed: %s)", ErrNotInEnum, v.Name, val, strings.Join(v.Enum, ", "))
	}
	return nil
}

// substitute replaces every {{name}} occurrence with its resolved value.
// Placeholders with no resolved value are left intact.
func substitute(s string, vars map[string]string) string {
	if len(vars) == 0 || !strings.Contains(s, "{{") {
		return s
	}
	for name, val := range vars {
		s = strings.ReplaceAll(s, "{{"+name+"}}", val)
	}
	return s
}

// cloneFormula deep-copies the formula so cooking never mutates the parse
// result.
func cloneFormula(f *Formula) Formula {
	out := *f
	out.Steps = make([]Step, len(f.Steps))
	copy(out.Steps, f.Steps)
	for i := range out.Steps {
		out.Steps[i].Needs = append([]string(nil), f.Steps[i].Needs...)
		out.Steps[i].Requires = append([]string(nil), f.Steps[i].Requires...)
	}
	out.Legs = append([]Leg(nil), f.Legs...)
	if f.Synthesis != nil {
		s := *f.Synthesis
		out.Synthesis = &s
	}
	if f.Vars != nil {
		out.Vars = make(map[string]Var, len(f.Vars))
		for k, v := range f.Vars {
			out.Vars[k] = v
		}
	}
	return out
}
