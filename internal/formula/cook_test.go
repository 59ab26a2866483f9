package formula

import (
	"errors"
	"strings"
	"testing"
)

func parseWorkflow(t *testing.T) *Formula {
	t.Helper()
	f, err := Parse([]byte(workflowTOML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return f
}

func TestCook_Substitutes(t *testing.T) {
	t.Parallel()

	f := parseWorkflow(t)
	cooked, err := Cook(f, map[string]string{"project": "strand"})
	if err != nil {
		t.Fatalf("Cook: %v", err)
	}

	if cooked.Description != "Cut and ship a release of strand" {
		t.Errorf("Description = %q", cooked.Description)
	}
	if got := cooked.Steps[0].Description; got != "Tag strand at the release commit" {
		t.Errorf("step description = %q", got)
	}
	if cooked.CookedVars["project"] != "strand" {
		t.Errorf("CookedVars = %v", cooked.CookedVars)
	}
	if cooked.OriginalName != "release-train" {
		t.Errorf("OriginalName = %q", cooked.OriginalName)
	}
	if cooked.CookedAt == "" {
		t.Error("CookedAt empty")
	}
}

func TestCook_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	f := parseWorkflow(t)
	if _, err := Cook(f, map[string]string{"project": "strand"}); err != nil {
		t.Fatalf("Cook: %v", err)
	}
	if !strings.Contains(f.Description, "{{project}}") {
		t.Errorf("Cook mutated the parsed formula: %q", f.Description)
	}
}

func TestCook_MissingRequiredVar(t *testing.T) {
	t.Parallel()

	f := parseWorkflow(t)
	_, err := Cook(f, nil)
	if !errors.Is(err, ErrMissingVar) {
		t.Errorf("Cook error = %v, want ErrMissingVar", err)
	}
}

func TestCook_DefaultApplied(t *testing.T) {
	t.Parallel()

	f := &Formula{
		Name:        "f",
		Type:        TypeWorkflow,
		Description: "target {{env}}",
		Vars: map[string]Var{
			"env": {Name: "env", Default: "staging"},
		},
	}
	cooked, err := Cook(f, nil)
	if err != nil {
		t.Fatalf("Cook: %v", err)
	}
	if cooked.Description != "target staging" {
		t.Errorf("Description = %q, want default substituted", cooked.Description)
	}
}

func TestCook_ProvidedBeatsDefault(t *testing.T) {
	t.Parallel()

	f := &Formula{
		Name:        "f",
		Type:        TypeWorkflow,
		Description: "target {{env}}",
		Vars: map[string]Var{
			"env": {Name: "env", Default: "staging"},
		},
	}
	cooked, err := Cook(f, map[string]string{"env": "prod"})
	if err != nil {
		t.Fatalf("Cook: %v", err)
	}
	if cooked.Description != "target prod" {
		t.Errorf("Description = %q", cooked.Description)
	}
}

func TestCook_PatternValidation(t *testing.T) {
	t.Parallel()

	f := &Formula{
		Name: "f",
		Type: TypeWorkflow,
		Vars: map[string]Var{
			"version": {Name: "version", Required: true, Pattern: `^v\d+\.\d+$`},
		},
	}

	if _, err := Cook(f, map[string]string{"version": "v1.2"}); err != nil {
		t.Errorf("Cook with matching value: %v", err)
	}
	_, err := Cook(f, map[string]string{"version": "one-two"})
	if !errors.Is(err, ErrPatternMismatch) {
		t.Errorf("Cook error = %v, want ErrPatternMismatch", err)
	}
}

func TestCook_EnumValidation(t *testing.T) {
	t.Parallel()

	f := &Formula{
		Name: "f",
		Type: TypeWorkflow,
		Vars: map[string]Var{
			"env": {Name: "env", Required: true, Enum: []string{"staging", "prod"}},
		},
	}

	if _, err := Cook(f, map[string]string{"env": "prod"}); err != nil {
		t.Errorf("Cook with allowed value: %v", err)
	}
	_, err := Cook(f, map[string]string{"env": "qa"})
	if !errors.Is(err, ErrNotInEnum) {
		t.Errorf("Cook error = %v, want ErrNotInEnum", err)
	}
}

func TestCook_OptionalVarSkipped(t *testing.T) {
	t.Parallel()

	f := &Formula{
		Name:        "f",
		Type:        TypeWorkflow,
		Description: "note: {{detail}}",
		Vars: map[string]Var{
			"detail": {Name: "detail"},
		},
	}
	cooked, err := Cook(f, nil)
	if err != nil {
		t.Fatalf("Cook: %v", err)
	}
	// Unresolved placeholders stay intact.
	if cooked.Description != "note: {{detail}}" {
		t.Errorf("Description = %q", cooked.Description)
	}
	if _, ok := cooked.CookedVars["detail"]; ok {
		t.Error("optional unset var should not appear in CookedVars")
	}
}
