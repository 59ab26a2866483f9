package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/beadworks/strand/internal/bead"
	"github.com/beadworks/strand/internal/config"
	"github.com/beadworks/strand/internal/formula"
	"github.com/beadworks/strand/internal/molecule"
	"github.com/beadworks/strand/internal/ui"
)

var formulaCmd = &cobra.Command{
	Use:   "formula",
	Short: "Parse, cook, and expand TOML formulas",
}

var formulaParseCmd = &cobra.Command{
	Use:   "parse <formula.toml>",
	Short: "Parse a formula and print its normalized JSON form",
	Args:  cobra.ExactArgs(1),
	RunE:  runFormulaParse,
}

var formulaCookCmd = &cobra.Command{
	Use:   "cook <formula.toml>",
	Short: "Substitute variables into a formula",
	Args:  cobra.ExactArgs(1),
	RunE:  runFormulaCook,
}

var formulaMoleculeCmd = &cobra.Command{
	Use:   "molecule <formula.toml>",
	Short: "Cook a formula and expand it into an execution molecule",
	Args:  cobra.ExactArgs(1),
	RunE:  runFormulaMolecule,
}

func init() {
	rootCmd.AddCommand(formulaCmd)
	formulaCmd.AddCommand(formulaParseCmd)
	formulaCmd.AddCommand(formulaCookCmd)
	formulaCmd.AddCommand(formulaMoleculeCmd)

	formulaCookCmd.Flags().StringArray("var", nil, "variable value as name=value (repeatable)")
	formulaMoleculeCmd.Flags().StringArray("var", nil, "variable value as name=value (repeatable)")
}

func runFormulaParse(cmd *cobra.Command, args []string) error {
	f, err := parseFormulaFile(args[0])
	if err != nil {
		return err
	}
	return printJSON(cmd, f)
}

func runFormulaCook(cmd *cobra.Command, args []string) error {
	cooked, err := cookFormulaFile(cmd, args[0])
	if err != nil {
		return err
	}
	return printJSON(cmd, cooked)
}

func runFormulaMolecule(cmd *cobra.Command, args []string) error {
	cooked, err := cookFormulaFile(cmd, args[0])
	if err != nil {
		return err
	}
	mol, err := molecule.Generate(cooked)
	if err != nil {
		return fmt.Errorf("generating molecule: %w", err)
	}
	return printJSON(cmd, mol)
}

// parseFormulaFile reads and parses one TOML formula definition.
func parseFormulaFile(path string) (*formula.Formula, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading formula: %w", err)
	}
	f, err := formula.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// cookFormulaFile parses a formula and cooks it with the --var values.
func cookFormulaFile(cmd *cobra.Command, path string) (*formula.Cooked, error) {
	f, err := parseFormulaFile(path)
	if err != nil {
		return nil, err
	}

	values, err := parseVarFlags(cmd)
	if err != nil {
		return nil, err
	}

	cooked, err := formula.Cook(f, values)
	if err != nil {
		return nil, fmt.Errorf("cooking %s: %w", path, err)
	}
	return cooked, nil
}

// parseVarFlags converts repeated --var name=value flags into a map.
func parseVarFlags(cmd *cobra.Command) (map[string]string, error) {
	raw, _ := cmd.Flags().GetStringArray("var")
	values := make(map[string]string, len(raw))
	for _, entry := range raw {
		name, value, found := strings.Cut(entry, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid --var %q: want name=value", entry)
		}
		values[name] = value
	}
	return values, nil
}

// printJSON writes a value to stdout as JSON, reporting failures through
// the shared error path.
func printJSON(cmd *cobra.Command, v any) error {
	cfg := config.Load()
	printer := ui.New(cfg.Color)

	out, err := bead.Encode(v)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
