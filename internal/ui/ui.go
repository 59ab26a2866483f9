// Package ui provides stderr-based, human-oriented output for strand.
// Machine-readable JSON always goes to stdout; everything here is summary
// text for the person running the command.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer renders styled summaries to a writer, normally stderr.
type Printer struct {
	out   io.Writer
	ok    lipgloss.Style
	warn  lipgloss.Style
	fail  lipgloss.Style
	faint lipgloss.Style
}

// New creates a Printer writing to stderr. When color is false all styles
// collapse to plain text.
func New(color bool) *Printer {
	p := &Printer{out: os.Stderr}
	if color {
		p.ok = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		p.warn = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		p.fail = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
		p.faint = lipgloss.NewStyle().Faint(true)
	}
	return p
}

// WithWriter returns a copy of the printer that writes to w. Used by tests.
func (p *Printer) WithWriter(w io.Writer) *Printer {
	cp := *p
	cp.out = w
	return &cp
}

// Error prints a failure line.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.out, p.fail.Render("error:")+" "+msg)
}

// Info prints a dimmed context line.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.out, p.faint.Render(msg))
}

// CycleSummary reports the outcome of a cycle check over n beads.
func (p *Printer) CycleSummary(n int, cyclic bool, participants []string) {
	if !cyclic {
		fmt.Fprintln(p.out, p.ok.Render("ok:")+fmt.Sprintf(" %d beads, no cycles", n))
		return
	}
	line := p.fail.Render("cycle:") + fmt.Sprintf(" %d beads, dependency cycle present", n)
	if len(participants) > 0 {
		line += " (" + strings.Join(participants, ", ") + ")"
	}
	fmt.Fprintln(p.out, line)
}

// ReadySummary reports how many beads are actionable.
func (p *Printer) ReadySummary(total int, ready []string) {
	if len(ready) == 0 {
		fmt.Fprintln(p.out, p.warn.Render("blocked:")+fmt.Sprintf(" none of %d beads are ready", total))
		return
	}
	fmt.Fprintln(p.out, p.ok.Render("ready:")+fmt.Sprintf(" %d of %d beads", len(ready), total))
}

// LevelsSummary reports tier structure: how many tiers, and how many beads
// were left unassigned (cyclic or dangling blockers).
func (p *Printer) LevelsSummary(total int, levels map[int][]string) {
	assigned := 0
	for _, ids := range levels {
		assigned += len(ids)
	}
	line := fmt.Sprintf(" %d beads across %d levels", assigned, len(levels))
	if skipped := total - assigned; skipped > 0 {
		line += p.warn.Render(fmt.Sprintf(" (%d unassigned)", skipped))
	}
	fmt.Fprintln(p.out, p.ok.Render("levels:")+line)
}
