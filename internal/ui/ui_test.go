package ui

import (
	"bytes"
	"strings"
	"testing"
)

func newTestPrinter() (*Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(false).WithWriter(&buf), &buf
}

func TestCycleSummary_NoCycle(t *testing.T) {
	t.Parallel()

	p, buf := newTestPrinter()
	p.CycleSummary(4, false, nil)

	got := buf.String()
	if !strings.Contains(got, "ok:") || !strings.Contains(got, "4 beads, no cycles") {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestCycleSummary_WithParticipants(t *testing.T) {
	t.Parallel()

	p, buf := newTestPrinter()
	p.CycleSummary(3, true, []string{"a", "b"})

	got := buf.String()
	if !strings.Contains(got, "cycle:") {
		t.Errorf("expected cycle marker in output: %q", got)
	}
	if !strings.Contains(got, "(a, b)") {
		t.Errorf("expected participant list in output: %q", got)
	}
}

func TestReadySummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total int
		ready []string
		want  string
	}{
		{"some ready", 5, []string{"a", "b"}, "ready: 2 of 5 beads"},
		{"none ready", 3, nil, "blocked: none of 3 beads are ready"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, buf := newTestPrinter()
			p.ReadySummary(tt.total, tt.ready)
			if got := strings.TrimSpace(buf.String()); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLevelsSummary_AllAssigned(t *testing.T) {
	t.Parallel()

	p, buf := newTestPrinter()
	p.LevelsSummary(3, map[int][]string{0: {"a"}, 1: {"b", "c"}})

	got := strings.TrimSpace(buf.String())
	if got != "levels: 3 beads across 2 levels" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestLevelsSummary_Unassigned(t *testing.T) {
	t.Parallel()

	p, buf := newTestPrinter()
	p.LevelsSummary(5, map[int][]string{0: {"a", "b"}})

	got := buf.String()
	if !strings.Contains(got, "2 beads across 1 levels") {
		t.Errorf("expected assigned count in output: %q", got)
	}
	if !strings.Contains(got, "(3 unassigned)") {
		t.Errorf("expected unassigned count in output: %q", got)
	}
}

func TestErrorAndInfo(t *testing.T) {
	t.Parallel()

	p, buf := newTestPrinter()
	p.Error("something broke")
	p.Info("reading from stdin")

	got := buf.String()
	if !strings.Contains(got, "error: something broke") {
		t.Errorf("expected error line in output: %q", got)
	}
	if !strings.Contains(got, "reading from stdin") {
		t.Errorf("expected info line in output: %q", got)
	}
}
