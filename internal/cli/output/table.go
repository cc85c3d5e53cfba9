package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/cxxstd/pkg/classify"
)

var (
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	violStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	fileStyle    = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// renderText writes the human-readable report: one table of findings per
// file, followed by notes, scan issues, failed inputs and a summary line.
func (r *Renderer) renderText(batch *classify.BatchResult, floor int) error {
	for _, fr := range batch.Files {
		fmt.Fprintln(r.out, fileStyle.Render(fr.File))

		if len(fr.Findings) == 0 {
			fmt.Fprintln(r.out, subtleStyle.Render(fmt.Sprintf("  no cataloged features; C++%d is sufficient", fr.RequiredStandard)))
		} else {
			t := table.NewWriter()
			t.SetOutputMirror(r.out)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Feature", "Std", "Location", "Matched"})
			for _, m := range fr.Findings {
				t.AppendRow(table.Row{
					m.FeatureID,
					fmt.Sprintf("C++%d", m.MinStandard),
					fmt.Sprintf("%d:%d", m.Pos.Line, m.Pos.Column),
					truncate(m.Text, 60),
				})
			}
			t.Render()
			fmt.Fprintf(r.out, "  requires C++%d\n", fr.RequiredStandard)
		}

		for _, n := range fr.Notes {
			fmt.Fprintln(r.out, noteStyle.Render(
				fmt.Sprintf("  note %s %d:%d: %s", n.FeatureID, n.Pos.Line, n.Pos.Column, n.Message)))
		}
		for _, issue := range fr.Issues {
			fmt.Fprintln(r.out, subtleStyle.Render("  scan: "+issue.String()))
		}
		fmt.Fprintln(r.out)
	}

	for _, f := range batch.Failures {
		fmt.Fprintln(r.out, failureStyle.Render(fmt.Sprintf("failed: %s: %v", f.File, f.Err)))
	}

	if batch.Violates(floor) {
		fmt.Fprintln(r.out, violStyle.Render(
			fmt.Sprintf("✗ requires C++%d, floor is C++%d", batch.RequiredStandard, floor)))
	} else {
		fmt.Fprintln(r.out, okStyle.Render(
			fmt.Sprintf("✓ C++%d is sufficient (floor C++%d)", batch.RequiredStandard, floor)))
	}
	return nil
}

// truncate shortens s to max runes for table cells, collapsing newlines.
func truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
