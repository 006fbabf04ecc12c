// pattern: Imperative Shell

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"treeview/internal/frame"
)

// View renders the whole frame: visible tree, diagnostic log tail, help.
func (m Model) View() string {
	f := frame.Build(m.tree, m.selected, m.diagnostics)
	items := f.Items()
	diagnostics := f.Diagnostics()

	var helpView string
	if m.showHelp {
		helpView = m.help.View(m.keys)
	}
	helpRows := 0
	if helpView != "" {
		helpRows = lipgloss.Height(helpView)
	}

	layout := ComputeLayout(m.width, m.height, len(items), len(diagnostics), helpRows)

	lines := make([]string, 0, layout.Tree.Height+layout.Diagnostics.Height+1)
	for _, line := range items {
		lines = append(lines, m.renderItem(line))
	}
	for _, line := range diagnostics[len(diagnostics)-layout.Diagnostics.Height:] {
		lines = append(lines, m.renderDiagnostic(line))
	}
	if helpView != "" {
		lines = append(lines, helpView)
	}

	return strings.Join(lines, "\n")
}

// renderItem styles one tree row. The selected row is styled as a whole so
// its background ends with the row.
func (m Model) renderItem(line frame.Line) string {
	text := m.truncate(line.Text)
	if line.Selected {
		return m.styles.SelectedStyle().Render(text)
	}
	return m.styles.ItemStyle().Render(text)
}

func (m Model) renderDiagnostic(line frame.Line) string {
	text := m.truncate(line.Text)
	if line.Text == NotFound {
		return m.styles.NotFoundStyle().Render(text)
	}
	return m.styles.DiagnosticStyle().Render(text)
}

func (m Model) truncate(s string) string {
	if m.width <= 0 {
		return s
	}
	return ansi.Truncate(s, m.width, "…")
}
