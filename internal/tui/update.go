// pattern: Imperative Shell

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update applies one message. Every key press is handled synchronously; no
// commands other than tea.Quit are ever returned.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logger.Debug("key pressed", "key", msg.String(), "selected", m.selected)

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.logger.Info("quit requested", "diagnostics", len(m.diagnostics))
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.moveDown()
	case key.Matches(msg, m.keys.Up):
		m.moveUp()
	case key.Matches(msg, m.keys.Describe):
		m.describeParent()
	case key.Matches(msg, m.keys.Toggle):
		m.toggleSelected()
	case key.Matches(msg, m.keys.Expand):
		m.setSelectedOpen(true)
	case key.Matches(msg, m.keys.Collapse):
		m.setSelectedOpen(false)
	case key.Matches(msg, m.keys.Mark):
		m.markSelected()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// moveDown steps the selected id forward by one. There is no upper bound:
// the id may run past the last item, which then matches nothing.
func (m *Model) moveDown() {
	m.selected++
}

// moveUp steps the selected id back by one, stopping at the first top-level
// item and never going below zero.
func (m *Model) moveUp() {
	floor := max(m.tree.FirstID(), 0)
	if m.selected > floor {
		m.selected--
	}
}

// describeParent appends "<parent> - <item>" for the selected item, or
// NotFound when the selection is not visible.
func (m *Model) describeParent() {
	item, parent, ok := m.tree.FindWithParent(m.selected)
	if !ok {
		m.logger.Debug("describe parent: not visible", "selected", m.selected)
		m.appendDiagnostic(NotFound)
		return
	}
	m.appendDiagnostic(parent.Title + " - " + item.Title)
}

func (m *Model) toggleSelected() {
	if _, _, ok := m.tree.FindWithParent(m.selected); !ok {
		m.appendDiagnostic(NotFound)
		return
	}
	if m.tree.Toggle(m.selected) {
		m.logger.Debug("toggled", "selected", m.selected)
	}
}

func (m *Model) setSelectedOpen(open bool) {
	if _, _, ok := m.tree.FindWithParent(m.selected); !ok {
		m.appendDiagnostic(NotFound)
		return
	}
	if m.tree.SetOpen(m.selected, open) {
		m.logger.Debug("open state changed", "selected", m.selected, "open", open)
	}
}

// markSelected appends the mark suffix to the selected item's title. Only
// visible items are marked, so the whole-tree lookup cannot miss.
func (m *Model) markSelected() {
	item, _, ok := m.tree.FindWithParent(m.selected)
	if !ok {
		m.appendDiagnostic(NotFound)
		return
	}
	m.tree.MustAppendTitle(item.ID, m.markSuffix)
	m.logger.Debug("marked", "selected", m.selected, "title", item.Title)
}

func (m *Model) appendDiagnostic(line string) {
	m.diagnostics = append(m.diagnostics, line)
	m.logger.Info("diagnostic", "line", line, "selected", m.selected)
}
