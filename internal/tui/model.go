package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"treeview/internal/config"
	"treeview/internal/logging"
	"treeview/internal/tree"
)

// NotFound is the diagnostic line for a selection that matches no visible item.
const NotFound = "Not Found"

// Model represents the TUI application state.
type Model struct {
	width  int
	height int
	styles *Styles
	keys   KeyMap
	help   help.Model

	showHelp   bool
	markSuffix string

	tree        *tree.Tree
	selected    int
	diagnostics []string

	logger *logging.ScopedLogger
}

// NewModel creates a model over t with the first top-level item selected.
func NewModel(cfg *config.Config, t *tree.Tree, logProvider logging.LoggerProvider) Model {
	styles := NewStyles(cfg.Theme, cfg.Highlight)

	h := help.New()
	h.Styles = styles.HelpStyles()

	logger := logging.NopLogger()
	if logProvider != nil {
		logger = logProvider.For("tui")
	}

	return Model{
		styles:     styles,
		keys:       KeyMapFromConfig(cfg.Keys),
		help:       h,
		showHelp:   cfg.ShowHelp,
		markSuffix: cfg.MarkSuffix,
		tree:       t,
		selected:   t.FirstID(),
		logger:     logger,
	}
}

// Init returns the initial command to run.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the id of the highlighted item.
func (m Model) Selected() int {
	return m.selected
}

// Diagnostics returns the diagnostic log, oldest first.
func (m Model) Diagnostics() []string {
	return m.diagnostics
}

// Tree returns the tree being shown.
func (m Model) Tree() *tree.Tree {
	return m.tree
}
