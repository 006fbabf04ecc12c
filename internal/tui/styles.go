package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"treeview/internal/config"
)

type Styles struct {
	flavor    catppuccin.Flavor
	highlight string
}

// NewStyles builds styles for a catppuccin flavor. highlight, when set, is
// a #rrggbb background used for the selected row instead of the flavor's.
func NewStyles(themeName, highlight string) *Styles {
	return &Styles{flavor: flavorFromName(themeName), highlight: highlight}
}

func flavorFromName(name string) catppuccin.Flavor {
	switch name {
	case "latte":
		return catppuccin.Latte
	case "frappe":
		return catppuccin.Frappe
	case "macchiato":
		return catppuccin.Macchiato
	case "mocha":
		return catppuccin.Mocha
	default:
		return catppuccin.Mocha
	}
}

// ApplyColorProfile pins lipgloss to a color profile for the given mode.
// Auto keeps lipgloss's own terminal detection.
func ApplyColorProfile(mode string) {
	switch mode {
	case config.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// SelectedStyle highlights the selected row. Render resets the colors at
// the end of the row.
func (s *Styles) SelectedStyle() lipgloss.Style {
	bg := s.flavor.Surface1().Hex
	if s.highlight != "" {
		bg = s.highlight
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(s.flavor.Text().Hex)).
		Bold(true)
}

func (s *Styles) ItemStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Text().Hex))
}

func (s *Styles) DiagnosticStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Subtext0().Hex))
}

func (s *Styles) NotFoundStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Red().Hex))
}

// HelpStyles colors the help footer.
func (s *Styles) HelpStyles() help.Styles {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(s.flavor.Overlay1().Hex))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(s.flavor.Overlay0().Hex))
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(s.flavor.Surface2().Hex))
	return help.Styles{
		ShortKey:       keyStyle,
		ShortDesc:      descStyle,
		ShortSeparator: sepStyle,
		Ellipsis:       sepStyle,
		FullKey:        keyStyle,
		FullDesc:       descStyle,
		FullSeparator:  sepStyle,
	}
}
