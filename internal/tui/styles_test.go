package tui

import (
	"testing"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"treeview/internal/config"
)

func TestStyles_AllFlavors(t *testing.T) {
	flavors := []string{"latte", "frappe", "macchiato", "mocha", "unknown"}

	for _, flavor := range flavors {
		t.Run(flavor, func(t *testing.T) {
			styles := NewStyles(flavor, "")

			_ = styles.SelectedStyle()
			_ = styles.ItemStyle()
			_ = styles.DiagnosticStyle()
			_ = styles.NotFoundStyle()
			_ = styles.HelpStyles()
		})
	}
}

func TestStyles_SelectedStyle(t *testing.T) {
	styles := NewStyles("mocha", "")
	sel := styles.SelectedStyle()
	if !sel.GetBold() {
		t.Error("SelectedStyle should be bold")
	}
	if sel.GetBackground() != lipgloss.Color(styles.flavor.Surface1().Hex) {
		t.Errorf("background = %v, want flavor surface", sel.GetBackground())
	}

	override := NewStyles("mocha", "#123456").SelectedStyle()
	if override.GetBackground() != lipgloss.Color("#123456") {
		t.Errorf("background = %v, want override", override.GetBackground())
	}
}

func TestFlavorFromName_DefaultsToMocha(t *testing.T) {
	if flavorFromName("nope").Base().Hex != catppuccin.Mocha.Base().Hex {
		t.Error("unknown theme should fall back to mocha")
	}
}

func TestApplyColorProfile(t *testing.T) {
	prev := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	ApplyColorProfile(config.ColorNever)
	if lipgloss.ColorProfile() != termenv.Ascii {
		t.Errorf("never: profile = %v", lipgloss.ColorProfile())
	}

	ApplyColorProfile(config.ColorAlways)
	if lipgloss.ColorProfile() != termenv.TrueColor {
		t.Errorf("always: profile = %v", lipgloss.ColorProfile())
	}

	ApplyColorProfile(config.ColorAuto)
	if lipgloss.ColorProfile() != termenv.TrueColor {
		t.Error("auto should leave the profile alone")
	}
}
