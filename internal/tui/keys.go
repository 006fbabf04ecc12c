// pattern: Functional Core

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"treeview/internal/config"
)

// KeyMap holds the bindings for every action the loop understands.
type KeyMap struct {
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	Describe key.Binding
	Toggle   key.Binding
	Expand   key.Binding
	Collapse key.Binding
	Mark     key.Binding
	Help     key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Describe: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "describe parent"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "toggle"),
		),
		Expand: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "expand"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "collapse"),
		),
		Mark: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// KeyMapFromConfig starts from the defaults and replaces the keys of every
// action the config lists.
func KeyMapFromConfig(cfg config.KeysConfig) KeyMap {
	km := DefaultKeyMap()
	override(&km.Quit, cfg.Quit)
	override(&km.Up, cfg.Up)
	override(&km.Down, cfg.Down)
	override(&km.Describe, cfg.Describe)
	override(&km.Toggle, cfg.Toggle)
	override(&km.Expand, cfg.Expand)
	override(&km.Collapse, cfg.Collapse)
	override(&km.Mark, cfg.Mark)
	override(&km.Help, cfg.Help)
	return km
}

func override(b *key.Binding, keys []string) {
	if len(keys) == 0 {
		return
	}
	desc := b.Help().Desc
	b.SetKeys(keys...)
	b.SetHelp(strings.Join(keys, "/"), desc)
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Describe, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Expand, k.Collapse},
		{k.Describe, k.Mark},
		{k.Help, k.Quit},
	}
}
