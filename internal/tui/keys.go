package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/pders01/veni/internal/config"
)

type keyMap struct {
	Prev      key.Binding
	Next      key.Binding
	Menu      key.Binding
	Submit    key.Binding
	Back      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap(cfg config.KeyConfig) keyMap {
	mod := ""
	if cfg.Modifier != "" {
		mod = cfg.Modifier + "+"
	}
	b := cfg.Bindings

	return keyMap{
		Prev:      key.NewBinding(key.WithKeys(mod+b.Prev), key.WithHelp(mod+b.Prev, "prev")),
		Next:      key.NewBinding(key.WithKeys(mod+b.Next), key.WithHelp(mod+b.Next, "next")),
		Menu:      key.NewBinding(key.WithKeys(mod+b.Menu), key.WithHelp(mod+b.Menu, "jump to")),
		Submit:    key.NewBinding(key.WithKeys(mod+b.Submit), key.WithHelp(mod+b.Submit, "submit")),
		Back:      key.NewBinding(key.WithKeys(b.Back), key.WithHelp(b.Back, "leave field")),
		Help:      key.NewBinding(key.WithKeys(b.Help), key.WithHelp(b.Help, "more")),
		Quit:      key.NewBinding(key.WithKeys(b.Quit), key.WithHelp(b.Quit, "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Menu, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Menu},
		{k.Submit, k.Back},
		{k.Help, k.Quit},
	}
}
