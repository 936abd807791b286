package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler struct {
	app  *App
	keys keyMap
}

func NewKeyHandler(app *App, keys keyMap) *KeyHandler {
	return &KeyHandler{app: app, keys: keys}
}

func (kh *KeyHandler) HandleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model, cmd, handled := kh.handleGlobalKeys(msg); handled {
		return model, cmd
	}

	if kh.isInTextInputMode() {
		return kh.handleTextInputMode(msg)
	}

	switch {
	case key.Matches(msg, kh.keys.Quit):
		return kh.app, tea.Quit
	case key.Matches(msg, kh.keys.Help):
		kh.app.help.ShowAll = !kh.app.help.ShowAll
		return kh.app, nil
	}

	return kh.delegateToScreen(msg)
}

// handleGlobalKeys handles modifier chords, which work even while typing.
func (kh *KeyHandler) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, kh.keys.ForceQuit):
		return kh.app, tea.Quit, true
	case key.Matches(msg, kh.keys.Prev):
		return kh.app, kh.app.previous(), true
	case key.Matches(msg, kh.keys.Next):
		return kh.app, kh.app.next(), true
	case key.Matches(msg, kh.keys.Menu):
		return kh.app, kh.focusMenu(), true
	case key.Matches(msg, kh.keys.Submit):
		return kh.app, kh.app.submitCurrent(), true
	}
	return kh.app, nil, false
}

func (kh *KeyHandler) isInTextInputMode() bool {
	return kh.app.menu.Focused() || kh.app.currentScreen().Focused()
}

func (kh *KeyHandler) handleTextInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, kh.keys.Back) {
		if kh.app.menu.Focused() {
			kh.app.menu.Blur()
		} else {
			kh.app.currentScreen().Blur()
		}
		return kh.app, nil
	}

	if !kh.app.menu.Focused() {
		return kh.delegateToScreen(msg)
	}

	if msg.String() == "enter" {
		if target, ok := kh.app.menu.Submit(); ok {
			return kh.app, kh.app.jumpTo(target)
		}
		if typed := kh.app.menu.Value(); strings.TrimSpace(typed) != "" {
			suggestion, _ := kh.app.menu.Suggest()
			kh.app.setStatus(MsgUnknownScreen(strings.TrimSpace(typed), suggestion), StatusWarn)
		}
		return kh.app, nil
	}
	return kh.app, kh.app.menu.Update(msg)
}

func (kh *KeyHandler) delegateToScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name := kh.app.nav.Current()
	screen, cmd := kh.app.currentScreen().Update(msg)
	kh.app.screens[name] = screen
	return kh.app, cmd
}

func (kh *KeyHandler) focusMenu() tea.Cmd {
	kh.app.currentScreen().Blur()
	return kh.app.menu.Focus()
}

// GetHelpForCurrentView returns hints for whatever currently has focus.
func (kh *KeyHandler) GetHelpForCurrentView() []string {
	if kh.app.menu.Focused() {
		return []string{MsgMenuHint, kh.keys.Back.Help().Key + ": close"}
	}
	hints := kh.app.currentScreen().Hints()
	if kh.app.currentScreen().Focused() {
		hints = append(hints, kh.keys.Back.Help().Key+": leave field")
	}
	return hints
}
