package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pders01/veni/internal/account"
)

// Well-known screen names. Any other configured name gets a plain page.
const (
	ScreenRegister = "Register"
	ScreenWelcome  = "Welcome"
	ScreenLogin    = "Login"
)

// jumpRequestMsg asks the app to jump to a screen by name.
type jumpRequestMsg struct {
	target string
}

// stepRequestMsg asks the app to move one screen back (-1) or ahead (+1).
type stepRequestMsg struct {
	delta int
}

type slideTickMsg struct {
	seq int
}

type registeredMsg struct {
	account *account.Account
	err     error
}

type signedInMsg struct {
	account *account.Account
	err     error
}

type signOutMsg struct{}

func requestJump(target string) tea.Cmd {
	return func() tea.Msg { return jumpRequestMsg{target: target} }
}

func requestStep(delta int) tea.Cmd {
	return func() tea.Msg { return stepRequestMsg{delta: delta} }
}
