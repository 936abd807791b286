package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pders01/veni/internal/debuglog"
	"github.com/pders01/veni/internal/nav"
)

func (a *App) jumpTo(target string) tea.Cmd {
	return a.follow(a.nav.JumpTo(target))
}

func (a *App) previous() tea.Cmd {
	return a.follow(a.nav.Previous())
}

func (a *App) next() tea.Cmd {
	return a.follow(a.nav.Next())
}

// follow starts the slide and lets the new screen take focus.
func (a *App) follow(t nav.Transition, ok bool) tea.Cmd {
	if !ok {
		return nil
	}
	return tea.Batch(
		a.slide.start(t.Direction),
		a.currentScreen().Enter(),
	)
}

func (a *App) submitCurrent() tea.Cmd {
	s, ok := a.currentScreen().(submitter)
	if !ok {
		return nil
	}
	switch a.nav.Current() {
	case ScreenRegister:
		a.setStatus(MsgRegistering, StatusInfo)
	case ScreenLogin:
		a.setStatus(MsgSigningIn, StatusInfo)
	}
	return s.Submit()
}

func (a *App) handleRegistered(msg registeredMsg) tea.Cmd {
	if msg.err != nil {
		a.log.Warnf("registration rejected: %v", msg.err)
		a.setStatus(statusText(msg.err), StatusError)
		return nil
	}

	a.log.With(debuglog.Fields{"account": msg.account.ID}).Infof("registered")
	if reg, ok := a.screens[ScreenRegister].(*RegisterScreen); ok {
		reg.Reset()
	}
	if login, ok := a.screens[ScreenLogin].(*LoginScreen); ok {
		login.Prefill(msg.account.Email)
	}
	a.setStatus(MsgRegistered(msg.account.DisplayName()), StatusSuccess)
	return a.jumpTo(ScreenLogin)
}

func (a *App) handleSignedIn(msg signedInMsg) tea.Cmd {
	login, _ := a.screens[ScreenLogin].(*LoginScreen)
	if msg.err != nil {
		a.log.Warnf("sign in rejected: %v", msg.err)
		if login != nil {
			login.ClearPassword()
		}
		a.setStatus(statusText(msg.err), StatusError)
		return nil
	}

	a.log.With(debuglog.Fields{"account": msg.account.ID}).Infof("signed in")
	if login != nil {
		login.Prefill("")
		login.Blur()
	}
	if w, ok := a.screens[ScreenWelcome].(*WelcomeScreen); ok {
		w.SetUser(msg.account.DisplayName())
	}
	a.setStatus(MsgSignedIn(msg.account.DisplayName()), StatusSuccess)
	return a.jumpTo(ScreenWelcome)
}
