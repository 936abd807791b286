package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pders01/veni/internal/account"
	"github.com/pders01/veni/internal/validation"
)

const (
	loginEmail = iota
	loginPassword
)

type LoginScreen struct {
	form     *form
	accounts *account.Registry
}

func NewLoginScreen(accounts *account.Registry) *LoginScreen {
	return &LoginScreen{
		accounts: accounts,
		form: newForm("› login",
			newField("Email", "you@example.com", false),
			newField("Password", "", true),
		),
	}
}

func (s *LoginScreen) Name() string  { return ScreenLogin }
func (s *LoginScreen) Focused() bool { return s.form.Focused() }
func (s *LoginScreen) Blur()         { s.form.Blur() }

// Enter focuses the password when the email is already filled in.
func (s *LoginScreen) Enter() tea.Cmd {
	if s.form.value(loginEmail) != "" {
		return s.form.focusField(loginPassword)
	}
	return s.form.focusField(loginEmail)
}

func (s *LoginScreen) Hints() []string {
	return []string{"tab: next field", "enter: sign in"}
}

func (s *LoginScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, s.form.updateInput(msg)
	}
	submit, cmd := s.form.update(k)
	if submit {
		return s, s.Submit()
	}
	return s, cmd
}

func (s *LoginScreen) Submit() tea.Cmd {
	c := validation.Credentials{
		Email:    s.form.value(loginEmail),
		Password: s.form.value(loginPassword),
	}
	accounts := s.accounts
	return func() tea.Msg {
		acct, err := accounts.Authenticate(c)
		return signedInMsg{account: acct, err: wrapErr("login", err)}
	}
}

// Prefill resets the form and puts email in the email field.
func (s *LoginScreen) Prefill(email string) {
	s.form.reset()
	s.form.setValue(loginEmail, email)
}

// ClearPassword empties the password after a failed or successful attempt.
func (s *LoginScreen) ClearPassword() {
	s.form.setValue(loginPassword, "")
}

func (s *LoginScreen) View(width, height int) string {
	return s.form.view(width, height, "No account yet? Jump to Register")
}
