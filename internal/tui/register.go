package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pders01/veni/internal/account"
	"github.com/pders01/veni/internal/validation"
)

const (
	regFirstName = iota
	regLastName
	regMemberID
	regEmail
	regPassword
	regConfirm
)

type RegisterScreen struct {
	form     *form
	accounts *account.Registry
}

func NewRegisterScreen(accounts *account.Registry) *RegisterScreen {
	return &RegisterScreen{
		accounts: accounts,
		form: newForm("› register",
			newField("First name", "Ada", false),
			newField("Last name", "Lovelace", false),
			newField("Member ID", "302", false),
			newField("Email", "you@example.com", false),
			newField("Password", "at least 8 characters", true),
			newField("Confirm password", "", true),
		),
	}
}

func (s *RegisterScreen) Name() string  { return ScreenRegister }
func (s *RegisterScreen) Focused() bool { return s.form.Focused() }
func (s *RegisterScreen) Blur()         { s.form.Blur() }

func (s *RegisterScreen) Enter() tea.Cmd {
	return s.form.focusField(regFirstName)
}

func (s *RegisterScreen) Hints() []string {
	return []string{"tab: next field", "enter: submit"}
}

func (s *RegisterScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
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

// Submit registers the entered account off the UI goroutine.
func (s *RegisterScreen) Submit() tea.Cmd {
	r := s.registration()
	accounts := s.accounts
	return func() tea.Msg {
		acct, err := accounts.Register(r)
		return registeredMsg{account: acct, err: wrapErr("register", err)}
	}
}

func (s *RegisterScreen) registration() validation.Registration {
	return validation.Registration{
		FirstName:       s.form.value(regFirstName),
		LastName:        s.form.value(regLastName),
		MemberID:        s.form.value(regMemberID),
		Email:           s.form.value(regEmail),
		Password:        s.form.value(regPassword),
		ConfirmPassword: s.form.value(regConfirm),
	}
}

func (s *RegisterScreen) Reset() {
	s.form.reset()
}

func (s *RegisterScreen) View(width, height int) string {
	return s.form.view(width, height, "All fields are required")
}
