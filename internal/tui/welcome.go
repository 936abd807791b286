package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const welcomeMarkdown = `# Welcome

Use the menu below to move between screens.

- **r** opens *Register* to create an account
- **l** opens *Login* to sign in
- **←/→** step to the previous or next screen
`

type WelcomeScreen struct {
	user     string
	renderer *glamour.TermRenderer
	// width the renderer was built for
	rendererWidth int
	rendered      string
}

func NewWelcomeScreen() *WelcomeScreen {
	return &WelcomeScreen{}
}

func (s *WelcomeScreen) Name() string   { return ScreenWelcome }
func (s *WelcomeScreen) Enter() tea.Cmd { return nil }
func (s *WelcomeScreen) Focused() bool  { return false }
func (s *WelcomeScreen) Blur()          {}

func (s *WelcomeScreen) Hints() []string {
	hints := []string{"r: register", "l: login"}
	if s.user != "" {
		hints = append(hints, "o: sign out")
	}
	return hints
}

// SetUser records who is signed in. Empty means nobody.
func (s *WelcomeScreen) SetUser(name string) {
	s.user = name
}

func (s *WelcomeScreen) User() string {
	return s.user
}

func (s *WelcomeScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch k.String() {
	case "r":
		return s, requestJump(ScreenRegister)
	case "l":
		return s, requestJump(ScreenLogin)
	case "o":
		if s.user != "" {
			return s, func() tea.Msg { return signOutMsg{} }
		}
	case "left", "h":
		return s, requestStep(-1)
	case "right":
		return s, requestStep(1)
	}
	return s, nil
}

func (s *WelcomeScreen) render(width int) string {
	wrap := (width * 9) / 10
	if wrap > 80 {
		wrap = 80
	}
	if wrap < 20 {
		wrap = 20
	}

	if s.renderer == nil || abs(s.rendererWidth-wrap) > 4 {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			return welcomeMarkdown
		}
		s.renderer = r
		s.rendererWidth = wrap
		s.rendered = ""
	}

	if s.rendered == "" {
		out, err := s.renderer.Render(welcomeMarkdown)
		if err != nil {
			return welcomeMarkdown
		}
		s.rendered = strings.TrimRight(out, "\n")
	}
	return s.rendered
}

func (s *WelcomeScreen) View(width, height int) string {
	who := MsgNotSignedIn
	if s.user != "" {
		who = MsgSignedIn(s.user)
	}

	return renderCentered(width, height, lipgloss.JoinVertical(
		lipgloss.Center,
		GetCompactBanner(who),
		s.render(width),
	))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
