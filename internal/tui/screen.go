package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen is one full page of the app.
type Screen interface {
	Name() string
	// Enter is called each time the screen becomes current.
	Enter() tea.Cmd
	Update(tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	// Focused reports whether a text field is capturing keystrokes.
	Focused() bool
	Blur()
	// Hints are short key hints for the status bar.
	Hints() []string
}

// submitter is implemented by screens that hold a form.
type submitter interface {
	Submit() tea.Cmd
}

// pageScreen is used for configured screens with no dedicated content.
type pageScreen struct {
	name string
}

func newPageScreen(name string) *pageScreen {
	return &pageScreen{name: name}
}

func (p *pageScreen) Name() string    { return p.name }
func (p *pageScreen) Enter() tea.Cmd  { return nil }
func (p *pageScreen) Focused() bool   { return false }
func (p *pageScreen) Blur()           {}
func (p *pageScreen) Hints() []string { return []string{"←/→: step"} }

func (p *pageScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "left", "h":
			return p, requestStep(-1)
		case "right", "l":
			return p, requestStep(1)
		}
	}
	return p, nil
}

func (p *pageScreen) View(width, height int) string {
	return renderCentered(width, height, lipgloss.JoinVertical(
		lipgloss.Center,
		TitleStyle.Render(p.name),
		"",
		renderHelp("Nothing here yet"),
	))
}
