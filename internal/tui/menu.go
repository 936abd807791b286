package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/veni/internal/validation"
)

const maxSelectionLength = 64

// SlideMenu is the bar under every screen: previous/next buttons and a
// screen picker. It never changes screens itself; Submit hands the chosen
// name back to the caller.
type SlideMenu struct {
	input   textinput.Model
	screens []string
}

func NewSlideMenu(screens []string) SlideMenu {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = "jump to…"
	ti.CharLimit = maxSelectionLength
	ti.Width = 20
	ti.ShowSuggestions = true
	ti.SetSuggestions(screens)
	// ctrl+p and ctrl+n step between screens, so suggestions use arrows only.
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("up"))
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("down"))

	return SlideMenu{input: ti, screens: screens}
}

func (m *SlideMenu) Focus() tea.Cmd { return m.input.Focus() }
func (m *SlideMenu) Blur()          { m.input.Blur() }
func (m *SlideMenu) Focused() bool  { return m.input.Focused() }
func (m *SlideMenu) Value() string  { return m.input.Value() }

// Clear empties the picker and hands focus back to the screen.
func (m *SlideMenu) Clear() {
	m.input.Reset()
	m.input.Blur()
}

// Submit resolves the typed text to a screen name. Text that names no
// screen is left in place and ok is false.
func (m *SlideMenu) Submit() (target string, ok bool) {
	text := validation.SanitizeSelection(m.input.Value(), maxSelectionLength)
	if text == "" {
		return "", false
	}
	return validation.MatchOption(text, m.screens)
}

// Suggest returns the screen closest to the typed text, for use after
// Submit fails.
func (m *SlideMenu) Suggest() (string, bool) {
	text := validation.SanitizeSelection(m.input.Value(), maxSelectionLength)
	return validation.ClosestOption(text, m.screens)
}

func (m *SlideMenu) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *SlideMenu) SetWidth(width int) {
	w := width - 40
	if w > 30 {
		w = 30
	}
	if w < 10 {
		w = 10
	}
	m.input.Width = w
}

func (m *SlideMenu) View(current, prevKey, nextKey string, width int) string {
	prev := MenuButtonStyle.Render("‹ prev") + " " + renderMuted(prevKey)
	next := renderMuted(nextKey) + " " + MenuButtonStyle.Render("next ›")

	row := lipgloss.JoinHorizontal(lipgloss.Center,
		prev,
		"   ",
		m.input.View(),
		"   ",
		renderDots(m.screens, current),
		"   ",
		next,
	)

	style := MenuStyle
	if m.Focused() {
		style = style.BorderForeground(AccentColor)
	}
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(row)
}
