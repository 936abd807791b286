package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formField struct {
	label string
	input textinput.Model
}

func newField(label, placeholder string, secret bool) formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Width = 32
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return formField{label: label, input: ti}
}

// form is a vertical list of labelled inputs with at most one focused.
type form struct {
	title  string
	fields []formField
	focus  int // -1 when nothing is focused
}

func newForm(title string, fields ...formField) *form {
	return &form{title: title, fields: fields, focus: -1}
}

func (f *form) Focused() bool {
	return f.focus >= 0
}

func (f *form) Blur() {
	if f.focus >= 0 {
		f.fields[f.focus].input.Blur()
	}
	f.focus = -1
}

func (f *form) focusField(i int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	if i < 0 {
		i = len(f.fields) - 1
	}
	i %= len(f.fields)

	f.Blur()
	f.focus = i
	return f.fields[i].input.Focus()
}

func (f *form) value(i int) string {
	return f.fields[i].input.Value()
}

func (f *form) setValue(i int, v string) {
	f.fields[i].input.SetValue(v)
}

func (f *form) reset() {
	for i := range f.fields {
		f.fields[i].input.Reset()
	}
	f.Blur()
}

// update handles a key while the form has focus. submit is true when enter
// is pressed on the last field.
func (f *form) update(msg tea.KeyMsg) (submit bool, cmd tea.Cmd) {
	if !f.Focused() {
		switch msg.String() {
		case "enter", "tab", "down", "i":
			return false, f.focusField(0)
		case "shift+tab", "up":
			return false, f.focusField(len(f.fields) - 1)
		}
		return false, nil
	}

	switch msg.String() {
	case "tab", "down":
		return false, f.focusField(f.focus + 1)
	case "shift+tab", "up":
		return false, f.focusField(f.focus - 1)
	case "enter":
		if f.focus == len(f.fields)-1 {
			return true, nil
		}
		return false, f.focusField(f.focus + 1)
	}

	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return false, cmd
}

// updateInput forwards non-key messages, like cursor blinks, to the focused input.
func (f *form) updateInput(msg tea.Msg) tea.Cmd {
	if !f.Focused() {
		return nil
	}
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *form) view(width, height int, footer string) string {
	rows := []string{TitleStyle.Render(f.title), ""}

	inputWidth := width - 24
	if inputWidth > 40 {
		inputWidth = 40
	}
	if inputWidth < 10 {
		inputWidth = 10
	}

	for i := range f.fields {
		fld := &f.fields[i]
		fld.input.Width = inputWidth

		label := LabelStyle.Render(fld.label)
		if i == f.focus {
			label = FocusedLabelStyle.Render("› " + fld.label)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, fld.input.View()))
	}

	if footer != "" {
		rows = append(rows, "", renderHelp(footer))
	}

	return renderCentered(width, height, lipgloss.JoinVertical(lipgloss.Left, rows...))
}
