package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHeader returns a consistently styled header with an optional muted
// subtitle on the same line.
func renderHeader(title, subtitle string, width int) string {
	title = truncateEnd(title, width-2)
	if subtitle == "" {
		return HeaderStyle.Render(title)
	}
	room := width - lipgloss.Width(title) - 4
	return lipgloss.JoinHorizontal(lipgloss.Top,
		HeaderStyle.Render(title),
		"  ",
		renderMuted(truncateEnd(subtitle, room)),
	)
}

// renderCentered centers the provided content within the given width/height box.
func renderCentered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func renderMuted(text string) string {
	return lipgloss.NewStyle().Foreground(MutedColor).Render(text)
}

func renderHelp(text string) string {
	return HelpStyle.Render(text)
}

// renderDots draws one dot per screen with the current one highlighted.
func renderDots(screens []string, current string) string {
	out := ""
	for i, s := range screens {
		if i > 0 {
			out += " "
		}
		if s == current {
			out += ActiveDotStyle.Render("●")
		} else {
			out += InactiveDotStyle.Render("○")
		}
	}
	return out
}
