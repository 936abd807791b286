package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// truncateEnd shortens s to at most limit characters, appending an ellipsis
// if truncation occurs.
func truncateEnd(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 1 {
		return "…"
	}
	return string(r[:limit-1]) + "…"
}

// shiftRight pushes every line of a rendered block offset cells to the right,
// clipping at width. Styled text is measured by printable cells.
func shiftRight(block string, offset, width int) string {
	if offset <= 0 {
		return block
	}
	pad := strings.Repeat(" ", offset)
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(pad+line, width, "")
	}
	return strings.Join(lines, "\n")
}

// shiftLeft drops the first offset cells of every line of a rendered block.
func shiftLeft(block string, offset int) string {
	if offset <= 0 {
		return block
	}
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = ansi.TruncateLeft(line, offset, "")
	}
	return strings.Join(lines, "\n")
}
