package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pders01/veni/internal/nav"
)

// slide animates the incoming screen from one side. Forward transitions
// enter from the right, backward ones from the left.
type slide struct {
	frames   int
	interval time.Duration

	direction nav.Direction
	remaining int
	seq       int
}

func newSlide(frames int, interval time.Duration) slide {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return slide{frames: frames, interval: interval}
}

func (s *slide) active() bool {
	return s.remaining > 0
}

// start begins a new animation, abandoning any running one.
func (s *slide) start(d nav.Direction) tea.Cmd {
	s.seq++
	s.direction = d
	s.remaining = s.frames
	if !s.active() {
		return nil
	}
	return s.tick()
}

// advance handles a tick. Ticks from an abandoned animation are ignored.
func (s *slide) advance(msg slideTickMsg) tea.Cmd {
	if msg.seq != s.seq || !s.active() {
		return nil
	}
	s.remaining--
	if !s.active() {
		return nil
	}
	return s.tick()
}

func (s *slide) tick() tea.Cmd {
	seq := s.seq
	return tea.Tick(s.interval, func(time.Time) tea.Msg { return slideTickMsg{seq: seq} })
}

// offset is how many cells the content is still displaced by.
func (s *slide) offset(width int) int {
	if !s.active() || s.frames == 0 {
		return 0
	}
	return width * s.remaining / (s.frames + 1)
}

func (s *slide) apply(content string, width int) string {
	off := s.offset(width)
	if off == 0 {
		return content
	}
	if s.direction == nav.Backward {
		return shiftLeft(content, off)
	}
	return shiftRight(content, off, width)
}
