package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/veni/internal/nav"
)

func TestSlide_Disabled(t *testing.T) {
	s := newSlide(0, 0)

	assert.Nil(t, s.start(nav.Forward))
	assert.False(t, s.active())
	assert.Equal(t, 0, s.offset(80))
	assert.Equal(t, "abc", s.apply("abc", 80))
}

func TestSlide_RunsDown(t *testing.T) {
	s := newSlide(3, time.Millisecond)

	require.NotNil(t, s.start(nav.Forward))
	assert.Equal(t, 60, s.offset(80))

	assert.NotNil(t, s.advance(slideTickMsg{seq: s.seq}))
	assert.Equal(t, 40, s.offset(80))
	assert.NotNil(t, s.advance(slideTickMsg{seq: s.seq}))
	assert.Nil(t, s.advance(slideTickMsg{seq: s.seq}))
	assert.False(t, s.active())
	assert.Equal(t, 0, s.offset(80))
}

func TestSlide_StaleTicksIgnored(t *testing.T) {
	s := newSlide(3, time.Millisecond)
	s.start(nav.Forward)
	stale := slideTickMsg{seq: s.seq}

	s.start(nav.Backward)
	assert.Nil(t, s.advance(stale))
	assert.Equal(t, 3, s.remaining)
	assert.Equal(t, nav.Backward, s.direction)
}

func TestSlide_ApplyDirection(t *testing.T) {
	s := newSlide(1, time.Millisecond)
	content := "abcdefghij"

	s.start(nav.Forward)
	right := s.apply(content, 10)
	assert.True(t, strings.HasPrefix(right, "     abcde"), "forward enters from the right: %q", right)

	s.start(nav.Backward)
	left := s.apply(content, 10)
	assert.Equal(t, "fghij", left)
}
