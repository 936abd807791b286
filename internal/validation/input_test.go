package validation

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSelection(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"trims", "  Login  ", 0, "Login"},
		{"collapses spaces", "Sign   in\tnow", 0, "Sign in now"},
		{"newlines", "Wel\ncome", 0, "Wel come"},
		{"truncates", strings.Repeat("a", 20), 5, "aaaaa"},
		{"truncates runes", "a" + strings.Repeat("é", 40), 3, "aéé"},
		{"multibyte under limit", "a" + strings.Repeat("é", 40), 64, "a" + strings.Repeat("é", 40)},
		{"empty", "   ", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeSelection(tt.input, tt.maxLen)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestMatchOption(t *testing.T) {
	options := []string{"Register", "Welcome", "Login"}

	got, ok := MatchOption("Login", options)
	assert.True(t, ok)
	assert.Equal(t, "Login", got)

	got, ok = MatchOption("welcome", options)
	assert.True(t, ok)
	assert.Equal(t, "Welcome", got)

	_, ok = MatchOption("Nonexistent", options)
	assert.False(t, ok)

	got, ok = MatchOption("a", []string{"A", "a"})
	assert.True(t, ok)
	assert.Equal(t, "a", got)
}

func TestClosestOption(t *testing.T) {
	options := []string{"Register", "Welcome", "Login"}

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"Logn", "Login", true},
		{"welcom", "Welcome", true},
		{"REGISTR", "Register", true},
		{"Settings", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ClosestOption(tt.input, options)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
