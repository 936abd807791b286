package tui

import (
	"fmt"
	"strings"
)

// Canonical short status messages used across the app.
const (
	MsgReady       = "Ready"
	MsgRegistering = "Creating account…"
	MsgSigningIn   = "Signing in…"
	MsgSignedOut   = "Signed out"
	MsgMenuHint    = "Type a screen name • ↑/↓ cycle • tab completes • enter jumps"
	MsgNotSignedIn = "Not signed in"
)

func MsgRegistered(name string) string {
	return fmt.Sprintf("Registered %s • sign in to continue", strings.TrimSpace(name))
}

func MsgSignedIn(name string) string {
	return fmt.Sprintf("Signed in as %s", strings.TrimSpace(name))
}

// MsgTransition describes a jump for the header, e.g. "← from Login".
func MsgTransition(from string, backward bool) string {
	arrow := "→"
	if backward {
		arrow = "←"
	}
	return fmt.Sprintf("%s from %s", arrow, from)
}

func MsgUnknownScreen(name, suggestion string) string {
	if suggestion == "" {
		return fmt.Sprintf("No screen named %q", name)
	}
	return fmt.Sprintf("No screen named %q • did you mean %s?", name, suggestion)
}
