package tui

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/veni/internal/config"
)

func TestShowBanner(t *testing.T) {
	// Capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outC <- buf.String()
	}()

	ShowBanner("1.0.0-test")

	w.Close()
	os.Stdout = old
	out := <-outC

	if !strings.Contains(out, "Register • Welcome • Login") {
		t.Errorf("Expected banner to contain the screen tagline, got: %s", out)
	}
	if !strings.Contains(out, "╔") || !strings.Contains(out, "╝") {
		t.Errorf("Expected banner to contain border characters, got: %s", out)
	}
	if !strings.Contains(out, "◆") {
		t.Errorf("Expected banner to contain separator symbols, got: %s", out)
	}
	if !strings.Contains(out, "v1.0.0-test") {
		t.Errorf("Expected banner to contain version 'v1.0.0-test', got: %s", out)
	}
}

func TestRenderBanner_DevVersionOmitted(t *testing.T) {
	out := RenderBanner("dev")
	if strings.Contains(out, "vdev") {
		t.Errorf("Expected dev builds to omit the version, got: %s", out)
	}

	out = RenderBanner("v2.0.0")
	if strings.Contains(out, "vv2.0.0") {
		t.Errorf("Expected existing v prefix to be kept as is, got: %s", out)
	}
}

func TestGetCompactBanner(t *testing.T) {
	message := "Test message"
	result := GetCompactBanner(message)

	if !strings.Contains(result, message) {
		t.Errorf("Expected compact banner to contain '%s', got: %s", message, result)
	}
	if !strings.Contains(result, "██") {
		t.Errorf("Expected compact banner to contain logo elements, got: %s", result)
	}
}

func TestLogoConstants(t *testing.T) {
	if len(LogoLines) != 5 {
		t.Errorf("Expected 5 logo lines, got %d", len(LogoLines))
	}
	if len(BannerColors) != 5 {
		t.Errorf("Expected 5 banner colors, got %d", len(BannerColors))
	}
}

func TestApplyTheme(t *testing.T) {
	saved := []lipgloss.Color{PrimaryColor, SecondaryColor, AccentColor, SurfaceColor, TextColor, MutedColor, ErrorColor, SuccessColor}
	t.Cleanup(func() {
		PrimaryColor, SecondaryColor, AccentColor, SurfaceColor = saved[0], saved[1], saved[2], saved[3]
		TextColor, MutedColor, ErrorColor, SuccessColor = saved[4], saved[5], saved[6], saved[7]
		buildStyles()
	})

	ApplyTheme(config.UIColors{Primary: "#000001", Muted: ""})

	if PrimaryColor != lipgloss.Color("#000001") {
		t.Errorf("Expected primary color to be replaced, got %v", PrimaryColor)
	}
	if MutedColor != saved[5] {
		t.Errorf("Expected empty muted color to keep the default, got %v", MutedColor)
	}
}

func TestStatusStyle(t *testing.T) {
	if StatusStyle(StatusError).GetForeground() != ErrorColor {
		t.Errorf("Expected error status to use the error color")
	}
	if StatusStyle(StatusKind(99)).GetForeground() != StatusInfoStyle.GetForeground() {
		t.Errorf("Expected unknown kinds to fall back to info")
	}
}
