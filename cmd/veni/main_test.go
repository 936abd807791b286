package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	w.Close()
	os.Stdout = old
	return <-outC
}

func TestVersionCommand(t *testing.T) {
	out := captureStdout(t, func() { versionCmd.Run(nil, nil) })

	// Version is "dev" by default in tests
	if !strings.Contains(out, "veni dev") {
		t.Errorf("Expected version output to contain 'veni dev', got: %s", out)
	}
	if !strings.Contains(out, "github.com/pders01/veni") {
		t.Errorf("Expected version output to contain 'github.com/pders01/veni', got: %s", out)
	}
}

func TestGenerateConfigCommand(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	configFile := filepath.Join(tmpDir, ".config", "veni", "config.toml")

	out := captureStdout(t, func() { configGenCmd.Run(nil, nil) })

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		t.Errorf("Config file was not created at %s", configFile)
	}
	if !strings.Contains(out, "Generated default configuration at:") {
		t.Errorf("Expected output to contain 'Generated default configuration at:', got: %s", out)
	}
}

func TestScreensCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	testChdir(t, t.TempDir())

	var runErr error
	out := captureStdout(t, func() { runErr = screensCmd.RunE(nil, nil) })
	require.NoError(t, runErr)

	assert.Contains(t, out, "  0 Register")
	assert.Contains(t, out, "* 1 Welcome")
	assert.Contains(t, out, "  2 Login")
}

func TestConfigShowCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	testChdir(t, t.TempDir())

	var runErr error
	out := captureStdout(t, func() { runErr = configShowCmd.RunE(nil, nil) })
	require.NoError(t, runErr)

	assert.Contains(t, out, "[navigation]")
	assert.Contains(t, out, "default_screen = 'Welcome'")
}

func TestRootCommandWiring(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["version"])
	assert.True(t, names["config"])
	assert.True(t, names["screens"])

	for _, flag := range []string{"screen", "log-level", "quiet"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(flag), flag)
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
}
