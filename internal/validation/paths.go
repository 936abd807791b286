package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathValidator checks file paths taken from configuration and flags.
type PathValidator struct {
	// MaxPathLength is the maximum allowed path length
	MaxPathLength int
}

func NewPathValidator() *PathValidator {
	return &PathValidator{MaxPathLength: 4096}
}

// ValidateFile checks a file path and returns it absolute and cleaned. A
// leading ~/ is replaced by the home directory.
func (v *PathValidator) ValidateFile(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}
	if len(path) > v.MaxPathLength {
		return "", fmt.Errorf("path too long (max %d characters)", v.MaxPathLength)
	}
	if err := validateCharacters(path); err != nil {
		return "", err
	}
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".." {
			return "", fmt.Errorf("directory traversal not allowed")
		}
	}

	normalized, err := normalizePath(path)
	if err != nil {
		return "", fmt.Errorf("path normalization failed: %w", err)
	}

	if info, err := os.Stat(normalized); err == nil && info.IsDir() {
		return "", fmt.Errorf("path is a directory, not a file: %s", normalized)
	}
	return normalized, nil
}

func validateCharacters(path string) error {
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("path contains null bytes")
	}
	for _, char := range path {
		if char < 32 && char != '\t' {
			return fmt.Errorf("path contains control characters")
		}
	}
	return nil
}

func normalizePath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	} else if strings.HasPrefix(path, "~") {
		return "", fmt.Errorf("only ~/ is expanded")
	}

	// Abs also cleans the path.
	return filepath.Abs(path)
}
