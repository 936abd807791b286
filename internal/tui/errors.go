package tui

import (
	"fmt"

	"github.com/pders01/veni/internal/validation"
)

// wrapErr formats an error with a contextual prefix.
func wrapErr(context string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// statusText turns an error into a one-line status message. Form errors show
// only the first offending field.
func statusText(err error) string {
	if fe := validation.FirstFieldError(err); fe != nil {
		return fe.Error()
	}
	return err.Error()
}
