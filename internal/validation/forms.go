package validation

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

// FieldError is a problem with a single form field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Registration is the data collected by the register screen.
type Registration struct {
	FirstName       string
	LastName        string
	MemberID        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Credentials is the data collected by the login screen.
type Credentials struct {
	Email    string
	Password string
}

// FormValidator checks user-entered form data
type FormValidator struct {
	// MaxFieldLength caps every text field
	MaxFieldLength int
	// MinPasswordLength is the shortest accepted password on registration
	MinPasswordLength int
}

// NewFormValidator creates a validator with the app defaults
func NewFormValidator() *FormValidator {
	return &FormValidator{
		MaxFieldLength:    256,
		MinPasswordLength: 8,
	}
}

// ValidateRegistration reports every invalid field, joined in form order.
// Required-field checks come first, matching the order fields appear on
// screen.
func (v *FormValidator) ValidateRegistration(r Registration) error {
	var errs []error

	errs = append(errs, v.required("First name", r.FirstName))
	errs = append(errs, v.required("Last name", r.LastName))
	if err := v.required("Member ID", r.MemberID); err != nil {
		errs = append(errs, err)
	} else if !isDigits(strings.TrimSpace(r.MemberID)) {
		errs = append(errs, &FieldError{Field: "Member ID", Message: "must be numeric"})
	}
	errs = append(errs, v.email("Email", r.Email))

	if err := v.required("Password", r.Password); err != nil {
		errs = append(errs, err)
	} else if len(r.Password) < v.MinPasswordLength {
		errs = append(errs, &FieldError{
			Field:   "Password",
			Message: fmt.Sprintf("must be at least %d characters", v.MinPasswordLength),
		})
	}

	if err := v.required("Confirm password", r.ConfirmPassword); err != nil {
		errs = append(errs, err)
	} else if r.Password != r.ConfirmPassword {
		errs = append(errs, &FieldError{Field: "Confirm password", Message: "does not match"})
	}

	return errors.Join(errs...)
}

// ValidateLogin checks that both credentials are present and the email parses.
func (v *FormValidator) ValidateLogin(c Credentials) error {
	return errors.Join(
		v.email("Email", c.Email),
		v.required("Password", c.Password),
	)
}

// FirstFieldError returns the first FieldError wrapped in err, if any.
func FirstFieldError(err error) *FieldError {
	if err == nil {
		return nil
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe
	}
	return nil
}

// NormalizeEmail lowercases and trims an address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (v *FormValidator) required(field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return &FieldError{Field: field, Message: "must be filled out"}
	}
	if len(value) > v.MaxFieldLength {
		return &FieldError{Field: field, Message: fmt.Sprintf("is too long (max %d characters)", v.MaxFieldLength)}
	}
	return nil
}

func (v *FormValidator) email(field, value string) error {
	if err := v.required(field, value); err != nil {
		return err
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(value))
	if err != nil || addr.Name != "" || !strings.Contains(addr.Address, ".") {
		return &FieldError{Field: field, Message: "is not a valid address"}
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
