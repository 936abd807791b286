package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistration() Registration {
	return Registration{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		MemberID:        "302",
		Email:           "ada@example.com",
		Password:        "analytical",
		ConfirmPassword: "analytical",
	}
}

func TestNewFormValidator(t *testing.T) {
	v := NewFormValidator()
	require.NotNil(t, v)
	assert.Equal(t, 256, v.MaxFieldLength)
	assert.Equal(t, 8, v.MinPasswordLength)
}

func TestValidateRegistration(t *testing.T) {
	v := NewFormValidator()

	tests := []struct {
		name      string
		mutate    func(*Registration)
		wantField string
		wantMsg   string
	}{
		{name: "valid", mutate: func(*Registration) {}},
		{
			name:      "missing first name",
			mutate:    func(r *Registration) { r.FirstName = "  " },
			wantField: "First name",
			wantMsg:   "must be filled out",
		},
		{
			name:      "missing last name",
			mutate:    func(r *Registration) { r.LastName = "" },
			wantField: "Last name",
			wantMsg:   "must be filled out",
		},
		{
			name:      "non numeric member id",
			mutate:    func(r *Registration) { r.MemberID = "abc" },
			wantField: "Member ID",
			wantMsg:   "must be numeric",
		},
		{
			name:      "non ascii digits in member id",
			mutate:    func(r *Registration) { r.MemberID = "٣٠٢" },
			wantField: "Member ID",
			wantMsg:   "must be numeric",
		},
		{
			name:      "bad email",
			mutate:    func(r *Registration) { r.Email = "not-an-email" },
			wantField: "Email",
			wantMsg:   "is not a valid address",
		},
		{
			name:      "short password",
			mutate:    func(r *Registration) { r.Password, r.ConfirmPassword = "short", "short" },
			wantField: "Password",
			wantMsg:   "must be at least 8 characters",
		},
		{
			name:      "password mismatch",
			mutate:    func(r *Registration) { r.ConfirmPassword = "different1" },
			wantField: "Confirm password",
			wantMsg:   "does not match",
		},
		{
			name:      "field too long",
			mutate:    func(r *Registration) { r.LastName = strings.Repeat("x", 300) },
			wantField: "Last name",
			wantMsg:   "is too long (max 256 characters)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRegistration()
			tt.mutate(&r)

			err := v.ValidateRegistration(r)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			fe := FirstFieldError(err)
			require.NotNil(t, fe, "expected a field error, got %v", err)
			assert.Equal(t, tt.wantField, fe.Field)
			assert.Equal(t, tt.wantMsg, fe.Message)
		})
	}
}

func TestValidateRegistration_ReportsAllFields(t *testing.T) {
	err := NewFormValidator().ValidateRegistration(Registration{})
	require.Error(t, err)

	for _, field := range []string{"First name", "Last name", "Member ID", "Email", "Password", "Confirm password"} {
		assert.Contains(t, err.Error(), field)
	}
	assert.Equal(t, "First name", FirstFieldError(err).Field)
}

func TestValidateLogin(t *testing.T) {
	v := NewFormValidator()

	assert.NoError(t, v.ValidateLogin(Credentials{Email: "a@b.io", Password: "x"}))

	err := v.ValidateLogin(Credentials{Email: "", Password: "x"})
	assert.Equal(t, "Email must be filled out", FirstFieldError(err).Error())

	err = v.ValidateLogin(Credentials{Email: "a@b.io", Password: ""})
	assert.Equal(t, "Password", FirstFieldError(err).Field)

	err = v.ValidateLogin(Credentials{Email: "Ada <a@b.io>", Password: "x"})
	assert.Equal(t, "Email", FirstFieldError(err).Field)
}

func TestFirstFieldError_Nil(t *testing.T) {
	assert.Nil(t, FirstFieldError(nil))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ada@example.com", NormalizeEmail("  Ada@Example.COM "))
}
