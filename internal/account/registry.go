// Package account keeps accounts created during the current session. Nothing
// is written to disk; the registry is gone when the process exits.
package account

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pders01/veni/internal/validation"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Account struct {
	ID        string
	FirstName string
	LastName  string
	MemberID  string
	Email     string
	CreatedAt time.Time

	passwordHash []byte
}

// DisplayName is the name shown after signing in.
func (a *Account) DisplayName() string {
	name := strings.TrimSpace(a.FirstName + " " + a.LastName)
	if name == "" {
		return a.Email
	}
	return name
}

// Registry is safe for concurrent use; the TUI calls it from commands.
type Registry struct {
	mu        sync.RWMutex
	validator *validation.FormValidator
	byEmail   map[string]*Account
	cost      int
}

func NewRegistry() *Registry {
	return &Registry{
		validator: validation.NewFormValidator(),
		byEmail:   make(map[string]*Account),
		cost:      bcrypt.DefaultCost,
	}
}

// NewTestRegistry uses the cheapest bcrypt cost so tests stay fast.
func NewTestRegistry() *Registry {
	r := NewRegistry()
	r.cost = bcrypt.MinCost
	return r
}

// Register validates r and stores a new account.
func (reg *Registry) Register(r validation.Registration) (*Account, error) {
	if err := reg.validator.ValidateRegistration(r); err != nil {
		return nil, err
	}

	email := validation.NormalizeEmail(r.Email)
	if reg.exists(email) {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), reg.cost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	acct := &Account{
		ID:           uuid.NewString(),
		FirstName:    strings.TrimSpace(r.FirstName),
		LastName:     strings.TrimSpace(r.LastName),
		MemberID:     strings.TrimSpace(r.MemberID),
		Email:        email,
		CreatedAt:    time.Now(),
		passwordHash: hash,
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	// Re-check: another Register may have won while hashing.
	if _, taken := reg.byEmail[email]; taken {
		return nil, ErrEmailTaken
	}
	reg.byEmail[email] = acct
	return acct, nil
}

// Authenticate returns the account matching c. Unknown emails and wrong
// passwords both return ErrInvalidCredentials.
func (reg *Registry) Authenticate(c validation.Credentials) (*Account, error) {
	if err := reg.validator.ValidateLogin(c); err != nil {
		return nil, err
	}

	reg.mu.RLock()
	acct, ok := reg.byEmail[validation.NormalizeEmail(c.Email)]
	reg.mu.RUnlock()
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(c.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return acct, nil
}

func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.byEmail)
}

func (reg *Registry) exists(email string) bool {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	_, ok := reg.byEmail[email]
	return ok
}
