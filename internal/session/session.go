// Package session tracks the signed-in account and its privilege level.
package session

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/tinybazaar/bazaar/internal/model"
)

// ErrInvalidCredentials is returned by Login when the name or password
// does not match a stored account.
var ErrInvalidCredentials = errors.New("session: invalid credentials")

// Session holds the current account. Role queries are answered from live
// state on every call; callers are expected not to cache the answers.
type Session struct {
	mu       sync.RWMutex
	users    model.UserStore
	current  *model.User
	onLogout []func()
}

// New creates a signed-out session backed by the given account store.
func New(users model.UserStore) *Session {
	return &Session{users: users}
}

// Login verifies the password against the stored account and signs in.
func (s *Session) Login(name, password string) error {
	u, err := s.users.FindUserByName(name)
	if errors.Is(err, model.ErrNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("session: lookup %q: %w", name, err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}

	s.mu.Lock()
	s.current = &u
	s.mu.Unlock()
	return nil
}

// Logout signs out and notifies subscribers. Signing out while already
// signed out is a no-op and fires nothing.
func (s *Session) Logout() {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	s.current = nil
	subs := append([]func(){}, s.onLogout...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// OnLogout registers a subscriber invoked after every sign-out. The
// navigation controller uses this to reset its stack.
func (s *Session) OnLogout(fn func()) {
	s.mu.Lock()
	s.onLogout = append(s.onLogout, fn)
	s.mu.Unlock()
}

// Role returns the current privilege level, RoleGuest when signed out.
func (s *Session) Role() model.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return model.RoleGuest
	}
	return s.current.Role
}

// IsAdmin reports administrator privilege.
func (s *Session) IsAdmin() bool { return s.Role() == model.RoleAdmin }

// IsAffiliate reports affiliate privilege.
func (s *Session) IsAffiliate() bool { return s.Role() == model.RoleAffiliate }

// User returns a copy of the signed-in account.
func (s *Session) User() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return model.User{}, false
	}
	return *s.current, true
}

// AffiliateCode returns the signed-in affiliate's code, or "".
func (s *Session) AffiliateCode() string {
	u, ok := s.User()
	if !ok {
		return ""
	}
	return u.AffiliateCode
}

// HashPassword produces a stored hash for seeding accounts.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("session: hash password: %w", err)
	}
	return string(h), nil
}
