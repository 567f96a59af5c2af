// Package admin gates timer changes behind a static credential check and
// turns form intents into store operations.
package admin

import (
	"sync"

	"github.com/google/uuid"

	"github.com/manav03panchal/countdown/internal/errors"
	"github.com/manav03panchal/countdown/internal/logging"
)

// Credentials is the configured admin user and password.
type Credentials struct {
	User     string
	Password string
}

// Session tracks whether the admin has logged in. Sessions are never
// persisted; every process starts logged out.
type Session struct {
	id    string
	creds Credentials

	mu            sync.Mutex
	authenticated bool
}

// NewSession creates a logged-out session checking against creds.
func NewSession(creds Credentials) *Session {
	return &Session{
		id:    uuid.NewString(),
		creds: creds,
	}
}

// ID returns the session's random identifier, used to correlate log lines.
func (s *Session) ID() string {
	return s.id
}

// Login authenticates when user and password both match exactly. A failed
// attempt also logs out.
func (s *Session) Login(user, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logging.With(logging.KeySession, s.id, logging.KeyUser, user)
	if user != s.creds.User || password != s.creds.Password {
		s.authenticated = false
		log.Warn("admin login rejected")
		return errors.NewAuthError(user, errors.ErrInvalidCredentials)
	}

	s.authenticated = true
	log.Debug("admin logged in")
	return nil
}

// Logout clears the authenticated flag.
func (s *Session) Logout() {
	s.mu.Lock()
	s.authenticated = false
	s.mu.Unlock()
}

// IsAuthenticated reports whether Login has succeeded since the last Logout.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// require returns an AuthError unless the session is authenticated.
func (s *Session) require() error {
	if !s.IsAuthenticated() {
		return errors.NewAuthError("", errors.ErrNotAuthenticated)
	}
	return nil
}
