// Package auth gates the admin back-office behind a swappable credential
// check and an in-memory session set.
package auth

import (
	"sync"

	"plastic-world/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Session is an issued admin session token.
type Session struct {
	Token string `json:"token"`
}

// Authenticator validates admin credentials. The comparison logic lives
// behind this interface so call sites never depend on where the
// credentials come from.
type Authenticator interface {
	Authenticate(username, password string) (Session, error)
}

// SessionStore tracks issued session tokens. Sessions never expire; the
// back-office has a single operator.
type SessionStore struct {
	mu     sync.Mutex
	tokens map[string]struct{}
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{tokens: make(map[string]struct{})}
}

// Add records a session token as valid.
func (s *SessionStore) Add(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = struct{}{}
}

// Valid reports whether token belongs to an issued session.
func (s *SessionStore) Valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[token]
	return ok
}

// staticAuthenticator compares against a single configured credential
// pair.
type staticAuthenticator struct {
	username string
	password string
	sessions *SessionStore
	logger   zerolog.Logger
}

// NewStaticAuthenticator creates an authenticator for the configured
// username/password pair, issuing tokens into sessions.
func NewStaticAuthenticator(username, password string, sessions *SessionStore, logger zerolog.Logger) Authenticator {
	return &staticAuthenticator{
		username: username,
		password: password,
		sessions: sessions,
		logger:   logger.With().Str("component", "auth").Logger(),
	}
}

// Authenticate checks the credential pair and issues a fresh session
// token. Failures are retryable; there is no lockout or throttling.
func (a *staticAuthenticator) Authenticate(username, password string) (Session, error) {
	if username != a.username || password != a.password {
		a.logger.Warn().Str("username", username).Msg("admin login rejected")
		return Session{}, model.ErrInvalidCredentials
	}

	session := Session{Token: uuid.NewString()}
	a.sessions.Add(session.Token)

	a.logger.Info().Str("username", username).Msg("admin login succeeded")
	return session, nil
}
