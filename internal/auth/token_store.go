// Package auth holds the single process-wide admin credential. The token
// is written at login, read when attaching to upstream admin calls, and
// cleared at logout; no other call site touches ambient storage.
package auth

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenStore is the lone accessor for the admin bearer token.
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewTokenStore starts empty (logged out).
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Init stores the token obtained at login.
func (s *TokenStore) Init(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Read returns the current token and whether one is held.
func (s *TokenStore) Read() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Teardown clears the token at logout.
func (s *TokenStore) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// Expired reports whether a JWT bearer token carries an exp claim in the
// past. The signature is not verified here: the upstream owns it; this is
// only a local pre-check so an obviously dead session fails fast without a
// round trip. Opaque or unparsable tokens are never treated as expired.
func Expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
