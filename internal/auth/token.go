// Package auth holds the mutable session credential shared by all requests
// issued from one client instance.
package auth

import "sync"

// TokenStore guards a single optional session bearer token. The token is
// absent by default, set or cleared explicitly by the caller, and read fresh
// on every request so that rotation takes effect mid-session. Reads and
// writes are mutually exclusive; a reader never observes a partial update.
type TokenStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

// NewTokenStore creates an empty store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Set installs token as the current session credential.
func (s *TokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.set = true
}

// Clear removes the session credential.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.set = false
}

// Get returns the current token and whether one is set.
func (s *TokenStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token, s.set
}

// Token implements the http.TokenSource interface.
func (s *TokenStore) Token() (string, bool) {
	return s.Get()
}
