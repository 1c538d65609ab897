// Package session tracks whether the local user has entered the vault.
//
// There are no credentials: logging in only flips a flag. The state lives
// in a Session value owned by the caller, never in package globals.
package session

import "sync"

type Session struct {
	mu            sync.RWMutex
	authenticated bool
}

func New() *Session {
	return &Session{}
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Login marks the session as authenticated. It reports whether the state changed.
func (s *Session) Login() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := !s.authenticated
	s.authenticated = true
	return changed
}

// Logout clears the session. It reports whether the state changed.
func (s *Session) Logout() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := s.authenticated
	s.authenticated = false
	return changed
}
