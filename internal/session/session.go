package session

import (
	"ntd/internal/storage"

	"go.uber.org/atomic"
)

// Session is the single source of the active user scope. Every manager
// resolves the current partition through this value instead of re-reading it
// from a side channel, so a scope switch is observed consistently everywhere.
type Session struct {
	scope *atomic.String
}

func NewSession() *Session {
	return &Session{scope: atomic.NewString(storage.DefaultScope)}
}

// Scope returns the active user scope, or the default sentinel when nobody
// is signed in.
func (s *Session) Scope() string {
	return s.scope.Load()
}

func (s *Session) SetActive(email string) {
	if email == "" {
		email = storage.DefaultScope
	}
	s.scope.Store(email)
}

// SignOut resets the session to the default scope and returns the scope that
// was active, so the caller can erase its partitions.
func (s *Session) SignOut() string {
	return s.scope.Swap(storage.DefaultScope)
}
