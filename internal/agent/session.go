package agent

import (
	"time"

	"github.com/MKhiriev/go-pass-agent/internal/crypto"
)

// Session is the Locked/Unlocked state machine. It owns the unwrapped vault
// key while unlocked. Session is not safe for concurrent use; the agent
// guards it with its state mutex.
type Session struct {
	keys         *crypto.Keys
	lastActivity time.Time
}

// NewSession returns a locked session.
func NewSession() *Session {
	return &Session{}
}

// Unlock takes ownership of keys. Keys held from an earlier unlock are
// zeroed first.
func (s *Session) Unlock(keys *crypto.Keys, now time.Time) {
	if s.keys != nil && s.keys != keys {
		_ = s.keys.Close()
	}
	s.keys = keys
	s.lastActivity = now
}

// Lock zeroes the keys. Locking a locked session does nothing.
func (s *Session) Lock() {
	if s.keys == nil {
		return
	}
	_ = s.keys.Close()
	s.keys = nil
	s.lastActivity = time.Time{}
}

// Locked reports whether the session holds no key.
func (s *Session) Locked() bool {
	return s.keys == nil
}

// Keys returns the vault key, or nil while locked.
func (s *Session) Keys() *crypto.Keys {
	return s.keys
}

// Touch restarts the inactivity timer of an unlocked session.
func (s *Session) Touch(now time.Time) {
	if s.keys != nil {
		s.lastActivity = now
	}
}

// Expired reports whether an unlocked session has been idle for longer than
// timeout.
func (s *Session) Expired(now time.Time, timeout time.Duration) bool {
	if s.keys == nil || timeout <= 0 {
		return false
	}
	return now.Sub(s.lastActivity) > timeout
}

// ExpiresAt is the moment an idle unlocked session locks itself. It is zero
// while locked.
func (s *Session) ExpiresAt(timeout time.Duration) time.Time {
	if s.keys == nil {
		return time.Time{}
	}
	return s.lastActivity.Add(timeout)
}
