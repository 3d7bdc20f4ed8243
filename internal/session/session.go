// Package session owns the per-login client state: the last fetched profile
// and the current screen. A session is opened at login and ended at logout.
package session

import (
	"context"
	"errors"
	"time"

	"hrflow/internal/cache"
	"hrflow/internal/profile"
	"hrflow/internal/screen"
)

// DefaultTTL matches the refresh token lifetime.
const DefaultTTL = 7 * 24 * time.Hour

// Session bundles the state handles of one login.
type Session struct {
	ID      string
	Profile profile.Store
	Screen  screen.Router
}

// Manager hands out cache-backed session handles.
type Manager struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewManager creates a session manager. A non-positive ttl uses DefaultTTL.
func NewManager(c cache.Cache, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{cache: c, ttl: ttl}
}

// Open returns the handles for sessionID. Opening is cheap and does not touch
// the cache.
func (m *Manager) Open(sessionID string) *Session {
	return &Session{
		ID:      sessionID,
		Profile: profile.NewCacheStore(m.cache, sessionID, m.ttl),
		Screen:  screen.NewCacheRouter(m.cache, sessionID, m.ttl),
	}
}

// End clears everything stored for the session.
func (m *Manager) End(ctx context.Context, sessionID string) error {
	s := m.Open(sessionID)
	return errors.Join(s.Profile.Clear(ctx), s.Screen.Reset(ctx))
}
