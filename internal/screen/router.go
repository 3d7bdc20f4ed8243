// Package screen tracks which screen a session is on. Navigation replaces the
// current screen; no back stack is kept.
package screen

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"hrflow/internal/cache"
	"hrflow/internal/navigation"
)

const screenKeyPrefix = "session:screen:"

// Router performs replace-style navigation for one session.
type Router interface {
	// Navigate replaces the current screen. It reports whether the screen
	// changed; repeating the current target is a no-op.
	Navigate(ctx context.Context, target navigation.Target) (bool, error)
	Current(ctx context.Context) (navigation.Target, bool, error)
	Reset(ctx context.Context) error
}

// MemoryRouter keeps the current screen in process memory.
type MemoryRouter struct {
	mu      sync.Mutex
	current *navigation.Target
}

var _ Router = (*MemoryRouter)(nil)

// NewMemoryRouter returns a router with no current screen.
func NewMemoryRouter() *MemoryRouter {
	return &MemoryRouter{}
}

func (r *MemoryRouter) Navigate(_ context.Context, target navigation.Target) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current != nil && r.current.Equal(target) {
		return false, nil
	}
	t := clone(target)
	r.current = &t
	return true, nil
}

func (r *MemoryRouter) Current(_ context.Context) (navigation.Target, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		return navigation.Target{}, false, nil
	}
	return clone(*r.current), true, nil
}

func (r *MemoryRouter) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = nil
	return nil
}

// CacheRouter keeps the current screen of one session in the cache.
type CacheRouter struct {
	cache     cache.Cache
	sessionID string
	ttl       time.Duration
}

var _ Router = (*CacheRouter)(nil)

// NewCacheRouter binds a router handle to a session.
func NewCacheRouter(c cache.Cache, sessionID string, ttl time.Duration) *CacheRouter {
	return &CacheRouter{cache: c, sessionID: sessionID, ttl: ttl}
}

func (r *CacheRouter) key() string {
	return screenKeyPrefix + r.sessionID
}

func (r *CacheRouter) Navigate(ctx context.Context, target navigation.Target) (bool, error) {
	current, ok, err := r.Current(ctx)
	if err != nil {
		return false, err
	}
	if ok && current.Equal(target) {
		return false, nil
	}

	payload, err := json.Marshal(target)
	if err != nil {
		return false, fmt.Errorf("marshal screen: %w", err)
	}
	if err := r.cache.Set(ctx, r.key(), payload, r.ttl); err != nil {
		return false, err
	}
	return true, nil
}

func (r *CacheRouter) Current(ctx context.Context) (navigation.Target, bool, error) {
	data, err := r.cache.Get(ctx, r.key())
	if err != nil {
		return navigation.Target{}, false, err
	}
	if data == nil {
		return navigation.Target{}, false, nil
	}
	var target navigation.Target
	if err := json.Unmarshal(data, &target); err != nil {
		return navigation.Target{}, false, fmt.Errorf("unmarshal screen: %w", err)
	}
	return target, true, nil
}

func (r *CacheRouter) Reset(ctx context.Context) error {
	return r.cache.Delete(ctx, r.key())
}

func clone(t navigation.Target) navigation.Target {
	params := make(map[string]string, len(t.Params))
	for k, v := range t.Params {
		params[k] = v
	}
	return navigation.Target{Route: t.Route, Params: params}
}
