package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"hrflow/internal/cache"
	"hrflow/internal/navigation"
)

const profileKeyPrefix = "session:profile:"

// Store holds the last fetched record for one session. Set replaces the
// whole record; there is no merge and no history.
type Store interface {
	Set(ctx context.Context, rec navigation.UserRecord) error
	Get(ctx context.Context) (navigation.UserRecord, bool, error)
	Clear(ctx context.Context) error
}

// MemoryStore keeps the record in process memory.
type MemoryStore struct {
	mu  sync.RWMutex
	rec *navigation.UserRecord
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Set(_ context.Context, rec navigation.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = &rec
	return nil
}

func (s *MemoryStore) Get(_ context.Context) (navigation.UserRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.rec == nil {
		return navigation.UserRecord{}, false, nil
	}
	return *s.rec, true, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = nil
	return nil
}

// CacheStore keeps the record for one session under a single cache key.
type CacheStore struct {
	cache     cache.Cache
	sessionID string
	ttl       time.Duration
}

var _ Store = (*CacheStore)(nil)

// NewCacheStore binds a store handle to a session.
func NewCacheStore(c cache.Cache, sessionID string, ttl time.Duration) *CacheStore {
	return &CacheStore{cache: c, sessionID: sessionID, ttl: ttl}
}

func (s *CacheStore) key() string {
	return profileKeyPrefix + s.sessionID
}

func (s *CacheStore) Set(ctx context.Context, rec navigation.UserRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return s.cache.Set(ctx, s.key(), payload, s.ttl)
}

func (s *CacheStore) Get(ctx context.Context) (navigation.UserRecord, bool, error) {
	data, err := s.cache.Get(ctx, s.key())
	if err != nil {
		return navigation.UserRecord{}, false, err
	}
	if data == nil {
		return navigation.UserRecord{}, false, nil
	}
	var rec navigation.UserRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return navigation.UserRecord{}, false, fmt.Errorf("unmarshal profile: %w", err)
	}
	return rec, true, nil
}

func (s *CacheStore) Clear(ctx context.Context) error {
	return s.cache.Delete(ctx, s.key())
}
