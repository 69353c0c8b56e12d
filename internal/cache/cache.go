package cache

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNilLoader is returned when GetOrLoad is called without a loader.
var ErrNilLoader = errors.New("cache: loader is required")

type entry struct {
	value     any
	storedAt  time.Time
	expiresAt time.Time
}

// Store is a thread-safe TTL cache with pull-based freshness checks. Each key
// carries its own TTL so weekly, daily, and standings data can age at
// different rates.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// New constructs an empty Store.
func New() *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached value when it is still fresh.
func (s *Store) Get(key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.expiresAt.After(s.now()) {
		return nil, false
	}
	return e.value, true
}

// GetStale returns the cached value regardless of freshness, for serving old
// data when the upstream is down. The boolean reports fresh vs stale.
func (s *Store) GetStale(key string) (any, bool, bool) {
	if key == "" {
		return nil, false, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, false
	}
	return e.value, true, e.expiresAt.After(s.now())
}

// Set stores a value under key for the given TTL. Non-positive TTLs store
// nothing; a value that can never be fresh is not worth keeping.
func (s *Store) Set(key string, value any, ttl time.Duration) {
	if key == "" || ttl <= 0 {
		return
	}

	now := s.now()
	s.mu.Lock()
	s.entries[key] = entry{
		value:     value,
		storedAt:  now,
		expiresAt: now.Add(ttl),
	}
	s.mu.Unlock()
}

// Delete removes a key.
func (s *Store) Delete(key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Status describes how fresh a cache entry is, for UI freshness indicators.
type Status struct {
	Present   bool          `json:"present"`
	Fresh     bool          `json:"fresh"`
	Age       time.Duration `json:"-"`
	AgeMS     int64         `json:"age_ms"`
	Freshness float64       `json:"freshness"`
	StoredAt  time.Time     `json:"stored_at"`
}

// Status reports the freshness of a key: 1.0 just stored, declining to 0 at
// expiry.
func (s *Store) Status(key string) Status {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return Status{}
	}

	now := s.now()
	age := now.Sub(e.storedAt)
	ttl := e.expiresAt.Sub(e.storedAt)

	st := Status{
		Present:  true,
		Age:      age,
		AgeMS:    age.Milliseconds(),
		StoredAt: e.storedAt,
	}
	if e.expiresAt.After(now) && ttl > 0 {
		st.Fresh = true
		st.Freshness = 1 - float64(age)/float64(ttl)
	}
	return st
}

// GetOrLoad returns the fresh cached value or invokes the loader and caches
// the result. When the loader fails and a stale value exists, the stale value
// is returned alongside the error so callers can degrade instead of going
// empty.
func (s *Store) GetOrLoad(ctx context.Context, key string, ttl time.Duration, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, ErrNilLoader
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(key); ok {
		return value, nil
	}

	value, err := loader(ctx)
	if err != nil {
		if stale, ok, _ := s.GetStale(key); ok {
			return stale, err
		}
		return nil, err
	}

	s.Set(key, value, ttl)
	return value, nil
}
