// pkg/memcache/revoked_tokens.go
package mem

import (
	"context"
	"sync"
	"time"

	"travelguide/pkg/clock"
)

type RevokedTokenStore interface {
	// Revoke marks the token id as unusable until its own expiry.
	Revoke(tokenID string, until time.Time)

	// IsRevoked reports whether tokenID was revoked and is still within its
	// expiry window.
	IsRevoked(tokenID string) bool
}

type RevokedTokens struct {
	mu    sync.RWMutex
	data  map[string]time.Time
	clock clock.Clock
}

func NewRevokedTokens(c clock.Clock) *RevokedTokens {
	if c == nil {
		c = &clock.RealClock{}
	}
	return &RevokedTokens{
		data:  make(map[string]time.Time),
		clock: c,
	}
}

func (s *RevokedTokens) Revoke(tokenID string, until time.Time) {
	if tokenID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[tokenID] = until
}

func (s *RevokedTokens) IsRevoked(tokenID string) bool {
	s.mu.RLock()
	until, ok := s.data[tokenID]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if s.clock.Now().After(until) {
		s.mu.Lock()
		delete(s.data, tokenID) // expired, the token is rejected by jwt anyway
		s.mu.Unlock()
		return false
	}
	return true
}

// Purge drops entries whose expiry has passed and returns how many.
func (s *RevokedTokens) Purge() int {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, until := range s.data {
		if now.After(until) {
			delete(s.data, id)
			n++
		}
	}
	return n
}

// PurgeEvery runs Purge on each tick until ctx is done.
func (s *RevokedTokens) PurgeEvery(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Purge()
		}
	}
}

func (s *RevokedTokens) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
