package repositories

import (
	"context"
	"sync"
	"time"

	"prestige-properties/pkg/metrics"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

type memorySessionStateRepository struct {
	mu      sync.RWMutex
	entries map[string]map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemorySessionStateRepository keeps session state in process memory. Entries
// expire ttl after their last write; ttl <= 0 disables expiry.
func NewMemorySessionStateRepository(ttl time.Duration) SessionStateRepository {
	return &memorySessionStateRepository{
		entries: make(map[string]map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (r *memorySessionStateRepository) Backend() string { return "memory" }

func (r *memorySessionStateRepository) ForSession(sessionID string) SessionState {
	return &memorySessionState{repo: r, sessionID: sessionID}
}

// Sweep drops expired entries and empty sessions.
func (r *memorySessionStateRepository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	removed := 0
	for id, session := range r.entries {
		for key, entry := range session {
			if r.expired(entry, now) {
				delete(session, key)
				removed++
			}
		}
		if len(session) == 0 {
			delete(r.entries, id)
		}
	}
	return removed
}

func (r *memorySessionStateRepository) expired(e memoryEntry, now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

type memorySessionState struct {
	repo      *memorySessionStateRepository
	sessionID string
}

func (s *memorySessionState) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	start := time.Now()
	defer observe("get", start)

	s.repo.mu.RLock()
	entry, ok := s.repo.entries[s.sessionID][key]
	s.repo.mu.RUnlock()

	if !ok || s.repo.expired(entry, s.repo.now()) {
		return "", false, nil
	}
	return entry.value, true, nil
}

func (s *memorySessionState) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	defer observe("set", start)

	entry := memoryEntry{value: value}
	if s.repo.ttl > 0 {
		entry.expiresAt = s.repo.now().Add(s.repo.ttl)
	}

	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()
	session, ok := s.repo.entries[s.sessionID]
	if !ok {
		session = make(map[string]memoryEntry)
		s.repo.entries[s.sessionID] = session
	}
	session[key] = entry
	return nil
}

func (s *memorySessionState) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	defer observe("delete", start)

	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()
	if session, ok := s.repo.entries[s.sessionID]; ok {
		delete(session, key)
		if len(session) == 0 {
			delete(s.repo.entries, s.sessionID)
		}
	}
	return nil
}

func (s *memorySessionState) Take(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	start := time.Now()
	defer observe("take", start)

	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()
	session, ok := s.repo.entries[s.sessionID]
	if !ok {
		return "", false, nil
	}
	entry, ok := session[key]
	delete(session, key)
	if len(session) == 0 {
		delete(s.repo.entries, s.sessionID)
	}
	if !ok || s.repo.expired(entry, s.repo.now()) {
		return "", false, nil
	}
	return entry.value, true, nil
}

func observe(operation string, start time.Time) {
	metrics.SessionStoreOperationDuration.WithLabelValues("memory", operation).Observe(time.Since(start).Seconds())
}
