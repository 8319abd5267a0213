package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"revcheck.app/checker/internal/model"
)

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionStore returns a process-local session store. A ttl of zero
// keeps sessions until they are deleted.
func NewSessionStore(ttl time.Duration) SessionStore {
	return newSessionStore(ttl, time.Now)
}

func newSessionStore(ttl time.Duration, now func() time.Time) *memorySessionStore {
	return &memorySessionStore{
		sessions: make(map[string]*model.Session),
		ttl:      ttl,
		now:      now,
	}
}

func (s *memorySessionStore) Create(ctx context.Context, session *model.Session) error {
	if session.ID == "" {
		return fmt.Errorf("creating session: empty id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; ok {
		return fmt.Errorf("creating session %s: already exists", session.ID)
	}

	now := s.now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	s.touch(session, now)
	s.sessions[session.ID] = session
	return nil
}

func (s *memorySessionStore) Get(ctx context.Context, id string) (*model.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if session.IsExpired(s.now()) {
		_ = s.Delete(ctx, id)
		return nil, ErrNotFound
	}
	return session, nil
}

// Update replaces the stored session and extends its expiry.
func (s *memorySessionStore) Update(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.sessions[session.ID]
	if !ok || existing.IsExpired(s.now()) {
		return ErrNotFound
	}

	s.touch(session, s.now())
	s.sessions[session.ID] = session
	return nil
}

func (s *memorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *memorySessionStore) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.IsExpired(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (s *memorySessionStore) touch(session *model.Session, now time.Time) {
	if s.ttl > 0 {
		session.ExpiresAt = now.Add(s.ttl)
	}
}
