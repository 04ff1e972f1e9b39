package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store used in tests and when the server
// starts without Redis. Sessions do not survive a restart.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memorySession
}

type memorySession struct {
	userID    string
	expiresAt time.Time
}

// NewMemoryStore creates an in-memory session store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]memorySession),
	}
}

func (s *MemoryStore) Create(_ context.Context, userID string) (string, error) {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = memorySession{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return id, nil
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return "", false, nil
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, sessionID)
		return "", false, nil
	}
	return sess.userID, true, nil
}

func (s *MemoryStore) Destroy(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}
