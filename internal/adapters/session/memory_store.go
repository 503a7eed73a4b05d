package session

import (
	"context"
	"sync"

	"hospitalcompare/internal/domain/entities"
	"hospitalcompare/internal/domain/providers"
)

// MemoryStore is an in-process session store with no persistence.
type MemoryStore struct {
	mu       sync.RWMutex
	user     *entities.User
	notifier *notifier
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{notifier: newNotifier()}
}

// CurrentUser returns the logged-in user, or nil when logged out.
func (s *MemoryStore) CurrentUser() *entities.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetUser stores the user record and notifies subscribers.
func (s *MemoryStore) SetUser(ctx context.Context, user *entities.User) error {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	s.notifier.notify(user)
	return nil
}

// Clear removes the user record and notifies subscribers with nil.
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	s.notifier.notify(nil)
	return nil
}

// Subscribe registers a callback invoked on every session change.
func (s *MemoryStore) Subscribe(fn func(*entities.User)) func() {
	return s.notifier.subscribe(fn)
}

var _ providers.SessionStore = (*MemoryStore)(nil)
