package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"hospitalcompare/internal/domain/entities"
	"hospitalcompare/internal/domain/providers"
)

// sessionFile is the on-disk shape: one record keyed "user", mirroring the
// original browser-local store.
type sessionFile struct {
	User *entities.User `json:"user,omitempty"`
}

// FileStore persists the session user as a JSON file. The file is read
// once at construction; writes replace it.
type FileStore struct {
	path     string
	mu       sync.RWMutex
	user     *entities.User
	notifier *notifier
}

// NewFileStore creates a file-backed session store, loading any persisted
// user record from path. A missing file means logged out.
func NewFileStore(path string) (*FileStore, error) {
	store := &FileStore{
		path:     path,
		notifier: newNotifier(),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var persisted sessionFile
	if err := json.Unmarshal(data, &persisted); err != nil {
		// A corrupt session file is treated as logged out rather than
		// blocking startup.
		return store, nil
	}
	store.user = persisted.User
	return store, nil
}

// CurrentUser returns the logged-in user, or nil when logged out.
func (s *FileStore) CurrentUser() *entities.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetUser stores the user record and notifies subscribers.
func (s *FileStore) SetUser(ctx context.Context, user *entities.User) error {
	s.mu.Lock()
	if err := s.write(sessionFile{User: user}); err != nil {
		s.mu.Unlock()
		return err
	}
	s.user = user
	s.mu.Unlock()

	s.notifier.notify(user)
	return nil
}

// Clear removes the user record and notifies subscribers with nil.
func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	if err := s.write(sessionFile{}); err != nil {
		s.mu.Unlock()
		return err
	}
	s.user = nil
	s.mu.Unlock()

	s.notifier.notify(nil)
	return nil
}

// Subscribe registers a callback invoked on every session change.
func (s *FileStore) Subscribe(fn func(*entities.User)) func() {
	return s.notifier.subscribe(fn)
}

func (s *FileStore) write(payload sessionFile) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

var _ providers.SessionStore = (*FileStore)(nil)
