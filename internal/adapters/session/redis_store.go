package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"hospitalcompare/internal/domain/entities"
	"hospitalcompare/internal/domain/providers"
	redisclient "hospitalcompare/internal/infrastructure/clients/redis"
)

// RedisStore persists the session user under a single Redis key. It serves
// shared-kiosk deployments where the session must outlive the local disk.
type RedisStore struct {
	client   *redisclient.Client
	key      string
	mu       sync.RWMutex
	user     *entities.User
	notifier *notifier
}

// NewRedisStore creates a Redis-backed session store, loading any persisted
// user record at construction.
func NewRedisStore(ctx context.Context, client *redisclient.Client, key string) (*RedisStore, error) {
	store := &RedisStore{
		client:   client,
		key:      key,
		notifier: newNotifier(),
	}

	data, err := client.Client().Get(ctx, key).Bytes()
	if err == redis.Nil {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session from redis: %w", err)
	}

	var user entities.User
	if err := json.Unmarshal(data, &user); err == nil {
		store.user = &user
	}
	return store, nil
}

// CurrentUser returns the logged-in user, or nil when logged out.
func (s *RedisStore) CurrentUser() *entities.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetUser stores the user record and notifies subscribers.
func (s *RedisStore) SetUser(ctx context.Context, user *entities.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}

	s.mu.Lock()
	if err := s.client.Client().Set(ctx, s.key, data, 0).Err(); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to persist session: %w", err)
	}
	s.user = user
	s.mu.Unlock()

	s.notifier.notify(user)
	return nil
}

// Clear removes the user record and notifies subscribers with nil.
func (s *RedisStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	if err := s.client.Client().Del(ctx, s.key).Err(); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.user = nil
	s.mu.Unlock()

	s.notifier.notify(nil)
	return nil
}

// Subscribe registers a callback invoked on every session change.
func (s *RedisStore) Subscribe(fn func(*entities.User)) func() {
	return s.notifier.subscribe(fn)
}

var _ providers.SessionStore = (*RedisStore)(nil)
