package session

import (
	"sync"

	"hospitalcompare/internal/domain/entities"
)

// notifier implements the auth-change broadcast shared by every store.
// Callbacks run synchronously on the goroutine performing the change.
type notifier struct {
	mu          sync.Mutex
	nextID      int
	subscribers map[int]func(*entities.User)
}

func newNotifier() *notifier {
	return &notifier{subscribers: make(map[int]func(*entities.User))}
}

func (n *notifier) subscribe(fn func(*entities.User)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.subscribers[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subscribers, id)
	}
}

func (n *notifier) notify(user *entities.User) {
	n.mu.Lock()
	callbacks := make([]func(*entities.User), 0, len(n.subscribers))
	for _, fn := range n.subscribers {
		callbacks = append(callbacks, fn)
	}
	n.mu.Unlock()

	for _, fn := range callbacks {
		fn(user)
	}
}
