package providers

import (
	"context"

	"hospitalcompare/internal/domain/entities"
)

// SessionStore holds the current logged-in user record. It is written only
// by login/logout and read by every guarded component. Implementations
// broadcast every change to subscribers (the application-wide auth-change
// signal).
type SessionStore interface {
	// CurrentUser returns the logged-in user, or nil when logged out.
	CurrentUser() *entities.User

	// SetUser stores the user record and notifies subscribers.
	SetUser(ctx context.Context, user *entities.User) error

	// Clear removes the user record and notifies subscribers with nil.
	Clear(ctx context.Context) error

	// Subscribe registers a callback invoked on every session change.
	// The returned function removes the subscription.
	Subscribe(fn func(*entities.User)) (unsubscribe func())
}
