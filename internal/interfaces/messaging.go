package interfaces

import (
	"context"

	"gameforge/internal/models"

	"github.com/google/uuid"
)

// ImageTaskPublisher enqueues image generation tasks.
type ImageTaskPublisher interface {
	PublishImageTask(ctx context.Context, task models.ImageTask) error
}

// ClientNotifier pushes events to a user's connected clients.
type ClientNotifier interface {
	NotifyUser(userID uuid.UUID, eventType string, payload interface{})
}

// GameLocker provides per-game mutual exclusion.
type GameLocker interface {
	// Acquire blocks until the lock for gameID is held or ctx is done.
	// The returned release func is safe to call once.
	Acquire(ctx context.Context, gameID uuid.UUID) (release func(), err error)
}
