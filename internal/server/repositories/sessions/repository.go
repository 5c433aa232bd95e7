// Package sessions declares the repository contract for server-side login
// sessions and provides SQL, in-memory and Redis implementations.
package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/server/models"
)

// Repository defines operations for issuing, resolving and revoking sessions.
type Repository interface {
	// Create stores s as given. Token must be unique.
	Create(ctx context.Context, s *models.Session) error

	// Find returns common.ErrorNotFound when the token is absent. Expired
	// sessions may still be returned; callers check Session.Expired.
	Find(ctx context.Context, token string) (*models.Session, error)

	// Delete removes a session by token. Deleting a non-existent session is
	// not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes every session that expired at or before now and
	// reports how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
