// Package notes stores notes scoped by owner. Every read and write takes the
// acting user's ID; a note owned by someone else behaves exactly like a note
// that does not exist.
package notes

import (
	"context"

	"github.com/dmitrijs2005/notekeeper/internal/server/models"
)

type Repository interface {
	// Create assigns ID, CreatedAt and UpdatedAt (equal on creation).
	Create(ctx context.Context, note *models.Note) (*models.Note, error)

	// Get returns common.ErrorNotFound unless the note exists and is owned by userID.
	Get(ctx context.Context, id, userID int64) (*models.Note, error)

	// Update applies patch and bumps UpdatedAt. Fields absent from patch keep
	// their stored values.
	Update(ctx context.Context, id, userID int64, patch models.NotePatch) (*models.Note, error)

	// Delete removes the note if owned by userID. Deleting a missing or foreign
	// note is a no-op, not an error.
	Delete(ctx context.Context, id, userID int64) error

	// List returns the user's notes ordered by ID. Never nil.
	List(ctx context.Context, userID int64) ([]models.Note, error)
}
