// Package waitlist records pre-launch email signups.
package waitlist

import (
	"context"

	"github.com/dmitrijs2005/notekeeper/internal/server/models"
)

type Repository interface {
	// Create records email with the current time. A second signup for the same
	// email yields common.ErrorAlreadyExists.
	Create(ctx context.Context, email string) (*models.WaitlistEntry, error)
	GetByEmail(ctx context.Context, email string) (*models.WaitlistEntry, error)
	// List returns entries in signup order.
	List(ctx context.Context) ([]models.WaitlistEntry, error)
}
