// Package repomanager bundles the repositories of one storage backend behind
// a single handle, together with its migration, health and shutdown hooks.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/notes"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/waitlist"
)

type RepositoryManager interface {
	Users() users.Repository
	Notes() notes.Repository
	Waitlist() waitlist.Repository
	Sessions() sessions.Repository

	// RunMigrations brings the schema up to date. No-op for memory storage.
	RunMigrations(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
