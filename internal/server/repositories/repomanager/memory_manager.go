package repomanager

import (
	"context"

	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/notes"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/waitlist"
)

// InMemoryRepositoryManager holds process-local repositories. Everything is
// lost when the process exits.
type InMemoryRepositoryManager struct {
	users    *users.MemoryRepository
	notes    *notes.MemoryRepository
	waitlist *waitlist.MemoryRepository
	sessions *sessions.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:    users.NewMemoryRepository(),
		notes:    notes.NewMemoryRepository(),
		waitlist: waitlist.NewMemoryRepository(),
		sessions: sessions.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Users() users.Repository       { return m.users }
func (m *InMemoryRepositoryManager) Notes() notes.Repository       { return m.notes }
func (m *InMemoryRepositoryManager) Waitlist() waitlist.Repository { return m.waitlist }
func (m *InMemoryRepositoryManager) Sessions() sessions.Repository { return m.sessions }

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }
func (m *InMemoryRepositoryManager) Ping(ctx context.Context) error          { return nil }
func (m *InMemoryRepositoryManager) Close() error                            { return nil }
