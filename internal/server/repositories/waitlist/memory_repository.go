package waitlist

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/timex"
)

type MemoryRepository struct {
	mu      sync.RWMutex
	entries []models.WaitlistEntry
	byEmail map[string]int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byEmail: make(map[string]int)}
}

func (r *MemoryRepository) Create(ctx context.Context, email string) (*models.WaitlistEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[email]; ok {
		return nil, common.ErrorAlreadyExists
	}

	e := models.WaitlistEntry{
		ID:         int64(len(r.entries) + 1),
		Email:      email,
		SignedUpAt: timex.Now(),
	}
	r.byEmail[email] = len(r.entries)
	r.entries = append(r.entries, e)

	return &e, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.WaitlistEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	e := r.entries[i]
	return &e, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.WaitlistEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.WaitlistEntry, len(r.entries))
	copy(result, r.entries)
	return result, nil
}
