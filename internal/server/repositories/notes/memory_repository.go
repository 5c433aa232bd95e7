package notes

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/timex"
)

type MemoryRepository struct {
	mu     sync.RWMutex
	lastID int64
	notes  map[int64]models.Note
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{notes: make(map[int64]models.Note)}
}

func (r *MemoryRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := timex.Now()
	r.lastID++
	note.ID = r.lastID
	note.CreatedAt = now
	note.UpdatedAt = now

	r.notes[note.ID] = *note
	return note, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id, userID int64) (*models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.notes[id]
	if !ok || n.UserID != userID {
		return nil, common.ErrorNotFound
	}
	return &n, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id, userID int64, patch models.NotePatch) (*models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[id]
	if !ok || n.UserID != userID {
		return nil, common.ErrorNotFound
	}

	patch.Apply(&n)
	n.UpdatedAt = timex.Now()
	r.notes[id] = n

	return &n, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n, ok := r.notes[id]; ok && n.UserID == userID {
		delete(r.notes, id)
	}
	return nil
}

func (r *MemoryRepository) List(ctx context.Context, userID int64) ([]models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Note, 0)
	for _, n := range r.notes {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
