package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/notes"
)

// NoteService exposes note CRUD on behalf of an authenticated user. Every
// call is scoped to userID; repository sentinel errors pass through wrapped.
type NoteService struct {
	notes  notes.Repository
	logger logging.Logger
}

func NewNoteService(r notes.Repository, logger logging.Logger) *NoteService {
	return &NoteService{notes: r, logger: logger.With("module", "notes")}
}

func (s *NoteService) Create(ctx context.Context, userID int64, title, content string) (*models.Note, error) {
	n, err := s.notes.Create(ctx, &models.Note{UserID: userID, Title: title, Content: content})
	if err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}
	s.logger.Debug(ctx, "note created", "note_id", n.ID, "user_id", userID)
	return n, nil
}

func (s *NoteService) Get(ctx context.Context, userID, id int64) (*models.Note, error) {
	n, err := s.notes.Get(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting note: %w", err)
	}
	return n, nil
}

func (s *NoteService) Update(ctx context.Context, userID, id int64, patch models.NotePatch) (*models.Note, error) {
	n, err := s.notes.Update(ctx, id, userID, patch)
	if err != nil {
		return nil, fmt.Errorf("error updating note: %w", err)
	}
	s.logger.Debug(ctx, "note updated", "note_id", id, "user_id", userID)
	return n, nil
}

func (s *NoteService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.notes.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}
	s.logger.Debug(ctx, "note deleted", "note_id", id, "user_id", userID)
	return nil
}

func (s *NoteService) List(ctx context.Context, userID int64) ([]models.Note, error) {
	list, err := s.notes.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	return list, nil
}
