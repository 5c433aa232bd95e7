package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/waitlist"
)

type WaitlistService struct {
	waitlist waitlist.Repository
	logger   logging.Logger
}

func NewWaitlistService(r waitlist.Repository, logger logging.Logger) *WaitlistService {
	return &WaitlistService{waitlist: r, logger: logger.With("module", "waitlist")}
}

// Signup adds email to the waitlist once. A repeated email yields
// common.ErrorAlreadyExists, whether caught by the lookup or by the store's
// uniqueness check when two signups race.
func (s *WaitlistService) Signup(ctx context.Context, email string) (*models.WaitlistEntry, error) {
	_, err := s.waitlist.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error searching waitlist: %w", err)
	}

	e, err := s.waitlist.Create(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error adding to waitlist: %w", err)
	}

	s.logger.Info(ctx, "waitlist signup", "entry_id", e.ID)
	return e, nil
}
